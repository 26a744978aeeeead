package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "visitorbook/internal/errors"
	"visitorbook/internal/model"
)

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	FindByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		if isDuplicateEntryError(err) {
			return apperrors.ErrDuplicateRole
		}
		return fmt.Errorf("create role %q: %w", role.Name, err)
	}
	return nil
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role %q: %w", name, err)
	}
	return &role, nil
}

// List returns every role ordered by id.
func (r *roleRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}
