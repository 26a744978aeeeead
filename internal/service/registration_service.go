package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "visitorbook/internal/errors"
	"visitorbook/internal/model"
	"visitorbook/internal/repository"
)

// RegistrationService records submitted names as users.
type RegistrationService interface {
	// Register returns the user for username, creating it when absent.
	// known reports whether the user existed before this call.
	Register(ctx context.Context, username string) (user *model.User, known bool, err error)
}

type registrationService struct {
	users repository.UserRepository
}

// NewRegistrationService builds a RegistrationService over the user repository.
func NewRegistrationService(users repository.UserRepository) RegistrationService {
	return &registrationService{users: users}
}

func (s *registrationService) Register(ctx context.Context, username string) (*model.User, bool, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, false, fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{Username: username}
	if err := s.users.Create(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateUsername) {
			return nil, false, fmt.Errorf("create user: %w", err)
		}
		// another request inserted the same name in between
		existing, err := s.users.FindByUsername(ctx, username)
		if err != nil {
			return nil, false, fmt.Errorf("reload user after duplicate insert: %w", err)
		}
		return existing, true, nil
	}
	return user, false, nil
}
