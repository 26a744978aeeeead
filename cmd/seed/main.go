package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"visitorbook/internal/config"
	"visitorbook/internal/db"
	apperrors "visitorbook/internal/errors"
	"visitorbook/internal/logging"
	"visitorbook/internal/model"
	"visitorbook/internal/repository"
)

const defaultRoles = "Admin,Moderator,User"

func main() {
	rolesFlag := flag.String("roles", defaultRoles, "comma separated role names to ensure")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info", false, nil).Fatalf("load config: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.IsProduction(), nil)
	log.Info("Starting seed script...")

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, logging.GormLogger(log))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Info("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations completed")

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)

	names := parseRoles(*rolesFlag)
	log.Infof("Seeding %d roles into database...", len(names))
	created, existing, err := seedRoles(ctx, roleRepo, names)
	if err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	log.Info("Seed completed successfully!")
	log.Infof("  - New roles created: %d", created)
	log.Infof("  - Existing roles kept: %d", existing)

	roles, err := roleRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list roles: %v", err)
	}
	for _, role := range roles {
		log.WithFields(logrus.Fields{"id": role.ID, "name": role.Name}).Info("role")
	}

	users, err := repository.NewUserRepository(gormDB).Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	log.Infof("Known users: %d", users)
}

// parseRoles splits a comma separated list, dropping blanks and duplicates.
func parseRoles(list string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range strings.Split(list, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// seedRoles creates the roles that do not exist yet. Roles are never updated.
func seedRoles(ctx context.Context, repo repository.RoleRepository, names []string) (created int, existing int, err error) {
	for _, name := range names {
		_, err := repo.FindByName(ctx, name)
		switch {
		case err == nil:
			existing++
			continue
		case !errors.Is(err, apperrors.ErrRoleNotFound):
			return created, existing, fmt.Errorf("error checking role %s: %w", name, err)
		}

		if err := repo.Create(ctx, &model.Role{Name: name}); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateRole) {
				existing++
				continue
			}
			return created, existing, fmt.Errorf("error creating role %s: %w", name, err)
		}
		created++
	}
	return created, existing, nil
}
