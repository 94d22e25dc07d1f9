package repository

import (
	"context"
	"errors"
	"fmt"

	"moviebooking/internal/data/entity"
	"moviebooking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindByName(ctx context.Context, name entity.UserRole) (*entity.Role, error)
}

type roleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoleRepository(db database.PgxIface, log *zap.Logger) RoleRepository {
	return &roleRepository{
		db:  db,
		log: log.With(zap.String("repository", "role")),
	}
}

// Create is a no-op when a role with the same name already exists.
func (r *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, role.ID, role.Name, role.CreatedAt); err != nil {
		r.log.Error("Failed to create role", zap.Error(err), zap.String("role", string(role.Name)))
		return fmt.Errorf("create role %s: %w", role.Name, err)
	}

	return nil
}

func (r *roleRepository) FindByName(ctx context.Context, name entity.UserRole) (*entity.Role, error) {
	query := `SELECT id, name, created_at FROM roles WHERE name = $1`

	var role entity.Role
	err := r.db.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find role", zap.Error(err), zap.String("role", string(name)))
		return nil, fmt.Errorf("find role %s: %w", name, err)
	}

	return &role, nil
}
