package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gondola-rental/internal/domain"
)

type UserRepository interface {
	ListWithPreferences(ctx context.Context) ([]domain.UserWithPreferences, error)
	GetWithPreferences(ctx context.Context, id uuid.UUID) (*domain.UserWithPreferences, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userWithPreferencesColumns = `u.id, u.email, u.name, p.preferences`

func (r *userRepository) ListWithPreferences(ctx context.Context) ([]domain.UserWithPreferences, error) {
	var users []domain.UserWithPreferences
	query := `
		SELECT ` + userWithPreferencesColumns + `
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.email <> ''
		ORDER BY u.created_at ASC`

	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetWithPreferences(ctx context.Context, id uuid.UUID) (*domain.UserWithPreferences, error) {
	var user domain.UserWithPreferences
	query := `
		SELECT ` + userWithPreferencesColumns + `
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
