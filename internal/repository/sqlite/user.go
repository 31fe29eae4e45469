package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
	apperrors "github.com/medicore/hms-api/pkg/errors"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := r.db.Rebind(`SELECT id, username, password FROM users WHERE username = ?`)

	var user model.User
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("user", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (int64, error) {
	query := `INSERT INTO users (username, password) VALUES (?, ?)`
	return insertReturningID(ctx, r.db, query, user.Username, user.Password)
}
