package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"socialblog/internal/models"
	"socialblog/internal/schema"
)

type userRepository struct {
	db       *sqlx.DB
	registry *schema.Registry
}

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=120"`
	Firstname string `json:"firstname" validate:"required,max=120"`
	Lastname  string `json:"lastname" validate:"required,max=120"`
	Email     string `json:"email" validate:"required,max=120,email"`
}

type UpdateUserRequest struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username" validate:"required,max=120"`
	Firstname string `json:"firstname" validate:"required,max=120"`
	Lastname  string `json:"lastname" validate:"required,max=120"`
	Email     string `json:"email" validate:"required,max=120,email"`
}

func NewUserRepository(db *sqlx.DB, registry *schema.Registry) UserRepository {
	return &userRepository{db: db, registry: registry}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO "user" (username, firstname, lastname, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, user.Username, user.Firstname, user.Lastname, user.Email).
		Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", translateError(r.registry, err))
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, firstname, lastname, email FROM "user" WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %d: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, firstname, lastname, email FROM "user" WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь %s: %w", username, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по username: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, firstname, lastname, email FROM "user" WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

// GetUsersByIDs returns the users that exist among userIDs, ordered by id.
func (r *userRepository) GetUsersByIDs(ctx context.Context, userIDs []int64) ([]models.User, error) {
	users := []models.User{}
	if len(userIDs) == 0 {
		return users, nil
	}

	query := `SELECT id, username, firstname, lastname, email FROM "user" WHERE id = ANY($1) ORDER BY id`

	err := r.db.SelectContext(ctx, &users, query, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей: %w", err)
	}

	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE "user"
		SET username = $1, firstname = $2, lastname = $3, email = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Firstname, user.Lastname, user.Email, user.ID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении пользователя: %w", translateError(r.registry, err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %d: %w", user.ID, models.ErrNotFound)
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM "user" WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %d: %w", userID, models.ErrNotFound)
	}

	return nil
}
