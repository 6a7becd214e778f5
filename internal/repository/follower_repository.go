package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialblog/internal/models"
	"socialblog/internal/schema"
)

// followerRepository keeps the two-hop shape of the schema: users are linked
// to a follower row through follower_user(user_from -> user.id, user_to -> follower.id).
type followerRepository struct {
	db       *sqlx.DB
	registry *schema.Registry
}

type CreateFollowerRequest struct {
	UserIDs []int64 `json:"user_ids" validate:"dive,gt=0,max=2147483647"`
}

func NewFollowerRepository(db *sqlx.DB, registry *schema.Registry) FollowerRepository {
	return &followerRepository{db: db, registry: registry}
}

// Create stores the follower and links every user already in follower.Users.
func (r *followerRepository) Create(ctx context.Context, follower *models.Follower) error {
	followerQuery := `INSERT INTO "follower" DEFAULT VALUES RETURNING id`
	edgeQuery := `INSERT INTO "follower_user" (user_from, user_to) VALUES ($1, $2)`

	err := withTx(ctx, r.db, "create follower", func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, followerQuery).Scan(&follower.ID); err != nil {
			return fmt.Errorf("ошибка при создании подписчика: %w", err)
		}

		for _, user := range follower.Users {
			if _, err := tx.ExecContext(ctx, edgeQuery, user.ID, follower.ID); err != nil {
				return fmt.Errorf("ошибка при добавлении пользователя %d: %w", user.ID, translateError(r.registry, err))
			}
		}

		return nil
	})
	if err != nil {
		follower.ID = 0
		return err
	}

	return nil
}

func (r *followerRepository) GetByID(ctx context.Context, followerID int64) (*models.Follower, error) {
	query := `SELECT id FROM "follower" WHERE id = $1`

	var follower models.Follower
	err := r.db.GetContext(ctx, &follower, query, followerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("подписчик с ID %d: %w", followerID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении подписчика: %w", err)
	}

	users, err := r.GetUsers(ctx, followerID)
	if err != nil {
		return nil, err
	}
	follower.Users = users

	return &follower, nil
}

// GetByUserID returns the followers the user is linked to, without their members.
func (r *followerRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Follower, error) {
	query := `
		SELECT f.id
		FROM "follower" f
		JOIN "follower_user" fu ON fu.user_to = f.id
		WHERE fu.user_from = $1
		ORDER BY f.id
	`

	followers := []models.Follower{}
	err := r.db.SelectContext(ctx, &followers, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписчиков пользователя: %w", err)
	}

	return followers, nil
}

func (r *followerRepository) GetUsers(ctx context.Context, followerID int64) ([]models.User, error) {
	query := `
		SELECT u.id, u.username, u.firstname, u.lastname, u.email
		FROM "user" u
		JOIN "follower_user" fu ON fu.user_from = u.id
		WHERE fu.user_to = $1
		ORDER BY u.id
	`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей подписчика: %w", err)
	}

	return users, nil
}

func (r *followerRepository) AddUser(ctx context.Context, followerID, userID int64) error {
	query := `INSERT INTO "follower_user" (user_from, user_to) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, userID, followerID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении пользователя к подписчику: %w", translateError(r.registry, err))
	}

	return nil
}

func (r *followerRepository) RemoveUser(ctx context.Context, followerID, userID int64) error {
	query := `DELETE FROM "follower_user" WHERE user_from = $1 AND user_to = $2`

	result, err := r.db.ExecContext(ctx, query, userID, followerID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя из подписчика: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("связь %d -> %d: %w", userID, followerID, models.ErrNotFound)
	}

	return nil
}

func (r *followerRepository) Delete(ctx context.Context, followerID int64) error {
	query := `DELETE FROM "follower" WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, followerID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписчика: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("подписчик с ID %d: %w", followerID, models.ErrNotFound)
	}

	return nil
}
