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

type PostRepositoryImpl struct {
	DB       *sqlx.DB
	registry *schema.Registry
}

type CreatePostRequest struct {
	UserID int64                `json:"user_id" validate:"required,gt=0,max=2147483647"`
	Media  []CreateMediaRequest `json:"media" validate:"dive"`
}

type CreateMediaRequest struct {
	Type string `json:"type" validate:"required,max=120"`
	URL  string `json:"url" validate:"required,max=255"`
}

func NewPostRepository(db *sqlx.DB, registry *schema.Registry) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db, registry: registry}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `INSERT INTO "post" (user_id) VALUES ($1) RETURNING id`

	err := r.DB.QueryRowxContext(ctx, query, post.UserID).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", translateError(r.registry, err))
	}

	return nil
}

// CreateWithMedia stores the post and its media in one transaction and fills
// in the generated ids.
func (r *PostRepositoryImpl) CreateWithMedia(ctx context.Context, post *models.Post, media []models.Media) error {
	postQuery := `INSERT INTO "post" (user_id) VALUES ($1) RETURNING id`
	mediaQuery := `INSERT INTO "media" (type, url, post_id) VALUES ($1, $2, $3) RETURNING id`

	err := withTx(ctx, r.DB, "create post with media", func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, postQuery, post.UserID).Scan(&post.ID); err != nil {
			return fmt.Errorf("ошибка при создании поста: %w", translateError(r.registry, err))
		}

		for i := range media {
			media[i].PostID = post.ID
			err := tx.QueryRowxContext(ctx, mediaQuery, media[i].Type, media[i].URL, media[i].PostID).
				Scan(&media[i].ID)
			if err != nil {
				return fmt.Errorf("ошибка при создании медиа: %w", translateError(r.registry, err))
			}
		}

		return nil
	})
	if err != nil {
		post.ID = 0
		return err
	}

	post.Media = media
	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT id, user_id FROM "post" WHERE id = $1`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	query := `SELECT id, user_id FROM "post" WHERE user_id = $1 ORDER BY id`

	posts := []models.Post{}
	err := r.DB.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

// Delete removes the post; its comments and media go with it.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM "post" WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, models.ErrNotFound)
	}

	return nil
}
