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

type MediaRepositoryImpl struct {
	db       *sqlx.DB
	registry *schema.Registry
}

func NewMediaRepository(db *sqlx.DB, registry *schema.Registry) *MediaRepositoryImpl {
	return &MediaRepositoryImpl{db: db, registry: registry}
}

func (r *MediaRepositoryImpl) Create(ctx context.Context, media *models.Media) error {
	query := `
		INSERT INTO "media" (type, url, post_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, media.Type, media.URL, media.PostID).Scan(&media.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании медиа: %w", translateError(r.registry, err))
	}

	return nil
}

func (r *MediaRepositoryImpl) GetByID(ctx context.Context, mediaID int64) (*models.Media, error) {
	query := `SELECT id, type, url, post_id FROM "media" WHERE id = $1`

	var media models.Media
	err := r.db.GetContext(ctx, &media, query, mediaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("медиа с ID %d: %w", mediaID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения медиа: %w", err)
	}

	return &media, nil
}

func (r *MediaRepositoryImpl) GetByPostID(ctx context.Context, postID int64) ([]models.Media, error) {
	query := `SELECT id, type, url, post_id FROM "media" WHERE post_id = $1 ORDER BY id`

	media := []models.Media{}
	err := r.db.SelectContext(ctx, &media, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении медиа поста: %w", err)
	}

	return media, nil
}

func (r *MediaRepositoryImpl) Delete(ctx context.Context, mediaID int64) error {
	query := `DELETE FROM "media" WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, mediaID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении медиа: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("медиа с ID %d: %w", mediaID, models.ErrNotFound)
	}

	return nil
}
