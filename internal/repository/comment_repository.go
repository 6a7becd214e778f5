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

type commentRepository struct {
	db       *sqlx.DB
	registry *schema.Registry
}

type CreateCommentRequest struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0,max=2147483647"`
	PostID      int64  `json:"post_id"`
	CommentText string `json:"comment_text" validate:"required,max=255"`
}

func NewCommentRepository(db *sqlx.DB, registry *schema.Registry) CommentRepository {
	return &commentRepository{db: db, registry: registry}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO "comment" (comment_text, user_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, comment.CommentText, comment.UserID, comment.PostID).
		Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", translateError(r.registry, err))
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	query := `SELECT id, comment_text, user_id, post_id FROM "comment" WHERE id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с ID %d: %w", commentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Comment, error) {
	query := `SELECT id, comment_text, user_id, post_id FROM "comment" WHERE user_id = $1 ORDER BY id`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев пользователя: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `SELECT id, comment_text, user_id, post_id FROM "comment" WHERE post_id = $1 ORDER BY id`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев поста: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	query := `DELETE FROM "comment" WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий с ID %d: %w", commentID, models.ErrNotFound)
	}

	return nil
}
