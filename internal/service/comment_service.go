package service

import (
	"context"
	"errors"
	"fmt"

	"socialblog/internal/models"
	"socialblog/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	GetComment(ctx context.Context, commentID int64) (*models.Comment, error)
	ListPostComments(ctx context.Context, postID int64) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment rejects a comment without a post before it reaches storage.
func (s *commentService) AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		CommentText: req.CommentText,
		UserID:      req.UserID,
		PostID:      req.PostID,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetComment(ctx context.Context, commentID int64) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, comment.PostID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("пост %d комментария %d отсутствует: %w", comment.PostID, comment.ID, models.ErrIntegrity)
		}
		return nil, err
	}

	return comment, nil
}

func (s *commentService) ListPostComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByPostID(ctx, postID)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	return s.commentRepo.Delete(ctx, commentID)
}
