package service

import (
	"context"
	"errors"

	"socialblog/internal/models"
	"socialblog/internal/repository"
	"socialblog/internal/schema"
)

type UserService interface {
	CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateUser(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (s *userService) CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, user); err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	user.Comments = []models.Comment{}
	user.Posts = []models.Post{}

	return user, nil
}

// GetUser loads the user together with the comments and posts it owns.
func (s *userService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Comments = comments
	user.Posts = posts

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error) {
	// get user by id
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.Firstname = req.Firstname
	user.Lastname = req.Lastname
	user.Email = req.Email

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, user); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.GetUser(ctx, user.ID)
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

// checkUnique rejects a username or email held by another user. The unique
// constraints still guard concurrent writers.
func (s *userService) checkUnique(ctx context.Context, user *models.User) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, user.Username)
	if err := uniqueViolation(existing, err, user.ID, "username"); err != nil {
		return err
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, user.Email)
	return uniqueViolation(existing, err, user.ID, "email")
}

func uniqueViolation(existing *models.User, lookupErr error, selfID int64, column string) error {
	if lookupErr != nil {
		if errors.Is(lookupErr, models.ErrNotFound) {
			return nil
		}
		return lookupErr
	}

	if existing != nil && existing.ID != selfID {
		return &models.ConstraintError{Table: schema.TableUser, Column: column, Err: models.ErrDuplicate}
	}

	return nil
}
