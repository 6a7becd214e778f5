package service

import (
	"context"
	"fmt"

	"socialblog/internal/models"
	"socialblog/internal/repository"
	"socialblog/internal/schema"
)

type FollowerService interface {
	CreateFollower(ctx context.Context, req repository.CreateFollowerRequest) (*models.Follower, error)
	GetFollower(ctx context.Context, followerID int64) (*models.Follower, error)
	AddUser(ctx context.Context, followerID, userID int64) (*models.Follower, error)
	RemoveUser(ctx context.Context, followerID, userID int64) (*models.Follower, error)
	GetUserFollowers(ctx context.Context, userID int64) (*models.User, error)
	DeleteFollower(ctx context.Context, followerID int64) error
}

type followerService struct {
	followerRepo repository.FollowerRepository
	userRepo     repository.UserRepository
}

func NewFollowerService(followerRepo repository.FollowerRepository, userRepo repository.UserRepository) FollowerService {
	return &followerService{
		followerRepo: followerRepo,
		userRepo:     userRepo,
	}
}

func (s *followerService) CreateFollower(ctx context.Context, req repository.CreateFollowerRequest) (*models.Follower, error) {
	ids := uniqueIDs(req.UserIDs)

	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if missing := missingIDs(ids, users); len(missing) > 0 {
		return nil, fmt.Errorf("пользователи %v: %w", missing, &models.ConstraintError{
			Table:  schema.TableFollowerUser,
			Column: "user_from",
			Err:    models.ErrDanglingReference,
		})
	}

	follower := &models.Follower{Users: users}
	if err := s.followerRepo.Create(ctx, follower); err != nil {
		return nil, err
	}

	return follower, nil
}

func (s *followerService) GetFollower(ctx context.Context, followerID int64) (*models.Follower, error) {
	return s.followerRepo.GetByID(ctx, followerID)
}

func (s *followerService) AddUser(ctx context.Context, followerID, userID int64) (*models.Follower, error) {
	if _, err := s.followerRepo.GetByID(ctx, followerID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.followerRepo.AddUser(ctx, followerID, userID); err != nil {
		return nil, err
	}

	return s.followerRepo.GetByID(ctx, followerID)
}

func (s *followerService) RemoveUser(ctx context.Context, followerID, userID int64) (*models.Follower, error) {
	if err := s.followerRepo.RemoveUser(ctx, followerID, userID); err != nil {
		return nil, err
	}

	return s.followerRepo.GetByID(ctx, followerID)
}

// GetUserFollowers loads the user with the followers it takes part in, members loaded.
func (s *followerService) GetUserFollowers(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range followers {
		users, err := s.followerRepo.GetUsers(ctx, followers[i].ID)
		if err != nil {
			return nil, err
		}
		followers[i].Users = users
	}
	user.Followers = followers

	return user, nil
}

func (s *followerService) DeleteFollower(ctx context.Context, followerID int64) error {
	return s.followerRepo.Delete(ctx, followerID)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func missingIDs(ids []int64, users []models.User) []int64 {
	found := make(map[int64]bool, len(users))
	for _, u := range users {
		found[u.ID] = true
	}

	var missing []int64
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
