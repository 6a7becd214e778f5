package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"socialblog/internal/models"
	"socialblog/internal/repository"
)

func TestFollowerService_CreateFollower(t *testing.T) {
	ctx := context.Background()
	users := []models.User{{ID: 1, Username: "ana"}, {ID: 2, Username: "bob"}}

	t.Run("Создание с участниками", func(t *testing.T) {
		followerRepo := new(MockFollowerRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowerService(followerRepo, userRepo)

		userRepo.On("GetUsersByIDs", ctx, []int64{1, 2}).Return(users, nil)
		followerRepo.On("Create", ctx, &models.Follower{Users: users}).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Follower).ID = 7
			}).
			Return(nil)

		follower, err := svc.CreateFollower(ctx, repository.CreateFollowerRequest{UserIDs: []int64{1, 2, 1}})

		require.NoError(t, err)
		assert.Equal(t, int64(7), follower.ID)
		assert.Equal(t, []int64{1, 2}, follower.UserIDs())
	})

	t.Run("Несуществующий пользователь", func(t *testing.T) {
		followerRepo := new(MockFollowerRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowerService(followerRepo, userRepo)

		userRepo.On("GetUsersByIDs", ctx, []int64{1, 404}).Return(users[:1], nil)

		_, err := svc.CreateFollower(ctx, repository.CreateFollowerRequest{UserIDs: []int64{1, 404}})

		assert.ErrorIs(t, err, models.ErrDanglingReference)
		assert.Contains(t, err.Error(), "404")
		followerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFollowerService_AddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Добавление участника", func(t *testing.T) {
		followerRepo := new(MockFollowerRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowerService(followerRepo, userRepo)

		followerRepo.On("GetByID", ctx, int64(7)).Return(&models.Follower{ID: 7}, nil).Once()
		userRepo.On("GetUserByID", ctx, int64(3)).Return(&models.User{ID: 3}, nil)
		followerRepo.On("AddUser", ctx, int64(7), int64(3)).Return(nil)
		followerRepo.On("GetByID", ctx, int64(7)).Return(&models.Follower{ID: 7, Users: []models.User{{ID: 3}}}, nil).Once()

		follower, err := svc.AddUser(ctx, 7, 3)

		require.NoError(t, err)
		assert.Equal(t, []int64{3}, follower.UserIDs())
		followerRepo.AssertExpectations(t)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		followerRepo := new(MockFollowerRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowerService(followerRepo, userRepo)

		followerRepo.On("GetByID", ctx, int64(7)).Return(&models.Follower{ID: 7}, nil)
		userRepo.On("GetUserByID", ctx, int64(3)).Return(nil, models.ErrNotFound)

		_, err := svc.AddUser(ctx, 7, 3)

		assert.ErrorIs(t, err, models.ErrNotFound)
		followerRepo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFollowerService_RemoveUser(t *testing.T) {
	ctx := context.Background()
	followerRepo := new(MockFollowerRepository)
	svc := NewFollowerService(followerRepo, new(MockUserRepository))

	followerRepo.On("RemoveUser", ctx, int64(7), int64(3)).Return(nil)
	followerRepo.On("GetByID", ctx, int64(7)).Return(&models.Follower{ID: 7, Users: []models.User{}}, nil)

	follower, err := svc.RemoveUser(ctx, 7, 3)

	require.NoError(t, err)
	assert.Empty(t, follower.UserIDs())
}

func TestFollowerService_GetUserFollowers(t *testing.T) {
	ctx := context.Background()

	t.Run("Подписчики пользователя с участниками", func(t *testing.T) {
		followerRepo := new(MockFollowerRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowerService(followerRepo, userRepo)

		userRepo.On("GetUserByID", ctx, int64(1)).Return(&models.User{ID: 1}, nil)
		followerRepo.On("GetByUserID", ctx, int64(1)).Return([]models.Follower{{ID: 7}, {ID: 9}}, nil)
		followerRepo.On("GetUsers", ctx, int64(7)).Return([]models.User{{ID: 1}, {ID: 2}}, nil)
		followerRepo.On("GetUsers", ctx, int64(9)).Return([]models.User{{ID: 1}}, nil)

		user, err := svc.GetUserFollowers(ctx, 1)

		require.NoError(t, err)
		require.Len(t, user.Followers, 2)
		assert.Equal(t, []int64{1, 2}, user.Followers[0].UserIDs())
		assert.Equal(t, []int64{1}, user.Followers[1].UserIDs())
	})

	t.Run("Ошибка загрузки участников", func(t *testing.T) {
		followerRepo := new(MockFollowerRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowerService(followerRepo, userRepo)

		userRepo.On("GetUserByID", ctx, int64(1)).Return(&models.User{ID: 1}, nil)
		followerRepo.On("GetByUserID", ctx, int64(1)).Return([]models.Follower{{ID: 7}}, nil)
		followerRepo.On("GetUsers", ctx, int64(7)).Return(nil, errors.New("db down"))

		_, err := svc.GetUserFollowers(ctx, 1)

		assert.Error(t, err)
	})
}

func TestFollowerService_DeleteFollower(t *testing.T) {
	ctx := context.Background()
	followerRepo := new(MockFollowerRepository)
	svc := NewFollowerService(followerRepo, new(MockUserRepository))

	followerRepo.On("Delete", ctx, int64(7)).Return(nil)

	assert.NoError(t, svc.DeleteFollower(ctx, 7))
	followerRepo.AssertExpectations(t)
}
