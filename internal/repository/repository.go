package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"socialblog/internal/models"
	"socialblog/internal/schema"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []int64) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	CreateWithMedia(ctx context.Context, post *models.Post, media []models.Media) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)
	Delete(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, mediaID int64) (*models.Media, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Media, error)
	Delete(ctx context.Context, mediaID int64) error
}

type FollowerRepository interface {
	Create(ctx context.Context, follower *models.Follower) error
	GetByID(ctx context.Context, followerID int64) (*models.Follower, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Follower, error)
	GetUsers(ctx context.Context, followerID int64) ([]models.User, error)
	AddUser(ctx context.Context, followerID, userID int64) error
	RemoveUser(ctx context.Context, followerID, userID int64) error
	Delete(ctx context.Context, followerID int64) error
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
	MissingTables(ctx context.Context) ([]string, error)
}

type Repository struct {
	User     UserRepository
	Post     PostRepository
	Comment  CommentRepository
	Media    MediaRepository
	Follower FollowerRepository
	Tables   TablesRepository
}

func NewRepository(db *sqlx.DB, registry *schema.Registry) *Repository {
	return &Repository{
		User:     NewUserRepository(db, registry),
		Post:     NewPostRepository(db, registry),
		Comment:  NewCommentRepository(db, registry),
		Media:    NewMediaRepository(db, registry),
		Follower: NewFollowerRepository(db, registry),
		Tables:   NewTablesRepository(db, registry),
	}
}
