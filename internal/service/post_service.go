package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"socialblog/internal/models"
	"socialblog/internal/repository"
	"socialblog/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	AddMedia(ctx context.Context, postID int64, req repository.CreateMediaRequest) (*models.Media, error)
	UploadMedia(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Media, error)
	GetMedia(ctx context.Context, mediaID int64) (*models.Media, error)
	MediaURL(ctx context.Context, mediaID int64) (string, error)
	DeleteMedia(ctx context.Context, mediaID int64) error
}

type postService struct {
	postRepo  repository.PostRepository
	mediaRepo repository.MediaRepository
	userRepo  repository.UserRepository
	storage   storage.Storage
}

func NewPostService(
	postRepo repository.PostRepository,
	mediaRepo repository.MediaRepository,
	userRepo repository.UserRepository,
	storage storage.Storage,
) PostService {
	return &postService{
		postRepo:  postRepo,
		mediaRepo: mediaRepo,
		userRepo:  userRepo,
		storage:   storage,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{UserID: req.UserID}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	media := make([]models.Media, 0, len(req.Media))
	for _, m := range req.Media {
		item := models.Media{Type: m.Type, URL: m.URL}
		if err := validateMediaFields(&item); err != nil {
			return nil, err
		}
		media = append(media, item)
	}

	if len(media) == 0 {
		if err := p.postRepo.Create(ctx, post); err != nil {
			return nil, err
		}
		post.Comments = []models.Comment{}
		post.Media = []models.Media{}
		return post, nil
	}

	if err := p.postRepo.CreateWithMedia(ctx, post, media); err != nil {
		return nil, err
	}
	post.Comments = []models.Comment{}

	return post, nil
}

// GetPost loads the post with its media. A post whose author is gone is
// reported as an integrity error, not as a missing post.
func (p *postService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if _, err := p.userRepo.GetUserByID(ctx, post.UserID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("автор поста %d (пользователь %d) отсутствует: %w", post.ID, post.UserID, models.ErrIntegrity)
		}
		return nil, err
	}

	media, err := p.mediaRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Media = media

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	media, err := p.mediaRepo.GetByPostID(ctx, postID)
	if err != nil {
		return err
	}

	// the rows go with the post, the objects are removed afterwards
	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	for _, m := range media {
		p.removeObject(ctx, m.URL)
	}

	return nil
}

func (p *postService) AddMedia(ctx context.Context, postID int64, req repository.CreateMediaRequest) (*models.Media, error) {
	media := &models.Media{Type: req.Type, URL: req.URL, PostID: postID}
	if err := media.Validate(); err != nil {
		return nil, err
	}

	if err := p.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}

	return media, nil
}

func (p *postService) UploadMedia(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Media, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	obj, err := p.storage.UploadMedia(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки медиа в MinIO: %w", err)
	}

	media := &models.Media{Type: obj.Kind, URL: obj.URL, PostID: postID}

	err = media.Validate()
	if err == nil {
		err = p.mediaRepo.Create(ctx, media)
	}
	if err != nil {
		if delErr := p.storage.DeleteMedia(ctx, obj.Name); delErr != nil {
			log.Printf("Предупреждение: не удалось удалить %s из MinIO: %v", obj.Name, delErr)
		}
		return nil, fmt.Errorf("ошибка сохранения медиа в БД: %w", err)
	}

	return media, nil
}

func (p *postService) GetMedia(ctx context.Context, mediaID int64) (*models.Media, error) {
	return p.mediaRepo.GetByID(ctx, mediaID)
}

// MediaURL returns a time-limited link for uploaded objects and the stored
// URL for anything hosted elsewhere.
func (p *postService) MediaURL(ctx context.Context, mediaID int64) (string, error) {
	media, err := p.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return "", err
	}

	objectName, ok := p.storage.ObjectName(media.URL)
	if !ok {
		return media.URL, nil
	}

	return p.storage.PresignedURL(ctx, objectName)
}

func (p *postService) DeleteMedia(ctx context.Context, mediaID int64) error {
	media, err := p.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return err
	}

	if err := p.mediaRepo.Delete(ctx, mediaID); err != nil {
		return fmt.Errorf("ошибка удаления из БД: %w", err)
	}

	p.removeObject(ctx, media.URL)

	return nil
}

func (p *postService) removeObject(ctx context.Context, mediaURL string) {
	objectName, ok := p.storage.ObjectName(mediaURL)
	if !ok {
		return
	}

	if err := p.storage.DeleteMedia(ctx, objectName); err != nil {
		log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
	}
}

// validateMediaFields checks a media item before its post id is known.
func validateMediaFields(m *models.Media) error {
	probe := *m
	probe.PostID = 1
	return probe.Validate()
}
