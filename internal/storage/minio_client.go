package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"socialblog/internal/config"
)

// Media kinds stored in media.type.
const (
	KindImage = "image"
	KindVideo = "video"
	KindAudio = "audio"
	KindFile  = "file"
)

type Storage interface {
	UploadMedia(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*Object, error)
	DeleteMedia(ctx context.Context, objectName string) error
	ObjectName(mediaURL string) (string, bool)
	PresignedURL(ctx context.Context, objectName string) (string, error)
}

// Object describes a stored upload.
type Object struct {
	Name        string
	URL         string
	ContentType string
	Kind        string
}

type MinIOClient struct {
	client *minio.Client
	cfg    config.MinIO
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	m := &MinIOClient{client: client, cfg: cfg.MinIO}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := m.ensureBucket(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.BucketName)
	if err != nil {
		return fmt.Errorf("ошибка проверки бакета %s: %w", m.cfg.BucketName, err)
	}
	if exists {
		return nil
	}

	err = m.client.MakeBucket(ctx, m.cfg.BucketName, minio.MakeBucketOptions{Region: m.cfg.Region})
	if err != nil {
		return fmt.Errorf("ошибка создания бакета %s: %w", m.cfg.BucketName, err)
	}
	log.Printf("Создан бакет MinIO: %s", m.cfg.BucketName)

	return nil
}

func (m *MinIOClient) UploadMedia(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*Object, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	contentType := ContentType(fileName)

	now := time.Now()
	objectName := ObjectPath(postID, now, uuid.New().String()+fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"post-id":           strconv.FormatInt(postID, 10),
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return &Object{
		Name:        objectName,
		URL:         PublicURL(m.cfg.PublicURL, m.cfg.BucketName, objectName),
		ContentType: contentType,
		Kind:        MediaKind(contentType),
	}, nil
}

func (m *MinIOClient) DeleteMedia(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

// ObjectName reports the object behind a URL produced by UploadMedia. URLs
// pointing elsewhere are not ours to delete.
func (m *MinIOClient) ObjectName(mediaURL string) (string, bool) {
	return ParseObjectName(m.cfg.PublicURL, m.cfg.BucketName, mediaURL)
}

func (m *MinIOClient) PresignedURL(ctx context.Context, objectName string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.cfg.BucketName, objectName, m.cfg.URLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("ошибка генерации ссылки MinIO: %w", err)
	}
	return u.String(), nil
}

// ObjectPath lays objects out as posts/<post>/<yyyy>/<mm>/<name>.
func ObjectPath(postID int64, at time.Time, name string) string {
	return fmt.Sprintf("posts/%d/%d/%02d/%s", postID, at.Year(), at.Month(), name)
}

func PublicURL(base, bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), bucket, objectName)
}

func ParseObjectName(base, bucket, mediaURL string) (string, bool) {
	prefix := strings.TrimSuffix(base, "/") + "/" + bucket + "/"
	if !strings.HasPrefix(mediaURL, prefix) {
		return "", false
	}

	name := strings.TrimPrefix(mediaURL, prefix)
	if name == "" {
		return "", false
	}
	return name, true
}

func ContentType(fileName string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}

// MediaKind maps a MIME type to the value kept in media.type.
func MediaKind(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return KindImage
	case strings.HasPrefix(contentType, "video/"):
		return KindVideo
	case strings.HasPrefix(contentType, "audio/"):
		return KindAudio
	default:
		return KindFile
	}
}
