package test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"socialblog/internal/models"
	"socialblog/internal/repository"
)

func multipartRequest(t *testing.T, path, field, fileName string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAddMediaHandler(t *testing.T) {
	t.Run("Успешное добавление", func(t *testing.T) {
		s := newTestServer()
		s.posts.On("AddMedia", mock.Anything, int64(20), repository.CreateMediaRequest{Type: "video", URL: "http://cdn/b.mp4"}).
			Return(&models.Media{ID: 101, Type: "video", URL: "http://cdn/b.mp4", PostID: 20}, nil)

		rr := s.do(http.MethodPost, "/api/posts/20/media", map[string]string{"type": "video", "url": "http://cdn/b.mp4"})

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":101,"type":"video","url":"http://cdn/b.mp4"}`, rr.Body.String())
	})

	t.Run("Слишком длинный URL", func(t *testing.T) {
		s := newTestServer()
		long := make([]byte, 256)
		for i := range long {
			long[i] = 'u'
		}

		rr := s.do(http.MethodPost, "/api/posts/20/media", map[string]string{"type": "video", "url": string(long)})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "url", decode(t, rr)["field"])
	})
}

func TestUploadMediaHandler(t *testing.T) {
	t.Run("Успешная загрузка", func(t *testing.T) {
		s := newTestServer()
		s.posts.On("UploadMedia", mock.Anything, int64(20), "photo.png", mock.Anything, int64(3)).
			Return(&models.Media{ID: 100, Type: "image", URL: "http://localhost:9000/media/posts/20/x.png", PostID: 20}, nil)

		req := multipartRequest(t, "/api/posts/20/media/upload", "file", "photo.png", []byte("png"))
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "image", decode(t, rr)["type"])
		s.posts.AssertExpectations(t)
	})

	t.Run("Нет файла", func(t *testing.T) {
		s := newTestServer()

		req := multipartRequest(t, "/api/posts/20/media/upload", "image", "photo.png", []byte("png"))
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Файл слишком большой", func(t *testing.T) {
		s := newTestServer()

		req := multipartRequest(t, "/api/posts/20/media/upload", "file", "big.png", make([]byte, 2<<20))
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		s.posts.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Пост не найден", func(t *testing.T) {
		s := newTestServer()
		s.posts.On("UploadMedia", mock.Anything, int64(404), "photo.png", mock.Anything, int64(3)).
			Return(nil, models.ErrNotFound)

		req := multipartRequest(t, "/api/posts/404/media/upload", "file", "photo.png", []byte("png"))
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestMediaHandlers(t *testing.T) {
	s := newTestServer()
	s.posts.On("GetMedia", mock.Anything, int64(100)).
		Return(&models.Media{ID: 100, Type: "image", URL: "http://cdn/a.png", PostID: 20}, nil)
	s.posts.On("MediaURL", mock.Anything, int64(100)).Return("http://signed/a.png", nil)
	s.posts.On("DeleteMedia", mock.Anything, int64(100)).Return(nil)

	rr := s.do(http.MethodGet, "/api/media/100", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":100,"type":"image","url":"http://cdn/a.png"}`, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/media/100/download", nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "http://signed/a.png", rr.Header().Get("Location"))

	rr = s.do(http.MethodDelete, "/api/media/100", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.posts.AssertExpectations(t)
}
