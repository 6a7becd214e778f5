package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"socialblog/internal/repository"
)

func (h *Handlers) AddMedia(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req repository.CreateMediaRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	media, err := h.PostService.AddMedia(r.Context(), postID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, media.Serialize(), http.StatusCreated)
}

func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusRequestEntityTooLarge)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	media, err := h.PostService.UploadMedia(r.Context(), postID, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, media.Serialize(), http.StatusCreated)
}

func (h *Handlers) GetMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID медиа", http.StatusBadRequest)
		return
	}

	media, err := h.PostService.GetMedia(r.Context(), mediaID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, media.Serialize(), http.StatusOK)
}

// DownloadMedia redirects to a link the client can fetch the object from.
func (h *Handlers) DownloadMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID медиа", http.StatusBadRequest)
		return
	}

	link, err := h.PostService.MediaURL(r.Context(), mediaID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	http.Redirect(w, r, link, http.StatusFound)
}

func (h *Handlers) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID медиа", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeleteMedia(r.Context(), mediaID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Медиа удалено"}, http.StatusOK)
}
