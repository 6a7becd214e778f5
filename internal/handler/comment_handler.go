package handlers

import (
	"net/http"

	"socialblog/internal/repository"
)

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req repository.CreateCommentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	req.PostID = postID

	comment, err := h.CommentService.AddComment(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment.Serialize(), http.StatusCreated)
}

func (h *Handlers) ListPostComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListPostComments(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]map[string]any, 0, len(comments))
	for i := range comments {
		response = append(response, comments[i].Serialize())
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID комментария", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.GetComment(r.Context(), commentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment.Serialize(), http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID комментария", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), commentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Комментарий удален"}, http.StatusOK)
}
