package handlers

import (
	"net/http"

	"socialblog/internal/models"
	"socialblog/internal/repository"
)

// FollowerResponse is the wire shape of a follower and its members.
type FollowerResponse struct {
	ID      int64   `json:"id"`
	UserIDs []int64 `json:"user_ids"`
}

func newFollowerResponse(f *models.Follower) FollowerResponse {
	return FollowerResponse{ID: f.ID, UserIDs: f.UserIDs()}
}

func (h *Handlers) CreateFollower(w http.ResponseWriter, r *http.Request) {
	var req repository.CreateFollowerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	follower, err := h.FollowerService.CreateFollower(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, newFollowerResponse(follower), http.StatusCreated)
}

func (h *Handlers) GetFollower(w http.ResponseWriter, r *http.Request) {
	followerID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID подписчика", http.StatusBadRequest)
		return
	}

	follower, err := h.FollowerService.GetFollower(r.Context(), followerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, newFollowerResponse(follower), http.StatusOK)
}

func (h *Handlers) DeleteFollower(w http.ResponseWriter, r *http.Request) {
	followerID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID подписчика", http.StatusBadRequest)
		return
	}

	if err := h.FollowerService.DeleteFollower(r.Context(), followerID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Подписчик удален"}, http.StatusOK)
}

func (h *Handlers) AddFollowerUser(w http.ResponseWriter, r *http.Request) {
	followerID, userID, ok := followerUserIDs(w, r)
	if !ok {
		return
	}

	follower, err := h.FollowerService.AddUser(r.Context(), followerID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, newFollowerResponse(follower), http.StatusOK)
}

func (h *Handlers) RemoveFollowerUser(w http.ResponseWriter, r *http.Request) {
	followerID, userID, ok := followerUserIDs(w, r)
	if !ok {
		return
	}

	follower, err := h.FollowerService.RemoveUser(r.Context(), followerID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, newFollowerResponse(follower), http.StatusOK)
}

func followerUserIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	followerID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID подписчика", http.StatusBadRequest)
		return 0, 0, false
	}

	userID, ok := pathID(r, "userID")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return 0, 0, false
	}

	return followerID, userID, true
}
