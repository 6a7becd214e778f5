package handlers

import (
	"net/http"

	"socialblog/internal/repository"
)

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req repository.CreateUserRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, user.Serialize(), http.StatusCreated)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, user.Serialize(), http.StatusOK)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	var req repository.UpdateUserRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	req.UserID = userID

	user, err := h.UserService.UpdateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, user.Serialize(), http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь удален"}, http.StatusOK)
}

func (h *Handlers) GetUserFollowers(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	user, err := h.FollowerService.GetUserFollowers(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]FollowerResponse, 0, len(user.Followers))
	for i := range user.Followers {
		response = append(response, newFollowerResponse(&user.Followers[i]))
	}

	WriteSuccess(w, response, http.StatusOK)
}
