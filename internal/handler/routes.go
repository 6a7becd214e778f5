package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", h.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id:[0-9]+}", h.DeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id:[0-9]+}/followers", h.GetUserFollowers).Methods(http.MethodGet)

	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", h.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id:[0-9]+}/comments", h.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/comments", h.ListPostComments).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}/media", h.AddMedia).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/media/upload", h.UploadMedia).Methods(http.MethodPost)

	api.HandleFunc("/comments/{id:[0-9]+}", h.GetComment).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id:[0-9]+}", h.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/media/{id:[0-9]+}", h.GetMedia).Methods(http.MethodGet)
	api.HandleFunc("/media/{id:[0-9]+}/download", h.DownloadMedia).Methods(http.MethodGet)
	api.HandleFunc("/media/{id:[0-9]+}", h.DeleteMedia).Methods(http.MethodDelete)

	api.HandleFunc("/followers", h.CreateFollower).Methods(http.MethodPost)
	api.HandleFunc("/followers/{id:[0-9]+}", h.GetFollower).Methods(http.MethodGet)
	api.HandleFunc("/followers/{id:[0-9]+}", h.DeleteFollower).Methods(http.MethodDelete)
	api.HandleFunc("/followers/{id:[0-9]+}/users/{userID:[0-9]+}", h.AddFollowerUser).Methods(http.MethodPut)
	api.HandleFunc("/followers/{id:[0-9]+}/users/{userID:[0-9]+}", h.RemoveFollowerUser).Methods(http.MethodDelete)

	// only the root router gets fallbacks: a subrouter with its own
	// NotFoundHandler answers 404 where the root would report 405
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Не найдено", http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
}
