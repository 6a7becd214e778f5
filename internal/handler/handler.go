package handlers

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"socialblog/internal/config"
	"socialblog/internal/service"
)

type Handlers struct {
	UserService     service.UserService
	PostService     service.PostService
	CommentService  service.CommentService
	FollowerService service.FollowerService
	TablesService   service.TablesService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:     service.User,
		PostService:     service.Post,
		CommentService:  service.Comment,
		FollowerService: service.Follower,
		TablesService:   service.Tables,
		Cfg:             config,
		Validate:        NewValidator(),
	}
}

// NewValidator reports request fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, MessageResponse{Message: "socialblog API"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
