package service

import (
	"socialblog/internal/repository"
	"socialblog/internal/storage"
)

type Service struct {
	User     UserService
	Post     PostService
	Comment  CommentService
	Follower FollowerService
	Tables   TablesService
}

func NewService(rep *repository.Repository, storage storage.Storage) *Service {
	return &Service{
		User:     NewUserService(rep.User, rep.Post, rep.Comment),
		Post:     NewPostService(rep.Post, rep.Media, rep.User, storage),
		Comment:  NewCommentService(rep.Comment, rep.Post),
		Follower: NewFollowerService(rep.Follower, rep.User),
		Tables:   NewTablesService(rep.Tables),
	}
}
