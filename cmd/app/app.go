package app

import (
	"log"

	"socialblog/internal/config"
	"socialblog/internal/database"
	"socialblog/internal/repository"
	"socialblog/internal/schema"
	"socialblog/internal/service"
	"socialblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	registry := schema.NewRegistry()
	repo := repository.NewRepository(db.DB, registry)

	services := service.NewService(repo, minioClient)

	return db, services
}
