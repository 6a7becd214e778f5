package service

import (
	"context"

	"socialblog/internal/repository"
)

type TablesStatus struct {
	CountTables   int      `json:"countTables"`
	MissingTables []string `json:"missingTables"`
}

type TablesService interface {
	GetTablesStatus(ctx context.Context) (*TablesStatus, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) GetTablesStatus(ctx context.Context) (*TablesStatus, error) {
	count, err := t.tablesRepo.CountTablesDB(ctx)
	if err != nil {
		return nil, err
	}

	missing, err := t.tablesRepo.MissingTables(ctx)
	if err != nil {
		return nil, err
	}

	return &TablesStatus{CountTables: count, MissingTables: missing}, nil
}
