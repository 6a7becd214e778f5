package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"socialblog/internal/schema"
)

type tablesRepository struct {
	db       *sqlx.DB
	registry *schema.Registry
}

func NewTablesRepository(db *sqlx.DB, registry *schema.Registry) TablesRepository {
	return &tablesRepository{db: db, registry: registry}
}

func (r *tablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
		`)

	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте таблиц базы данных: %w", err)
	}

	return count, nil
}

// MissingTables lists the registry tables that do not exist in the database.
func (r *tablesRepository) MissingTables(ctx context.Context) ([]string, error) {
	expected := r.registry.TableNames()

	var existing []string
	err := r.db.SelectContext(ctx, &existing, `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = ANY($1)
		`, pq.Array(expected))
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке таблиц базы данных: %w", err)
	}

	found := make(map[string]bool, len(existing))
	for _, name := range existing {
		found[name] = true
	}

	missing := []string{}
	for _, name := range expected {
		if !found[name] {
			missing = append(missing, name)
		}
	}

	return missing, nil
}
