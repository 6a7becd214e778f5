package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/jmoiron/sqlx"
)

func withTx(ctx context.Context, db *sqlx.DB, reason string, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции (%s): %w", reason, err)
	}

	var committed bool

	defer func() {
		if p := recover(); p != nil {
			log.Printf("паника в транзакции (%s): %v\n%s", reason, p, debug.Stack())
			tx.Rollback()
			panic(p)
		}

		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Printf("ошибка отката транзакции (%s): %v", reason, rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции (%s): %w", reason, err)
	}
	committed = true

	return nil
}
