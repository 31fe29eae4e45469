package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/medicore/hms-api/pkg/errors"
)

// withTx runs fn inside a transaction; any error rolls back so a failed
// operation commits nothing.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Storage(err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// isDigits reports whether s is one or more ASCII digits. The resolve
// convention treats such strings as ids, never names, even when a patient
// happens to be named "42". Signed or mixed strings fall through to name
// lookup, same as the original's isdigit check.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// resolveID implements the shared id-or-name lookup against a table with an
// integer id and a name column.
func resolveID(ctx context.Context, db *sqlx.DB, table, resource, identifier string) (int64, error) {
	var (
		query string
		arg   interface{}
	)
	if isDigits(identifier) {
		n, err := strconv.ParseInt(identifier, 10, 64)
		if err != nil {
			// Digits but out of integer range: no id can match.
			return 0, apperrors.NotFound(resource, err)
		}
		query = `SELECT id FROM ` + table + ` WHERE id = ?`
		arg = n
	} else {
		query = `SELECT id FROM ` + table + ` WHERE LOWER(name) = LOWER(?)`
		arg = identifier
	}

	var id int64
	err := db.GetContext(ctx, &id, db.Rebind(query), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.NotFound(resource, err)
	}
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return id, nil
}

// insertReturningID works on both backends; lib/pq has no LastInsertId so
// everything goes through RETURNING.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (int64, error) {
	var id int64
	err := db.QueryRowxContext(ctx, db.Rebind(query+` RETURNING id`), args...).Scan(&id)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return id, nil
}
