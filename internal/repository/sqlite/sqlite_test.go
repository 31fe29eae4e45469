package sqlite

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory store with the full schema applied. The pool
// is pinned to one connection so every statement sees the same memory
// database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(context.Background(), db))
	return db
}

func TestInitSchemaIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Seed a row, re-run init, and make sure nothing was destroyed.
	repo := NewPatientRepository(db)
	id, err := repo.Create(ctx, testPatient("Asha Rao"))
	require.NoError(t, err)

	require.NoError(t, InitSchema(ctx, db))
	require.NoError(t, InitSchema(ctx, db))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", got.Name)
}

func TestIsDigits(t *testing.T) {
	cases := map[string]bool{
		"42":   true,
		"0":    true,
		"007":  true,
		"":     false,
		"+42":  false,
		"-1":   false,
		"42x":  false,
		"4 2":  false,
		"John": false,
		"4.2":  false,
		"٤٢":   false, // non-ASCII digits go through name lookup
	}
	for in, want := range cases {
		require.Equal(t, want, isDigits(in), "isDigits(%q)", in)
	}
}
