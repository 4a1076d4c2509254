package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koinonia/internal/database"
	"koinonia/internal/database/dbtest"
)

func TestRunMigrationsIsRerunnable(t *testing.T) {
	pool := dbtest.NewPool(t)

	// NewPool already ran the migrations once; a second run must be a
	// no-op, not an error.
	require.NoError(t, database.RunMigrations(pool))
}

func TestMigrationsCreateSchemas(t *testing.T) {
	pool := dbtest.NewPool(t)
	ctx := context.Background()

	for _, schema := range []string{"salons", "reading", "community", "syllabus"} {
		var exists bool
		err := pool.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM information_schema.schemata WHERE schema_name = $1)
		`, schema).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "schema %s should exist", schema)
	}
}

func TestSearchVectorTriggerPopulatesOnInsert(t *testing.T) {
	pool := dbtest.NewPool(t)
	ctx := context.Background()

	var id int
	err := pool.QueryRow(ctx, `
		INSERT INTO salons.sessions (title, date, notes)
		VALUES ('Dialogue on craftsmanship', '2026-01-10T18:00:00Z', 'Notes on making things well')
		RETURNING id
	`).Scan(&id)
	require.NoError(t, err)

	var matches bool
	err = pool.QueryRow(ctx, `
		SELECT search_vector @@ plainto_tsquery('english', 'craftsmanship')
		FROM salons.sessions WHERE id = $1
	`, id).Scan(&matches)
	require.NoError(t, err)
	assert.True(t, matches, "insert trigger should populate search_vector")
}

func TestEntrySearchVectorCombinesTitleAndAuthor(t *testing.T) {
	pool := dbtest.NewPool(t)
	ctx := context.Background()

	var id int
	err := pool.QueryRow(ctx, `
		INSERT INTO reading.entries (title, author, source_type, difficulty, organ_tags)
		VALUES ('The Craftsman', 'Richard Sennett', 'book', 'intermediate', '{ii-poiesis}')
		RETURNING id
	`).Scan(&id)
	require.NoError(t, err)

	for _, term := range []string{"craftsman", "sennett"} {
		var matches bool
		err = pool.QueryRow(ctx, `
			SELECT search_vector @@ plainto_tsquery('english', $2)
			FROM reading.entries WHERE id = $1
		`, id, term).Scan(&matches)
		require.NoError(t, err)
		assert.True(t, matches, "entry should match %q", term)
	}
}
