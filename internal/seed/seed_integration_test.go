package seed_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koinonia/internal/database/dbtest"
	"koinonia/internal/repositories"
	"koinonia/internal/seed"
)

func tableCount(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestLoadAllIsIdempotent(t *testing.T) {
	pool := dbtest.NewPool(t)
	ctx := context.Background()
	loader := seed.NewLoader(pool)

	require.NoError(t, loader.LoadAll(ctx, "../../seed"))

	counts := map[string]int{}
	tables := []string{
		"salons.taxonomy_nodes",
		"salons.sessions",
		"salons.participants",
		"salons.segments",
		"reading.entries",
		"reading.curricula",
		"reading.sessions",
		"reading.session_entries",
		"reading.discussion_questions",
		"reading.guides",
		"community.events",
		"community.contributors",
		"community.contributions",
	}
	for _, table := range tables {
		counts[table] = tableCount(t, pool, table)
		assert.Greater(t, counts[table], 0, "%s should be populated", table)
	}

	// Second run against the already-seeded database inserts nothing.
	require.NoError(t, loader.LoadAll(ctx, "../../seed"))
	for _, table := range tables {
		assert.Equal(t, counts[table], tableCount(t, pool, table), "%s grew on re-seed", table)
	}
}

func TestLoadAllRollsBackOnFailure(t *testing.T) {
	pool := dbtest.NewPool(t)
	ctx := context.Background()
	loader := seed.NewLoader(pool)

	// testdata/partial has a valid taxonomy.json but none of the other
	// seed files, so the run fails after the taxonomy step.
	err := loader.LoadAll(ctx, "testdata/partial")
	require.Error(t, err)

	assert.Zero(t, tableCount(t, pool, "salons.taxonomy_nodes"),
		"a failed seed run must not leave partial data behind")
}

func TestSeedTaxonomyLinksChildrenToRoots(t *testing.T) {
	pool := dbtest.NewPool(t)
	ctx := context.Background()
	loader := seed.NewLoader(pool)

	_, err := loader.SeedTaxonomy(ctx, "../../seed")
	require.NoError(t, err)

	taxonomyRepo := repositories.NewTaxonomyRepository(pool)
	roots, err := taxonomyRepo.Roots(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 8)

	for _, root := range roots {
		require.NotNil(t, root.OrganID)
		children, err := taxonomyRepo.ChildrenOf(ctx, root.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, children, "organ %s should have children", root.Slug)
		for _, child := range children {
			require.NotNil(t, child.ParentID)
			assert.Equal(t, root.ID, *child.ParentID)
			require.NotNil(t, child.OrganID)
			assert.Equal(t, *root.OrganID, *child.OrganID,
				"child %s should carry its organ's number", child.Slug)
		}
	}
}

func TestSeedEntriesReusesExistingRows(t *testing.T) {
	pool := dbtest.NewPool(t)
	ctx := context.Background()
	loader := seed.NewLoader(pool)

	keyMap, err := loader.SeedEntries(ctx, "../../seed")
	require.NoError(t, err)
	assert.NotEmpty(t, keyMap)
	inserted := tableCount(t, pool, "reading.entries")

	again, err := loader.SeedEntries(ctx, "../../seed")
	require.NoError(t, err)
	assert.Equal(t, keyMap, again)
	assert.Equal(t, inserted, tableCount(t, pool, "reading.entries"))
}
