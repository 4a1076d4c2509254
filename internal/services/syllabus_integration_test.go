package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koinonia/internal/database/dbtest"
	"koinonia/internal/repositories"
	"koinonia/internal/seed"
	"koinonia/internal/services"
)

func newSeededService(t *testing.T) (*services.SyllabusService, context.Context) {
	t.Helper()
	pool := dbtest.NewPool(t)
	ctx := context.Background()

	taxonomyRepo := repositories.NewTaxonomyRepository(pool)
	entryRepo := repositories.NewEntryRepository(pool)

	loader := seed.NewLoader(pool)
	require.NoError(t, loader.LoadAll(ctx, "../../seed"))

	svc := services.NewSyllabusService(taxonomyRepo, entryRepo, repositories.NewSyllabusRepository(pool))
	return svc, ctx
}

func TestGenerateAndFetchLearningPath(t *testing.T) {
	svc, ctx := newSeededService(t)

	generated, err := svc.GenerateLearningPath(ctx, services.GeneratePathRequest{
		Organs: []string{"I", "VI"},
		Level:  "beginner",
		Name:   "Mara",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^[0-9a-f]{8}$`, generated.PathID)
	assert.Equal(t, "Learning Path: I, VI", generated.Title)
	require.NotEmpty(t, generated.Modules)
	assert.Equal(t, 2.0*float64(len(generated.Modules)), generated.TotalHours)

	stored, err := svc.GetPath(ctx, generated.PathID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, generated.Title, stored.Title)
	assert.Equal(t, generated.TotalHours, stored.TotalHours)
	require.Len(t, stored.Modules, len(generated.Modules))
	for i, m := range stored.Modules {
		assert.Equal(t, i, m.Seq)
		assert.Equal(t, generated.Modules[i].ModuleID, m.ModuleID)
		assert.Equal(t, generated.Modules[i].Readings, m.Readings)
	}
}

func TestGetPathUnknownIDReturnsNil(t *testing.T) {
	svc, ctx := newSeededService(t)

	path, err := svc.GetPath(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestListPathsNewestFirst(t *testing.T) {
	svc, ctx := newSeededService(t)

	first, err := svc.GenerateLearningPath(ctx, services.GeneratePathRequest{
		Organs: []string{"II"},
		Level:  "intermediate",
	})
	require.NoError(t, err)
	second, err := svc.GenerateLearningPath(ctx, services.GeneratePathRequest{
		Organs: []string{"III"},
		Level:  "advanced",
	})
	require.NoError(t, err)

	paths, err := svc.ListPaths(ctx)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	ids := []string{paths[0].PathID, paths[1].PathID}
	assert.Contains(t, ids, first.PathID)
	assert.Contains(t, ids, second.PathID)
}

func TestGenerateDefaultsAnonymousLearner(t *testing.T) {
	svc, ctx := newSeededService(t)

	generated, err := svc.GenerateLearningPath(ctx, services.GeneratePathRequest{
		Organs: []string{"IV"},
		Level:  "beginner",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, generated.PathID)
}
