package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koinonia/internal/models"
)

func TestModelInfoExtractsTableAndSchema(t *testing.T) {
	info, err := modelInfo(&models.Entry{})
	require.NoError(t, err)

	assert.Equal(t, "Entry", info.ClassName)
	assert.Equal(t, "entries", info.TableName)
	assert.Equal(t, "reading", info.Schema)

	byName := map[string]Column{}
	for _, c := range info.Columns {
		byName[c.Name] = c
	}

	require.Contains(t, byName, "id")
	assert.True(t, byName["id"].PrimaryKey)
	assert.False(t, byName["id"].Nullable)

	require.Contains(t, byName, "title")
	assert.False(t, byName["title"].Nullable)
	assert.Equal(t, "text", byName["title"].Type)

	require.Contains(t, byName, "url")
	assert.True(t, byName["url"].Nullable)

	require.Contains(t, byName, "organ_tags")
	assert.Equal(t, "text[]", byName["organ_tags"].Type)
}

func TestModelInfoSkipsNonColumnFields(t *testing.T) {
	// SalonSession.Participants and .Segments are gorm:"-" and must not
	// appear as columns.
	info, err := modelInfo(&models.SalonSession{})
	require.NoError(t, err)
	for _, c := range info.Columns {
		assert.NotEqual(t, "participants", c.Name)
		assert.NotEqual(t, "segments", c.Name)
	}
}

func TestBuildManifestCoversAllModelsAndSchemas(t *testing.T) {
	manifest, err := BuildManifest("../../seed")
	require.NoError(t, err)

	assert.Equal(t, 16, manifest.ModelCount)
	assert.Len(t, manifest.Models, 16)
	assert.Equal(t, PackageVersion, manifest.PackageVersion)
	assert.Equal(t, []string{"community", "reading", "salons", "syllabus"}, manifest.Schemas)

	assert.Contains(t, manifest.SeedFiles, "taxonomy.json")
	assert.Contains(t, manifest.SeedFiles, "reading_lists.json")
	assert.Greater(t, manifest.TotalSeedEntries, 0)
}

func TestCountSeedEntries(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		expected int
	}{
		{"array document", `[1, 2, 3]`, 3},
		{"object with list value", `{"sessions": [{"a": 1}, {"b": 2}]}`, 2},
		{"first list key wins in document order", `{"zebras": [1, 2, 3], "apples": [1]}`, 3},
		{"scalar keys before the first list", `{"name": "x", "items": [1, 2]}`, 2},
		{"object without lists", `{"name": "x"}`, 0},
		{"malformed", `{not json`, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, countSeedEntries([]byte(tc.data)))
		})
	}
}

func TestWriteProducesValidJSON(t *testing.T) {
	dir := t.TempDir()
	outPath, err := Write(dir, "../../seed")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "schema-manifest.json"), outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var manifest Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, 16, manifest.ModelCount)
	assert.NotEmpty(t, manifest.GeneratedAt)
}
