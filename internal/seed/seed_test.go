package seed

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The checked-in seed files must always parse and validate; these tests
// guard the data as much as the loader.
const seedDir = "../../seed"

func TestSeedFilesParseAndValidate(t *testing.T) {
	v := validator.New()

	var taxonomy TaxonomyFile
	require.NoError(t, loadFile(seedDir, "taxonomy.json", &taxonomy, v))
	assert.Len(t, taxonomy.Nodes, 8, "one root per organ")
	for _, root := range taxonomy.Nodes {
		assert.NotEmpty(t, root.Children, "organ %s has no children", root.Slug)
	}

	var sessions SessionsFile
	require.NoError(t, loadFile(seedDir, "sample_sessions.json", &sessions, v))
	assert.NotEmpty(t, sessions.Sessions)

	var readings ReadingListFile
	require.NoError(t, loadFile(seedDir, "reading_lists.json", &readings, v))
	keys := map[string]bool{}
	for _, e := range readings.Entries {
		assert.False(t, keys[e.Key], "duplicate entry key %s", e.Key)
		keys[e.Key] = true
	}

	var curricula CurriculaFile
	require.NoError(t, loadFile(seedDir, "curricula.json", &curricula, v))
	for _, c := range curricula.Curricula {
		assert.LessOrEqual(t, len(c.Sessions), c.DurationWeeks,
			"curriculum %q has more sessions than weeks", c.Title)
		for _, s := range c.Sessions {
			for _, key := range s.Readings {
				assert.True(t, keys[key],
					"curriculum %q references unknown reading key %q", c.Title, key)
			}
		}
	}

	var community CommunityFile
	require.NoError(t, loadFile(seedDir, "community.json", &community, v))
	assert.NotEmpty(t, community.Events)
}

func TestLoadFileRejectsInvalidData(t *testing.T) {
	v := validator.New()

	var taxonomy TaxonomyFile
	err := loadFile("testdata", "missing_slug.json", &taxonomy, v)
	assert.Error(t, err)

	err = loadFile("testdata", "does_not_exist.json", &taxonomy, v)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"2026-01-15T19:00:00Z", time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC), false},
		{"2026-01-15", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"January 15", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tc := range testCases {
		got, err := parseDate(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		assert.NoError(t, err, "input %q", tc.input)
		assert.True(t, got.Equal(tc.expected), "input %q: got %v", tc.input, got)
	}
}

func TestSplitQuestions(t *testing.T) {
	opening, deepDive := splitQuestions([]string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"a", "b"}, opening)
	assert.Equal(t, []string{"c", "d"}, deepDive)

	opening, deepDive = splitQuestions([]string{"a"})
	assert.Equal(t, []string{"a"}, opening)
	assert.Empty(t, deepDive)

	opening, deepDive = splitQuestions(nil)
	assert.Empty(t, opening)
	assert.Empty(t, deepDive)
}
