package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"koinonia/internal/models"
)

func fixtureRoots() []models.TaxonomyNode {
	return []models.TaxonomyNode{
		{
			ID: 1, Slug: "i-theoria", Label: "Theoria",
			Children: []models.TaxonomyNode{
				{ID: 10, Slug: "i-epistemology", Label: "Epistemology"},
				{ID: 11, Slug: "i-metaphysics", Label: "Metaphysics"},
			},
		},
		{
			ID: 2, Slug: "vi-koinonia", Label: "Koinonia",
			Children: []models.TaxonomyNode{
				{ID: 20, Slug: "vi-facilitation", Label: "Facilitation"},
			},
		},
	}
}

func fixtureEntries() []models.Entry {
	return []models.Entry{
		{Title: "First Steps in Theoria", Difficulty: "beginner", OrganTags: []string{"i-theoria"}},
		{Title: "Theoria Deep Cuts", Difficulty: "advanced", OrganTags: []string{"i-epistemology"}},
		{Title: "Reading Circles", Difficulty: "intermediate", OrganTags: []string{"vi-koinonia"}},
		{Title: "Unrelated", Difficulty: "beginner", OrganTags: []string{"iii-ergon"}},
	}
}

func TestBuildModulesOnePerChildNode(t *testing.T) {
	modules := BuildModules(fixtureRoots(), fixtureEntries(), []string{"I", "VI"}, "beginner")

	// Two children under i-theoria, one under vi-koinonia.
	assert.Len(t, modules, 3)
	assert.Equal(t, "i-epistemology-beg", modules[0].ModuleID)
	assert.Equal(t, "Epistemology", modules[0].Title)
	assert.Equal(t, "i-theoria", modules[0].Organ)
	assert.Equal(t, "vi-facilitation-beg", modules[2].ModuleID)
}

func TestBuildModulesDifficultyWindow(t *testing.T) {
	testCases := []struct {
		level            string
		expectedReadings []string
	}{
		// beginner window excludes the advanced entry
		{"beginner", []string{"First Steps in Theoria"}},
		// intermediate window excludes the beginner entry
		{"intermediate", []string{"Theoria Deep Cuts"}},
		{"advanced", []string{"Theoria Deep Cuts"}},
	}
	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			modules := BuildModules(fixtureRoots(), fixtureEntries(), []string{"I"}, tc.level)
			if assert.NotEmpty(t, modules) {
				assert.Equal(t, tc.expectedReadings, modules[0].Readings)
			}
		})
	}
}

func TestBuildModulesTagPrefixMatchesOrgan(t *testing.T) {
	// "i-epistemology" tag counts toward organ i-theoria via the "i-" prefix.
	modules := BuildModules(fixtureRoots(), fixtureEntries(), []string{"I"}, "advanced")
	if assert.NotEmpty(t, modules) {
		assert.Contains(t, modules[0].Readings, "Theoria Deep Cuts")
	}
}

func TestBuildModulesFallbackReading(t *testing.T) {
	modules := BuildModules(fixtureRoots(), nil, []string{"VI"}, "beginner")
	if assert.Len(t, modules, 1) {
		assert.Equal(t, []string{"See Koinonia documentation"}, modules[0].Readings)
	}
}

func TestBuildModulesCapsReadingsAtThree(t *testing.T) {
	entries := []models.Entry{
		{Title: "A", Difficulty: "beginner", OrganTags: []string{"vi-koinonia"}},
		{Title: "B", Difficulty: "beginner", OrganTags: []string{"vi-koinonia"}},
		{Title: "C", Difficulty: "intermediate", OrganTags: []string{"vi-koinonia"}},
		{Title: "D", Difficulty: "beginner", OrganTags: []string{"vi-koinonia"}},
	}
	modules := BuildModules(fixtureRoots(), entries, []string{"VI"}, "beginner")
	if assert.Len(t, modules, 1) {
		assert.Equal(t, []string{"A", "B", "C"}, modules[0].Readings)
	}
}

func TestBuildModulesSkipsUnknownOrgan(t *testing.T) {
	modules := BuildModules(fixtureRoots(), fixtureEntries(), []string{"IX", "nonsense"}, "beginner")
	assert.Empty(t, modules)
}

func TestBuildModulesShortLevelCode(t *testing.T) {
	var modules []models.LearningModule
	assert.NotPanics(t, func() {
		modules = BuildModules(fixtureRoots(), fixtureEntries(), []string{"VI"}, "x")
	})
	if assert.Len(t, modules, 1) {
		assert.Equal(t, "vi-facilitation-x", modules[0].ModuleID)
	}
}

func TestBuildModulesEstimatedHours(t *testing.T) {
	beginner := BuildModules(fixtureRoots(), fixtureEntries(), []string{"VI"}, "beginner")
	advanced := BuildModules(fixtureRoots(), fixtureEntries(), []string{"VI"}, "advanced")
	if assert.NotEmpty(t, beginner) && assert.NotEmpty(t, advanced) {
		assert.Equal(t, 2.0, beginner[0].EstimatedHours)
		assert.Equal(t, 3.0, advanced[0].EstimatedHours)
	}
}

func TestBuildModulesQuestionsMentionChildAndRoot(t *testing.T) {
	modules := BuildModules(fixtureRoots(), fixtureEntries(), []string{"VI"}, "beginner")
	if assert.Len(t, modules, 1) {
		questions := modules[0].Questions
		assert.Len(t, questions, 3)
		assert.Contains(t, questions[0], "Facilitation")
		assert.Contains(t, questions[1], "Koinonia")
	}
}

func TestNewPathID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewPathID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "path IDs should not repeat")
		seen[id] = true
	}
}

func TestAllowedDifficulties(t *testing.T) {
	assert.Equal(t, map[string]bool{"beginner": true, "intermediate": true}, allowedDifficulties("beginner"))
	assert.Equal(t, map[string]bool{"intermediate": true, "advanced": true}, allowedDifficulties("intermediate"))
	assert.Equal(t, map[string]bool{"advanced": true}, allowedDifficulties("advanced"))
}
