package organs

import (
	"regexp"
	"testing"
)

func TestMapHasAllEightOrgans(t *testing.T) {
	if len(Map) != 8 {
		t.Fatalf("expected 8 organs, got %d", len(Map))
	}
	for _, code := range []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"} {
		if _, ok := Map[code]; !ok {
			t.Errorf("missing organ code %s", code)
		}
	}
}

func TestMapSlugsFollowRomanNamePattern(t *testing.T) {
	pattern := regexp.MustCompile(`^[ivx]+-[a-z]+$`)
	seen := map[string]bool{}
	for code, slug := range Map {
		if !pattern.MatchString(slug) {
			t.Errorf("Map[%q] = %q does not match roman-name pattern", code, slug)
		}
		if seen[slug] {
			t.Errorf("duplicate slug %q", slug)
		}
		seen[slug] = true
	}
}

func TestSlug(t *testing.T) {
	testCases := []struct {
		code     string
		expected string
	}{
		{"I", "i-theoria"},
		{"VI", "vi-koinonia"},
		{"VIII", "viii-meta"},
		{"IX", "ix"},      // unknown code falls back to lowercase
		{"custom", "custom"},
	}
	for _, tc := range testCases {
		if got := Slug(tc.code); got != tc.expected {
			t.Errorf("Slug(%q) = %q, expected %q", tc.code, got, tc.expected)
		}
	}
}

func TestDifficultyOrderProgression(t *testing.T) {
	if len(DifficultyOrder) != 3 {
		t.Fatalf("expected 3 difficulty levels, got %d", len(DifficultyOrder))
	}
	if !(DifficultyOrder["beginner"] < DifficultyOrder["intermediate"] &&
		DifficultyOrder["intermediate"] < DifficultyOrder["advanced"]) {
		t.Error("difficulty order is not monotonically increasing")
	}
}

func TestRankUnknownDefaultsToIntermediate(t *testing.T) {
	if Rank("expert") != DifficultyOrder["intermediate"] {
		t.Errorf("unknown difficulty should rank as intermediate, got %d", Rank("expert"))
	}
}
