// Package organs holds the shared organ taxonomy constants used across
// the koinonia applications.
package organs

import "strings"

// Map of organ Roman-numeral codes to their slug identifiers.
var Map = map[string]string{
	"I":    "i-theoria",
	"II":   "ii-poiesis",
	"III":  "iii-ergon",
	"IV":   "iv-taxis",
	"V":    "v-logos",
	"VI":   "vi-koinonia",
	"VII":  "vii-kerygma",
	"VIII": "viii-meta",
}

// DifficultyOrder defines the fixed progression used when sorting
// learning modules.
var DifficultyOrder = map[string]int{
	"beginner":     0,
	"intermediate": 1,
	"advanced":     2,
}

// Slug resolves an organ code to its slug. Unknown codes fall back to the
// lowercased code, matching the behavior of the other koinonia apps.
func Slug(code string) string {
	if slug, ok := Map[code]; ok {
		return slug
	}
	return strings.ToLower(code)
}

// Rank returns the sort position for a difficulty level. Unknown levels
// rank as intermediate.
func Rank(difficulty string) int {
	if r, ok := DifficultyOrder[difficulty]; ok {
		return r
	}
	return 1
}
