// Package seed loads the JSON seed files into the database, keyed on
// natural keys so reruns never duplicate rows.
package seed

import (
	"fmt"
	"time"
)

// TaxonomyFile is the shape of seed/taxonomy.json.
type TaxonomyFile struct {
	Nodes []TaxonomyNodeSeed `json:"nodes" validate:"required,min=1,dive"`
}

type TaxonomyNodeSeed struct {
	Slug        string             `json:"slug" validate:"required"`
	Label       string             `json:"label" validate:"required"`
	OrganID     *int               `json:"organ_id"`
	Description string             `json:"description"`
	Children    []TaxonomyNodeSeed `json:"children" validate:"dive"`
}

// SessionsFile is the shape of seed/sample_sessions.json.
type SessionsFile struct {
	Sessions []SalonSessionSeed `json:"sessions" validate:"required,dive"`
}

type SalonSessionSeed struct {
	Title        string            `json:"title" validate:"required"`
	Date         string            `json:"date" validate:"required"`
	Format       string            `json:"format"`
	Facilitator  *string           `json:"facilitator"`
	Notes        string            `json:"notes"`
	OrganTags    []string          `json:"organ_tags"`
	Participants []ParticipantSeed `json:"participants" validate:"dive"`
	Segments     []SegmentSeed     `json:"segments" validate:"dive"`
}

type ParticipantSeed struct {
	Name         string `json:"name" validate:"required"`
	Role         string `json:"role"`
	ConsentGiven bool   `json:"consent_given"`
}

type SegmentSeed struct {
	Speaker      string  `json:"speaker" validate:"required"`
	Text         string  `json:"text" validate:"required"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	Confidence   float64 `json:"confidence"`
}

// ReadingListFile is the shape of seed/reading_lists.json. Entries carry a
// short key so curricula can reference them.
type ReadingListFile struct {
	Entries []EntrySeed `json:"entries" validate:"required,min=1,dive"`
}

type EntrySeed struct {
	Key        string   `json:"key" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	Author     string   `json:"author" validate:"required"`
	SourceType string   `json:"source_type"`
	URL        *string  `json:"url"`
	Pages      *string  `json:"pages"`
	Difficulty string   `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	OrganTags  []string `json:"organ_tags"`
}

// CurriculaFile is the shape of seed/curricula.json.
type CurriculaFile struct {
	Curricula []CurriculumSeed `json:"curricula" validate:"required,dive"`
}

type CurriculumSeed struct {
	Title         string               `json:"title" validate:"required"`
	Theme         string               `json:"theme"`
	OrganFocus    *string              `json:"organ_focus"`
	DurationWeeks int                  `json:"duration_weeks" validate:"required,min=1"`
	Description   string               `json:"description"`
	Sessions      []ReadingSessionSeed `json:"sessions" validate:"dive"`
}

type ReadingSessionSeed struct {
	Week       int      `json:"week" validate:"required,min=1"`
	Title      string   `json:"title" validate:"required"`
	Readings   []string `json:"readings"`
	Questions  []string `json:"questions"`
	Activities []string `json:"activities"`
}

// CommunityFile is the shape of seed/community.json.
type CommunityFile struct {
	Events       []EventSeed       `json:"events" validate:"required,dive"`
	Contributors []ContributorSeed `json:"contributors" validate:"dive"`
}

type EventSeed struct {
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description"`
	Format      string `json:"format"`
	Capacity    *int   `json:"capacity"`
	Status      string `json:"status"`
}

type ContributorSeed struct {
	GithubHandle          string             `json:"github_handle" validate:"required"`
	Name                  string             `json:"name" validate:"required"`
	OrgansActive          []string           `json:"organs_active"`
	FirstContributionDate string             `json:"first_contribution_date"`
	Contributions         []ContributionSeed `json:"contributions" validate:"dive"`
}

type ContributionSeed struct {
	Repo        string  `json:"repo" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	URL         *string `json:"url"`
	Date        string  `json:"date" validate:"required"`
	Description string  `json:"description"`
}

// parseDate accepts both full RFC 3339 timestamps and plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
