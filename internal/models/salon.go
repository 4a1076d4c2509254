package models

import "time"

// SalonSession is a recorded salon conversation in the salons schema.
type SalonSession struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Date         time.Time `gorm:"type:timestamptz;not null" json:"date"`
	Format       string    `gorm:"type:varchar(50);default:deep_dive" json:"format"`
	Facilitator  *string   `gorm:"type:text" json:"facilitator,omitempty"`
	RecordingURL *string   `gorm:"type:text" json:"recording_url,omitempty"`
	Notes        string    `gorm:"type:text;default:''" json:"notes"`
	OrganTags    []string  `gorm:"type:text[]" json:"organ_tags"`
	CreatedAt    time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`

	Participants []Participant `gorm:"-" json:"participants,omitempty"`
	Segments     []Segment     `gorm:"-" json:"segments,omitempty"`
}

func (SalonSession) TableName() string { return "salons.sessions" }

type Participant struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	SessionID    int    `gorm:"not null" json:"session_id"`
	Name         string `gorm:"type:text;not null" json:"name"`
	Role         string `gorm:"type:varchar(50);default:participant" json:"role"`
	ConsentGiven bool   `gorm:"default:false" json:"consent_given"`
}

func (Participant) TableName() string { return "salons.participants" }

// Segment is a transcribed slice of a salon session.
type Segment struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	SessionID    int     `gorm:"not null" json:"session_id"`
	Speaker      string  `gorm:"type:text;not null" json:"speaker"`
	Text         string  `gorm:"type:text;not null" json:"text"`
	StartSeconds float64 `gorm:"not null" json:"start_seconds"`
	EndSeconds   float64 `gorm:"not null" json:"end_seconds"`
	Confidence   float64 `gorm:"default:0.0" json:"confidence"`
}

func (Segment) TableName() string { return "salons.segments" }

// TaxonomyNode is a node in the organ topic tree. Root nodes have a nil
// ParentID and represent organs; children are topics within an organ.
type TaxonomyNode struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	Slug        string  `gorm:"type:varchar(100);not null;unique" json:"slug"`
	Label       string  `gorm:"type:text;not null" json:"label"`
	ParentID    *int    `json:"parent_id,omitempty"`
	Description string  `gorm:"type:text;default:''" json:"description"`
	OrganID     *int    `json:"organ_id,omitempty"`

	Children []TaxonomyNode `gorm:"-" json:"children,omitempty"`
}

func (TaxonomyNode) TableName() string { return "salons.taxonomy_nodes" }
