package models

import "time"

// Curriculum is a multi-week reading-group program in the reading schema.
type Curriculum struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:text;not null" json:"title"`
	Theme         string    `gorm:"type:varchar(100);default:general" json:"theme"`
	OrganFocus    *string   `gorm:"type:varchar(50)" json:"organ_focus,omitempty"`
	DurationWeeks int       `gorm:"not null" json:"duration_weeks"`
	Description   string    `gorm:"type:text;default:''" json:"description"`
	CreatedAt     time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`

	Sessions []ReadingSession `gorm:"-" json:"sessions,omitempty"`
}

func (Curriculum) TableName() string { return "reading.curricula" }

type ReadingSession struct {
	ID              int        `gorm:"primaryKey" json:"id"`
	CurriculumID    int        `gorm:"not null" json:"curriculum_id"`
	Week            int        `gorm:"not null" json:"week"`
	Title           string     `gorm:"type:text;not null" json:"title"`
	DurationMinutes int        `gorm:"default:90" json:"duration_minutes"`
	Completed       bool       `gorm:"default:false" json:"completed"`
	DateScheduled   *time.Time `gorm:"type:date" json:"date_scheduled,omitempty"`

	Entries             []Entry              `gorm:"-" json:"entries,omitempty"`
	DiscussionQuestions []DiscussionQuestion `gorm:"-" json:"discussion_questions,omitempty"`
	Guide               *Guide               `gorm:"-" json:"guide,omitempty"`
}

func (ReadingSession) TableName() string { return "reading.sessions" }

// Entry is a single reading (book, paper, essay, ...) tagged by organ and
// difficulty. title+author act as the natural key during seeding.
type Entry struct {
	ID         int      `gorm:"primaryKey" json:"id"`
	Title      string   `gorm:"type:text;not null" json:"title"`
	Author     string   `gorm:"type:text;not null" json:"author"`
	SourceType string   `gorm:"type:varchar(50);default:book" json:"source_type"`
	URL        *string  `gorm:"type:text" json:"url,omitempty"`
	Pages      *string  `gorm:"type:varchar(100)" json:"pages,omitempty"`
	Difficulty string   `gorm:"type:varchar(20);default:intermediate" json:"difficulty"`
	OrganTags  []string `gorm:"type:text[]" json:"organ_tags"`
}

func (Entry) TableName() string { return "reading.entries" }

// SessionEntry links a reading session to an entry (composite primary key).
type SessionEntry struct {
	SessionID int `gorm:"primaryKey" json:"session_id"`
	EntryID   int `gorm:"primaryKey" json:"entry_id"`
}

func (SessionEntry) TableName() string { return "reading.session_entries" }

type DiscussionQuestion struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	SessionID    int    `gorm:"not null" json:"session_id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	Category     string `gorm:"type:varchar(50);default:deep_dive" json:"category"`
}

func (DiscussionQuestion) TableName() string { return "reading.discussion_questions" }

// Guide is the facilitator guide for a reading session.
type Guide struct {
	ID                int      `gorm:"primaryKey" json:"id"`
	SessionID         int      `gorm:"not null" json:"session_id"`
	OpeningQuestions  []string `gorm:"type:text[]" json:"opening_questions"`
	DeepDiveQuestions []string `gorm:"type:text[]" json:"deep_dive_questions"`
	Activities        []string `gorm:"type:text[]" json:"activities"`
	ClosingReflection string   `gorm:"type:text;default:''" json:"closing_reflection"`
}

func (Guide) TableName() string { return "reading.guides" }
