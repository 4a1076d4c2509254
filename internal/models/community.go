package models

import "time"

// Event is a community-hub event (workshop, salon announcement, ...).
type Event struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	Type            string    `gorm:"type:varchar(50);not null" json:"type"`
	Title           string    `gorm:"type:text;not null" json:"title"`
	Date            time.Time `gorm:"type:timestamptz;not null" json:"date"`
	Description     string    `gorm:"type:text;default:''" json:"description"`
	Format          string    `gorm:"type:varchar(50);default:virtual" json:"format"`
	Capacity        *int      `json:"capacity,omitempty"`
	RegistrationURL *string   `gorm:"type:text" json:"registration_url,omitempty"`
	Status          string    `gorm:"type:varchar(30);default:planned" json:"status"`
}

func (Event) TableName() string { return "community.events" }

// Contributor is a community member identified by GitHub handle.
type Contributor struct {
	ID                    int       `gorm:"primaryKey" json:"id"`
	GithubHandle          string    `gorm:"type:varchar(100);not null;unique" json:"github_handle"`
	Name                  string    `gorm:"type:text;not null" json:"name"`
	OrgansActive          []string  `gorm:"type:text[]" json:"organs_active"`
	FirstContributionDate time.Time `gorm:"type:date" json:"first_contribution_date"`

	Contributions []Contribution `gorm:"-" json:"contributions,omitempty"`
}

func (Contributor) TableName() string { return "community.contributors" }

type Contribution struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	ContributorID int       `gorm:"not null" json:"contributor_id"`
	Repo          string    `gorm:"type:varchar(200);not null" json:"repo"`
	Type          string    `gorm:"type:varchar(50);not null" json:"type"`
	URL           *string   `gorm:"type:text" json:"url,omitempty"`
	Date          time.Time `gorm:"type:date" json:"date"`
	Description   string    `gorm:"type:text;default:''" json:"description"`
}

func (Contribution) TableName() string { return "community.contributions" }
