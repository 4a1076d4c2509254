package models

import "time"

// LearnerProfile records who a learning path was generated for.
type LearnerProfile struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:text;not null" json:"name"`
	OrgansOfInterest []string  `gorm:"type:text[]" json:"organs_of_interest"`
	Level            string    `gorm:"type:varchar(20);default:beginner" json:"level"`
	CompletedModules []string  `gorm:"type:text[]" json:"completed_modules"`
	CreatedAt        time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (LearnerProfile) TableName() string { return "syllabus.learner_profiles" }

// LearningPath is a generated syllabus. PathID is the short external
// identifier handed back to callers; ID is the internal serial key.
type LearningPath struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	PathID     string    `gorm:"type:varchar(32);not null;unique" json:"path_id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	LearnerID  int       `gorm:"not null" json:"learner_id"`
	TotalHours float64   `gorm:"default:0" json:"total_hours"`
	CreatedAt  time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`

	Modules []LearningModule `gorm:"-" json:"modules,omitempty"`
}

func (LearningPath) TableName() string { return "syllabus.learning_paths" }

// LearningModule is one ordered unit of a learning path.
type LearningModule struct {
	ID             int      `gorm:"primaryKey" json:"id"`
	PathID         int      `gorm:"not null" json:"path_id"`
	ModuleID       string   `gorm:"type:varchar(100);not null" json:"module_id"`
	Title          string   `gorm:"type:text;not null" json:"title"`
	Organ          string   `gorm:"type:varchar(50);not null" json:"organ"`
	Difficulty     string   `gorm:"type:varchar(20);default:beginner" json:"difficulty"`
	Readings       []string `gorm:"type:text[]" json:"readings"`
	Questions      []string `gorm:"type:text[]" json:"questions"`
	EstimatedHours float64  `gorm:"default:2.0" json:"estimated_hours"`
	Seq            int      `gorm:"default:0" json:"seq"`
}

func (LearningModule) TableName() string { return "syllabus.learning_modules" }
