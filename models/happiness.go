package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MinHappinessScore = 1
	MaxHappinessScore = 10
	MinSeverity       = 1
	MaxSeverity       = 5
)

// MoodDetractor has no lifecycle of its own: it lives inside exactly one
// Happiness record and is replaced wholesale on every save.
type MoodDetractor struct {
	ID       string `json:"id"`       // stable short code, e.g. "stress"
	Label    string `json:"label"`    // display label, e.g. "Stress"
	Severity int    `json:"severity"` // 1..5
	Notes    string `json:"notes"`
}

type Happiness struct {
	Keyed
	Score          int                                `gorm:"not null" json:"score"`
	Reflection     string                             `gorm:"type:text;not null" json:"reflection"`
	MoodDetractors datatypes.JSONSlice[MoodDetractor] `gorm:"not null" json:"mood_detractors"`
}

func DefaultHappiness(owner string, day time.Time) Happiness {
	return Happiness{
		Keyed:          Keyed{Owner: owner, Day: day},
		Score:          0,
		Reflection:     "",
		MoodDetractors: datatypes.JSONSlice[MoodDetractor]{},
	}
}
