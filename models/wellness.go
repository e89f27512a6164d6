package models

import (
	"time"

	"gorm.io/datatypes"
)

// WellnessTask is one item of the explicit daily checklist.
type WellnessTask struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type Wellness struct {
	Keyed

	MeditationMinutes float64 `gorm:"not null" json:"meditation"`
	SleepHours        float64 `gorm:"not null" json:"sleep"`
	ExerciseMinutes   float64 `gorm:"not null" json:"exercise"`
	Steps             int     `gorm:"not null" json:"steps"`
	ScreenTimeHours   float64 `gorm:"not null" json:"screen_time"`
	WaterGlasses      float64 `gorm:"not null" json:"water_glasses"` // e.g. 4 (glasses)

	WaterGoalMet     bool `gorm:"not null" json:"water"`
	HealthyMeals     bool `gorm:"not null" json:"healthy"`
	Reading          bool `gorm:"not null" json:"reading"`
	Journaling       bool `gorm:"not null" json:"journaling"`
	Stretching       bool `gorm:"not null" json:"stretching"`
	SocialConnection bool `gorm:"not null" json:"social_connection"`

	WakeTime string                            `gorm:"size:5" json:"wake_time"` // HH:MM, empty when unset
	Tasks    datatypes.JSONSlice[WellnessTask] `gorm:"not null" json:"tasks"`
}

func DefaultWellness(owner string, day time.Time) Wellness {
	return Wellness{
		Keyed: Keyed{Owner: owner, Day: day},
		Tasks: datatypes.JSONSlice[WellnessTask]{},
	}
}
