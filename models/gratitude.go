package models

import (
	"time"

	"gorm.io/datatypes"
)

// MaxGratitudeEntries bounds the list saved for a single day.
const MaxGratitudeEntries = 5

type Gratitude struct {
	Keyed
	Entries datatypes.JSONSlice[string] `gorm:"not null" json:"gratitudes"`
}

// DefaultGratitude is what a read returns when the owner has no record for day.
func DefaultGratitude(owner string, day time.Time) Gratitude {
	return Gratitude{
		Keyed:   Keyed{Owner: owner, Day: day},
		Entries: datatypes.JSONSlice[string]{},
	}
}
