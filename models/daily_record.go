package models

import (
	"time"
)

// DailyRecord is a document keyed by (owner, day). Day is always the start of
// the owner's local calendar day.
type DailyRecord interface {
	Key() (owner string, day time.Time)
	SetKey(owner string, day time.Time)
}

// Category names used in events, metrics and exports.
const (
	CategoryGratitude = "gratitude"
	CategoryHappiness = "happiness"
	CategoryWellness  = "wellness"
)

// DayLayout is the wire format of a day key.
const DayLayout = "2006-01-02"

// Keyed is embedded by every daily record kind.
type Keyed struct {
	ID        uint      `gorm:"primaryKey" json:"id,omitempty"`
	Owner     string    `gorm:"size:320;not null;index:,unique,composite:owner_day" json:"owner"`
	Day       time.Time `gorm:"not null;index:,unique,composite:owner_day" json:"day"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (k *Keyed) Key() (string, time.Time) { return k.Owner, k.Day }

// SetKey also clears ID: a row is identified by its key, never by a
// client-supplied id.
func (k *Keyed) SetKey(owner string, day time.Time) {
	k.ID = 0
	k.Owner = owner
	k.Day = day
}
