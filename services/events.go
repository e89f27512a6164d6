package services

import (
	"time"

	"wellbeing/models"
	"wellbeing/utils"
)

const (
	EventRecordSaved   = "record.saved"
	EventRecordDeleted = "record.deleted"
)

type Event struct {
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// Notifier is told about every successful write. RealtimeHub is the
// production implementation.
type Notifier interface {
	Publish(owner string, ev Event)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, Event) {}

func orNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

func emitSaved(n Notifier, owner, category string, day time.Time) {
	utils.RecordSave(category)
	n.Publish(owner, Event{Kind: EventRecordSaved, Category: category, Date: day.Format(models.DayLayout)})
}

func emitDeleted(n Notifier, owner, category string, day time.Time) {
	n.Publish(owner, Event{Kind: EventRecordDeleted, Category: category, Date: day.Format(models.DayLayout)})
}
