package services

import (
	"context"
	"strings"

	"wellbeing/models"

	"gorm.io/datatypes"
)

// RecentGratitudeLimit is how many days the journal list returns.
const RecentGratitudeLimit = 30

type GratitudeInput struct {
	Date    string   `json:"date"`
	Entries []string `json:"gratitudes"`
}

type GratitudeService struct {
	store  *GratitudeStore
	days   DayClock
	events Notifier
}

func NewGratitudeService(store *GratitudeStore, days DayClock, events Notifier) *GratitudeService {
	return &GratitudeService{store: store, days: days, events: orNop(events)}
}

func (s *GratitudeService) List(ctx context.Context, owner string) ([]models.Gratitude, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	return s.store.Recent(ctx, owner, RecentGratitudeLimit)
}

// ForDay returns the stored list for date, or the empty default.
func (s *GratitudeService) ForDay(ctx context.Context, owner, date string) (*models.Gratitude, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	day, err := s.days.ParseOrToday(date)
	if err != nil {
		return nil, err
	}
	rec, err := s.store.GetByDay(ctx, owner, day)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		def := models.DefaultGratitude(owner, day)
		return &def, nil
	}
	return rec, nil
}

// Save replaces the whole list for the given day.
func (s *GratitudeService) Save(ctx context.Context, owner string, in GratitudeInput) (*models.Gratitude, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	day, err := s.days.Parse(in.Date)
	if err != nil {
		return nil, err
	}
	if in.Entries == nil {
		return nil, invalidf("gratitudes must be an array")
	}
	if len(in.Entries) == 0 || len(in.Entries) > models.MaxGratitudeEntries {
		return nil, invalidf("between 1 and %d gratitudes are required", models.MaxGratitudeEntries)
	}

	entries := make(datatypes.JSONSlice[string], 0, len(in.Entries))
	for i, e := range in.Entries {
		e = strings.TrimSpace(e)
		if e == "" {
			return nil, invalidf("gratitude %d is empty", i+1)
		}
		entries = append(entries, e)
	}

	rec := models.DefaultGratitude(owner, day)
	rec.Entries = entries

	saved, err := s.store.UpsertByDay(ctx, owner, day, &rec)
	if err != nil {
		return nil, err
	}
	emitSaved(s.events, owner, models.CategoryGratitude, day)
	return saved, nil
}

func (s *GratitudeService) Delete(ctx context.Context, owner, date string) error {
	if err := requireOwner(owner); err != nil {
		return err
	}
	day, err := s.days.Parse(date)
	if err != nil {
		return err
	}
	deleted, err := s.store.DeleteByDay(ctx, owner, day)
	if err != nil {
		return err
	}
	if deleted {
		emitDeleted(s.events, owner, models.CategoryGratitude, day)
	}
	return nil
}
