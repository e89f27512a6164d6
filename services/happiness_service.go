package services

import (
	"context"
	"strings"

	"wellbeing/models"

	"gorm.io/datatypes"
)

type HappinessInput struct {
	Date           string                 `json:"date"`
	Score          *int                   `json:"score"`
	Reflection     string                 `json:"reflection"`
	MoodDetractors []models.MoodDetractor `json:"mood_detractors"`
}

type HappinessService struct {
	store  *HappinessStore
	days   DayClock
	events Notifier
}

func NewHappinessService(store *HappinessStore, days DayClock, events Notifier) *HappinessService {
	return &HappinessService{store: store, days: days, events: orNop(events)}
}

// Today returns today's record, or the zero-score default.
func (s *HappinessService) Today(ctx context.Context, owner string) (*models.Happiness, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	today := s.days.Today()
	rec, err := s.store.GetByDay(ctx, owner, today)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		def := models.DefaultHappiness(owner, today)
		return &def, nil
	}
	return rec, nil
}

// Save replaces the day's record. Detractors left out of the payload are
// dropped, not kept from the previous save.
func (s *HappinessService) Save(ctx context.Context, owner string, in HappinessInput) (*models.Happiness, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	day, err := s.days.ParseOrToday(in.Date)
	if err != nil {
		return nil, err
	}
	if in.Score == nil {
		return nil, invalidf("score is required")
	}
	if *in.Score < models.MinHappinessScore || *in.Score > models.MaxHappinessScore {
		return nil, invalidf("score must be between %d and %d", models.MinHappinessScore, models.MaxHappinessScore)
	}
	reflection := strings.TrimSpace(in.Reflection)
	if reflection == "" {
		return nil, invalidf("reflection is required")
	}
	detractors, err := normalizeDetractors(in.MoodDetractors)
	if err != nil {
		return nil, err
	}

	rec := models.DefaultHappiness(owner, day)
	rec.Score = *in.Score
	rec.Reflection = reflection
	rec.MoodDetractors = detractors

	saved, err := s.store.UpsertByDay(ctx, owner, day, &rec)
	if err != nil {
		return nil, err
	}
	emitSaved(s.events, owner, models.CategoryHappiness, day)
	return saved, nil
}

func (s *HappinessService) TodayDetractors(ctx context.Context, owner string) ([]models.MoodDetractor, error) {
	rec, err := s.Today(ctx, owner)
	if err != nil {
		return nil, err
	}
	if rec.MoodDetractors == nil {
		return []models.MoodDetractor{}, nil
	}
	return rec.MoodDetractors, nil
}

// SaveDetractors replaces only today's detractor list. It reads the current
// record and writes it back whole, which is the merge every partial update
// must do itself. A day without a record gets score 0 and no reflection.
func (s *HappinessService) SaveDetractors(ctx context.Context, owner string, list []models.MoodDetractor) ([]models.MoodDetractor, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if list == nil {
		return nil, invalidf("mood detractors must be an array")
	}
	detractors, err := normalizeDetractors(list)
	if err != nil {
		return nil, err
	}

	today := s.days.Today()
	current, err := s.store.GetByDay(ctx, owner, today)
	if err != nil {
		return nil, err
	}
	rec := models.DefaultHappiness(owner, today)
	if current != nil {
		rec = *current
	}
	rec.MoodDetractors = detractors

	saved, err := s.store.UpsertByDay(ctx, owner, today, &rec)
	if err != nil {
		return nil, err
	}
	emitSaved(s.events, owner, models.CategoryHappiness, today)
	return saved.MoodDetractors, nil
}

func normalizeDetractors(in []models.MoodDetractor) (datatypes.JSONSlice[models.MoodDetractor], error) {
	out := make(datatypes.JSONSlice[models.MoodDetractor], 0, len(in))
	for i, d := range in {
		d.ID = strings.TrimSpace(d.ID)
		d.Label = strings.TrimSpace(d.Label)
		if d.ID == "" || d.Label == "" {
			return nil, invalidf("mood detractor %d needs an id and a label", i+1)
		}
		if d.Severity < models.MinSeverity || d.Severity > models.MaxSeverity {
			return nil, invalidf("mood detractor %q severity must be between %d and %d", d.Label, models.MinSeverity, models.MaxSeverity)
		}
		out = append(out, d)
	}
	return out, nil
}
