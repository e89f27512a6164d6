package services

import (
	"context"
	"strings"
	"time"

	"wellbeing/models"

	"gorm.io/datatypes"
)

// WellnessInput mirrors the checklist form. Anything omitted is saved as
// zero/false: the stored record is replaced, not patched.
type WellnessInput struct {
	Date             string                `json:"date"`
	Meditation       float64               `json:"meditation"`
	Sleep            float64               `json:"sleep"`
	Exercise         float64               `json:"exercise"`
	Steps            int                   `json:"steps"`
	ScreenTime       float64               `json:"screen_time"`
	WaterGlasses     float64               `json:"water_glasses"`
	Water            bool                  `json:"water"`
	Healthy          bool                  `json:"healthy"`
	Reading          bool                  `json:"reading"`
	Journaling       bool                  `json:"journaling"`
	Stretching       bool                  `json:"stretching"`
	SocialConnection bool                  `json:"social_connection"`
	WakeTime         string                `json:"wake_time"`
	Tasks            []models.WellnessTask `json:"tasks"`
}

type WellnessService struct {
	store  *WellnessStore
	days   DayClock
	events Notifier
}

func NewWellnessService(store *WellnessStore, days DayClock, events Notifier) *WellnessService {
	return &WellnessService{store: store, days: days, events: orNop(events)}
}

func (s *WellnessService) Today(ctx context.Context, owner string) (*models.Wellness, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	today := s.days.Today()
	rec, err := s.store.GetByDay(ctx, owner, today)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		def := models.DefaultWellness(owner, today)
		return &def, nil
	}
	return rec, nil
}

func (s *WellnessService) Save(ctx context.Context, owner string, in WellnessInput) (*models.Wellness, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	day, err := s.days.ParseOrToday(in.Date)
	if err != nil {
		return nil, err
	}
	if err := validateWellness(&in); err != nil {
		return nil, err
	}

	rec := models.DefaultWellness(owner, day)
	rec.MeditationMinutes = in.Meditation
	rec.SleepHours = in.Sleep
	rec.ExerciseMinutes = in.Exercise
	rec.Steps = in.Steps
	rec.ScreenTimeHours = in.ScreenTime
	rec.WaterGlasses = in.WaterGlasses
	rec.WaterGoalMet = in.Water
	rec.HealthyMeals = in.Healthy
	rec.Reading = in.Reading
	rec.Journaling = in.Journaling
	rec.Stretching = in.Stretching
	rec.SocialConnection = in.SocialConnection
	rec.WakeTime = in.WakeTime
	if len(in.Tasks) > 0 {
		rec.Tasks = datatypes.JSONSlice[models.WellnessTask](in.Tasks)
	}

	saved, err := s.store.UpsertByDay(ctx, owner, day, &rec)
	if err != nil {
		return nil, err
	}
	emitSaved(s.events, owner, models.CategoryWellness, day)
	return saved, nil
}

func validateWellness(in *WellnessInput) error {
	type field struct {
		name string
		v    float64
	}
	for _, f := range []field{
		{"meditation", in.Meditation},
		{"sleep", in.Sleep},
		{"exercise", in.Exercise},
		{"steps", float64(in.Steps)},
		{"screen_time", in.ScreenTime},
		{"water_glasses", in.WaterGlasses},
	} {
		if f.v < 0 {
			return invalidf("%s must not be negative", f.name)
		}
	}
	if in.Sleep > 24 {
		return invalidf("sleep must be at most 24 hours")
	}
	if in.ScreenTime > 24 {
		return invalidf("screen_time must be at most 24 hours")
	}

	in.WakeTime = strings.TrimSpace(in.WakeTime)
	if in.WakeTime != "" {
		if _, err := time.Parse("15:04", in.WakeTime); err != nil {
			return invalidf("wake_time must be HH:MM")
		}
	}

	for i := range in.Tasks {
		in.Tasks[i].Name = strings.TrimSpace(in.Tasks[i].Name)
		if in.Tasks[i].Name == "" {
			return invalidf("task %d needs a name", i+1)
		}
	}
	return nil
}
