package services

import (
	"context"
	"testing"

	"wellbeing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWellnessSaveValidation(t *testing.T) {
	s := newTestStores(t)
	svc := NewWellnessService(s.wellness, s.days, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		in      WellnessInput
		wantMsg string
	}{
		{"negative meditation", WellnessInput{Meditation: -1}, "meditation must not be negative"},
		{"negative steps", WellnessInput{Steps: -10}, "steps must not be negative"},
		{"too much sleep", WellnessInput{Sleep: 25}, "sleep must be at most 24 hours"},
		{"bad wake time", WellnessInput{WakeTime: "7am"}, "wake_time must be HH:MM"},
		{"unnamed task", WellnessInput{Tasks: []models.WellnessTask{{Name: " "}}}, "task 1 needs a name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(ctx, "a@example.com", tt.in)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestWellnessSaveAndToday(t *testing.T) {
	s := newTestStores(t)
	svc := NewWellnessService(s.wellness, s.days, nil)
	ctx := context.Background()

	def, err := svc.Today(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Zero(t, def.SleepHours)
	assert.Empty(t, def.Tasks)

	saved, err := svc.Save(ctx, "a@example.com", WellnessInput{
		Meditation:   10,
		Sleep:        7.5,
		WaterGlasses: 3,
		Healthy:      true,
		WakeTime:     " 06:45 ",
		Tasks:        []models.WellnessTask{{Name: "walk", Completed: true}, {Name: "stretch"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "06:45", saved.WakeTime)
	assert.Len(t, saved.Tasks, 2)

	// a second save without tasks clears them
	saved, err = svc.Save(ctx, "a@example.com", WellnessInput{Sleep: 8})
	require.NoError(t, err)
	assert.Empty(t, saved.Tasks)
	assert.Zero(t, saved.MeditationMinutes)
	assert.False(t, saved.HealthyMeals)

	today, err := svc.Today(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 8.0, today.SleepHours)
}
