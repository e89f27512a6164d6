package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"wellbeing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestUpsertByDayReplacesWholeRecord(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	d := day("2026-10-14")

	first := models.DefaultWellness("a@example.com", d)
	first.MeditationMinutes = 15
	first.Reading = true
	first.Tasks = datatypes.JSONSlice[models.WellnessTask]{{Name: "walk", Completed: true}}
	_, err := s.wellness.UpsertByDay(ctx, "a@example.com", d, &first)
	require.NoError(t, err)

	second := models.DefaultWellness("a@example.com", d)
	second.SleepHours = 8
	got, err := s.wellness.UpsertByDay(ctx, "a@example.com", d, &second)
	require.NoError(t, err)

	assert.Equal(t, 8.0, got.SleepHours)
	assert.Zero(t, got.MeditationMinutes, "omitted fields reset to defaults")
	assert.False(t, got.Reading)
	assert.Empty(t, got.Tasks)
}

func TestUpsertByDayIsIdempotent(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	d := day("2026-10-10")

	rec := models.DefaultGratitude("a@example.com", d)
	rec.Entries = datatypes.JSONSlice[string]{"coffee", "sunshine"}

	once, err := s.gratitude.UpsertByDay(ctx, "a@example.com", d, &rec)
	require.NoError(t, err)
	twice, err := s.gratitude.UpsertByDay(ctx, "a@example.com", d, &rec)
	require.NoError(t, err)

	assert.Equal(t, once.ID, twice.ID)
	assert.Equal(t, once.Entries, twice.Entries)

	rows, err := s.gratitude.QueryRange(ctx, "a@example.com", d, d, Descending)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUpsertByDayCollapsesTimeOfDay(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	morning := time.Date(2026, 10, 12, 7, 5, 0, 0, time.UTC)
	night := time.Date(2026, 10, 12, 23, 50, 0, 0, time.UTC)

	rec := models.DefaultHappiness("a@example.com", morning)
	rec.Score = 3
	_, err := s.happiness.UpsertByDay(ctx, "a@example.com", morning, &rec)
	require.NoError(t, err)
	rec.Score = 9
	_, err = s.happiness.UpsertByDay(ctx, "a@example.com", night, &rec)
	require.NoError(t, err)

	got, err := s.happiness.GetByDay(ctx, "a@example.com", day("2026-10-12"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 9, got.Score)
	assert.True(t, got.Day.Equal(day("2026-10-12")))
}

func TestConcurrentUpsertsKeepOneRecord(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	d := day("2026-10-15")

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			rec := models.DefaultHappiness("a@example.com", d)
			rec.Score = score
			_, err := s.happiness.UpsertByDay(ctx, "a@example.com", d, &rec)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rows, err := s.happiness.QueryRange(ctx, "a@example.com", d, d, Descending)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.GreaterOrEqual(t, rows[0].Score, 1)
	assert.LessOrEqual(t, rows[0].Score, 10)
}

func TestDeleteByDay(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	d := day("2026-10-11")

	rec := models.DefaultGratitude("a@example.com", d)
	rec.Entries = datatypes.JSONSlice[string]{"friends"}
	_, err := s.gratitude.UpsertByDay(ctx, "a@example.com", d, &rec)
	require.NoError(t, err)

	deleted, err := s.gratitude.DeleteByDay(ctx, "a@example.com", d)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := s.gratitude.GetByDay(ctx, "a@example.com", d)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = s.gratitude.DeleteByDay(ctx, "a@example.com", d)
	require.NoError(t, err)
	assert.False(t, deleted)

	// the key is free again
	_, err = s.gratitude.UpsertByDay(ctx, "a@example.com", d, &rec)
	require.NoError(t, err)
}

func TestQueryRangeOrderAndOwnerIsolation(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	for i, d := range []string{"2026-10-03", "2026-10-01", "2026-10-02", "2026-09-30"} {
		rec := models.DefaultHappiness("a@example.com", day(d))
		rec.Score = i + 1
		_, err := s.happiness.UpsertByDay(ctx, "a@example.com", day(d), &rec)
		require.NoError(t, err)
	}
	other := models.DefaultHappiness("b@example.com", day("2026-10-02"))
	other.Score = 10
	_, err := s.happiness.UpsertByDay(ctx, "b@example.com", day("2026-10-02"), &other)
	require.NoError(t, err)

	asc, err := s.happiness.QueryRange(ctx, "a@example.com", day("2026-10-01"), day("2026-10-03"), Ascending)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{asc[0].Score, asc[1].Score, asc[2].Score})

	desc, err := s.happiness.QueryRange(ctx, "a@example.com", day("2026-10-01"), day("2026-10-03"), Descending)
	require.NoError(t, err)
	assert.Equal(t, 1, desc[0].Score)

	recent, err := s.happiness.Recent(ctx, "a@example.com", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].Day.Equal(day("2026-10-03")))
}

func TestUpsertIgnoresCallerID(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	a := models.DefaultGratitude("a@example.com", day("2026-10-01"))
	a.Entries = datatypes.JSONSlice[string]{"a"}
	savedA, err := s.gratitude.UpsertByDay(ctx, "a@example.com", a.Day, &a)
	require.NoError(t, err)

	// A copy of a's row re-keyed to another day must not overwrite a.
	b := *savedA
	b.Entries = datatypes.JSONSlice[string]{"b"}
	_, err = s.gratitude.UpsertByDay(ctx, "a@example.com", day("2026-10-02"), &b)
	require.NoError(t, err)

	got, err := s.gratitude.GetByDay(ctx, "a@example.com", day("2026-10-01"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"a"}, []string(got.Entries))
}
