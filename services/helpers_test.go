package services

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"wellbeing/config"
	"wellbeing/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Friday 16 October 2026, mid-afternoon.
var testNow = time.Date(2026, 10, 16, 15, 30, 0, 0, time.UTC)

func testClock() DayClock {
	return DayClock{Loc: time.UTC, Now: func() time.Time { return testNow }}
}

func day(s string) time.Time {
	t, err := time.ParseInLocation(models.DayLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "wellbeing.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

type testStores struct {
	gratitude *GratitudeStore
	happiness *HappinessStore
	wellness  *WellnessStore
	days      DayClock
}

func newTestStores(t *testing.T) testStores {
	db := newTestDB(t)
	days := testClock()
	return testStores{
		gratitude: NewDailyStore[models.Gratitude, *models.Gratitude](db, days),
		happiness: NewDailyStore[models.Happiness, *models.Happiness](db, days),
		wellness:  NewDailyStore[models.Wellness, *models.Wellness](db, days),
		days:      days,
	}
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingNotifier) Publish(_ string, ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recordingNotifier) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func intPtr(v int) *int { return &v }
