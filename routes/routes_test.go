package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"wellbeing/config"
	"wellbeing/models"
	"wellbeing/services"
	"wellbeing/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const secret = "test-secret"

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, config.Migrate(db))

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	days := services.DayClock{Loc: time.UTC, Now: func() time.Time { return now }}
	hub := services.NewRealtimeHub(nil)

	g := services.NewDailyStore[models.Gratitude, *models.Gratitude](db, days)
	h := services.NewDailyStore[models.Happiness, *models.Happiness](db, days)
	w := services.NewDailyStore[models.Wellness, *models.Wellness](db, days)

	router := SetupRouter(Deps{
		DB:        db,
		JWTSecret: secret,
		Gratitude: services.NewGratitudeService(g, days, hub),
		Happiness: services.NewHappinessService(h, days, hub),
		Wellness:  services.NewWellnessService(w, days, hub),
		Insights:  services.NewInsightsService(g, h, w, days),
		Calendar:  services.NewCalendarService(g, h, w, days),
		Realtime:  hub,
	})

	tok, err := utils.GenerateJWT("a@example.com", secret, time.Hour)
	require.NoError(t, err)
	return &testAPI{t: t, router: router, token: tok}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestPublicRoutes(t *testing.T) {
	api := newTestAPI(t)
	api.token = ""

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/readyz", nil).Code)

	m := api.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), "http_request_duration_seconds")

	w := api.do(http.MethodGet, "/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGratitudeFlow(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/gratitudes", map[string]any{"date": "2026-10-15", "gratitudes": []string{"tea", "books"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[models.Gratitude](t, w)
	assert.Equal(t, []string{"tea", "books"}, []string(saved.Entries))
	assert.Equal(t, "a@example.com", saved.Owner)

	w = api.do(http.MethodPost, "/gratitudes", map[string]any{"date": "2026-10-15", "gratitudes": []string{"1", "2", "3", "4", "5", "6"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "between 1 and 5")

	w = api.do(http.MethodPost, "/gratitudes", map[string]any{"date": "2026-10-15", "gratitudes": "tea"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/gratitudes/day?date=2026-10-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.Gratitude](t, w).Entries, 2)

	w = api.do(http.MethodGet, "/gratitudes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Gratitude](t, w), 1)

	w = api.do(http.MethodDelete, "/gratitudes?date=2026-10-15", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/gratitudes/day?date=2026-10-15", nil)
	assert.Empty(t, decode[models.Gratitude](t, w).Entries)
}

func TestHappinessAndInsightsFlow(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/happiness", map[string]any{"score": 11, "reflection": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/happiness", map[string]any{
		"score":      8,
		"reflection": "good walk",
		"mood_detractors": []map[string]any{
			{"id": "stress", "label": "Stress", "severity": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/mood-detractors", map[string]any{
		"mood_detractors": []map[string]any{
			{"id": "anxiety", "label": "Anxiety", "severity": 3},
			{"id": "stress", "label": "Stress", "severity": 1},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/happiness", nil)
	today := decode[models.Happiness](t, w)
	assert.Equal(t, 8, today.Score)
	assert.Len(t, today.MoodDetractors, 2)

	w = api.do(http.MethodGet, "/happiness/weekly", nil)
	trend := decode[[]services.TrendPoint](t, w)
	require.Len(t, trend, 7)
	assert.Equal(t, services.TrendPoint{Date: "2026-10-16", Score: 8}, trend[6])

	w = api.do(http.MethodGet, "/happiness/detractors?window=7", nil)
	shares := decode[[]services.DetractorShare](t, w)
	require.Len(t, shares, 2)
	assert.Equal(t, 50, shares[0].Value)

	w = api.do(http.MethodGet, "/happiness/detractors?window=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/happiness/insights", nil)
	insights := decode[map[string][]string](t, w)["insights"]
	assert.Len(t, insights, 4)
	assert.Equal(t, "Anxiety affects your mood 100% of the time 🎯", insights[0])
}

func TestWellnessStatsAndCalendar(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/wellness", map[string]any{
		"sleep":     8.5,
		"healthy":   true,
		"wake_time": "06:30",
		"tasks": []map[string]any{
			{"name": "walk", "completed": true},
			{"name": "read", "completed": false},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/wellness/completion", nil)
	assert.JSONEq(t, `{"percentage":50}`, w.Body.String())

	w = api.do(http.MethodGet, "/stats", nil)
	stats := decode[services.Summary](t, w)
	assert.Equal(t, 3, stats.CompletedWellnessActivities)
	assert.Equal(t, 6, stats.TotalWellnessActivities)

	w = api.do(http.MethodGet, "/calendar", nil)
	cal := decode[services.CalendarData](t, w)
	require.Len(t, cal.Wellness, 1)
	assert.Equal(t, 8.5, cal.Wellness[0].Sleep)

	w = api.do(http.MethodGet, "/calendar?from=2026-10-20&to=2026-10-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportRouteOnlyWhenConfigured(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodPost, "/export", map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
