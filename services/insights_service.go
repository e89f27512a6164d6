package services

import (
	"context"

	"wellbeing/models"
	"wellbeing/utils"
)

// InsightsService computes read-only aggregates from the three stores. It
// keeps no state of its own; everything is derived on request.
type InsightsService struct {
	gratitude *GratitudeStore
	happiness *HappinessStore
	wellness  *WellnessStore
	days      DayClock
}

func NewInsightsService(g *GratitudeStore, h *HappinessStore, w *WellnessStore, days DayClock) *InsightsService {
	return &InsightsService{gratitude: g, happiness: h, wellness: w, days: days}
}

// ---------- Summary ----------

type Summary struct {
	Date                        string  `json:"date"`
	TotalGratitudeEntries       int     `json:"total_gratitude_entries"`
	TotalEntries                int     `json:"total_entries"`
	TotalGratitudeItems30d      int     `json:"total_gratitude_items_30d"`
	AverageHappinessScore       int     `json:"average_happiness_score"`
	CompletedWellnessActivities int     `json:"completed_wellness_activities"`
	TotalWellnessActivities     int     `json:"total_wellness_activities"`
	WellnessCompletionRatio     float64 `json:"wellness_completion_ratio"`
}

func (s *InsightsService) TodaySummary(ctx context.Context, owner string) (*Summary, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	defer utils.RecordAggregate("summary")

	today := s.days.Today()
	out := &Summary{
		Date:                    today.Format(models.DayLayout),
		TotalWellnessActivities: WellnessChecklistSize,
	}

	from, to := s.days.Window(DefaultWindowDays)
	grats, err := s.gratitude.QueryRange(ctx, owner, from, to, Descending)
	if err != nil {
		return nil, err
	}
	out.TotalEntries = len(grats)
	todayKey := out.Date
	for _, g := range grats {
		out.TotalGratitudeItems30d += len(g.Entries)
		if s.days.Start(g.Day).Format(models.DayLayout) == todayKey {
			out.TotalGratitudeEntries = len(g.Entries)
		}
	}

	h, err := s.happiness.GetByDay(ctx, owner, today)
	if err != nil {
		return nil, err
	}
	if h != nil {
		out.AverageHappinessScore = h.Score
	}

	w, err := s.wellness.GetByDay(ctx, owner, today)
	if err != nil {
		return nil, err
	}
	out.CompletedWellnessActivities = ChecklistCompleted(w)
	out.WellnessCompletionRatio = round2(float64(out.CompletedWellnessActivities) / float64(WellnessChecklistSize))
	return out, nil
}

// ---------- Happiness ----------

func (s *InsightsService) WeeklyHappinessTrend(ctx context.Context, owner string) ([]TrendPoint, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	defer utils.RecordAggregate("weekly_trend")

	today := s.days.Today()
	recs, err := s.happiness.QueryRange(ctx, owner, today.AddDate(0, 0, -(TrendDays-1)), today, Ascending)
	if err != nil {
		return nil, err
	}
	return WeeklyTrend(s.days, recs), nil
}

func (s *InsightsService) MoodDetractorBreakdown(ctx context.Context, owner string, windowDays int) ([]DetractorShare, error) {
	recs, err := s.happinessWindow(ctx, owner, windowDays)
	if err != nil {
		return nil, err
	}
	defer utils.RecordAggregate("detractor_breakdown")
	return DetractorBreakdown(recs), nil
}

func (s *InsightsService) Insights(ctx context.Context, owner string, windowDays int) ([]string, error) {
	recs, err := s.happinessWindow(ctx, owner, windowDays)
	if err != nil {
		return nil, err
	}
	defer utils.RecordAggregate("insights")
	return BuildInsights(s.days, recs), nil
}

// happinessWindow loads the trailing window ascending. windowDays <= 0 means
// the default window.
func (s *InsightsService) happinessWindow(ctx context.Context, owner string, windowDays int) ([]models.Happiness, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if windowDays > MaxWindowDays {
		return nil, invalidf("window must be at most %d days", MaxWindowDays)
	}
	from, to := s.days.Window(windowDays)
	return s.happiness.QueryRange(ctx, owner, from, to, Ascending)
}

// ---------- Wellness ----------

func (s *InsightsService) WellnessCompletionPercentage(ctx context.Context, owner string) (int, error) {
	if err := requireOwner(owner); err != nil {
		return 0, err
	}
	defer utils.RecordAggregate("wellness_completion")

	w, err := s.wellness.GetByDay(ctx, owner, s.days.Today())
	if err != nil {
		return 0, err
	}
	return CompletionPercentage(w), nil
}
