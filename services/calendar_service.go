package services

import (
	"context"
	"time"

	"wellbeing/models"
)

type CalendarGratitude struct {
	Date  string   `json:"date"`
	Items []string `json:"items"`
}

type CalendarWellness struct {
	Date             string  `json:"date"`
	Meditation       float64 `json:"meditation"`
	Sleep            float64 `json:"sleep"`
	Exercise         float64 `json:"exercise"`
	Steps            int     `json:"steps"`
	Water            bool    `json:"water"`
	WaterGlasses     float64 `json:"water_glasses"`
	Healthy          bool    `json:"healthy"`
	Reading          bool    `json:"reading"`
	Journaling       bool    `json:"journaling"`
	Stretching       bool    `json:"stretching"`
	SocialConnection bool    `json:"social_connection"`
	ScreenTime       float64 `json:"screen_time"`
	WakeTime         string  `json:"wake_time"`
}

type CalendarHappiness struct {
	Date   string `json:"date"`
	Rating int    `json:"rating"`
	Notes  string `json:"notes"`
}

type CalendarDetractor struct {
	Label    string `json:"label"`
	Severity int    `json:"severity"`
	Notes    string `json:"notes"`
}

type CalendarMood struct {
	Date           string              `json:"date"`
	MoodDetractors []CalendarDetractor `json:"mood_detractors"`
}

// CalendarData is every record in a day range, grouped by kind, newest first.
type CalendarData struct {
	From      string              `json:"from"`
	To        string              `json:"to"`
	Gratitude []CalendarGratitude `json:"gratitude"`
	Wellness  []CalendarWellness  `json:"wellness"`
	Happiness []CalendarHappiness `json:"happiness"`
	Mood      []CalendarMood      `json:"mood"`
}

// Records is the number of stored documents the range covers.
func (c *CalendarData) Records() int {
	return len(c.Gratitude) + len(c.Wellness) + len(c.Happiness)
}

type CalendarService struct {
	gratitude *GratitudeStore
	happiness *HappinessStore
	wellness  *WellnessStore
	days      DayClock
}

func NewCalendarService(g *GratitudeStore, h *HappinessStore, w *WellnessStore, days DayClock) *CalendarService {
	return &CalendarService{gratitude: g, happiness: h, wellness: w, days: days}
}

// Resolve turns optional from/to day keys into a range. A missing from is
// the first of the current month; a missing to is the last day of from's month.
func (s *CalendarService) Resolve(fromStr, toStr string) (time.Time, time.Time, error) {
	today := s.days.Today()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	var err error
	if fromStr != "" {
		if from, err = s.days.Parse(fromStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	to := time.Date(from.Year(), from.Month()+1, 0, 0, 0, 0, 0, from.Location())
	if toStr != "" {
		if to, err = s.days.Parse(toStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, invalidf("to must not be before from")
	}
	if to.Sub(from) > MaxWindowDays*24*time.Hour {
		return time.Time{}, time.Time{}, invalidf("range must be at most %d days", MaxWindowDays)
	}
	return from, to, nil
}

func (s *CalendarService) Range(ctx context.Context, owner, fromStr, toStr string) (*CalendarData, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	from, to, err := s.Resolve(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	grats, err := s.gratitude.QueryRange(ctx, owner, from, to, Descending)
	if err != nil {
		return nil, err
	}
	wells, err := s.wellness.QueryRange(ctx, owner, from, to, Descending)
	if err != nil {
		return nil, err
	}
	haps, err := s.happiness.QueryRange(ctx, owner, from, to, Descending)
	if err != nil {
		return nil, err
	}

	out := &CalendarData{
		From:      from.Format(models.DayLayout),
		To:        to.Format(models.DayLayout),
		Gratitude: make([]CalendarGratitude, 0, len(grats)),
		Wellness:  make([]CalendarWellness, 0, len(wells)),
		Happiness: make([]CalendarHappiness, 0, len(haps)),
		Mood:      make([]CalendarMood, 0, len(haps)),
	}

	for _, g := range grats {
		items := []string(g.Entries)
		if items == nil {
			items = []string{}
		}
		out.Gratitude = append(out.Gratitude, CalendarGratitude{Date: s.key(g.Day), Items: items})
	}

	for _, w := range wells {
		out.Wellness = append(out.Wellness, CalendarWellness{
			Date:             s.key(w.Day),
			Meditation:       w.MeditationMinutes,
			Sleep:            w.SleepHours,
			Exercise:         w.ExerciseMinutes,
			Steps:            w.Steps,
			Water:            w.WaterGoalMet,
			WaterGlasses:     w.WaterGlasses,
			Healthy:          w.HealthyMeals,
			Reading:          w.Reading,
			Journaling:       w.Journaling,
			Stretching:       w.Stretching,
			SocialConnection: w.SocialConnection,
			ScreenTime:       w.ScreenTimeHours,
			WakeTime:         w.WakeTime,
		})
	}

	for _, h := range haps {
		day := s.key(h.Day)
		out.Happiness = append(out.Happiness, CalendarHappiness{Date: day, Rating: h.Score, Notes: h.Reflection})

		ds := make([]CalendarDetractor, 0, len(h.MoodDetractors))
		for _, d := range h.MoodDetractors {
			ds = append(ds, CalendarDetractor{Label: d.Label, Severity: d.Severity, Notes: d.Notes})
		}
		out.Mood = append(out.Mood, CalendarMood{Date: day, MoodDetractors: ds})
	}

	return out, nil
}

func (s *CalendarService) key(t time.Time) string {
	return s.days.Start(t).Format(models.DayLayout)
}
