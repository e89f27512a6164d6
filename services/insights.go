package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"wellbeing/models"
)

const (
	DefaultWindowDays = 30
	MaxWindowDays     = 366
	TrendDays         = 7
	InsightCount      = 4

	// WellnessChecklistSize is the number of activities TodaySummary checks.
	WellnessChecklistSize = 6
	sleepGoalHours        = 8
	waterGoalGlasses      = 2

	DefaultDetractorColor = "#94a3b8"
)

var detractorColors = map[string]string{
	"Stress":              "#ef4444",
	"Anxiety":             "#f97316",
	"Overthinking":        "#eab308",
	"Anger":               "#dc2626",
	"Burnout":             "#7c2d12",
	"Loneliness":          "#6366f1",
	"Work Pressure":       "#8b5cf6",
	"Health Issues":       "#ec4899",
	"Financial Worries":   "#14b8a6",
	"Relationship Issues": "#f43f5e",
}

// PlaceholderInsights is returned verbatim when there is nothing to analyse.
var PlaceholderInsights = []string{
	"Start tracking your happiness to get personalized insights! 📈",
	"Add your first happiness reflection to begin your journey 🌟",
	"Your insights will appear here as you track your mood 📊",
	"The more you track, the better insights you'll get! 🎯",
}

var generalInsights = []string{
	"Regular tracking helps identify patterns in your mood 📊",
	"Try to maintain a consistent sleep schedule for better mood 🌙",
	"Exercise can significantly improve your happiness levels 🏃‍♀️",
	"Practicing gratitude daily can boost your overall happiness 🙏",
	"Social connections are key to long-term happiness 👥",
	"Mindfulness can help manage stress and improve mood 🧘‍♀️",
}

func DetractorColor(label string) string {
	if c, ok := detractorColors[label]; ok {
		return c
	}
	return DefaultDetractorColor
}

// ChecklistCompleted counts the fixed daily activities w satisfies.
func ChecklistCompleted(w *models.Wellness) int {
	if w == nil {
		return 0
	}
	n := 0
	for _, done := range []bool{
		w.MeditationMinutes > 0,
		w.SleepHours >= sleepGoalHours,
		w.ExerciseMinutes > 0,
		w.WaterGlasses >= waterGoalGlasses || w.WaterGoalMet,
		w.HealthyMeals,
		w.WakeTime != "",
	} {
		if done {
			n++
		}
	}
	return n
}

// CompletionPercentage is the share of explicit checklist tasks marked done.
func CompletionPercentage(w *models.Wellness) int {
	if w == nil || len(w.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range w.Tasks {
		if t.Completed {
			done++
		}
	}
	return percent(done, len(w.Tasks))
}

type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// WeeklyTrend returns one point per day from today-6 to today, oldest first.
func WeeklyTrend(days DayClock, records []models.Happiness) []TrendPoint {
	today := days.Today()
	idx := make(map[string]int, len(records))
	for _, r := range records {
		idx[days.Start(r.Day).Format(models.DayLayout)] = r.Score
	}

	out := make([]TrendPoint, 0, TrendDays)
	for i := TrendDays - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(models.DayLayout)
		out = append(out, TrendPoint{Date: key, Score: idx[key]})
	}
	return out
}

type DetractorShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type labelCount struct {
	label string
	n     int
}

// countLabels tallies detractor labels, keeping first-seen order.
func countLabels(records []models.Happiness) ([]labelCount, int) {
	pos := map[string]int{}
	var counts []labelCount
	total := 0
	for _, r := range records {
		for _, d := range r.MoodDetractors {
			i, ok := pos[d.Label]
			if !ok {
				i = len(counts)
				pos[d.Label] = i
				counts = append(counts, labelCount{label: d.Label})
			}
			counts[i].n++
			total++
		}
	}
	return counts, total
}

// DetractorBreakdown gives each label's share of all detractor occurrences,
// largest first.
func DetractorBreakdown(records []models.Happiness) []DetractorShare {
	counts, total := countLabels(records)
	out := make([]DetractorShare, 0, len(counts))
	if total == 0 {
		return out
	}
	for _, c := range counts {
		out = append(out, DetractorShare{
			Name:  c.label,
			Value: percent(c.n, total),
			Color: DetractorColor(c.label),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// BuildInsights derives up to InsightCount sentences from a window of
// happiness records.
func BuildInsights(days DayClock, records []models.Happiness) []string {
	if len(records) == 0 {
		return append([]string(nil), PlaceholderInsights...)
	}

	recs := append([]models.Happiness(nil), records...)
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Day.Before(recs[j].Day) })

	var insights []string

	var weekday, weekend []int
	for _, r := range recs {
		switch days.Start(r.Day).Weekday() {
		case time.Saturday, time.Sunday:
			weekend = append(weekend, r.Score)
		default:
			weekday = append(weekday, r.Score)
		}
	}
	if len(weekday) > 0 && len(weekend) > 0 {
		wd, we := mean(weekday), mean(weekend)
		if we > wd {
			insights = append(insights, fmt.Sprintf("You're %d%% happier on weekends! 🌅", roundInt((we-wd)*10)))
		}
	}

	if counts, _ := countLabels(recs); len(counts) > 0 {
		top := counts[0]
		for _, c := range counts[1:] {
			if c.n > top.n {
				top = c
			}
		}
		insights = append(insights, fmt.Sprintf("%s affects your mood %d%% of the time 🎯", top.label, percent(top.n, len(recs))))
	}

	all := scores(recs)
	recent := all
	if len(recent) > TrendDays {
		recent = recent[len(recent)-TrendDays:]
	}
	if r, o := mean(recent), mean(all); r > o {
		insights = append(insights, fmt.Sprintf("Your happiness has improved by %d%% in the last week! 📈", roundInt((r-o)*10)))
	}

	insights = append(insights, fmt.Sprintf("You've tracked your happiness for %d days in a row! Keep up the great work! 🎉", len(recs)))

	return padInsights(insights)
}

// padInsights tops the list up from the generic pool. If the pool runs out
// first the list stays short.
func padInsights(insights []string) []string {
	seen := make(map[string]bool, len(insights))
	for _, s := range insights {
		seen[s] = true
	}
	for _, tip := range generalInsights {
		if len(insights) >= InsightCount {
			break
		}
		if seen[tip] {
			continue
		}
		seen[tip] = true
		insights = append(insights, tip)
	}
	return insights
}

func scores(recs []models.Happiness) []int {
	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.Score
	}
	return out
}

func mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return roundInt(float64(part) / float64(whole) * 100)
}

func roundInt(v float64) int { return int(math.Round(v)) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
