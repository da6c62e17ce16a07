package statistic

import (
	"fmt"
	"strings"
	"time"

	"bevlog/internal/models"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

const dateLayout = "2006-01-02"

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// CountForPeriod buckets the log collection into a label→count mapping
// for the requested period relative to now. Bucketing rules:
//
//   - day: the log's UTC calendar date equals now's UTC calendar date.
//   - week: rolling window, timestamp ≥ now − 7 days, no upper bound.
//   - month: local month and year equal now shifted by monthOffset
//     calendar months (offsets roll across year boundaries).
//   - year: local year equals now's.
//
// monthOffset is only honored for PeriodMonth. Variant-suffixed labels
// count separately from their base name.
func CountForPeriod(logs []models.BeverageLog, period Period, monthOffset int, now time.Time) map[string]int {
	counts := make(map[string]int)

	today := now.UTC().Format(dateLayout)
	weekAgo := now.Add(-7 * 24 * time.Hour).UnixMilli()
	target := now.AddDate(0, monthOffset, 0)

	for _, log := range logs {
		logTime := time.UnixMilli(log.Timestamp)

		inPeriod := false
		switch period {
		case PeriodDay:
			inPeriod = logTime.UTC().Format(dateLayout) == today
		case PeriodWeek:
			inPeriod = log.Timestamp >= weekAgo
		case PeriodMonth:
			inPeriod = logTime.Month() == target.Month() && logTime.Year() == target.Year()
		case PeriodYear:
			inPeriod = logTime.Year() == now.Year()
		}

		if inPeriod {
			counts[log.Beverage]++
		}
	}

	return counts
}

// Summary holds the derived metrics for one period's counts.
type Summary struct {
	Total   int     `json:"total"`
	Average float64 `json:"average"`
	Liters  float64 `json:"liters"`
}

// Summarize computes the total, the average per distinct label (0 when
// no labels are present) and the estimated liters.
func Summarize(counts map[string]int) Summary {
	var s Summary
	for label, count := range counts {
		s.Total += count
		s.Liters += float64(count) * VolumePerServing(label)
	}
	if len(counts) > 0 {
		s.Average = float64(s.Total) / float64(len(counts))
	}
	return s
}

type volumeRule struct {
	keyword string
	liters  float64
}

// volumeTable maps label substrings to standard serving sizes in liters.
// Order is the match priority: the first containing keyword wins, so
// "Guinness Pint" resolves to the pint size, not the Guinness default.
var volumeTable = []volumeRule{
	{"20cl", 0.2},
	{"33cl", 0.33},
	{"pint", 0.568},
	{"red", 0.15},
	{"white", 0.15},
	{"rosé", 0.15},
	{"shot", 0.04},
	{"guinness", 0.568},
	{"beer", 0.33},
	{"wine", 0.15},
	{"sidra", 0.33},
	{"cocktail", 0.25},
}

// FallbackVolume applies when no keyword matches the label.
const FallbackVolume = 0.25

// VolumePerServing infers a serving volume from a free-text label by
// case-insensitive substring containment. Approximate by design.
func VolumePerServing(label string) float64 {
	lower := strings.ToLower(label)
	for _, rule := range volumeTable {
		if strings.Contains(lower, rule.keyword) {
			return rule.liters
		}
	}
	return FallbackVolume
}
