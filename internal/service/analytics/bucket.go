package analytics

import (
	"math"
	"time"
)

// weekStart returns the Monday 00:00 UTC of the week containing t.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

// dayStart truncates t to its calendar day in UTC.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekLabel renders the histogram bucket label for a week starting at
// start, e.g. "Jan 06 – Jan 12".
func weekLabel(start time.Time) string {
	end := start.AddDate(0, 0, 6)
	return start.Format("Jan 02") + " – " + end.Format("Jan 02")
}

// round1 rounds to one decimal place. Rollups accumulate on raw values
// and round only here, at presentation, so rounding error never
// compounds across buckets.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// accumulator tracks a running sum and count for one bucket.
type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.count++
}

// mean returns the rounded bucket mean, or 0 for an empty bucket. The 0
// sentinel sits below every valid rating range, so renderers can tell
// "no data" apart from a real minimum.
func (a *accumulator) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return round1(a.sum / float64(a.count))
}
