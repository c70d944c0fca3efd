package domain

import "time"

// MoodCount is a single bar of a mood histogram.
type MoodCount struct {
	Mood  Mood
	Count int
}

// WeekBucket is one calendar week of the weekly mood histogram.
// Counts always holds one entry per mood in canonical order, zero-filled.
type WeekBucket struct {
	Label  string
	Start  time.Time
	Counts []MoodCount
}

// HeatmapDay is one cell of the monthly energy heatmap. Days without
// entries carry MeanEnergy 0 and Count 0.
type HeatmapDay struct {
	Date       time.Time
	MeanEnergy float64
	Count      int
}

// ComplexityAverage is the mean satisfaction for one complexity level.
type ComplexityAverage struct {
	Complexity      Complexity
	AvgSatisfaction float64
	Count           int
}

// ScatterPoint is one raw entry projected onto the energy/satisfaction
// plane. Points are not bucketed or deduplicated.
type ScatterPoint struct {
	Energy       int
	Satisfaction float64
	Date         time.Time
}

// TrendPoint is the mean energy of entries for one calendar day. Days
// without entries do not appear in a trend series.
type TrendPoint struct {
	Date      time.Time
	AvgEnergy float64
	Count     int
}

// WeekdayAverage is the mean satisfaction for one day of the week,
// Monday through Sunday.
type WeekdayAverage struct {
	Weekday         time.Weekday
	Label           string
	AvgSatisfaction float64
	Count           int
}

// MoodShare is one slice of the organization mood distribution.
type MoodShare struct {
	Mood    Mood
	Count   int
	Percent float64
}

// DashboardSummary is the rolled-up personal summary for a recent
// window. Modal fields are nil when the window holds no entries.
type DashboardSummary struct {
	EntryCount         int
	DominantMood       *Mood
	DominantComplexity *Complexity
	AvgEnergy          float64
	AvgSatisfaction    float64
}
