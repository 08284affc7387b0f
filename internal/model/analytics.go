package model

type MoodCount struct {
	Mood  string `db:"mood" json:"mood"`
	Count int    `db:"total" json:"count"`
}

type MoodTrend struct {
	Date  string `db:"day" json:"date"`
	Mood  string `db:"mood" json:"mood"`
	Count int    `db:"total" json:"count"`
}

type MoodAnalytics struct {
	MoodCounts   []MoodCount `json:"mood_counts"`
	MoodTrends   []MoodTrend `json:"mood_trends"`
	TotalEntries int         `json:"total_entries"`
}

type GoalProgress struct {
	GoalID      int64  `db:"goal_id" json:"goal_id"`
	GoalText    string `db:"goal_text" json:"goal_text"`
	YesCount    int    `db:"yes_count" json:"yes_count"`
	NoCount     int    `db:"no_count" json:"no_count"`
	MaybeCount  int    `db:"maybe_count" json:"maybe_count"`
	TotalChecks int    `db:"total_checks" json:"total_checks"`
}

type ProgressTrend struct {
	Date     string `db:"day" json:"date"`
	YesCount int    `db:"yes_count" json:"yes_count"`
	NoCount  int    `db:"no_count" json:"no_count"`
}

type ProgressAnalytics struct {
	GoalProgress         []GoalProgress  `json:"goal_progress"`
	ProgressTrends       []ProgressTrend `json:"progress_trends"`
	TotalProgressEntries int             `json:"total_progress_entries"`
}

// Snapshot is the exported state of the journal.
type Snapshot struct {
	GeneratedAt string            `json:"generated_at"`
	Goals       []Goal            `json:"goals"`
	Moods       MoodAnalytics     `json:"mood_data"`
	Progress    ProgressAnalytics `json:"progress_data"`
}
