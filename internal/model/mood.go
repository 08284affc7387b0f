package model

type MoodEntry struct {
	ID          int64  `db:"id" json:"id"`
	Mood        string `db:"mood" json:"mood"`
	Description string `db:"description" json:"description"`
	DateLogged  string `db:"date_logged" json:"date_logged"`
}
