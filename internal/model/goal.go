package model

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

type Goal struct {
	ID        int64  `db:"id" json:"id"`
	Text      string `db:"goal_text" json:"goal_text"`
	DateAdded string `db:"date_added" json:"date_added"`
	Status    string `db:"status" json:"status"`
}

// GoalDisplay is a goal prepared for listing.
type GoalDisplay struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

func (g Goal) Display() GoalDisplay {
	return GoalDisplay{Text: g.Text, Date: FormatDate(g.DateAdded)}
}
