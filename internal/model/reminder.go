package model

type Reminder struct {
	ID        int64  `db:"id" json:"id"`
	GoalID    int64  `db:"goal_id" json:"goal_id"`
	Message   string `db:"message" json:"message"`
	GoalText  string `db:"goal_text" json:"goal_text"`
	CreatedAt string `db:"created_at" json:"created_at"`
	Read      bool   `db:"is_read" json:"read"`
}
