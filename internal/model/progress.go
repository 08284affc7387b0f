package model

type ProgressStatus string

const (
	ProgressYes   ProgressStatus = "yes"
	ProgressNo    ProgressStatus = "no"
	ProgressMaybe ProgressStatus = "maybe"
)

func (s ProgressStatus) Valid() bool {
	switch s {
	case ProgressYes, ProgressNo, ProgressMaybe:
		return true
	}
	return false
}

type ProgressCheck struct {
	ID        int64          `db:"id" json:"id"`
	GoalID    int64          `db:"goal_id" json:"goal_id"`
	Status    ProgressStatus `db:"status" json:"status"`
	CreatedAt string         `db:"created_at" json:"created_at"`
}
