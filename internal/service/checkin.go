package service

import (
	"context"

	"github.com/templui/aura/internal/classify"
	"github.com/templui/aura/internal/model"
)

type CheckInState string

const (
	StateAwaitingAnswer CheckInState = "awaiting_answer"
	StateRecordedYes    CheckInState = "recorded_yes"
	StateRecordedNo     CheckInState = "recorded_no"
	StateRecordedMaybe  CheckInState = "recorded_maybe"
)

func recordedState(status model.ProgressStatus) CheckInState {
	switch status {
	case model.ProgressYes:
		return StateRecordedYes
	case model.ProgressNo:
		return StateRecordedNo
	default:
		return StateRecordedMaybe
	}
}

type CheckInResult struct {
	Goal   model.Goal
	Status model.ProgressStatus
	State  CheckInState
	Saved  bool
	Reply  string
}

// CheckIn walks the active goals one at a time, asking whether each was
// worked on. Goals left when the check-in is interrupted stay unchecked.
type CheckIn struct {
	goals       *GoalService
	queue       []model.Goal
	pos         int
	interrupted bool
	results     []CheckInResult
}

func (s *GoalService) StartCheckIn(ctx context.Context) *CheckIn {
	return &CheckIn{
		goals: s,
		queue: s.store.ListActiveGoalsWithIDs(ctx),
	}
}

// Current returns the goal awaiting an answer.
func (c *CheckIn) Current() (model.Goal, bool) {
	if c.Done() {
		return model.Goal{}, false
	}
	return c.queue[c.pos], true
}

// State returns the state of the goal at index i of the check-in.
func (c *CheckIn) State(i int) CheckInState {
	if i < len(c.results) {
		return c.results[i].State
	}
	return StateAwaitingAnswer
}

func (c *CheckIn) Len() int {
	return len(c.queue)
}

// Answer records input for the current goal and moves to the next one.
func (c *CheckIn) Answer(ctx context.Context, input string) (CheckInResult, bool) {
	goal, ok := c.Current()
	if !ok {
		return CheckInResult{}, false
	}

	status := classify.ParseAnswer(input)
	saved := c.goals.RecordProgress(ctx, goal.ID, status)
	result := CheckInResult{
		Goal:   goal,
		Status: status,
		State:  recordedState(status),
		Saved:  saved,
		Reply:  c.goals.ProgressReply(goal.Text, status),
	}

	c.results = append(c.results, result)
	c.pos++
	return result, true
}

// Interrupt stops the check-in without touching the remaining goals.
func (c *CheckIn) Interrupt() {
	c.interrupted = true
}

func (c *CheckIn) Interrupted() bool {
	return c.interrupted
}

func (c *CheckIn) Done() bool {
	return c.interrupted || c.pos >= len(c.queue)
}

func (c *CheckIn) Results() []CheckInResult {
	return c.results
}

// RunCheckIn asks about every active goal in turn. An error from ask, such
// as end of input, interrupts the check-in; it is not reported as a failure.
func (s *GoalService) RunCheckIn(ctx context.Context, ask func(model.Goal) (string, error), onResult func(CheckInResult)) *CheckIn {
	checkIn := s.StartCheckIn(ctx)
	for {
		goal, ok := checkIn.Current()
		if !ok {
			return checkIn
		}
		if ctx.Err() != nil {
			checkIn.Interrupt()
			return checkIn
		}

		answer, err := ask(goal)
		if err != nil {
			checkIn.Interrupt()
			return checkIn
		}

		result, _ := checkIn.Answer(ctx, answer)
		if onResult != nil {
			onResult(result)
		}
	}
}
