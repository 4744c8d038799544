package model

import "time"

// AdjustedAllocation overrides the computed allocation for one goal while a
// flex event is active.
type AdjustedAllocation struct {
	GoalID    string  `json:"goalId"`
	NewAmount float64 `json:"newAmount"`
}

// FlexEvent represents a user-declared one-time exception to the plan: an
// unexpected expense or income change that pauses or reallocates goal funding
// going forward. Invariant: PausedGoals is a subset of AffectedGoals.
// A flex event never rewrites past transactions.
type FlexEvent struct {
	ID                  string               `json:"id"`
	Date                time.Time            `json:"date"`
	Reason              string               `json:"reason"`
	Amount              float64              `json:"amount"`
	AffectedGoals       []string             `json:"affectedGoals"`
	PausedGoals         []string             `json:"pausedGoals"`
	AdjustedAllocations []AdjustedAllocation `json:"adjustedAllocations"`
	ResumeDate          *time.Time           `json:"resumeDate,omitempty"`
	Acknowledged        bool                 `json:"acknowledged"`
	CreatedAt           time.Time            `json:"createdAt"`
}

// ActiveOn reports whether the event affects allocation for the given date:
// from the event's month onward, until an optional resume date is reached.
// Resolved (acknowledged) events are no longer active.
func (e FlexEvent) ActiveOn(date time.Time) bool {
	if e.Acknowledged {
		return false
	}
	eventMonth := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
	if date.Before(eventMonth) {
		return false
	}
	if e.ResumeDate != nil && !date.Before(*e.ResumeDate) {
		return false
	}
	return true
}

// Pauses reports whether the event pauses contributions for the given goal.
func (e FlexEvent) Pauses(goalID string) bool {
	for _, id := range e.PausedGoals {
		if id == goalID {
			return true
		}
	}
	return false
}

// Affects reports whether the goal is in the event's affected set.
func (e FlexEvent) Affects(goalID string) bool {
	for _, id := range e.AffectedGoals {
		if id == goalID {
			return true
		}
	}
	return false
}
