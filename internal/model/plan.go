package model

import "time"

// Allocation types.
const (
	AllocationEmergency = "emergency"
	AllocationGoal      = "goal"
)

// Allocation is one goal's share of an auto-split pass. Future is true when
// the goal has not started yet: the amount is informational and callers must
// exclude it from "money available this month" totals.
type Allocation struct {
	GoalID   string  `json:"goalId"`
	GoalName string  `json:"goalName"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Future   bool    `json:"future,omitempty"`
}

// AutoSplitResult is the outcome of distributing one period's income across
// the goal set. Conservation holds exactly:
// TotalAllocated + FreeSpend == max(NetIncome, 0).
type AutoSplitResult struct {
	GrossIncome    float64      `json:"grossIncome"`
	NetIncome      float64      `json:"netIncome"`
	Allocations    []Allocation `json:"allocations"`
	FreeSpend      float64      `json:"freeSpend"`
	TotalAllocated float64      `json:"totalAllocated"`
	Warnings       []string     `json:"warnings,omitempty"`
}

// Goal impact classifications used in consequence projections.
const (
	ImpactDelayed = "delayed"
	ImpactPaused  = "paused"
	ImpactReduced = "reduced"
)

// AffectedGoal describes the qualitative knock-on effect of a shortfall on a
// goal other than the one that missed its contribution.
type AffectedGoal struct {
	GoalID   string `json:"goalId"`
	GoalName string `json:"goalName"`
	Impact   string `json:"impact"`
}

// ConsequenceProjection is the recomputed trajectory of a goal after a
// shortfall. It is derived on demand and never mutates the goal.
type ConsequenceProjection struct {
	GoalID              string         `json:"goalId"`
	GoalName            string         `json:"goalName"`
	Shortfall           float64        `json:"shortfall"`
	Year                int            `json:"year"`
	Month               int            `json:"month"`
	NewRemaining        float64        `json:"newRemaining"`
	MonthsRemaining     int            `json:"monthsRemaining"`
	NewRequiredMonthly  float64        `json:"newRequiredMonthly"`
	CanCatchUp          bool           `json:"canCatchUp"`
	DeadlineShiftMonths int            `json:"deadlineShiftMonths"`
	ProjectedDeadline   *time.Time     `json:"projectedDeadline,omitempty"`
	AffectedGoals       []AffectedGoal `json:"affectedGoals"`
	Warnings            []string       `json:"warnings,omitempty"`
}

// Plan health statuses. Thresholds are policy constants in the planner
// package, fixed and covered by tests.
const (
	HealthHealthy  = "healthy"
	HealthWarning  = "warning"
	HealthCritical = "critical"
)

// PlanHealth summarizes the overall state of the savings plan. Recomputed on
// demand; a materialized copy is kept in plan_health_snapshot for cheap reads.
type PlanHealth struct {
	HealthStatus         string  `json:"healthStatus"`
	AllocationEfficiency float64 `json:"allocationEfficiency"` // percent of net income allocated
	FragilityScore       float64 `json:"fragilityScore"`       // 0-100, higher is worse
	SlackMonths          int     `json:"slackMonths"`          // headroom of the tightest goal
	DeviationCount       int     `json:"deviationCount"`       // unacknowledged, trailing 3 months
	OnTrackGoals         int     `json:"onTrackGoals"`
	BehindGoals          int     `json:"behindGoals"`
}

// PlanHealthSnapshot is a pre-calculated PlanHealth row for fast retrieval,
// refreshed on a schedule whenever plan data may have changed.
type PlanHealthSnapshot struct {
	ID           string
	Health       PlanHealth
	GoalCount    int
	CalculatedAt time.Time
}
