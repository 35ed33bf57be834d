package engine

import "time"

// safetyMargin is subtracted from every time budget before the clock
// starts, a fixed cushion against scheduler jitter rather than a
// derived quantity — see DESIGN.md's Open Question decisions.
const safetyMargin = 500 * time.Millisecond

// TimeManager tracks a single search's elapsed time against a fixed
// budget. Unlike a UCI-style manager balancing a whole game clock, it
// only ever governs one find-best-move call.
type TimeManager struct {
	budget    time.Duration
	startTime time.Time
}

// NewTimeManager creates a time manager for a search given time_budget_s
// seconds, applying the fixed safety margin.
func NewTimeManager(budgetSeconds float64) *TimeManager {
	budget := time.Duration(budgetSeconds*float64(time.Second)) - safetyMargin
	if budget < 0 {
		budget = 0
	}
	return &TimeManager{budget: budget}
}

// Start records the search's start time.
func (tm *TimeManager) Start() {
	tm.startTime = time.Now()
}

// Elapsed returns the time since Start was called.
func (tm *TimeManager) Elapsed() time.Duration {
	return time.Since(tm.startTime)
}

// Expired reports whether the budget has been used up.
func (tm *TimeManager) Expired() bool {
	return tm.Elapsed() >= tm.budget
}
