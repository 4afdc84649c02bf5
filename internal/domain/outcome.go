package domain

import "time"

// OutcomeStatus is the state of a tracked entry. Transitions are one-way:
// STILL_WAITING is the only non-terminal state.
type OutcomeStatus string

const (
	OutcomeStillWaiting      OutcomeStatus = "STILL_WAITING"
	OutcomeHitTarget         OutcomeStatus = "HIT_TARGET"
	OutcomeStoppedOut        OutcomeStatus = "STOPPED_OUT"
	OutcomeMissedOpportunity OutcomeStatus = "MISSED_OPPORTUNITY"
)

// Terminal reports whether the status can no longer change.
func (s OutcomeStatus) Terminal() bool {
	return s != OutcomeStillWaiting && s != ""
}

// EntryOutcome tracks whether a scan's entry band, target, or stop was
// touched by later price action. Created at scan time as STILL_WAITING;
// mutated only by the outcome tracker.
type EntryOutcome struct {
	ID       string    `json:"id"`
	Ticker   string    `json:"ticker"`
	ScanDate time.Time `json:"scanDate"`

	// Copied from the scan result at creation so resolution does not
	// depend on the result record still being available.
	EntryMin float64  `json:"entryMin"`
	EntryMax float64  `json:"entryMax"`
	Target   *float64 `json:"target,omitempty"`
	StopLoss *float64 `json:"stopLoss,omitempty"`

	Status           OutcomeStatus `json:"status"`
	ActualEntryPrice *float64      `json:"actualEntryPrice,omitempty"`
	DaysToEntry      *int          `json:"daysToEntry,omitempty"`
	ResolvedAt       *time.Time    `json:"resolvedAt,omitempty"`
}

// OutcomeStats summarizes resolved outcomes for a period.
type OutcomeStats struct {
	Total          int     `json:"total"`
	HitTarget      int     `json:"hitTarget"`
	StoppedOut     int     `json:"stoppedOut"`
	Missed         int     `json:"missed"`
	StillWaiting   int     `json:"stillWaiting"`
	HitRate        float64 `json:"hitRate"` // hit / (hit + stopped), percent
	AvgDaysToEntry float64 `json:"avgDaysToEntry"`
}
