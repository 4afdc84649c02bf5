package domain

import (
	"context"
	"time"
)

// ScanRepository stores the output of scan runs.
type ScanRepository interface {
	SaveReport(report *BatchReport) error
	LatestReport() *BatchReport
	LatestResults() []ScanResult
}

// OutcomeRepository stores entry outcomes across runs.
type OutcomeRepository interface {
	CreateOutcome(outcome *EntryOutcome) error
	GetPendingOutcomes() []*EntryOutcome
	GetOutcomeByID(id string) (*EntryOutcome, error)
	UpdateOutcome(outcome *EntryOutcome) error
	GetResolvedSince(from time.Time) []*EntryOutcome
}

// BarProvider is the data-provider collaborator. The engine borrows bar
// history read-only; retrieval timeouts and retries belong to the provider.
type BarProvider interface {
	DailyBars(ctx context.Context, ticker string, limit int) ([]PriceBar, error)
}
