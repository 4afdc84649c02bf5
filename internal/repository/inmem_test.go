package repository

import (
	"testing"
	"time"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

func TestInMemoryScanRepository(t *testing.T) {
	repo := NewInMemoryScanRepository()

	if repo.LatestReport() != nil || repo.LatestResults() != nil {
		t.Error("fresh repository should be empty")
	}

	report := &domain.BatchReport{
		ScanDate: time.Now(),
		Results: []domain.ScanResult{
			{Ticker: "AAPL", Recommendation: domain.RecBuy},
		},
	}
	if err := repo.SaveReport(report); err != nil {
		t.Fatal(err)
	}

	results := repo.LatestResults()
	if len(results) != 1 || results[0].Ticker != "AAPL" {
		t.Fatalf("results = %+v", results)
	}

	// The returned slice is a copy; mutating it must not leak back.
	results[0].Ticker = "MUTATED"
	if repo.LatestResults()[0].Ticker != "AAPL" {
		t.Error("caller mutation leaked into the repository")
	}
}

func TestInMemoryOutcomeRepository(t *testing.T) {
	repo := NewInMemoryOutcomeRepository()

	outcome := &domain.EntryOutcome{
		ID:       "o1",
		Ticker:   "AAPL",
		ScanDate: time.Now(),
		EntryMin: 98,
		EntryMax: 102,
		Status:   domain.OutcomeStillWaiting,
	}
	if err := repo.CreateOutcome(outcome); err != nil {
		t.Fatal(err)
	}
	if err := repo.CreateOutcome(outcome); err == nil {
		t.Error("duplicate ID accepted")
	}

	pending := repo.GetPendingOutcomes()
	if len(pending) != 1 {
		t.Fatalf("pending = %d", len(pending))
	}
	// Copy-on-read: mutating the returned outcome must not touch the store.
	pending[0].Status = domain.OutcomeHitTarget
	if stored, _ := repo.GetOutcomeByID("o1"); stored.Status != domain.OutcomeStillWaiting {
		t.Error("caller mutation leaked into the repository")
	}

	resolvedAt := time.Now()
	outcome.Status = domain.OutcomeHitTarget
	outcome.ResolvedAt = &resolvedAt
	if err := repo.UpdateOutcome(outcome); err != nil {
		t.Fatal(err)
	}

	if len(repo.GetPendingOutcomes()) != 0 {
		t.Error("terminal outcome still pending")
	}
	resolved := repo.GetResolvedSince(resolvedAt.Add(-time.Minute))
	if len(resolved) != 1 || resolved[0].Status != domain.OutcomeHitTarget {
		t.Errorf("resolved = %+v", resolved)
	}
	if len(repo.GetResolvedSince(resolvedAt.Add(time.Minute))) != 0 {
		t.Error("resolved-since filter ignored the cutoff")
	}

	if err := repo.UpdateOutcome(&domain.EntryOutcome{ID: "missing"}); err == nil {
		t.Error("update of a missing outcome accepted")
	}
	if _, err := repo.GetOutcomeByID("missing"); err == nil {
		t.Error("lookup of a missing outcome accepted")
	}
}
