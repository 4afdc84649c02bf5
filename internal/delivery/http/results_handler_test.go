package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
	"github.com/abk234/TradingAgents-sub000/internal/repository"
	"github.com/abk234/TradingAgents-sub000/internal/usecase"
)

func newTestHandler(t *testing.T) (*ResultsHandler, *repository.InMemoryScanRepository, *repository.InMemoryOutcomeRepository) {
	t.Helper()
	scanRepo := repository.NewInMemoryScanRepository()
	outcomeRepo := repository.NewInMemoryOutcomeRepository()
	tracker := usecase.NewOutcomeTracker(outcomeRepo, nil, domain.DefaultScanConfig(), 250, 1)
	return NewResultsHandler(scanRepo, outcomeRepo, tracker), scanRepo, outcomeRepo
}

func TestHandleResults(t *testing.T) {
	handler, scanRepo, _ := newTestHandler(t)

	report := &domain.BatchReport{
		ScanDate: time.Now(),
		Results: []domain.ScanResult{
			{Ticker: "AAPL", Recommendation: domain.RecBuy, PriorityScore: 70},
		},
	}
	if err := scanRepo.SaveReport(report); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	handler.HandleResults(rec, httptest.NewRequest(http.MethodGet, "/api/results", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %s", ct)
	}
	var results []domain.ScanResult
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Ticker != "AAPL" {
		t.Errorf("results = %+v", results)
	}
}

func TestHandleResults_MethodNotAllowed(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleResults(rec, httptest.NewRequest(http.MethodPost, "/api/results", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHandleReport_NotFoundBeforeFirstScan(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleReport(rec, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHandlePendingOutcomes(t *testing.T) {
	handler, _, outcomeRepo := newTestHandler(t)

	err := outcomeRepo.CreateOutcome(&domain.EntryOutcome{
		ID: "o1", Ticker: "AAPL", ScanDate: time.Now(),
		EntryMin: 98, EntryMax: 102, Status: domain.OutcomeStillWaiting,
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	handler.HandlePendingOutcomes(rec, httptest.NewRequest(http.MethodGet, "/api/outcomes/pending", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var outcomes []domain.EntryOutcome
	if err := json.NewDecoder(rec.Body).Decode(&outcomes); err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 1 || outcomes[0].ID != "o1" {
		t.Errorf("outcomes = %+v", outcomes)
	}
}

func TestHandleOutcomeStats(t *testing.T) {
	handler, _, outcomeRepo := newTestHandler(t)

	resolvedAt := time.Now().AddDate(0, 0, -2)
	err := outcomeRepo.CreateOutcome(&domain.EntryOutcome{
		ID: "o1", Ticker: "AAPL", ScanDate: resolvedAt.AddDate(0, 0, -5),
		Status: domain.OutcomeHitTarget, ResolvedAt: &resolvedAt,
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	handler.HandleOutcomeStats(rec, httptest.NewRequest(http.MethodGet, "/api/outcomes/stats?days=7", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats domain.OutcomeStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatal(err)
	}
	if stats.Total != 1 || stats.HitTarget != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.HitRate != 100 {
		t.Errorf("hitRate = %v", stats.HitRate)
	}
}
