package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
	"github.com/abk234/TradingAgents-sub000/internal/usecase"
)

// ResultsHandler serves the latest scan output and outcome history.
type ResultsHandler struct {
	repo        domain.ScanRepository
	outcomeRepo domain.OutcomeRepository
	tracker     *usecase.OutcomeTracker
}

func NewResultsHandler(repo domain.ScanRepository, outcomeRepo domain.OutcomeRepository, tracker *usecase.OutcomeTracker) *ResultsHandler {
	return &ResultsHandler{repo: repo, outcomeRepo: outcomeRepo, tracker: tracker}
}

// HandleResults serves GET /api/results: the latest ranked results.
func (h *ResultsHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.repo.LatestResults())
}

// HandleReport serves GET /api/report: ranked results plus skipped and
// flagged tickers from the latest batch.
func (h *ResultsHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	report := h.repo.LatestReport()
	if report == nil {
		http.Error(w, "No scan has completed yet", http.StatusNotFound)
		return
	}
	writeJSON(w, report)
}

// HandlePendingOutcomes serves GET /api/outcomes/pending.
func (h *ResultsHandler) HandlePendingOutcomes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.outcomeRepo.GetPendingOutcomes())
}

// HandleOutcomeStats serves GET /api/outcomes/stats?days=N.
func (h *ResultsHandler) HandleOutcomeStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	from := time.Now().AddDate(0, 0, -days)
	writeJSON(w, h.tracker.Stats(from))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
