package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

// InMemoryScanRepository keeps the latest batch report. Scans replace the
// whole report at once, so a single slot is enough for serving.
type InMemoryScanRepository struct {
	report *domain.BatchReport
	mu     sync.RWMutex
}

func NewInMemoryScanRepository() *InMemoryScanRepository {
	return &InMemoryScanRepository{}
}

func (r *InMemoryScanRepository) SaveReport(report *domain.BatchReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report = report
	return nil
}

func (r *InMemoryScanRepository) LatestReport() *domain.BatchReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.report
}

func (r *InMemoryScanRepository) LatestResults() []domain.ScanResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.report == nil {
		return nil
	}
	results := make([]domain.ScanResult, len(r.report.Results))
	copy(results, r.report.Results)
	return results
}

// InMemoryOutcomeRepository stores outcomes in memory, for dev and tests.
type InMemoryOutcomeRepository struct {
	mu       sync.RWMutex
	outcomes map[string]*domain.EntryOutcome
}

func NewInMemoryOutcomeRepository() *InMemoryOutcomeRepository {
	return &InMemoryOutcomeRepository{outcomes: make(map[string]*domain.EntryOutcome)}
}

func (r *InMemoryOutcomeRepository) CreateOutcome(outcome *domain.EntryOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.outcomes[outcome.ID]; exists {
		return fmt.Errorf("outcome %s already exists", outcome.ID)
	}
	stored := *outcome
	r.outcomes[outcome.ID] = &stored
	return nil
}

func (r *InMemoryOutcomeRepository) GetPendingOutcomes() []*domain.EntryOutcome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pending := make([]*domain.EntryOutcome, 0)
	for _, o := range r.outcomes {
		if !o.Status.Terminal() {
			c := *o
			pending = append(pending, &c)
		}
	}
	return pending
}

func (r *InMemoryOutcomeRepository) GetOutcomeByID(id string) (*domain.EntryOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, exists := r.outcomes[id]
	if !exists {
		return nil, fmt.Errorf("outcome %s not found", id)
	}
	c := *o
	return &c, nil
}

func (r *InMemoryOutcomeRepository) UpdateOutcome(outcome *domain.EntryOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.outcomes[outcome.ID]; !exists {
		return fmt.Errorf("outcome %s not found", outcome.ID)
	}
	stored := *outcome
	r.outcomes[outcome.ID] = &stored
	return nil
}

func (r *InMemoryOutcomeRepository) GetResolvedSince(from time.Time) []*domain.EntryOutcome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resolved := make([]*domain.EntryOutcome, 0)
	for _, o := range r.outcomes {
		if o.Status.Terminal() && o.ResolvedAt != nil && !o.ResolvedAt.Before(from) {
			c := *o
			resolved = append(resolved, &c)
		}
	}
	return resolved
}

var (
	_ domain.ScanRepository    = (*InMemoryScanRepository)(nil)
	_ domain.OutcomeRepository = (*InMemoryOutcomeRepository)(nil)
)
