package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

// ResolveOutcome advances one outcome's state machine against later bars.
// Terminal outcomes are returned unchanged, so re-running against the same
// history is idempotent. Returns whether the outcome changed.
//
// Resolution walks bars after the scan date in chronological order: the
// entry fills on the first bar whose range intersects the entry band (the
// fill price is that bar's low); after the fill, the stop and target are
// checked bar by bar, stop first when both are touched by the same bar.
// If nothing resolves within the horizon the opportunity is missed.
func ResolveOutcome(outcome *domain.EntryOutcome, bars []domain.PriceBar, horizonDays int) (bool, error) {
	if outcome.Status.Terminal() {
		return false, nil
	}

	var later []domain.PriceBar
	for _, b := range bars {
		if b.Date.After(outcome.ScanDate) {
			later = append(later, b)
		}
	}
	if len(later) == 0 {
		return false, &domain.OutcomeResolutionError{
			OutcomeID: outcome.ID,
			Ticker:    outcome.Ticker,
			Reason:    "no bars after scan date",
		}
	}

	horizon := later
	if horizonDays > 0 && len(later) > horizonDays {
		horizon = later[:horizonDays]
	}

	entered := false
	for _, bar := range horizon {
		if !entered {
			if bar.Low <= outcome.EntryMax && bar.High >= outcome.EntryMin {
				entered = true
				outcome.ActualEntryPrice = domain.Float(bar.Low)
				days := int(bar.Date.Sub(outcome.ScanDate).Hours() / 24)
				outcome.DaysToEntry = &days
			} else {
				continue
			}
		}

		if outcome.StopLoss != nil && bar.Low <= *outcome.StopLoss {
			resolve(outcome, domain.OutcomeStoppedOut, bar.Date)
			return true, nil
		}
		if outcome.Target != nil && bar.High >= *outcome.Target {
			resolve(outcome, domain.OutcomeHitTarget, bar.Date)
			return true, nil
		}
	}

	// Horizon exhausted without a target or stop touch.
	if len(later) >= horizonDays && horizonDays > 0 {
		resolve(outcome, domain.OutcomeMissedOpportunity, horizon[len(horizon)-1].Date)
		return true, nil
	}

	// Not enough bars yet; keep waiting but record any fill we saw.
	return entered, nil
}

// resolve stamps a terminal state. ResolvedAt is the resolving bar's date,
// not wall-clock time, so re-resolution is byte-identical.
func resolve(outcome *domain.EntryOutcome, status domain.OutcomeStatus, at time.Time) {
	outcome.Status = status
	outcome.ResolvedAt = &at
}

// ResolveOutcomes resolves a batch in place against the supplied histories
// and returns the outcomes that changed. Outcomes without bar history are
// left STILL_WAITING for the next run.
func ResolveOutcomes(outcomes []*domain.EntryOutcome, barsByTicker map[string][]domain.PriceBar, horizonDays int) []*domain.EntryOutcome {
	var changed []*domain.EntryOutcome
	for _, o := range outcomes {
		bars, ok := barsByTicker[o.Ticker]
		if !ok {
			continue
		}
		didChange, err := ResolveOutcome(o, bars, horizonDays)
		if err != nil {
			continue
		}
		if didChange {
			changed = append(changed, o)
		}
	}
	return changed
}

// OutcomeTracker is the independently schedulable batch job that resolves
// pending outcomes against fresh bars.
type OutcomeTracker struct {
	repo     domain.OutcomeRepository
	provider domain.BarProvider
	cfg      domain.ScanConfig
	barLimit int
	workers  int
	logger   zerolog.Logger
}

func NewOutcomeTracker(repo domain.OutcomeRepository, provider domain.BarProvider, cfg domain.ScanConfig, barLimit, workers int) *OutcomeTracker {
	if workers < 1 {
		workers = 1
	}
	return &OutcomeTracker{
		repo:     repo,
		provider: provider,
		cfg:      cfg,
		barLimit: barLimit,
		workers:  workers,
		logger:   log.With().Str("component", "outcome_tracker").Logger(),
	}
}

// Run resolves all pending outcomes. Distinct outcomes resolve in parallel;
// each outcome is handled by exactly one goroutine per run (the pending set
// is deduplicated by ID), so no two resolutions of the same record race.
func (t *OutcomeTracker) Run(ctx context.Context) {
	pending := dedupeByID(t.repo.GetPendingOutcomes())
	if len(pending) == 0 {
		return
	}
	t.logger.Info().Int("pending", len(pending)).Msg("resolving outcomes")

	// One bar fetch per ticker, shared across its outcomes.
	barsByTicker := make(map[string][]domain.PriceBar)
	for _, o := range pending {
		if _, ok := barsByTicker[o.Ticker]; ok {
			continue
		}
		bars, err := t.provider.DailyBars(ctx, o.Ticker, t.barLimit)
		if err != nil {
			t.logger.Warn().Err(err).Str("ticker", o.Ticker).Msg("bars unavailable, outcome retried next run")
			continue
		}
		barsByTicker[o.Ticker] = bars
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, t.workers)
	for _, o := range pending {
		bars, ok := barsByTicker[o.Ticker]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(outcome *domain.EntryOutcome, history []domain.PriceBar) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			changed, err := ResolveOutcome(outcome, history, t.cfg.OutcomeHorizonDays)
			if err != nil {
				t.logger.Debug().Err(err).Str("outcome", outcome.ID).Msg("not resolvable yet")
				return
			}
			if !changed {
				return
			}
			if err := t.repo.UpdateOutcome(outcome); err != nil {
				t.logger.Error().Err(err).Str("outcome", outcome.ID).Msg("updating outcome")
				return
			}
			t.logger.Info().
				Str("ticker", outcome.Ticker).
				Str("status", string(outcome.Status)).
				Msg("outcome resolved")
		}(o, bars)
	}
	wg.Wait()
}

// Stats summarizes outcomes resolved since the given time.
func (t *OutcomeTracker) Stats(from time.Time) domain.OutcomeStats {
	resolved := t.repo.GetResolvedSince(from)

	var stats domain.OutcomeStats
	daysSum := 0
	daysCount := 0
	for _, o := range resolved {
		stats.Total++
		switch o.Status {
		case domain.OutcomeHitTarget:
			stats.HitTarget++
		case domain.OutcomeStoppedOut:
			stats.StoppedOut++
		case domain.OutcomeMissedOpportunity:
			stats.Missed++
		default:
			stats.StillWaiting++
		}
		if o.DaysToEntry != nil {
			daysSum += *o.DaysToEntry
			daysCount++
		}
	}
	if decided := stats.HitTarget + stats.StoppedOut; decided > 0 {
		stats.HitRate = float64(stats.HitTarget) / float64(decided) * 100
	}
	if daysCount > 0 {
		stats.AvgDaysToEntry = float64(daysSum) / float64(daysCount)
	}
	return stats
}

func dedupeByID(outcomes []*domain.EntryOutcome) []*domain.EntryOutcome {
	seen := make(map[string]struct{}, len(outcomes))
	deduped := outcomes[:0:0]
	for _, o := range outcomes {
		if _, ok := seen[o.ID]; ok {
			continue
		}
		seen[o.ID] = struct{}{}
		deduped = append(deduped, o)
	}
	return deduped
}
