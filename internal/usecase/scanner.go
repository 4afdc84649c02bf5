package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
	"github.com/abk234/TradingAgents-sub000/internal/infrastructure/fcm"
	"github.com/abk234/TradingAgents-sub000/internal/repository"
)

// Scan runs the whole per-ticker pipeline: indicators, entry band, target,
// stop, metrics, score, and classification. Pure and deterministic given
// identical inputs and configuration.
func Scan(ticker string, bars []domain.PriceBar, cfg domain.ScanConfig) (*domain.ScanResult, error) {
	snap, err := BuildSnapshot(ticker, bars, cfg)
	if err != nil {
		return nil, err
	}
	price := bars[len(bars)-1].Close

	entryMin, entryMax, timing := CalculateEntry(price, snap, cfg)
	target := CalculateTarget(price, snap, cfg)
	stop, inconsistent := CalculateStopLoss(price, entryMin, snap, cfg)

	params := domain.TradeParameters{
		EntryMin:    entryMin,
		EntryMax:    entryMax,
		EntryTiming: timing,
		Target:      domain.Float(target),
		StopLoss:    domain.Float(stop),
	}
	if inconsistent {
		params.AddFlag(domain.FlagCalcInconsistency)
	}
	ApplyMetrics(&params)

	score, signals := CalculateScore(price, snap, cfg)

	return &domain.ScanResult{
		Ticker:         ticker,
		ScanDate:       snap.Date,
		Price:          price,
		Snapshot:       *snap,
		Params:         params,
		PriorityScore:  score,
		Recommendation: Classify(score, signals, cfg),
		Signals:        signals,
	}, nil
}

// Rank orders results by recommendation rank ascending, then priority
// score descending. The sort is stable, so ties beyond the two keys keep
// input order, and every BUY-family result precedes every HOLD/WAIT/SELL
// result regardless of score.
func Rank(results []domain.ScanResult) []domain.ScanResult {
	ranked := make([]domain.ScanResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Recommendation.Rank(), ranked[j].Recommendation.Rank()
		if ri != rj {
			return ri < rj
		}
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})
	return ranked
}

// Scanner runs the periodic batch scan over the configured universe.
type Scanner struct {
	repo        domain.ScanRepository
	outcomeRepo domain.OutcomeRepository
	provider    domain.BarProvider
	fcmClient   *fcm.Client
	tokenRepo   *repository.TokenRepository
	cfg         domain.ScanConfig

	symbols  []string
	barLimit int
	workers  int
	logger   zerolog.Logger

	notified map[string]time.Time // ticker -> last alert, for cooldown
	cooldown time.Duration
	mu       sync.Mutex
}

// NewScanner wires the batch scanner. fcmClient and tokenRepo may be nil
// when push alerts are disabled.
func NewScanner(
	repo domain.ScanRepository,
	outcomeRepo domain.OutcomeRepository,
	provider domain.BarProvider,
	fcmClient *fcm.Client,
	tokenRepo *repository.TokenRepository,
	cfg domain.ScanConfig,
	symbols []string,
	barLimit, workers int,
	cooldown time.Duration,
) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		repo:        repo,
		outcomeRepo: outcomeRepo,
		provider:    provider,
		fcmClient:   fcmClient,
		tokenRepo:   tokenRepo,
		cfg:         cfg,
		symbols:     symbols,
		barLimit:    barLimit,
		workers:     workers,
		cooldown:    cooldown,
		notified:    make(map[string]time.Time),
		logger:      log.With().Str("component", "scanner").Logger(),
	}
}

// RunBatch scans the universe with a bounded worker pool. A failure on one
// ticker never aborts the batch: the ticker is skipped and reported.
func (s *Scanner) RunBatch(ctx context.Context) *domain.BatchReport {
	start := time.Now()
	s.logger.Info().Int("symbols", len(s.symbols)).Msg("starting scan cycle")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []domain.ScanResult
		skipped []domain.SkippedTicker
	)
	sem := make(chan struct{}, s.workers)

	for _, sym := range s.symbols {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			bars, err := s.provider.DailyBars(ctx, ticker, s.barLimit)
			if err != nil {
				s.logger.Warn().Err(err).Str("ticker", ticker).Msg("bar retrieval failed")
				mu.Lock()
				skipped = append(skipped, domain.SkippedTicker{Ticker: ticker, Reason: err.Error()})
				mu.Unlock()
				return
			}

			result, err := Scan(ticker, bars, s.cfg)
			if err != nil {
				s.logger.Warn().Err(err).Str("ticker", ticker).Msg("ticker skipped")
				mu.Lock()
				skipped = append(skipped, domain.SkippedTicker{Ticker: ticker, Reason: err.Error()})
				mu.Unlock()
				return
			}

			mu.Lock()
			results = append(results, *result)
			mu.Unlock()
		}(sym)
	}
	wg.Wait()

	// Results arrive in goroutine-completion order; sort by ticker before
	// ranking so (rank, score) ties break the same way every run.
	sort.Slice(results, func(i, j int) bool { return results[i].Ticker < results[j].Ticker })

	report := &domain.BatchReport{
		ScanDate: start,
		Results:  Rank(results),
	}
	// Deterministic skip order regardless of goroutine scheduling.
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].Ticker < skipped[j].Ticker })
	report.Skipped = skipped
	for _, r := range report.Results {
		if len(r.Params.Flags) > 0 {
			report.Flagged = append(report.Flagged, r.Ticker)
		}
	}

	if err := s.repo.SaveReport(report); err != nil {
		s.logger.Error().Err(err).Msg("saving scan report")
	}
	s.createOutcomes(report.Results)
	s.notifyActionable(report.Results)

	s.logger.Info().
		Dur("elapsed", time.Since(start)).
		Int("scanned", len(report.Results)).
		Int("skipped", len(skipped)).
		Int("flagged", len(report.Flagged)).
		Msg("scan cycle complete")
	return report
}

// createOutcomes seeds a STILL_WAITING outcome for each actionable result
// so the tracker can resolve it against later bars.
func (s *Scanner) createOutcomes(results []domain.ScanResult) {
	if s.outcomeRepo == nil {
		return
	}
	for _, r := range results {
		if r.Recommendation.Rank() > domain.RecAccumulate.Rank() {
			continue
		}
		outcome := &domain.EntryOutcome{
			ID:       uuid.NewString(),
			Ticker:   r.Ticker,
			ScanDate: r.ScanDate,
			EntryMin: r.Params.EntryMin,
			EntryMax: r.Params.EntryMax,
			Target:   r.Params.Target,
			StopLoss: r.Params.StopLoss,
			Status:   domain.OutcomeStillWaiting,
		}
		if err := s.outcomeRepo.CreateOutcome(outcome); err != nil {
			s.logger.Error().Err(err).Str("ticker", r.Ticker).Msg("creating outcome")
		}
	}
}
