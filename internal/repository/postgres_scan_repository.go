package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

// PostgresScanRepository persists every scan result as an append-only
// historical record while keeping the latest report in memory for serving.
// Reads never hit the database on the hot path.
type PostgresScanRepository struct {
	pool   *pgxpool.Pool
	cache  *InMemoryScanRepository
	logger zerolog.Logger
}

func NewPostgresScanRepository(pool *pgxpool.Pool) *PostgresScanRepository {
	return &PostgresScanRepository{
		pool:   pool,
		cache:  NewInMemoryScanRepository(),
		logger: log.With().Str("component", "scan_repository").Logger(),
	}
}

func (r *PostgresScanRepository) SaveReport(report *domain.BatchReport) error {
	if report == nil {
		return errors.New("nil report")
	}
	if err := r.cache.SaveReport(report); err != nil {
		return err
	}

	ctx := context.Background()
	batch := &pgx.Batch{}
	for i := range report.Results {
		res := &report.Results[i]

		snapshot, err := json.Marshal(res.Snapshot)
		if err != nil {
			return err
		}
		signals, err := json.Marshal(res.Signals)
		if err != nil {
			return err
		}
		flags, err := json.Marshal(res.Params.Flags)
		if err != nil {
			return err
		}
		if res.Params.Flags == nil {
			flags = []byte("[]")
		}
		if res.Signals == nil {
			signals = []byte("[]")
		}

		batch.Queue(`
			insert into scan_results(
				ticker, scan_date, price,
				entry_min, entry_max, entry_timing,
				target, stop_loss, gain_percent, risk_reward,
				priority_score, recommendation, flags, snapshot, signals
			) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
			on conflict (ticker, scan_date) do nothing
		`,
			res.Ticker,
			res.ScanDate,
			res.Price,
			res.Params.EntryMin,
			res.Params.EntryMax,
			string(res.Params.EntryTiming),
			nullableFloat(res.Params.Target),
			nullableFloat(res.Params.StopLoss),
			nullableFloat(res.Params.GainPercent),
			nullableFloat(res.Params.RiskReward),
			res.PriorityScore,
			string(res.Recommendation),
			flags,
			snapshot,
			signals,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range report.Results {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Msg("persisting scan result")
		}
	}
	return nil
}

func (r *PostgresScanRepository) LatestReport() *domain.BatchReport {
	return r.cache.LatestReport()
}

func (r *PostgresScanRepository) LatestResults() []domain.ScanResult {
	return r.cache.LatestResults()
}

var _ domain.ScanRepository = (*PostgresScanRepository)(nil)
