package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

// PostgresOutcomeRepository persists entry outcomes. Pending outcomes:
// status='STILL_WAITING'. Everything else is terminal history.
type PostgresOutcomeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresOutcomeRepository(pool *pgxpool.Pool) *PostgresOutcomeRepository {
	return &PostgresOutcomeRepository{pool: pool}
}

const outcomeColumns = `id, ticker, scan_date, entry_min, entry_max, target, stop_loss,
	status, actual_entry_price, days_to_entry, resolved_at`

func (r *PostgresOutcomeRepository) CreateOutcome(outcome *domain.EntryOutcome) error {
	if outcome == nil {
		return errors.New("nil outcome")
	}

	_, err := r.pool.Exec(context.Background(), `
		insert into entry_outcomes(`+outcomeColumns+`)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		outcome.ID,
		outcome.Ticker,
		outcome.ScanDate,
		outcome.EntryMin,
		outcome.EntryMax,
		nullableFloat(outcome.Target),
		nullableFloat(outcome.StopLoss),
		string(outcome.Status),
		nullableFloat(outcome.ActualEntryPrice),
		nullableInt(outcome.DaysToEntry),
		nullableTime(outcome.ResolvedAt),
	)
	return err
}

func (r *PostgresOutcomeRepository) GetPendingOutcomes() []*domain.EntryOutcome {
	rows, err := r.pool.Query(context.Background(), `
		select `+outcomeColumns+`
		from entry_outcomes
		where status = $1
		order by scan_date asc
	`, string(domain.OutcomeStillWaiting))
	if err != nil {
		return []*domain.EntryOutcome{}
	}
	defer rows.Close()

	outcomes := make([]*domain.EntryOutcome, 0)
	for rows.Next() {
		o, scanErr := scanOutcome(rows)
		if scanErr != nil {
			continue
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func (r *PostgresOutcomeRepository) GetOutcomeByID(id string) (*domain.EntryOutcome, error) {
	row := r.pool.QueryRow(context.Background(), `
		select `+outcomeColumns+`
		from entry_outcomes
		where id = $1
	`, id)

	o, err := scanOutcome(row)
	if err != nil {
		return nil, fmt.Errorf("outcome %s not found", id)
	}
	return o, nil
}

func (r *PostgresOutcomeRepository) UpdateOutcome(outcome *domain.EntryOutcome) error {
	if outcome == nil {
		return errors.New("nil outcome")
	}

	_, err := r.pool.Exec(context.Background(), `
		update entry_outcomes set
			status=$2,
			actual_entry_price=$3,
			days_to_entry=$4,
			resolved_at=$5
		where id=$1
	`,
		outcome.ID,
		string(outcome.Status),
		nullableFloat(outcome.ActualEntryPrice),
		nullableInt(outcome.DaysToEntry),
		nullableTime(outcome.ResolvedAt),
	)
	return err
}

func (r *PostgresOutcomeRepository) GetResolvedSince(from time.Time) []*domain.EntryOutcome {
	rows, err := r.pool.Query(context.Background(), `
		select `+outcomeColumns+`
		from entry_outcomes
		where status <> $1 and resolved_at is not null and resolved_at >= $2
		order by resolved_at desc
	`, string(domain.OutcomeStillWaiting), from)
	if err != nil {
		return []*domain.EntryOutcome{}
	}
	defer rows.Close()

	outcomes := make([]*domain.EntryOutcome, 0)
	for rows.Next() {
		o, scanErr := scanOutcome(rows)
		if scanErr != nil {
			continue
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

// Helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOutcome(s rowScanner) (*domain.EntryOutcome, error) {
	var o domain.EntryOutcome
	var status string
	var target, stopLoss, actualEntry pgtype.Float8
	var daysToEntry pgtype.Int4
	var resolvedAt pgtype.Timestamptz

	if err := s.Scan(
		&o.ID,
		&o.Ticker,
		&o.ScanDate,
		&o.EntryMin,
		&o.EntryMax,
		&target,
		&stopLoss,
		&status,
		&actualEntry,
		&daysToEntry,
		&resolvedAt,
	); err != nil {
		return nil, err
	}

	o.Status = domain.OutcomeStatus(status)
	if target.Valid {
		o.Target = domain.Float(target.Float64)
	}
	if stopLoss.Valid {
		o.StopLoss = domain.Float(stopLoss.Float64)
	}
	if actualEntry.Valid {
		o.ActualEntryPrice = domain.Float(actualEntry.Float64)
	}
	if daysToEntry.Valid {
		v := int(daysToEntry.Int32)
		o.DaysToEntry = &v
	}
	if resolvedAt.Valid {
		v := resolvedAt.Time
		o.ResolvedAt = &v
	}
	return &o, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Valid: true, Float64: *v}
}

func nullableInt(v *int) any {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Valid: true, Int32: int32(*v)}
}

func nullableTime(v *time.Time) any {
	if v == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Valid: true, Time: *v}
}

var _ domain.OutcomeRepository = (*PostgresOutcomeRepository)(nil)
