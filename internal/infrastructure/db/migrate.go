package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the tables this service needs. No external migration
// tool; the schema is small and additive.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`create table if not exists scan_results (
			ticker text not null,
			scan_date timestamptz not null,
			price double precision not null,
			entry_min double precision not null,
			entry_max double precision not null,
			entry_timing text not null,
			target double precision null,
			stop_loss double precision null,
			gain_percent double precision null,
			risk_reward double precision null,
			priority_score double precision not null,
			recommendation text not null,
			flags jsonb not null default '[]'::jsonb,
			snapshot jsonb not null,
			signals jsonb not null default '[]'::jsonb,
			primary key (ticker, scan_date)
		);`,
		`create index if not exists scan_results_scan_date_idx on scan_results(scan_date desc);`,
		`create index if not exists scan_results_recommendation_idx on scan_results(recommendation);`,
		`create table if not exists entry_outcomes (
			id text primary key,
			ticker text not null,
			scan_date timestamptz not null,
			entry_min double precision not null,
			entry_max double precision not null,
			target double precision null,
			stop_loss double precision null,
			status text not null,
			actual_entry_price double precision null,
			days_to_entry int null,
			resolved_at timestamptz null
		);`,
		`create index if not exists entry_outcomes_status_idx on entry_outcomes(status);`,
		`create index if not exists entry_outcomes_ticker_scan_date_idx on entry_outcomes(ticker, scan_date desc);`,
		`create table if not exists device_tokens (
			token text primary key,
			platform text not null default 'android',
			created_at timestamptz not null default now()
		);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
