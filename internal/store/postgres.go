package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/research-sorter/internal/db"
	"github.com/sells-group/research-sorter/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(4)
	minConns := int32(1)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	seq        BIGSERIAL,
	source_dir TEXT NOT NULL,
	target_dir TEXT NOT NULL,
	dry_run    BOOLEAN NOT NULL DEFAULT false,
	status     TEXT NOT NULL DEFAULT 'running',
	summary    JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS run_files (
	id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	seq         BIGSERIAL,
	run_id      TEXT NOT NULL REFERENCES runs(id),
	source_name TEXT NOT NULL,
	category    TEXT NOT NULL,
	entity      TEXT NOT NULL DEFAULT '',
	strategy    TEXT NOT NULL DEFAULT '',
	target_path TEXT NOT NULL DEFAULT '',
	error       TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	} else {
		s.pool.Close()
	}
	return nil
}

func (s *PostgresStore) CreateRun(ctx context.Context, run model.Run) (*model.Run, error) {
	now := time.Now().UTC()
	run.ID = uuid.New().String()
	run.Status = model.RunStatusRunning
	run.Summary = model.RunSummary{}
	run.CreatedAt = now
	run.UpdatedAt = now

	_, err := s.pool.Exec(ctx,
		`INSERT INTO runs (id, source_dir, target_dir, dry_run, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.ID, run.SourceDir, run.TargetDir, run.DryRun, string(run.Status), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert run")
	}
	return &run, nil
}

func (s *PostgresStore) CompleteRun(ctx context.Context, runID string, status model.RunStatus, summary model.RunSummary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal summary")
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE runs SET status = $1, summary = $2, updated_at = $3 WHERE id = $4`,
		string(status), summaryJSON, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: complete run %s", runID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "postgres: run %s", runID)
	}
	return nil
}

func (s *PostgresStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source_dir, target_dir, dry_run, status, summary, created_at, updated_at FROM runs WHERE id = $1`,
		runID,
	)
	r, err := scanPgRun(row)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get run %s", runID)
	}
	return r, nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, source_dir, target_dir, dry_run, status, summary, created_at, updated_at FROM runs WHERE 1=1`
	var args []any
	argIdx := 1

	if filter.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, string(filter.Status))
		argIdx++
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, seq DESC LIMIT $%d`, argIdx)
	args = append(args, listLimit(filter.Limit))
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanPgRun(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: list runs")
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "postgres: list runs iterate")
}

func (s *PostgresStore) RecordFile(ctx context.Context, rec model.FileRecord) (*model.FileRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO run_files (id, run_id, source_name, category, entity, strategy, target_path, error, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.RunID, rec.SourceName, string(rec.Category), rec.Entity, rec.Strategy, rec.TargetPath, rec.Error, rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: insert file for run %s", rec.RunID)
	}
	return &rec, nil
}

func (s *PostgresStore) ListFiles(ctx context.Context, runID string) ([]model.FileRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, run_id, source_name, category, entity, strategy, target_path, error, created_at FROM run_files WHERE run_id = $1 ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: list files for run %s", runID)
	}
	defer rows.Close()

	var files []model.FileRecord
	for rows.Next() {
		var f model.FileRecord
		var category string
		if err := rows.Scan(&f.ID, &f.RunID, &f.SourceName, &category, &f.Entity, &f.Strategy, &f.TargetPath, &f.Error, &f.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan file")
		}
		f.Category = model.Category(category)
		files = append(files, f)
	}
	return files, eris.Wrap(rows.Err(), "postgres: list files iterate")
}

func scanPgRun(row pgx.Row) (*model.Run, error) {
	var r model.Run
	var status string
	var summaryJSON []byte

	err := row.Scan(&r.ID, &r.SourceDir, &r.TargetDir, &r.DryRun, &status, &summaryJSON, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "scan run")
	}
	r.Status = model.RunStatus(status)

	if len(summaryJSON) > 0 {
		if err := json.Unmarshal(summaryJSON, &r.Summary); err != nil {
			return nil, eris.Wrap(err, "unmarshal summary")
		}
	}
	return &r, nil
}
