package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Registers the "postgres" driver.
	_ "github.com/lib/pq"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS bike_fixes (
	id BIGSERIAL PRIMARY KEY,
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	received_at TIMESTAMPTZ NOT NULL
)`
	createIndexQuery = `CREATE INDEX IF NOT EXISTS bike_fixes_received_at_idx ON bike_fixes (received_at)`
	insertFixQuery   = `INSERT INTO bike_fixes (latitude, longitude, received_at) VALUES ($1, $2, $3)`
	historyQuery     = `SELECT latitude, longitude, received_at FROM bike_fixes ` +
		`WHERE received_at >= $1 AND received_at <= $2 ORDER BY received_at ASC, id ASC`
)

// Repository persists fixes in Postgres.
type Repository struct {
	db *sql.DB
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// NewRepository wraps an open database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the fix table and its index when missing.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, createIndexQuery); err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	return nil
}

// SaveFix inserts one fix.
func (r *Repository) SaveFix(ctx context.Context, p geofence.Position) error {
	if _, err := r.db.ExecContext(ctx, insertFixQuery, p.Latitude, p.Longitude, p.ReceivedAt); err != nil {
		return fmt.Errorf("insert fix: %w", err)
	}

	return nil
}

// History returns fixes received in [start, end], oldest first.
func (r *Repository) History(ctx context.Context, start, end time.Time) ([]geofence.Position, error) {
	rows, err := r.db.QueryContext(ctx, historyQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]geofence.Position, 0)

	for rows.Next() {
		var p geofence.Position
		if err := rows.Scan(&p.Latitude, &p.Longitude, &p.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan fix: %w", err)
		}

		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return result, nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
