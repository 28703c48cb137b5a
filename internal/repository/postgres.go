package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"estatehub/internal/model"
)

// PostgresRepository records submitted searches and user feedback for
// later analysis. It is optional: the portal serves traffic without it.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LogSearch records one submitted search: the full filter snapshot as
// JSON plus the dimensions worth querying directly.
func (r *PostgresRepository) LogSearch(
	ctx context.Context,
	searchID string,
	filters model.FilterState,
	resultCount int,
	responseTimeMs int,
) error {
	snapshot, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("failed to serialize filters: %w", err)
	}

	query := `
		INSERT INTO search_logs (search_id, purpose, location_external_ids, filters, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, query,
		searchID,
		string(filters.Purpose),
		filters.LocationExternalIDs,
		snapshot,
		resultCount,
		responseTimeMs,
	)
	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}

// LogFeedback records a user action against a previously logged search
func (r *PostgresRepository) LogFeedback(ctx context.Context, searchID, externalID, action string) error {
	query := `
		UPDATE search_logs
		SET clicked_external_id = $2, action = $3
		WHERE search_id = $1
	`
	_, err := r.db.ExecContext(ctx, query, searchID, externalID, action)
	if err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}
