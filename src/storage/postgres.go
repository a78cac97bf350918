package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"market-indexes/src/logger"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

// PostgresDB stores cache entries in a schema named after the executable so
// several services can share one database.
type PostgresDB struct {
	DSN    string
	DB     *sql.DB
	Schema string
	Now    func() time.Time
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresDB(dsn string, log *logger.Logger) (*PostgresDB, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable name: %w", err)
	}
	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return &PostgresDB{
		DSN:    dsn,
		Schema: name,
		Now:    time.Now,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Initialize() error {
	db, err := sql.Open("postgres", d.DSN)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	// Create Schema
	if _, err := d.DB.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, d.Schema)); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", d.Schema, err)
	}

	if err := d.createTables(); err != nil {
		return err
	}

	d.Logger.Info("PostgresDB initialized successfully (Schema: %s)", d.Schema)
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) table() string {
	return fmt.Sprintf(`"%s"."cache_entries"`, d.Schema)
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) createTables() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			expires_at BIGINT NOT NULL
		);
	`, d.table())
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create cache_entries: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1 AND expires_at > $2`, d.table())
	err := d.DB.QueryRowContext(ctx, query, key, d.Now().UnixMilli()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (key, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at
	`, d.table())
	_, err := d.DB.ExecContext(ctx, query, key, value, expiresAt(d.Now(), ttl))
	return err
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) CleanupExpired(ctx context.Context) (int64, error) {
	res, err := d.DB.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE expires_at <= $1`, d.table()), d.Now().UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
