package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"market-indexes/src/logger"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

// AsyncSQLiteDB persists cache entries in a local SQLite file so they survive
// restarts. Expiry is checked on read and purged by CleanupExpired.
type AsyncSQLiteDB struct {
	DBPath string
	DB     *sql.DB
	Now    func() time.Time
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAsyncSQLiteDB(dbPath string, log *logger.Logger) *AsyncSQLiteDB {
	return &AsyncSQLiteDB{
		DBPath: dbPath,
		Now:    time.Now,
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Initialize() error {
	// Open DB
	db, err := sql.Open("sqlite", d.DBPath)
	if err != nil {
		return err
	}

	// One connection serializes writers (and keeps :memory: databases shared)
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	if err := d.createTables(); err != nil {
		return err
	}

	if _, err := d.CleanupExpired(context.Background()); err != nil {
		d.Logger.Warning("Initial cache cleanup failed: %v", err)
	}
	d.Logger.Info("SQLite cache initialized (%s)", d.DBPath)
	return nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) createTables() error {
	// SQLite types: TEXT for the payload, INTEGER for unix milliseconds
	query := `
		CREATE TABLE IF NOT EXISTS cache_entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			expires_at INTEGER NOT NULL
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create cache_entries: %w", err)
	}

	if _, err := d.DB.Exec(`CREATE INDEX IF NOT EXISTS idx_cache_entries_expires_at ON cache_entries (expires_at)`); err != nil {
		return fmt.Errorf("failed to index cache_entries: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	var expiresAt int64

	err := d.DB.QueryRowContext(ctx, `SELECT value, expires_at FROM cache_entries WHERE key = ?`, key).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if expiresAt <= d.Now().UnixMilli() {
		return "", false, nil
	}
	return value, true, nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at
	`, key, value, expiresAt(d.Now(), ttl))
	return err
}

// -----------------------------------------------------------------------------

// CleanupExpired deletes entries whose TTL elapsed and returns how many.
func (d *AsyncSQLiteDB) CleanupExpired(ctx context.Context) (int64, error) {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM cache_entries WHERE expires_at <= ?", d.Now().UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
