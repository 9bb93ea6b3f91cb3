package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/bidassist/bidassist-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driven"
)

// Store is a SQLite-backed upload history.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.UploadStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.bidassist/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".bidassist", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending up migrations in version order.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_uploads.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// applyMigration executes one migration and records its version atomically.
func (s *Store) applyMigration(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

// Save stores or replaces an upload record.
func (s *Store) Save(ctx context.Context, record *domain.UploadRecord) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("%w: upload record requires an id", domain.ErrInvalidInput)
	}

	uploadedAt := record.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO uploads (id, file_name, size_bytes, status, error, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			file_name = excluded.file_name,
			size_bytes = excluded.size_bytes,
			status = excluded.status,
			error = excluded.error,
			uploaded_at = excluded.uploaded_at
	`, record.ID, record.FileName, record.Size, string(record.Status), record.Error,
		uploadedAt.UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("saving upload: %w", err)
	}
	return nil
}

// Get retrieves an upload record by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.UploadRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, file_name, size_bytes, status, error, uploaded_at
		FROM uploads WHERE id = ?
	`, id)

	record, err := scanUpload(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning upload: %w", err)
	}
	return record, nil
}

// List returns upload records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	query := `
		SELECT id, file_name, size_bytes, status, error, uploaded_at
		FROM uploads ORDER BY uploaded_at DESC, id ASC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}
	defer rows.Close()

	records := []domain.UploadRecord{}
	for rows.Next() {
		record, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning upload: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating uploads: %w", err)
	}
	return records, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUpload(row rowScanner) (*domain.UploadRecord, error) {
	var record domain.UploadRecord
	var status string
	var uploadedAt int64
	if err := row.Scan(&record.ID, &record.FileName, &record.Size, &status, &record.Error, &uploadedAt); err != nil {
		return nil, err
	}
	record.Status = domain.UploadStatus(status)
	record.UploadedAt = time.Unix(0, uploadedAt).UTC()
	return &record, nil
}
