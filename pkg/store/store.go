package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/maxslion/algod/pkg/types"
)

// ErrNotFound is returned when a task is not present in the store
var ErrNotFound = errors.New("task not found")

const (
	lockRetries  = 3
	lockBackoff  = 50 * time.Millisecond
	terminalList = "('SUCCESS', 'FAILED', 'CANCELLED')"
)

// TaskStore is the SQLite-backed record of every task's last known state.
// Writes are funneled through the progress manager's single DB writer, so the
// store keeps one connection and serializes access at the database layer.
type TaskStore struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the task store at
// <dataDir>/tasks.db with WAL journaling and relaxed fsync.
func Open(dataDir string) (*TaskStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "tasks.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=30000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", strings.TrimSuffix(pragma, ";"), err)
		}
	}

	s := &TaskStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database
func (s *TaskStore) Close() error {
	return s.db.Close()
}

// migrate creates the tasks table and applies the one-shot error_message
// column fix for databases created before the column existed.
func (s *TaskStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			task_id TEXT PRIMARY KEY,
			scheme_code TEXT,
			status TEXT,
			percentage INTEGER,
			message TEXT,
			error_message TEXT,
			data_ref TEXT,
			created_at INTEGER,
			updated_at INTEGER
		)`)
	if err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}

	rows, err := s.db.Query("PRAGMA table_info(tasks)")
	if err != nil {
		return fmt.Errorf("failed to inspect tasks schema: %w", err)
	}
	defer rows.Close()

	hasErrorColumn := false
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return fmt.Errorf("failed to scan tasks schema: %w", err)
		}
		if name == "error_message" {
			hasErrorColumn = true
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read tasks schema: %w", err)
	}

	if !hasErrorColumn {
		if _, err := s.db.Exec("ALTER TABLE tasks ADD COLUMN error_message TEXT"); err != nil {
			return fmt.Errorf("failed to add error_message column: %w", err)
		}
	}
	return nil
}

// execRetry executes a statement, retrying transient lock errors with
// exponential backoff starting at 50ms.
func (s *TaskStore) execRetry(query string, args ...any) (sql.Result, error) {
	var lastErr error
	for attempt := 0; attempt <= lockRetries; attempt++ {
		res, err := s.db.Exec(query, args...)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !isLocked(err) || attempt == lockRetries {
			return nil, err
		}
		time.Sleep(lockBackoff * time.Duration(1<<attempt))
	}
	return nil, lastErr
}

func isLocked(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "locked") || strings.Contains(msg, "busy")
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// UpsertStart inserts or updates a task to mark its start: status RUNNING,
// percentage 0, message "Initializing".
func (s *TaskStore) UpsertStart(taskID, schemeCode, dataRef string) error {
	now := nowMillis()
	_, err := s.execRetry(`
		INSERT INTO tasks (task_id, scheme_code, status, percentage, message, error_message, data_ref, created_at, updated_at)
		VALUES (?, ?, ?, 0, 'Initializing', '', ?, ?, ?)
		ON CONFLICT(task_id) DO UPDATE SET
			scheme_code = excluded.scheme_code,
			status = excluded.status,
			percentage = excluded.percentage,
			message = excluded.message,
			error_message = excluded.error_message,
			data_ref = excluded.data_ref,
			updated_at = excluded.updated_at`,
		taskID, schemeCode, string(types.StatusRunning), dataRef, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert task %s: %w", taskID, err)
	}
	return nil
}

// UpdateProgress updates a task's progress columns. Terminal rows are left
// untouched and the stored percentage never decreases. A missing row is
// created first, then updated.
func (s *TaskStore) UpdateProgress(taskID string, percentage int, message string, status types.Status) error {
	res, err := s.execRetry(`
		UPDATE tasks
		SET percentage = MAX(percentage, ?), message = ?, status = ?, updated_at = ?
		WHERE task_id = ? AND status NOT IN `+terminalList,
		percentage, message, string(status), nowMillis(), taskID)
	if err != nil {
		return fmt.Errorf("failed to update progress for %s: %w", taskID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for %s: %w", taskID, err)
	}
	if affected == 0 {
		// Either the row is terminal (nothing to do) or it does not exist yet.
		if _, getErr := s.Get(taskID); getErr == nil {
			return nil
		} else if !errors.Is(getErr, ErrNotFound) {
			return getErr
		}
		if err := s.UpsertStart(taskID, "", ""); err != nil {
			return err
		}
		return s.UpdateProgress(taskID, percentage, message, status)
	}
	return nil
}

// Finish writes a terminal state: percentage 100 plus the given status,
// message and error message. Finishing an already-terminal task is a no-op,
// which makes terminal writes idempotent and keeps the first terminal state
// authoritative. A missing row is created, then finished.
func (s *TaskStore) Finish(taskID string, status types.Status, message, errorMessage string) error {
	res, err := s.execRetry(`
		UPDATE tasks
		SET percentage = 100, message = ?, status = ?, error_message = ?, updated_at = ?
		WHERE task_id = ? AND status NOT IN `+terminalList,
		message, string(status), errorMessage, nowMillis(), taskID)
	if err != nil {
		return fmt.Errorf("failed to finish task %s: %w", taskID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for %s: %w", taskID, err)
	}
	if affected == 0 {
		if _, getErr := s.Get(taskID); getErr == nil {
			return nil
		} else if !errors.Is(getErr, ErrNotFound) {
			return getErr
		}
		if err := s.UpsertStart(taskID, "", ""); err != nil {
			return err
		}
		return s.Finish(taskID, status, message, errorMessage)
	}
	return nil
}

const selectColumns = "task_id, scheme_code, status, percentage, message, error_message, data_ref, created_at, updated_at"

// Get returns the stored record for a task, or ErrNotFound
func (s *TaskStore) Get(taskID string) (*types.TaskRecord, error) {
	row := s.db.QueryRow("SELECT "+selectColumns+" FROM tasks WHERE task_id = ?", taskID)
	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task %s: %w", taskID, err)
	}
	return rec, nil
}

// List returns every stored record ordered by updated_at, newest first
func (s *TaskStore) List() ([]*types.TaskRecord, error) {
	rows, err := s.db.Query("SELECT " + selectColumns + " FROM tasks ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var out []*types.TaskRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return out, nil
}

func scanRecord(scan func(...any) error) (*types.TaskRecord, error) {
	var (
		rec    types.TaskRecord
		status string
		errMsg sql.NullString
	)
	err := scan(&rec.TaskID, &rec.SchemeCode, &status, &rec.Percentage, &rec.Message,
		&errMsg, &rec.DataRef, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.Status = types.Status(status)
	rec.ErrorMessage = errMsg.String
	return &rec, nil
}
