package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"task-prioritizer/internal/model"
	"task-prioritizer/internal/task/repository"
	pkgLog "task-prioritizer/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                    TEXT PRIMARY KEY,
	position              INTEGER NOT NULL,
	name                  TEXT NOT NULL,
	description           TEXT NOT NULL DEFAULT '',
	critical              INTEGER NOT NULL DEFAULT 0,
	time_estimate_ns      INTEGER NOT NULL,
	remaining_estimate_ns INTEGER NOT NULL,
	due_date              TEXT NOT NULL,
	dependencies          TEXT NOT NULL DEFAULT '[]',
	created_at            DATETIME NOT NULL
);
`

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New opens (or creates) a SQLite database at dbPath and ensures the tasks
// table exists. The caller is responsible for calling Close.
func New(dbPath string, l pkgLog.Logger) (repository.TaskRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1) // prevent SQLITE_BUSY
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// Close releases the underlying database connection.
func (r *implRepository) Close() error { return r.db.Close() }

// Replace swaps the stored queue for records inside one transaction.
func (r *implRepository) Replace(ctx context.Context, records []model.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	now := time.Now().UTC()
	for i, rec := range records {
		deps, err := json.Marshal(rec.Dependencies)
		if err != nil {
			return fmt.Errorf("encode dependencies of %q: %w", rec.Name, err)
		}
		if rec.Dependencies == nil {
			deps = []byte("[]")
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO tasks
				(id, position, name, description, critical, time_estimate_ns,
				 remaining_estimate_ns, due_date, dependencies, created_at)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			uuid.NewString(), i, rec.Name, rec.Description, boolToInt(rec.Critical),
			int64(rec.TimeEstimate), int64(rec.RemainingEstimate),
			rec.DueDate.Format(time.RFC3339Nano), string(deps), now,
		)
		if err != nil {
			return fmt.Errorf("insert task %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.l.Infof(ctx, "sqlite repository: stored %d tasks", len(records))
	return nil
}

// List returns stored records ordered by position.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Record, error) {
	q := strings.Builder{}
	q.WriteString(`SELECT name, description, critical, time_estimate_ns, remaining_estimate_ns,
		due_date, dependencies FROM tasks ORDER BY position ASC`)
	if opt.Limit > 0 {
		q.WriteString(fmt.Sprintf(" LIMIT %d", opt.Limit))
		if opt.Offset > 0 {
			q.WriteString(fmt.Sprintf(" OFFSET %d", opt.Offset))
		}
	}

	rows, err := r.db.QueryContext(ctx, q.String())
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (model.Record, error) {
	var (
		rec                 model.Record
		critical            int
		timeNs, remainingNs int64
		dueDate, depsJSON   string
	)
	if err := rows.Scan(&rec.Name, &rec.Description, &critical, &timeNs, &remainingNs, &dueDate, &depsJSON); err != nil {
		return model.Record{}, fmt.Errorf("scan task: %w", err)
	}

	due, err := time.Parse(time.RFC3339Nano, dueDate)
	if err != nil {
		return model.Record{}, fmt.Errorf("parse due date of %q: %w", rec.Name, err)
	}
	if err := json.Unmarshal([]byte(depsJSON), &rec.Dependencies); err != nil {
		return model.Record{}, fmt.Errorf("decode dependencies of %q: %w", rec.Name, err)
	}
	if len(rec.Dependencies) == 0 {
		rec.Dependencies = nil
	}

	rec.Critical = critical != 0
	rec.TimeEstimate = time.Duration(timeNs)
	rec.RemainingEstimate = time.Duration(remainingNs)
	rec.DueDate = due
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
