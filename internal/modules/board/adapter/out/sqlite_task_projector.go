package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"studydash/internal/modules/board/domain"
	boardout "studydash/internal/modules/board/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteTaskProjector struct {
	db *sql.DB
}

func NewSQLiteTaskProjector(dbPath string) (boardout.TaskIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteTaskProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteTaskProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  due_date TEXT,
  completed INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (s *SQLiteTaskProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("reset tasks: %w", err)
	}
	return nil
}

func (s *SQLiteTaskProjector) UpsertTask(ctx context.Context, task domain.Task) error {
	const stmt = `
INSERT INTO tasks (id, title, category, due_date, completed)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  category=excluded.category,
  due_date=excluded.due_date,
  completed=excluded.completed;
`
	completed := 0
	if task.Completed {
		completed = 1
	}
	if _, err := s.db.ExecContext(ctx, stmt, task.ID, task.Title, task.Category, task.DueDate, completed); err != nil {
		return fmt.Errorf("upsert task: %w", err)
	}
	return nil
}

func (s *SQLiteTaskProjector) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
