package out

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"studydash/internal/modules/board/domain"
	boardout "studydash/internal/modules/board/port/out"
)

type FileTaskStore struct {
	path string
}

func NewFileTaskStore(statePath string) boardout.TaskStore {
	return &FileTaskStore{path: filepath.Join(statePath, "tasks.json")}
}

// Load returns the persisted task list. A missing or malformed record
// degrades to an empty list; it is never a fatal error.
func (s *FileTaskStore) Load(_ context.Context) ([]domain.Task, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Task{}, nil
		}
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	tasks := []domain.Task{}
	if err := json.Unmarshal(payload, &tasks); err != nil {
		log.Printf("warning: malformed tasks record, starting empty: %v", err)
		return []domain.Task{}, nil
	}
	return tasks, nil
}

func (s *FileTaskStore) Save(_ context.Context, tasks []domain.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}
