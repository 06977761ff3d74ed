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

type FileFilterStore struct {
	path string
}

func NewFileFilterStore(statePath string) boardout.FilterStore {
	return &FileFilterStore{path: filepath.Join(statePath, "filters.json")}
}

// Load returns the persisted filter. A missing or malformed record degrades
// to the default all/all filter.
func (s *FileFilterStore) Load(_ context.Context) (domain.Filter, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultFilter(), nil
		}
		return domain.Filter{}, fmt.Errorf("read filters: %w", err)
	}
	filter := domain.Filter{}
	if err := json.Unmarshal(payload, &filter); err != nil {
		log.Printf("warning: malformed filters record, using defaults: %v", err)
		return domain.DefaultFilter(), nil
	}
	return filter.Normalize(), nil
}

func (s *FileFilterStore) Save(_ context.Context, filter domain.Filter) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(filter.Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal filters: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write filters: %w", err)
	}
	return nil
}
