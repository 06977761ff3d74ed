package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"studydash/internal/modules/timer/domain"
	timerout "studydash/internal/modules/timer/port/out"
	"studydash/internal/platform/markdown"
)

// FileFocusLogStore writes one markdown note per completed work session,
// grouped by day under the log directory.
type FileFocusLogStore struct {
	logDir string
}

func NewFileFocusLogStore(logDir string) timerout.FocusLogStore {
	return &FileFocusLogStore{logDir: logDir}
}

func (s *FileFocusLogStore) Append(_ context.Context, entry domain.FocusEntry) (string, error) {
	date := entry.EndedAt
	dir := filepath.Join(s.logDir, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, date.Format("150405")+"-focus.md")

	meta := map[string]any{
		"schema_version":   domain.SchemaVersion,
		"kind":             "work",
		"ended_at":         entry.EndedAt.Format("2006-01-02T15:04:05Z07:00"),
		"duration_minutes": entry.DurationMin,
	}
	body := fmt.Sprintf("# Focus session\n\n%d minutes of focused work, ended %s.\n",
		entry.DurationMin, date.Format("15:04"))
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write focus note: %w", err)
	}
	return path, nil
}
