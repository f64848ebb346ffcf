package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"visascout/internal/scrape"
)

// Summary is the per-run record written beside the snapshot. One file,
// overwritten every run; job data itself lives only in the snapshot.
type Summary struct {
	RunAt          time.Time `json:"run_at"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	Source         string    `json:"source"`
	scrape.Stats
	Records int    `json:"records"`
	Output  string `json:"output"`
}

// PathFor places the summary next to the snapshot it describes.
func PathFor(outputPath string) string {
	return filepath.Join(filepath.Dir(outputPath), "last_run.json")
}

func Write(path string, s Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("summary mkdir: %w", err)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("summary marshal: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
