package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"visascout/internal/domain"
)

// Write serializes records as an indented UTF-8 JSON array, creating
// parent directories as needed and replacing any prior snapshot via
// temp file and rename. An empty run writes an empty array, not null.
func Write(path string, records []domain.JobRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot mkdir: %w", err)
	}

	if records == nil {
		records = []domain.JobRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	return os.Rename(tmp, path)
}
