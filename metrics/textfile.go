package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps g in the text exposition format for the node_exporter
// textfile collector. The write is atomic (temp file + rename).
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return errors.New("metrics textfile path is empty")
	}
	if g == nil {
		return errors.New("prometheus gatherer is nil")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
