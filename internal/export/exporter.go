package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/world"
)

// Exporter writes cave snapshots into a directory.
type Exporter struct {
	Dir string
}

// NewExporter returns an exporter writing to dir ("." when empty).
func NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{Dir: dir}
}

// Save writes cave as cavern-<id>.json and returns the file path.
func (e *Exporter) Save(cave *world.Cave) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", e.Dir, err)
	}

	snap := NewSnapshot(cave)
	path := filepath.Join(e.Dir, "cavern-"+snap.ID.String()+".json")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodeJSON(f, snap); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"path": path,
		"seed": cave.Seed,
	}).Info("cave saved")
	return path, nil
}

// Load reads a snapshot file written by Save.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeJSON(f)
}
