// Package benchstore persists measurements as JSON artifacts, one file per
// run, so results from several runtimes can be collected side by side.
package benchstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TheFahmi/argon-lang/internal/domain"
	"github.com/TheFahmi/argon-lang/internal/ports"
)

type JSONStore struct {
	rootDir     string
	runsDirName string
	now         func() time.Time
}

type Option func(*JSONStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = "runs"
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ResultStore = (*JSONStore)(nil)

// artifact is the on-disk shape; kept separate from the domain type so the
// file format does not drift with internal refactors.
type artifact struct {
	Label      string    `json:"label"`
	N          int       `json:"n"`
	Result     int       `json:"result"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	ElapsedMS  float64   `json:"elapsed_ms"`
}

func (s *JSONStore) SaveMeasurement(m domain.Measurement) (string, error) {
	dir := filepath.Join(s.rootDir, s.runsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "benchstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := m.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	name := fmt.Sprintf("fib%d-%s.json", m.N, ts.Format("20060102T150405.000Z"))
	path := filepath.Join(dir, name)

	b, err := json.MarshalIndent(artifact{
		Label:      m.Label,
		N:          m.N,
		Result:     m.Result,
		StartedAt:  m.StartedAt.UTC(),
		FinishedAt: m.FinishedAt.UTC(),
		ElapsedMS:  m.ElapsedMS(),
	}, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "benchstore.encode",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "benchstore.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return path, nil
}
