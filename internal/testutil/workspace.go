// Package testutil provides reusable test utilities for vtpool integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/isobus-tools/vtpool/internal/iop"
	"github.com/isobus-tools/vtpool/internal/pool"
	"github.com/isobus-tools/vtpool/internal/projfile"
)

// TestWorkspace represents a temporary directory seeded with pool and
// project files for CLI tests.
type TestWorkspace struct {
	Path string

	t        *testing.T
	pools    map[string]*pool.Pool
	projects map[string]*projfile.File
	files    map[string][]byte
}

// NewTestWorkspace creates a new workspace builder.
// Call Build() to create the actual directory.
func NewTestWorkspace(t *testing.T) *TestWorkspace {
	t.Helper()
	return &TestWorkspace{
		t:        t,
		pools:    make(map[string]*pool.Pool),
		projects: make(map[string]*projfile.File),
		files:    make(map[string][]byte),
	}
}

// WithPool adds a pool file, encoded to the wire format at Build time.
// The name is relative to the workspace root (e.g. "display.iop").
func (w *TestWorkspace) WithPool(name string, p *pool.Pool) *TestWorkspace {
	w.pools[name] = p
	return w
}

// WithProject adds a project file, marshalled at Build time.
func (w *TestWorkspace) WithProject(name string, f *projfile.File) *TestWorkspace {
	w.projects[name] = f
	return w
}

// WithFile adds a raw file to the workspace.
func (w *TestWorkspace) WithFile(name string, data []byte) *TestWorkspace {
	w.files[name] = data
	return w
}

// Build creates the workspace directory and all configured files.
// Returns the TestWorkspace for method chaining.
func (w *TestWorkspace) Build() *TestWorkspace {
	w.t.Helper()

	w.Path = w.t.TempDir()

	for name, p := range w.pools {
		data, err := iop.Encode(p)
		if err != nil {
			w.t.Fatalf("encoding pool %s: %v", name, err)
		}
		w.writeFile(name, data)
	}

	for name, f := range w.projects {
		data, err := f.Marshal()
		if err != nil {
			w.t.Fatalf("marshalling project %s: %v", name, err)
		}
		w.writeFile(name, data)
	}

	for name, data := range w.files {
		w.writeFile(name, data)
	}

	return w
}

// File returns the absolute path of a file in the workspace.
func (w *TestWorkspace) File(relPath string) string {
	return filepath.Join(w.Path, relPath)
}

// ReadFile reads a file from the workspace, failing the test on error.
func (w *TestWorkspace) ReadFile(relPath string) []byte {
	w.t.Helper()
	data, err := os.ReadFile(w.File(relPath))
	if err != nil {
		w.t.Fatalf("reading %s: %v", relPath, err)
	}
	return data
}

// ReadPool decodes a pool file from the workspace.
func (w *TestWorkspace) ReadPool(relPath string) *pool.Pool {
	w.t.Helper()
	p, err := iop.Decode(w.ReadFile(relPath))
	if err != nil {
		w.t.Fatalf("decoding %s: %v", relPath, err)
	}
	return p
}

// ReadProject unmarshals a project file from the workspace.
func (w *TestWorkspace) ReadProject(relPath string) *projfile.File {
	w.t.Helper()
	f, err := projfile.Unmarshal(w.ReadFile(relPath))
	if err != nil {
		w.t.Fatalf("unmarshalling %s: %v", relPath, err)
	}
	return f
}

func (w *TestWorkspace) writeFile(relPath string, data []byte) {
	w.t.Helper()
	fullPath := w.File(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		w.t.Fatalf("creating directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		w.t.Fatalf("writing %s: %v", relPath, err)
	}
}
