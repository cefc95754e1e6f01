package testutil

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

// AssertFileExists fails the test if the file does not exist.
func (w *TestWorkspace) AssertFileExists(relPath string) {
	w.t.Helper()
	if _, err := os.Stat(w.File(relPath)); os.IsNotExist(err) {
		w.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (w *TestWorkspace) AssertFileNotExists(relPath string) {
	w.t.Helper()
	if _, err := os.Stat(w.File(relPath)); err == nil {
		w.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// Pool builds a pool from objects, failing the test on duplicate ids.
func Pool(t *testing.T, objects ...object.Object) *pool.Pool {
	t.Helper()
	p, err := pool.FromObjects(objects...)
	if err != nil {
		t.Fatalf("building pool: %v", err)
	}
	return p
}

// AssertPoolsEqual fails with a readable diff when the two pools differ.
// Object order matters; the wire format round-trips insertion order.
func AssertPoolsEqual(t *testing.T, want, got *pool.Pool) {
	t.Helper()
	if want.Equal(got) {
		return
	}
	if diff := cmp.Diff(want.Objects(), got.Objects()); diff != "" {
		t.Errorf("pool mismatch (-want +got):\n%s", diff)
		return
	}
	t.Errorf("pools differ")
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertNoWarnings checks that the result has no warnings.
func (r *CLIResult) AssertNoWarnings(t *testing.T) {
	t.Helper()
	if len(r.Warnings) > 0 {
		t.Errorf("expected no warnings, got: %+v", r.Warnings)
	}
}

// AssertResultCount checks that a listing result has the expected count.
func (r *CLIResult) AssertResultCount(t *testing.T, key string, expected int) {
	t.Helper()
	results := r.DataList(key)
	if len(results) != expected {
		t.Errorf("expected %d %s, got %d\nRaw: %s", expected, key, len(results), r.RawJSON)
	}
}
