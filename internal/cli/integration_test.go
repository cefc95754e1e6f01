//go:build integration

package cli_test

import (
	"strings"
	"testing"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/testutil"
)

// testConfig pins config and state into the workspace so runs never touch
// the user's real ~/.config/vtpool.
var testConfig = []byte("vt_version = 3\n")

// TestIntegration_ProjectLifecycle tests importing, listing, renaming,
// renumbering, validating and exporting a pool end to end.
func TestIntegration_ProjectLifecycle(t *testing.T) {
	w := testutil.NewTestWorkspace(t).
		WithPool("display.iop", testutil.Pool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: 4000},
			&object.SoftKeyMask{ID: 4000, Keys: []object.ObjectID{5000}},
			&object.Key{ID: 5000, KeyCode: 1},
			&object.NumberVariable{ID: 3000, Value: 42},
		)).
		WithFile("config.toml", testConfig).
		Build()

	// Import the raw pool; smart names are on by default.
	result := w.RunCLI("import", "display.iop", "--config", "config.toml")
	result.MustSucceed(t)
	w.AssertFileExists("display.vtp")
	if n, ok := result.DataNumber("objects"); !ok || n != 5 {
		t.Errorf("imported objects = %v, want 5", n)
	}
	if n, ok := result.DataNumber("named"); !ok || n != 5 {
		t.Errorf("named objects = %v, want 5", n)
	}

	proj := w.ReadProject("display.vtp")
	if got := proj.Names[1000]; got != "Main Screen" {
		t.Errorf("mask name = %q, want %q", got, "Main Screen")
	}
	if got := proj.Names[5000]; got != "ESC Key" {
		t.Errorf("key name = %q, want %q", got, "ESC Key")
	}

	// List all objects.
	result = w.RunCLI("objects", "display.vtp", "--config", "config.toml")
	result.MustSucceed(t)
	result.AssertResultCount(t, "objects", 5)

	// Rename the variable.
	result = w.RunCLI("rename", "display.vtp", "3000", "Rate Setpoint", "--config", "config.toml")
	result.MustSucceed(t)
	if got := w.ReadProject("display.vtp").Names[3000]; got != "Rate Setpoint" {
		t.Errorf("renamed object = %q, want %q", got, "Rate Setpoint")
	}

	// Renumber it; nothing references the variable so no warnings.
	result = w.RunCLI("set-id", "display.vtp", "3000", "3200", "--config", "config.toml")
	result.MustSucceed(t)
	result.AssertNoWarnings(t)

	proj = w.ReadProject("display.vtp")
	if !proj.Pool.Has(3200) || proj.Pool.Has(3000) {
		t.Error("expected object 3000 renumbered to 3200")
	}
	if got := proj.Names[3200]; got != "Rate Setpoint" {
		t.Errorf("name after renumber = %q, want %q", got, "Rate Setpoint")
	}

	// The project still validates cleanly.
	result = w.RunCLI("check", "display.vtp", "--config", "config.toml")
	result.MustSucceed(t)
	if result.ExitCode != 0 {
		t.Errorf("check exit code = %d, want 0", result.ExitCode)
	}
	if n, _ := result.DataNumber("errors"); n != 0 {
		t.Errorf("check errors = %v, want 0", n)
	}
	if n, _ := result.DataNumber("warnings"); n != 0 {
		t.Errorf("check warnings = %v, want 0", n)
	}

	// Export back to the wire format and compare against the edited pool.
	result = w.RunCLI("export", "display.vtp", "--output", "final.iop", "--config", "config.toml")
	result.MustSucceed(t)
	w.AssertFileExists("final.iop")

	want := testutil.Pool(t,
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: 4000},
		&object.SoftKeyMask{ID: 4000, Keys: []object.ObjectID{5000}},
		&object.Key{ID: 5000, KeyCode: 1},
		&object.NumberVariable{ID: 3200, Value: 42},
	)
	testutil.AssertPoolsEqual(t, want, w.ReadPool("final.iop"))

	// Every edit touched the same project, so recent holds one entry.
	result = w.RunCLI("recent", "--config", "config.toml")
	result.MustSucceed(t)
	projects := result.DataList("projects")
	if len(projects) != 1 {
		t.Fatalf("recent projects = %v, want 1 entry", projects)
	}
	entry, ok := projects[0].(map[string]interface{})
	if !ok {
		t.Fatalf("recent entry has unexpected shape: %#v", projects[0])
	}
	if path, _ := entry["path"].(string); !strings.HasSuffix(path, "display.vtp") {
		t.Errorf("recent path = %q, want display.vtp", path)
	}
	if exists, _ := entry["exists"].(bool); !exists {
		t.Error("recent entry should exist on disk")
	}
}

// TestIntegration_CheckBrokenPoolExitsNonzero tests that validation errors
// fail the command with exit code 1.
func TestIntegration_CheckBrokenPoolExitsNonzero(t *testing.T) {
	w := testutil.NewTestWorkspace(t).
		WithPool("broken.iop", testutil.Pool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
		)).
		WithFile("config.toml", testConfig).
		Build()

	result := w.RunCLI("check", "broken.iop", "--config", "config.toml")
	result.MustFail(t, "VALIDATION_FAILED")
	if result.ExitCode != 1 {
		t.Errorf("check exit code = %d, want 1", result.ExitCode)
	}
	if n, _ := result.DataNumber("errors"); n != 1 {
		t.Errorf("check errors = %v, want 1", n)
	}
}

// TestIntegration_CheckStrictPromotesWarnings tests that --strict turns a
// warnings-only result into exit code 1 while the report itself stays ok.
func TestIntegration_CheckStrictPromotesWarnings(t *testing.T) {
	w := testutil.NewTestWorkspace(t).
		WithPool("headless.iop", testutil.Pool(t,
			&object.NumberVariable{ID: 21000, Value: 7},
		)).
		WithFile("config.toml", testConfig).
		Build()

	result := w.RunCLI("check", "headless.iop", "--config", "config.toml")
	result.MustSucceed(t)
	if result.ExitCode != 0 {
		t.Errorf("check exit code = %d, want 0", result.ExitCode)
	}
	if n, _ := result.DataNumber("warnings"); n != 1 {
		t.Errorf("check warnings = %v, want 1", n)
	}

	result = w.RunCLI("check", "headless.iop", "--strict", "--config", "config.toml")
	if !result.OK {
		t.Errorf("strict check report not ok: %s", result.RawJSON)
	}
	if result.ExitCode != 1 {
		t.Errorf("strict check exit code = %d, want 1", result.ExitCode)
	}
}

// TestIntegration_SetIDWarnsOnDanglingReferences tests that renumbering a
// referenced object warns, and that check then reports the stale reference.
func TestIntegration_SetIDWarnsOnDanglingReferences(t *testing.T) {
	w := testutil.NewTestWorkspace(t).
		WithPool("display.iop", testutil.Pool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
		)).
		WithFile("config.toml", testConfig).
		Build()

	w.RunCLI("import", "display.iop", "--config", "config.toml").MustSucceed(t)

	// The working set still points at 1000 afterwards.
	result := w.RunCLI("set-id", "display.vtp", "1000", "1001", "--config", "config.toml")
	result.MustSucceed(t)
	result.AssertHasWarning(t, "DANGLING_REF")

	result = w.RunCLI("check", "display.vtp", "--config", "config.toml")
	result.MustFail(t, "VALIDATION_FAILED")
	if result.ExitCode != 1 {
		t.Errorf("check exit code = %d, want 1", result.ExitCode)
	}
}

// TestIntegration_ImportErrors tests the structured errors for unreadable
// inputs.
func TestIntegration_ImportErrors(t *testing.T) {
	w := testutil.NewTestWorkspace(t).
		WithFile("garbage.iop", []byte{0xFF, 0xEE, 0xDD}).
		WithFile("config.toml", testConfig).
		Build()

	w.RunCLI("import", "garbage.iop", "--config", "config.toml").
		MustFail(t, "POOL_INVALID")

	w.RunCLI("import", "missing.iop", "--config", "config.toml").
		MustFail(t, "FILE_NOT_FOUND")
}
