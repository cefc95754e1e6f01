package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/isobus-tools/vtpool/internal/iop"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
	"github.com/isobus-tools/vtpool/internal/projfile"
)

func resetImportGlobals(t *testing.T) {
	t.Helper()
	prevJSON := jsonOutput
	prevOutput := importOutput
	prevSmart := importSmartNames
	prevVersion := importVTVersion
	prevSmartChanged := importCmd.Flags().Lookup("smart-names").Changed
	prevVersionChanged := importCmd.Flags().Lookup("vt-version").Changed
	t.Cleanup(func() {
		jsonOutput = prevJSON
		importOutput = prevOutput
		importSmartNames = prevSmart
		importVTVersion = prevVersion
		importCmd.Flags().Lookup("smart-names").Changed = prevSmartChanged
		importCmd.Flags().Lookup("vt-version").Changed = prevVersionChanged
	})

	jsonOutput = true
	importOutput = ""
	importSmartNames = true
	importVTVersion = 0
	importCmd.Flags().Lookup("smart-names").Changed = false
	importCmd.Flags().Lookup("vt-version").Changed = false
}

// writeTestPool encodes objects as a raw .iop file under dir.
func writeTestPool(t *testing.T, dir, name string, objects ...object.Object) string {
	t.Helper()
	p, err := pool.FromObjects(objects...)
	if err != nil {
		t.Fatalf("build fixture pool: %v", err)
	}
	data, err := iop.Encode(p)
	if err != nil {
		t.Fatalf("encode fixture pool: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture pool: %v", err)
	}
	return path
}

func TestImportCreatesProject(t *testing.T) {
	dir := t.TempDir()
	resetImportGlobals(t)

	inPath := writeTestPool(t, dir, "sprayer.iop",
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
		&object.Key{ID: 2000, KeyCode: 1},
		&object.NumberVariable{ID: 3000, Value: 42},
	)

	out := captureStdout(t, func() {
		if err := importCmd.RunE(importCmd, []string{inPath}); err != nil {
			t.Fatalf("importCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			File      string `json:"file"`
			Objects   int    `json:"objects"`
			Named     int    `json:"named"`
			VTVersion uint8  `json:"vt_version"`
			MaskSize  uint16 `json:"mask_size"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if !resp.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}
	if resp.Data.Objects != 4 {
		t.Errorf("objects = %d, want 4", resp.Data.Objects)
	}
	if resp.Data.Named != 4 {
		t.Errorf("named = %d, want all 4 objects named", resp.Data.Named)
	}
	if resp.Data.VTVersion != 3 {
		t.Errorf("vt_version = %d, want the default 3", resp.Data.VTVersion)
	}
	if resp.Data.MaskSize == 0 {
		t.Error("mask_size not derived from pool content")
	}

	wantOut := filepath.Join(dir, "sprayer.vtp")
	if resp.Data.File != wantOut {
		t.Errorf("file = %s, want %s", resp.Data.File, wantOut)
	}

	f, err := projfile.Unmarshal(mustReadFile(t, wantOut))
	if err != nil {
		t.Fatalf("unmarshal imported project: %v", err)
	}
	if f.Pool.Len() != 4 {
		t.Errorf("imported pool holds %d objects, want 4", f.Pool.Len())
	}
	if got := f.Names[1000]; got != "Main Screen" {
		t.Errorf("data mask named %q, want %q", got, "Main Screen")
	}
	if got := f.Names[2000]; got != "ESC Key" {
		t.Errorf("key named %q, want %q", got, "ESC Key")
	}
}

func TestImportSmartNamesDisabled(t *testing.T) {
	dir := t.TempDir()
	resetImportGlobals(t)

	inPath := writeTestPool(t, dir, "bare.iop",
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
	)
	if err := importCmd.Flags().Set("smart-names", "false"); err != nil {
		t.Fatalf("set smart-names flag: %v", err)
	}

	out := captureStdout(t, func() {
		if err := importCmd.RunE(importCmd, []string{inPath}); err != nil {
			t.Fatalf("importCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Named int `json:"named"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if resp.Data.Named != 0 {
		t.Errorf("named = %d, want 0 with --smart-names=false", resp.Data.Named)
	}

	f, err := projfile.Unmarshal(mustReadFile(t, filepath.Join(dir, "bare.vtp")))
	if err != nil {
		t.Fatalf("unmarshal imported project: %v", err)
	}
	if len(f.Names) != 0 {
		t.Errorf("header carries %d names, want none", len(f.Names))
	}
}

func TestImportRespectsOutputFlag(t *testing.T) {
	dir := t.TempDir()
	resetImportGlobals(t)

	inPath := writeTestPool(t, dir, "pool.iop",
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
	)
	importOutput = filepath.Join(dir, "terminal.vtp")

	_ = captureStdout(t, func() {
		if err := importCmd.RunE(importCmd, []string{inPath}); err != nil {
			t.Fatalf("importCmd.RunE: %v", err)
		}
	})

	if _, err := os.Stat(importOutput); err != nil {
		t.Fatalf("expected project at -o path: %v", err)
	}
}

func TestImportRejectsProjectFile(t *testing.T) {
	resetImportGlobals(t)

	out := captureStdout(t, func() {
		if err := importCmd.RunE(importCmd, []string{"panel.vtp"}); err != nil {
			t.Fatalf("importCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK    bool `json:"ok"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if resp.OK {
		t.Fatalf("expected ok=false for a .vtp input; out=%s", out)
	}
	if resp.Error == nil || resp.Error.Code != ErrInvalidInput {
		t.Fatalf("expected error.code=%s, got %#v", ErrInvalidInput, resp.Error)
	}
}

func TestImportMissingFile(t *testing.T) {
	dir := t.TempDir()
	resetImportGlobals(t)

	out := captureStdout(t, func() {
		if err := importCmd.RunE(importCmd, []string{filepath.Join(dir, "absent.iop")}); err != nil {
			t.Fatalf("importCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK    bool `json:"ok"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if resp.Error == nil || resp.Error.Code != ErrFileNotFound {
		t.Fatalf("expected error.code=%s, got %#v", ErrFileNotFound, resp.Error)
	}
}
