package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/isobus-tools/vtpool/internal/projfile"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

func resetNewGlobals(t *testing.T) {
	t.Helper()
	prevJSON := jsonOutput
	prevOutput := newOutput
	prevForce := newForce
	prevVersion := newVTVersion
	prevVersionChanged := newCmd.Flags().Lookup("vt-version").Changed
	t.Cleanup(func() {
		jsonOutput = prevJSON
		newOutput = prevOutput
		newForce = prevForce
		newVTVersion = prevVersion
		newCmd.Flags().Lookup("vt-version").Changed = prevVersionChanged
	})

	jsonOutput = true
	newOutput = ""
	newForce = false
	newVTVersion = 0
	newCmd.Flags().Lookup("vt-version").Changed = false
}

func TestNewCreatesEmptyProject(t *testing.T) {
	dir := t.TempDir()
	resetNewGlobals(t)
	newOutput = filepath.Join(dir, "panel.vtp")

	out := captureStdout(t, func() {
		if err := newCmd.RunE(newCmd, []string{"Sprayer Terminal"}); err != nil {
			t.Fatalf("newCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			File      string `json:"file"`
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
	if resp.Data.VTVersion != 3 {
		t.Errorf("vt_version = %d, want the default 3", resp.Data.VTVersion)
	}

	data, err := os.ReadFile(newOutput)
	if err != nil {
		t.Fatalf("read created project: %v", err)
	}
	f, err := projfile.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal created project: %v", err)
	}
	if f.Pool.Len() != 0 {
		t.Errorf("new project holds %d objects, want an empty pool", f.Pool.Len())
	}
	if f.MaskSize == 0 || f.SoftKeySize.Width == 0 {
		t.Errorf("geometry not defaulted: mask %d, soft key %dx%d",
			f.MaskSize, f.SoftKeySize.Width, f.SoftKeySize.Height)
	}
}

func TestNewRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	resetNewGlobals(t)
	newOutput = filepath.Join(dir, "panel.vtp")

	if err := os.WriteFile(newOutput, []byte("existing"), 0o644); err != nil {
		t.Fatalf("seed existing file: %v", err)
	}

	out := captureStdout(t, func() {
		if err := newCmd.RunE(newCmd, nil); err != nil {
			t.Fatalf("newCmd.RunE: %v", err)
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
		t.Fatalf("expected ok=false; out=%s", out)
	}
	if resp.Error == nil || resp.Error.Code != ErrFileExists {
		t.Fatalf("expected error.code=%s, got %#v; out=%s", ErrFileExists, resp.Error, out)
	}
}

func TestNewForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	resetNewGlobals(t)
	newOutput = filepath.Join(dir, "panel.vtp")
	newForce = true

	if err := os.WriteFile(newOutput, []byte("not a project"), 0o644); err != nil {
		t.Fatalf("seed existing file: %v", err)
	}

	out := captureStdout(t, func() {
		if err := newCmd.RunE(newCmd, nil); err != nil {
			t.Fatalf("newCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if !resp.OK {
		t.Fatalf("expected ok=true with --force; out=%s", out)
	}

	data, err := os.ReadFile(newOutput)
	if err != nil {
		t.Fatalf("read overwritten project: %v", err)
	}
	if _, err := projfile.Unmarshal(data); err != nil {
		t.Fatalf("overwritten file is not a valid project: %v", err)
	}
}

func TestNewRecordsRequestedVersion(t *testing.T) {
	dir := t.TempDir()
	resetNewGlobals(t)
	newOutput = filepath.Join(dir, "panel.vtp")
	if err := newCmd.Flags().Set("vt-version", "5"); err != nil {
		t.Fatalf("set vt-version flag: %v", err)
	}

	_ = captureStdout(t, func() {
		if err := newCmd.RunE(newCmd, nil); err != nil {
			t.Fatalf("newCmd.RunE: %v", err)
		}
	})

	f, err := projfile.Unmarshal(mustReadFile(t, newOutput))
	if err != nil {
		t.Fatalf("unmarshal created project: %v", err)
	}
	if got := uint8(f.VTVersion); got != 5 {
		t.Errorf("header VT version = %d, want 5", got)
	}
}

func mustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}
