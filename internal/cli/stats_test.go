package cli

import (
	"encoding/json"
	"testing"

	"github.com/isobus-tools/vtpool/internal/iop"
	"github.com/isobus-tools/vtpool/internal/object"
)

func resetStatsGlobals(t *testing.T) {
	t.Helper()
	prevJSON := jsonOutput
	t.Cleanup(func() { jsonOutput = prevJSON })
	jsonOutput = true
}

func TestStatsSummarizesProject(t *testing.T) {
	dir := t.TempDir()
	resetStatsGlobals(t)

	f := testProjectFile(t,
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
		&object.DataMask{ID: 1001, SoftKeyMask: object.NullID},
		&object.NumberVariable{ID: 3000},
	)
	f.Names = map[object.ObjectID]string{
		0:    "Sprayer Terminal",
		1000: "Main Screen",
	}
	path := writeTestProject(t, dir, "panel.vtp", f)

	encoded, err := iop.Encode(f.Pool)
	if err != nil {
		t.Fatalf("encode fixture pool: %v", err)
	}

	out := captureStdout(t, func() {
		if err := statsCmd.RunE(statsCmd, []string{path}); err != nil {
			t.Fatalf("statsCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Objects    int         `json:"objects"`
			Bytes      int         `json:"bytes"`
			VTVersion  uint8       `json:"vt_version"`
			MaskSize   uint16      `json:"mask_size"`
			Named      int         `json:"named"`
			WorkingSet string      `json:"working_set"`
			Types      []typeCount `json:"types"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if !resp.OK {
		t.Fatal("expected ok=true")
	}

	if resp.Data.Objects != 4 {
		t.Errorf("objects = %d, want 4", resp.Data.Objects)
	}
	if resp.Data.Bytes != len(encoded) {
		t.Errorf("bytes = %d, want the encoded pool size %d", resp.Data.Bytes, len(encoded))
	}
	if resp.Data.VTVersion != 3 {
		t.Errorf("vt_version = %d, want 3 from the header", resp.Data.VTVersion)
	}
	if resp.Data.MaskSize != 200 {
		t.Errorf("mask_size = %d, want the header value 200", resp.Data.MaskSize)
	}
	if resp.Data.Named != 2 {
		t.Errorf("named = %d, want 2", resp.Data.Named)
	}
	if resp.Data.WorkingSet != "Sprayer Terminal" {
		t.Errorf("working_set = %q, want %q", resp.Data.WorkingSet, "Sprayer Terminal")
	}

	if len(resp.Data.Types) != 3 {
		t.Fatalf("types = %+v, want 3 entries", resp.Data.Types)
	}
	// Two data masks outnumber everything else.
	if resp.Data.Types[0].Type != "DataMask" || resp.Data.Types[0].Count != 2 {
		t.Errorf("types[0] = %+v, want DataMask x2 first", resp.Data.Types[0])
	}
}

func TestStatsDerivesGeometryForRawPool(t *testing.T) {
	dir := t.TempDir()
	resetStatsGlobals(t)

	path := writeTestPool(t, dir, "pool.iop",
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
	)

	out := captureStdout(t, func() {
		if err := statsCmd.RunE(statsCmd, []string{path}); err != nil {
			t.Fatalf("statsCmd.RunE: %v", err)
		}
	})

	var resp struct {
		Data struct {
			MaskSize uint16 `json:"mask_size"`
			Named    int    `json:"named"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if resp.Data.MaskSize == 0 {
		t.Error("mask_size not derived from pool content")
	}
	if resp.Data.Named != 0 {
		t.Errorf("named = %d, want 0 for a raw pool", resp.Data.Named)
	}
}
