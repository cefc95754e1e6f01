package cli

import (
	"encoding/json"
	"runtime/debug"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	prev := readBuildInfo
	t.Cleanup(func() { readBuildInfo = prev })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
}

func TestCurrentVersionInfo(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		GoVersion: "go1.23.4",
		Main: debug.Module{
			Path:    "github.com/isobus-tools/vtpool",
			Version: "v1.4.0",
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123def456"},
			{Key: "vcs.time", Value: "2026-02-11T08:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "GOOS", Value: "linux"},
			{Key: "GOARCH", Value: "arm64"},
		},
	}, true)

	info := currentVersionInfo()
	if info.Version != "v1.4.0" {
		t.Errorf("Version = %q, want v1.4.0", info.Version)
	}
	if info.ModulePath != "github.com/isobus-tools/vtpool" {
		t.Errorf("ModulePath = %q", info.ModulePath)
	}
	if info.Commit != "abc123def456" || info.CommitTime != "2026-02-11T08:00:00Z" {
		t.Errorf("vcs settings not picked up: %+v", info)
	}
	if !info.Modified {
		t.Error("Modified = false, want true")
	}
	if info.GoVersion != "go1.23.4" || info.GOOS != "linux" || info.GOARCH != "arm64" {
		t.Errorf("build settings not picked up: %+v", info)
	}
}

func TestCurrentVersionInfoWithoutBuildInfo(t *testing.T) {
	stubBuildInfo(t, nil, false)

	info := currentVersionInfo()
	if info.Version != "devel" {
		t.Errorf("Version = %q, want devel", info.Version)
	}
	if info.ModulePath != defaultModulePath {
		t.Errorf("ModulePath = %q, want the default", info.ModulePath)
	}
	if info.GoVersion == "" || info.GOOS == "" || info.GOARCH == "" {
		t.Errorf("runtime fields empty: %+v", info)
	}
}

func TestNormalizeVersion(t *testing.T) {
	cases := map[string]string{
		"":        "devel",
		"(devel)": "devel",
		"v0.3.1":  "v0.3.1",
	}
	for in, want := range cases {
		if got := normalizeVersion(in); got != want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestVersionCommandJSON(t *testing.T) {
	prevJSON := jsonOutput
	t.Cleanup(func() { jsonOutput = prevJSON })
	jsonOutput = true

	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/isobus-tools/vtpool", Version: "v1.4.0"},
	}, true)

	out := captureStdout(t, func() {
		if err := versionCmd.RunE(versionCmd, nil); err != nil {
			t.Fatalf("versionCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool        `json:"ok"`
		Data versionInfo `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	if !resp.OK || resp.Data.Version != "v1.4.0" {
		t.Fatalf("response = %+v, want ok with v1.4.0", resp)
	}
}
