package cli

import (
	"encoding/json"
	"testing"

	"github.com/isobus-tools/vtpool/internal/object"
)

type objectsResponse struct {
	OK   bool `json:"ok"`
	Data struct {
		Objects []objectView `json:"objects"`
	} `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
	Meta *struct {
		Count int `json:"count"`
	} `json:"meta"`
}

func resetObjectsGlobals(t *testing.T) {
	t.Helper()
	prevJSON := jsonOutput
	prevType := objectsType
	prevSort := objectsSort
	prevFilter := objectsFilter
	t.Cleanup(func() {
		jsonOutput = prevJSON
		objectsType = prevType
		objectsSort = prevSort
		objectsFilter = prevFilter
	})

	jsonOutput = true
	objectsType = ""
	objectsSort = ""
	objectsFilter = ""
}

func objectsFixture(t *testing.T, dir string) string {
	t.Helper()
	f := testProjectFile(t,
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
		&object.Key{ID: 2000, KeyCode: 1},
		&object.NumberVariable{ID: 3000, Value: 12},
	)
	f.Names = map[object.ObjectID]string{1000: "Main Screen"}
	return writeTestProject(t, dir, "panel.vtp", f)
}

func runObjects(t *testing.T, args []string) objectsResponse {
	t.Helper()
	out := captureStdout(t, func() {
		if err := objectsCmd.RunE(objectsCmd, args); err != nil {
			t.Fatalf("objectsCmd.RunE: %v", err)
		}
	})
	var resp objectsResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp
}

func TestObjectsListsAll(t *testing.T) {
	dir := t.TempDir()
	resetObjectsGlobals(t)
	path := objectsFixture(t, dir)

	resp := runObjects(t, []string{path})
	if !resp.OK {
		t.Fatal("expected ok=true")
	}
	if len(resp.Data.Objects) != 4 {
		t.Fatalf("listed %d objects, want 4", len(resp.Data.Objects))
	}
	if resp.Meta == nil || resp.Meta.Count != 4 {
		t.Errorf("meta.count = %v, want 4", resp.Meta)
	}

	byID := make(map[uint16]objectView, len(resp.Data.Objects))
	for _, v := range resp.Data.Objects {
		byID[v.ID] = v
	}
	if v := byID[1000]; v.Type != "DataMask" || v.Name != "Main Screen" {
		t.Errorf("object 1000 = %+v, want DataMask named Main Screen", v)
	}
	if v := byID[3000]; v.Name != "3000: NumberVariable" {
		t.Errorf("unnamed object displays %q, want the id: type fallback", v.Name)
	}
	if v := byID[0]; v.Refs != 1 {
		t.Errorf("working set refs = %d, want 1 (its active mask)", v.Refs)
	}
}

func TestObjectsTypeFilter(t *testing.T) {
	dir := t.TempDir()
	resetObjectsGlobals(t)
	path := objectsFixture(t, dir)
	objectsType = "DataMask"

	resp := runObjects(t, []string{path})
	if len(resp.Data.Objects) != 1 || resp.Data.Objects[0].ID != 1000 {
		t.Fatalf("type filter returned %+v, want only object 1000", resp.Data.Objects)
	}
}

func TestObjectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	resetObjectsGlobals(t)
	path := objectsFixture(t, dir)
	objectsType = "Sprocket"

	resp := runObjects(t, []string{path})
	if resp.OK {
		t.Fatal("expected ok=false for an unknown type")
	}
	if resp.Error == nil || resp.Error.Code != ErrTypeNotFound {
		t.Fatalf("expected error.code=%s, got %#v", ErrTypeNotFound, resp.Error)
	}
}

func TestObjectsNameFilter(t *testing.T) {
	dir := t.TempDir()
	resetObjectsGlobals(t)
	path := objectsFixture(t, dir)
	objectsFilter = "main"

	resp := runObjects(t, []string{path})
	if len(resp.Data.Objects) != 1 || resp.Data.Objects[0].Name != "Main Screen" {
		t.Fatalf("filter returned %+v, want only Main Screen", resp.Data.Objects)
	}
}

func TestObjectsSortByName(t *testing.T) {
	dir := t.TempDir()
	resetObjectsGlobals(t)
	path := objectsFixture(t, dir)
	objectsSort = "name"

	resp := runObjects(t, []string{path})
	if len(resp.Data.Objects) != 4 {
		t.Fatalf("listed %d objects, want 4", len(resp.Data.Objects))
	}
	last := resp.Data.Objects[len(resp.Data.Objects)-1]
	if last.Name != "Main Screen" {
		t.Errorf("last object by name = %q, want %q (letters sort after digit fallbacks)",
			last.Name, "Main Screen")
	}
}

func TestObjectsUnknownSortKey(t *testing.T) {
	dir := t.TempDir()
	resetObjectsGlobals(t)
	path := objectsFixture(t, dir)
	objectsSort = "size"

	resp := runObjects(t, []string{path})
	if resp.OK {
		t.Fatal("expected ok=false for an unknown sort key")
	}
	if resp.Error == nil || resp.Error.Code != ErrInvalidInput {
		t.Fatalf("expected error.code=%s, got %#v", ErrInvalidInput, resp.Error)
	}
}
