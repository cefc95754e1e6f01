package project

import (
	"testing"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

func sortFixture(t *testing.T) *Project {
	t.Helper()
	p, err := pool.FromObjects(
		&object.OutputString{ID: 30, FontAttributes: object.NullID, VariableReference: object.NullID},
		&object.DataMask{ID: 10, SoftKeyMask: object.NullID},
		&object.Container{ID: 20, Width: 10, Height: 10},
	)
	if err != nil {
		t.Fatal(err)
	}
	pr := FromPool(p)
	pr.Meta().SetName(30, "alpha")
	pr.Meta().SetName(10, "Zulu")
	return pr
}

func stagedIDs(pr *Project) []object.ObjectID {
	var ids []object.ObjectID
	for _, obj := range pr.Staged().Objects() {
		ids = append(ids, obj.GetID())
	}
	return ids
}

func TestSortObjects(t *testing.T) {
	tests := []struct {
		name string
		key  SortKey
		want []object.ObjectID
	}{
		// Type codes: DataMask 1, Container 3, OutputString 11.
		{"by type", SortByType, []object.ObjectID{10, 20, 30}},
		{"by id", SortByID, []object.ObjectID{10, 20, 30}},
		// "alpha" < "zulu" case-insensitively; 20 falls back to "20: Container".
		{"by name", SortByName, []object.ObjectID{20, 30, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := sortFixture(t)
			pr.SortObjects(tt.key)
			got := stagedIDs(pr)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSortIsUndoable(t *testing.T) {
	pr := sortFixture(t)
	before := stagedIDs(pr)

	pr.SortObjects(SortByID)
	if !pr.CommitPool() {
		t.Fatal("reorder did not commit")
	}
	if !pr.Undo() {
		t.Fatal("no undo after reorder commit")
	}
	after := stagedIDs(pr)
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("undo order %v, want %v", after, before)
		}
	}
}

func TestSortStability(t *testing.T) {
	p, err := pool.FromObjects(
		&object.Container{ID: 5, Width: 1, Height: 1},
		&object.Container{ID: 2, Width: 1, Height: 1},
		&object.Container{ID: 9, Width: 1, Height: 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	pr := FromPool(p)
	pr.SortObjects(SortByType)
	got := stagedIDs(pr)
	want := []object.ObjectID{5, 2, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("equal keys reordered: got %v, want %v", got, want)
		}
	}
}

func TestFilterObjects(t *testing.T) {
	pr := sortFixture(t)

	if got := pr.FilterObjects(""); len(got) != 3 {
		t.Errorf("empty query matched %d objects, want 3", len(got))
	}
	got := pr.FilterObjects("ZU")
	if len(got) != 1 || got[0].GetID() != 10 {
		t.Errorf("query ZU matched %v", got)
	}
	// Fallback display names are searchable too.
	got = pr.FilterObjects("container")
	if len(got) != 1 || got[0].GetID() != 20 {
		t.Errorf("query container matched %v", got)
	}
	if got := pr.FilterObjects("no such name"); len(got) != 0 {
		t.Errorf("bogus query matched %v", got)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, s := range []string{"type", "Name", "ID"} {
		if _, err := ParseSortKey(s); err != nil {
			t.Errorf("ParseSortKey(%q): %v", s, err)
		}
	}
	if _, err := ParseSortKey("size"); err == nil {
		t.Error("ParseSortKey accepted an unknown key")
	}
}
