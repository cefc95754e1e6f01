package project

import (
	"errors"
	"fmt"
	"testing"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

// stageContainer adds a container to the staged pool and commits.
func stageContainer(t *testing.T, pr *Project, id object.ObjectID) {
	t.Helper()
	if err := pr.Staged().Add(&object.Container{ID: id, Width: 10, Height: 10}); err != nil {
		t.Fatalf("Add(%v): %v", id, err)
	}
	if !pr.CommitPool() {
		t.Fatalf("CommitPool after adding %v reported no change", id)
	}
}

func TestCommitPool(t *testing.T) {
	pr := New()

	if pr.Dirty() {
		t.Fatal("fresh project is dirty")
	}
	if pr.CommitPool() {
		t.Error("CommitPool with no staged changes returned true")
	}

	if err := pr.Staged().Add(&object.Container{ID: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !pr.Dirty() {
		t.Error("staged edit did not mark the project dirty")
	}
	if !pr.CommitPool() {
		t.Error("CommitPool ignored a staged change")
	}
	if !pr.Pool().Has(1) {
		t.Error("committed pool missing staged object")
	}

	// Idempotence: a second commit with nothing staged is a no-op.
	if pr.CommitPool() {
		t.Error("second CommitPool returned true")
	}
	if !pr.UndoAvailable() {
		t.Error("no undo history after a commit")
	}
}

func TestCommitClonesStagedPool(t *testing.T) {
	pr := New()
	stageContainer(t, pr, 1)

	// Later staged mutations must not leak into the committed snapshot.
	if err := pr.Staged().Add(&object.Container{ID: 2}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if pr.Pool().Has(2) {
		t.Error("staged mutation visible in committed pool before commit")
	}
}

func TestUndoRedoInverse(t *testing.T) {
	pr := New()
	stageContainer(t, pr, 1)
	stageContainer(t, pr, 2)
	stageContainer(t, pr, 3)

	beforeUndo := pr.Pool().Clone()

	if !pr.Undo() {
		t.Fatal("Undo returned false with history available")
	}
	if pr.Pool().Has(3) {
		t.Error("undo did not remove the last commit")
	}
	if !pr.Redo() {
		t.Fatal("Redo returned false after an undo")
	}
	if !pr.Pool().Equal(beforeUndo) {
		t.Error("undo();redo() did not restore the pre-undo pool")
	}

	if pr.Redo() {
		t.Error("Redo with an empty redo stack returned true")
	}
	if pr.Undo() && pr.Undo() && pr.Undo() && pr.Undo() {
		t.Error("more undos succeeded than commits were made")
	}
}

func TestUndoSetsBothSides(t *testing.T) {
	pr := New()
	stageContainer(t, pr, 1)
	stageContainer(t, pr, 2)

	pr.Undo()

	// Staged must have adopted the snapshot too, or this commit would
	// push the undone state straight back into history.
	if pr.Dirty() {
		t.Error("staged pool differs from committed after undo")
	}
	if pr.CommitPool() {
		t.Error("CommitPool right after undo committed something")
	}
	if !pr.RedoAvailable() {
		t.Error("redo stack lost by the post-undo commit")
	}
}

func TestCommitClearsRedo(t *testing.T) {
	pr := New()
	stageContainer(t, pr, 1)
	stageContainer(t, pr, 2)
	pr.Undo()

	if !pr.RedoAvailable() {
		t.Fatal("no redo after undo")
	}
	stageContainer(t, pr, 7)
	if pr.RedoAvailable() {
		t.Error("redo stack survived a new commit")
	}
}

func TestHistoryBound(t *testing.T) {
	pr := New()
	for i := 1; i <= 15; i++ {
		stageContainer(t, pr, object.ObjectID(i))
	}

	undos := 0
	for pr.Undo() {
		undos++
	}
	if undos != maxPoolHistory {
		t.Errorf("%d undos available after 15 commits, want %d", undos, maxPoolHistory)
	}
	if pr.UndoAvailable() {
		t.Error("UndoAvailable still true after draining history")
	}
	// The oldest retained snapshot holds the first 5 commits.
	if got := pr.Pool().Len(); got != 5 {
		t.Errorf("oldest retained pool has %d objects, want 5", got)
	}
}

func TestSelectionCommit(t *testing.T) {
	pr := New()

	if pr.CommitSelection() {
		t.Error("CommitSelection with no change returned true")
	}

	pr.Select(5)
	if !pr.CommitSelection() {
		t.Error("CommitSelection ignored a staged selection")
	}
	if pr.Selected() != 5 {
		t.Errorf("Selected() = %v, want 5", pr.Selected())
	}
	if pr.CommitSelection() {
		t.Error("second CommitSelection returned true")
	}
}

func TestDeselectionCommitsWithoutHistory(t *testing.T) {
	pr := New()
	pr.Select(5)
	pr.CommitSelection() // history: [null]
	pr.Select(object.NullID)
	if !pr.CommitSelection() {
		t.Error("deselection did not commit")
	}
	pr.Select(6)
	pr.CommitSelection() // history: [null, null]; the 5 is not recorded

	if !pr.SelectPrevious() {
		t.Fatal("SelectPrevious returned false")
	}
	if !pr.Selected().IsNull() {
		t.Errorf("Selected() = %v, want NULL (deselection is not itself undoable)", pr.Selected())
	}
	if !pr.SelectNext() {
		t.Fatal("SelectNext returned false")
	}
	if pr.Selected() != 6 {
		t.Errorf("Selected() = %v, want 6", pr.Selected())
	}
}

func TestSelectionHistoryBound(t *testing.T) {
	pr := New()
	for i := 1; i <= 25; i++ {
		pr.Select(object.ObjectID(i))
		pr.CommitSelection()
	}

	steps := 0
	for pr.SelectPrevious() {
		steps++
	}
	if steps != maxSelectionHistory {
		t.Errorf("%d selection undos after 25 commits, want %d", steps, maxSelectionHistory)
	}
}

func TestSelectPreviousNextRoundTrip(t *testing.T) {
	pr := New()
	for _, id := range []object.ObjectID{1, 2, 3} {
		pr.Select(id)
		pr.CommitSelection()
	}

	pr.SelectPrevious()
	if pr.Selected() != 2 {
		t.Errorf("Selected() = %v, want 2", pr.Selected())
	}
	pr.SelectNext()
	if pr.Selected() != 3 {
		t.Errorf("Selected() = %v, want 3", pr.Selected())
	}
	// Staged side follows history navigation.
	if pr.StagedSelection() != 3 {
		t.Errorf("StagedSelection() = %v, want 3", pr.StagedSelection())
	}
}

func TestAllocatorResyncsAfterUndo(t *testing.T) {
	pr := New()
	if _, err := pr.CreateObject(object.TypeContainer, ""); err != nil {
		t.Fatalf("CreateObject: %v", err)
	}
	pr.CommitPool()
	if _, err := pr.CreateObject(object.TypeContainer, ""); err != nil {
		t.Fatalf("CreateObject: %v", err)
	}
	pr.CommitPool()

	pr.Undo() // back to one object with id 1

	id, err := pr.AllocateID()
	if err != nil {
		t.Fatalf("AllocateID: %v", err)
	}
	if id != 2 {
		t.Errorf("AllocateID after undo = %v, want 2", id)
	}
}

func TestCreateObject(t *testing.T) {
	pr := New()
	obj, err := pr.CreateObject(object.TypeButton, "OK Button")
	if err != nil {
		t.Fatalf("CreateObject: %v", err)
	}

	id := obj.GetID()
	if !pr.Staged().Has(id) {
		t.Error("created object not in staged pool")
	}
	if pr.Pool().Has(id) {
		t.Error("created object leaked into committed pool before commit")
	}
	if pr.StagedSelection() != id {
		t.Errorf("StagedSelection() = %v, want %v", pr.StagedSelection(), id)
	}
	if got := pr.DisplayName(obj); got != "OK Button" {
		t.Errorf("DisplayName = %q", got)
	}

	t.Run("empty name keeps the fallback", func(t *testing.T) {
		obj, err := pr.CreateObject(object.TypeContainer, "")
		if err != nil {
			t.Fatalf("CreateObject: %v", err)
		}
		want := fmt.Sprintf("%d: Container", uint16(obj.GetID()))
		if got := pr.DisplayName(obj); got != want {
			t.Errorf("DisplayName = %q, want %q", got, want)
		}
	})
}

func TestEdit(t *testing.T) {
	pr := New()

	changed, err := pr.Edit(func(p *pool.Pool) error {
		return p.Add(&object.Container{ID: 1})
	})
	if err != nil || !changed {
		t.Fatalf("Edit = %v, %v", changed, err)
	}
	if !pr.Pool().Has(1) {
		t.Error("Edit did not commit")
	}

	wantErr := errors.New("boom")
	changed, err = pr.Edit(func(p *pool.Pool) error {
		if err := p.Add(&object.Container{ID: 2}); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Edit error = %v, want %v", err, wantErr)
	}
	if changed {
		t.Error("failed Edit reported a change")
	}
	if pr.Staged().Has(2) || pr.Dirty() {
		t.Error("failed Edit left partial changes staged")
	}
}

func TestRenumberKeepsMetadata(t *testing.T) {
	pr := New()
	if err := pr.Staged().Add(&object.OutputMeter{ID: 10, Width: 50}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := pr.Rename(10, "Speedometer"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	uid := pr.Meta().Info(10).UID()

	if err := pr.RenumberObject(10, 20); err != nil {
		t.Fatalf("RenumberObject: %v", err)
	}

	obj, ok := pr.Staged().Get(20)
	if !ok {
		t.Fatal("object missing at new id")
	}
	if pr.Staged().Has(10) {
		t.Error("object still present at old id")
	}
	if got := pr.DisplayName(obj); got != "Speedometer" {
		t.Errorf("DisplayName after renumber = %q, want %q", got, "Speedometer")
	}
	if pr.Meta().Info(20).UID() != uid {
		t.Error("stable identity changed during renumber")
	}
}

func TestRenumberFollowsSelection(t *testing.T) {
	pr := New()
	if err := pr.Staged().Add(&object.Container{ID: 10}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	pr.Select(10)
	if err := pr.RenumberObject(10, 20); err != nil {
		t.Fatalf("RenumberObject: %v", err)
	}
	if pr.StagedSelection() != 20 {
		t.Errorf("StagedSelection() = %v, want 20", pr.StagedSelection())
	}
}

func TestRename(t *testing.T) {
	pr := New()
	if err := pr.Staged().Add(&object.Container{ID: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := pr.Staged().Add(&object.Container{ID: 2}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	t.Run("duplicate names are rejected with a suggestion", func(t *testing.T) {
		if err := pr.Rename(1, "Header"); err != nil {
			t.Fatalf("Rename: %v", err)
		}
		err := pr.Rename(2, "Header")
		want := "Name 'Header' already exists. Try 'Header 2'"
		if err == nil || err.Error() != want {
			t.Errorf("Rename = %v, want %q", err, want)
		}
	})

	t.Run("renaming to the current name succeeds", func(t *testing.T) {
		if err := pr.Rename(1, "Header"); err != nil {
			t.Errorf("Rename to own name = %v", err)
		}
	})

	t.Run("missing object", func(t *testing.T) {
		if err := pr.Rename(99, "x"); !errors.Is(err, pool.ErrNotFound) {
			t.Errorf("Rename(99) = %v, want ErrNotFound", err)
		}
	})
}

func TestApplySmartNamesDataMaskScenario(t *testing.T) {
	pr := New()
	if err := pr.Staged().Add(&object.DataMask{ID: 1000}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := pr.Staged().Add(&object.DataMask{ID: 1001}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if named := pr.ApplySmartNames(); named != 2 {
		t.Errorf("ApplySmartNames named %d objects, want 2", named)
	}

	first, _ := pr.Staged().Get(1000)
	second, _ := pr.Staged().Get(1001)
	if got := pr.DisplayName(first); got != "Main Screen" {
		t.Errorf("first mask = %q, want %q", got, "Main Screen")
	}
	if got := pr.DisplayName(second); got != "Data Screen 2" {
		t.Errorf("second mask = %q, want %q", got, "Data Screen 2")
	}
}

func TestApplySmartNamesUniqueness(t *testing.T) {
	pr := New()
	objs := []object.Object{
		&object.DataMask{ID: 1},
		&object.DataMask{ID: 2},
		&object.Container{ID: 3, Height: 50},  // contextual: Header Container
		&object.Container{ID: 4, Height: 50},  // contextual name taken
		&object.Container{ID: 5, Height: 400}, // contextual: Main Container
		&object.Key{ID: 6, KeyCode: 0},        // contextual: ACK/Enter Key
		&object.Key{ID: 7, KeyCode: 0},        // contextual name taken
		&object.Button{ID: 8, KeyCode: 1},     // contextual: Cancel Button
		&object.OutputLine{ID: 9},
	}
	for _, obj := range objs {
		if err := pr.Staged().Add(obj); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	pr.Meta().SetName(9, "Divider")

	if named := pr.ApplySmartNames(); named != len(objs)-1 {
		t.Errorf("ApplySmartNames named %d objects, want %d", named, len(objs)-1)
	}

	seen := make(map[string]object.ObjectID)
	for _, obj := range pr.Staged().Objects() {
		name := pr.DisplayName(obj)
		if prev, dup := seen[name]; dup {
			t.Errorf("objects %v and %v both display %q", prev, obj.GetID(), name)
		}
		seen[name] = obj.GetID()
	}

	if got := pr.Meta().Name(9); got != "Divider" {
		t.Errorf("custom name overwritten: %q", got)
	}
	if got := pr.Meta().Name(3); got != "Header Container" {
		t.Errorf("contextual name = %q, want %q", got, "Header Container")
	}
}

func TestApplySmartNamesIsIdempotent(t *testing.T) {
	pr := New()
	if err := pr.Staged().Add(&object.DataMask{ID: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	pr.ApplySmartNames()
	if named := pr.ApplySmartNames(); named != 0 {
		t.Errorf("second ApplySmartNames named %d objects, want 0", named)
	}
}

func TestRenameSession(t *testing.T) {
	pr := New()
	if err := pr.Staged().Add(&object.Container{ID: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	t.Run("apply", func(t *testing.T) {
		seed, err := pr.BeginRename(1)
		if err != nil {
			t.Fatalf("BeginRename: %v", err)
		}
		if seed != "1: Container" {
			t.Errorf("seed = %q, want %q", seed, "1: Container")
		}
		pr.UpdateRename("Body")
		if err := pr.FinishRename(true); err != nil {
			t.Fatalf("FinishRename: %v", err)
		}
		if got := pr.Meta().Name(1); got != "Body" {
			t.Errorf("name = %q, want %q", got, "Body")
		}
		if _, _, open := pr.RenamingObject(); open {
			t.Error("session still open after finish")
		}
	})

	t.Run("cancel", func(t *testing.T) {
		if _, err := pr.BeginRename(1); err != nil {
			t.Fatalf("BeginRename: %v", err)
		}
		pr.UpdateRename("discarded")
		if err := pr.FinishRename(false); err != nil {
			t.Fatalf("FinishRename: %v", err)
		}
		if got := pr.Meta().Name(1); got != "Body" {
			t.Errorf("cancelled rename changed name to %q", got)
		}
	})

	t.Run("missing object", func(t *testing.T) {
		if _, err := pr.BeginRename(99); !errors.Is(err, pool.ErrNotFound) {
			t.Errorf("BeginRename(99) = %v, want ErrNotFound", err)
		}
	})
}

func TestSmartNameForAndChildSuggestions(t *testing.T) {
	pr := New()
	if got := pr.SmartNameFor(object.TypeDataMask); got != "Main Screen" {
		t.Errorf("SmartNameFor = %q, want %q", got, "Main Screen")
	}

	if err := pr.Staged().Add(&object.SoftKeyMask{ID: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, ok := pr.SuggestChildName(1, object.TypeKey)
	if !ok || got != "F1 Key" {
		t.Errorf("SuggestChildName = %q, %v; want %q", got, ok, "F1 Key")
	}
	if _, ok := pr.SuggestChildName(99, object.TypeKey); ok {
		t.Error("suggestion for missing parent")
	}
}

func TestFromPoolDerivesGeometry(t *testing.T) {
	p := pool.New()
	mask := &object.DataMask{ID: 1, Children: []object.ObjectRef{{ID: 2, Offset: object.Point{X: 0, Y: 0}}}}
	if err := p.Add(mask); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := p.Add(&object.Container{ID: 2, Width: 350, Height: 120}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	pr := FromPool(p)
	if pr.MaskSize != 350 {
		t.Errorf("MaskSize = %d, want 350", pr.MaskSize)
	}
	if pr.SoftKeySize() != (object.Size{Width: 60, Height: 60}) {
		t.Errorf("SoftKeySize = %v", pr.SoftKeySize())
	}
	if !pr.Selected().IsNull() {
		t.Errorf("fresh project has selection %v", pr.Selected())
	}
}
