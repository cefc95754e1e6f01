// Package project holds the transactional editing state for one object
// pool: a committed pool plus selection, a staged working copy of each, and
// bounded undo/redo history for both.
//
// All edits land on the staged pool. Nothing reaches the committed pool or
// the history stacks until CommitPool observes a structural difference, so
// any number of staged mutations collapse into one history entry.
package project

import (
	"fmt"
	"slices"

	"github.com/isobus-tools/vtpool/internal/alloc"
	"github.com/isobus-tools/vtpool/internal/meta"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

const (
	maxPoolHistory      = 10
	maxSelectionHistory = 20
)

// Project is the editing state for one pool. Not safe for concurrent use;
// the editor drives it from a single loop.
type Project struct {
	committed *pool.Pool
	staged    *pool.Pool
	undoPool  []*pool.Pool
	redoPool  []*pool.Pool

	committedSel object.ObjectID
	stagedSel    object.ObjectID
	undoSel      []object.ObjectID
	redoSel      []object.ObjectID

	// MaskSize is the virtual mask edge length used for layout previews.
	// User-adjustable, so exported; it never feeds back into the pool.
	MaskSize    uint16
	softKeySize object.Size

	meta  *meta.Table
	alloc *alloc.Allocator

	rename *renameState
}

// New returns a project around an empty pool.
func New() *Project {
	return FromPool(pool.New())
}

// FromPool adopts p as the committed pool and stages a copy of it. The mask
// and soft key geometry are derived from the pool's content.
func FromPool(p *pool.Pool) *Project {
	maskSize, softKeySize := p.MinimumMaskSizes()
	pr := &Project{
		committed:    p,
		staged:       p.Clone(),
		committedSel: object.NullID,
		stagedSel:    object.NullID,
		MaskSize:     maskSize,
		softKeySize:  softKeySize,
		meta:         meta.NewTable(),
		alloc:        alloc.New(),
	}
	pr.alloc.Resync(pr.staged)
	return pr
}

// Pool returns the committed pool. Callers must not mutate it; edits go
// through Staged.
func (p *Project) Pool() *pool.Pool {
	return p.committed
}

// Staged returns the working pool. Mutations take effect on the committed
// side at the next CommitPool.
func (p *Project) Staged() *pool.Pool {
	return p.staged
}

// Meta returns the object metadata table. Metadata is not covered by
// undo/redo; names survive history navigation.
func (p *Project) Meta() *meta.Table {
	return p.meta
}

// SoftKeySize returns the soft key designator size derived at load time.
func (p *Project) SoftKeySize() object.Size {
	return p.softKeySize
}

// Dirty reports whether the staged pool differs from the committed pool.
func (p *Project) Dirty() bool {
	return !p.staged.Equal(p.committed)
}

// CommitPool folds staged changes into the committed pool. If the staged
// pool differs it clears the redo stack, pushes the old committed pool onto
// the undo stack (evicting the oldest entry past the bound), and reports
// true. Identical pools leave all state untouched.
func (p *Project) CommitPool() bool {
	if p.staged.Equal(p.committed) {
		return false
	}
	p.redoPool = nil
	p.undoPool = append(p.undoPool, p.committed)
	if len(p.undoPool) > maxPoolHistory {
		p.undoPool = slices.Delete(p.undoPool, 0, len(p.undoPool)-maxPoolHistory)
	}
	p.committed = p.staged.Clone()
	return true
}

// Undo restores the most recent history snapshot. Both the committed and
// staged pools adopt it; restoring only one side would make the next commit
// re-push the snapshot into history.
func (p *Project) Undo() bool {
	n := len(p.undoPool)
	if n == 0 {
		return false
	}
	popped := p.undoPool[n-1]
	p.undoPool = p.undoPool[:n-1]
	p.redoPool = append(p.redoPool, p.committed)
	p.committed = popped
	p.staged = popped.Clone()
	p.alloc.Resync(p.staged)
	return true
}

// UndoAvailable reports whether Undo would do anything.
func (p *Project) UndoAvailable() bool {
	return len(p.undoPool) > 0
}

// Redo reapplies the most recently undone snapshot.
func (p *Project) Redo() bool {
	n := len(p.redoPool)
	if n == 0 {
		return false
	}
	popped := p.redoPool[n-1]
	p.redoPool = p.redoPool[:n-1]
	p.undoPool = append(p.undoPool, p.committed)
	p.committed = popped
	p.staged = popped.Clone()
	p.alloc.Resync(p.staged)
	return true
}

// RedoAvailable reports whether Redo would do anything.
func (p *Project) RedoAvailable() bool {
	return len(p.redoPool) > 0
}

// Selected returns the committed selection, NullID when nothing is selected.
func (p *Project) Selected() object.ObjectID {
	return p.committedSel
}

// StagedSelection returns the selection pending commit.
func (p *Project) StagedSelection() object.ObjectID {
	return p.stagedSel
}

// Select stages a new selection. Pass NullID to deselect.
func (p *Project) Select(id object.ObjectID) {
	p.stagedSel = id
}

// CommitSelection folds the staged selection into the committed one. A
// change clears the selection redo stack; the old selection is pushed onto
// the undo stack only when the new one is non-null, so deselection commits
// without recording history but selecting again afterwards is undoable.
func (p *Project) CommitSelection() bool {
	if p.stagedSel == p.committedSel {
		return false
	}
	p.redoSel = nil
	if !p.stagedSel.IsNull() {
		p.undoSel = append(p.undoSel, p.committedSel)
		if len(p.undoSel) > maxSelectionHistory {
			p.undoSel = slices.Delete(p.undoSel, 0, len(p.undoSel)-maxSelectionHistory)
		}
	}
	p.committedSel = p.stagedSel
	return true
}

// SelectPrevious walks the selection history backwards.
func (p *Project) SelectPrevious() bool {
	n := len(p.undoSel)
	if n == 0 {
		return false
	}
	popped := p.undoSel[n-1]
	p.undoSel = p.undoSel[:n-1]
	p.redoSel = append(p.redoSel, p.committedSel)
	p.committedSel = popped
	p.stagedSel = popped
	return true
}

// SelectNext walks the selection history forwards.
func (p *Project) SelectNext() bool {
	n := len(p.redoSel)
	if n == 0 {
		return false
	}
	popped := p.redoSel[n-1]
	p.redoSel = p.redoSel[:n-1]
	p.undoSel = append(p.undoSel, p.committedSel)
	p.committedSel = popped
	p.stagedSel = popped
	return true
}

// Edit applies fn to the staged pool and commits. If fn fails, the staged
// pool is reset to the committed state, discarding any staged edits.
func (p *Project) Edit(fn func(*pool.Pool) error) (bool, error) {
	if err := fn(p.staged); err != nil {
		p.staged = p.committed.Clone()
		return false, err
	}
	return p.CommitPool(), nil
}

// AllocateID returns an object ID free in the staged pool.
func (p *Project) AllocateID() (object.ObjectID, error) {
	return p.alloc.Allocate(p.staged)
}

// CreateObject stages a new object of type t with a freshly allocated ID,
// names it (empty names are ignored), and selects it.
func (p *Project) CreateObject(t object.ObjectType, name string) (object.Object, error) {
	obj := object.New(t)
	if obj == nil {
		return nil, fmt.Errorf("unknown object type %d", uint8(t))
	}
	id, err := p.alloc.Allocate(p.staged)
	if err != nil {
		return nil, err
	}
	obj.SetID(id)
	if err := p.staged.Add(obj); err != nil {
		return nil, err
	}
	p.meta.SetName(id, name)
	p.Select(id)
	return obj, nil
}

// RenumberObject changes an object's numeric ID in the staged pool and
// carries its metadata along, preserving the stable identity. References to
// the old ID elsewhere in the pool are left alone and dangle until the
// caller rewrites them.
func (p *Project) RenumberObject(old, new object.ObjectID) error {
	if err := p.staged.ReplaceID(old, new); err != nil {
		return err
	}
	p.meta.Migrate(old, new)
	if p.stagedSel == old {
		p.stagedSel = new
	}
	return nil
}
