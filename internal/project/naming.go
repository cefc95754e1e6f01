package project

import (
	"fmt"

	"github.com/isobus-tools/vtpool/internal/naming"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

// DisplayName returns the name shown for obj: the custom name if one was
// assigned, otherwise "{id}: {type}".
func (p *Project) DisplayName(obj object.Object) string {
	return p.meta.DisplayName(obj)
}

// NameCounts returns the multiset of names currently displayed in the
// staged pool.
func (p *Project) NameCounts() naming.NameCounts {
	return naming.Collect(p.staged, p.meta.DisplayName)
}

// SmartNameFor proposes a default name for a new object of type t, unique
// against the staged pool's displayed names.
func (p *Project) SmartNameFor(t object.ObjectType) string {
	return naming.SmartDefault(t, p.staged, p.NameCounts())
}

// ValidateName checks a proposed name against the staged pool. The object
// being renamed, if any, should be excluded via Rename instead.
func (p *Project) ValidateName(name string) error {
	return naming.Validate(name, p.NameCounts())
}

// Rename assigns a custom name to the object at id. The object's own
// current display name does not count against uniqueness, so renaming an
// object to the name it already shows succeeds.
func (p *Project) Rename(id object.ObjectID, name string) error {
	obj, ok := p.staged.Get(id)
	if !ok {
		return fmt.Errorf("rename %v: %w", id, pool.ErrNotFound)
	}
	counts := p.NameCounts()
	counts.Remove(p.meta.DisplayName(obj))
	if err := naming.Validate(name, counts); err != nil {
		return err
	}
	p.meta.SetName(id, name)
	return nil
}

// ApplySmartNames assigns names to every staged object that has no custom
// name yet, in pool order, as if each object were being created one at a
// time. Contextual heuristics are tried first; if the heuristic name is
// already displayed somewhere, or no heuristic applies, the numbered smart
// default takes over. Afterwards no two objects display the same name.
// Returns the number of objects named.
func (p *Project) ApplySmartNames() int {
	counts := p.NameCounts()
	typeSeen := make(map[object.ObjectType]int)
	named := 0
	for _, obj := range p.staged.Objects() {
		seen := typeSeen[obj.Type()]
		typeSeen[obj.Type()] = seen + 1

		info := p.meta.Info(obj.GetID())
		if info.Name() != "" {
			continue
		}
		fallback := info.DisplayName(obj)

		name, ok := naming.ContextualName(obj)
		if !ok || counts.Taken(name) {
			name = naming.SmartDefaultN(obj.Type(), seen, counts)
		}

		info.SetName(name)
		counts.Remove(fallback)
		counts.Add(name)
		named++
	}
	return named
}

// SuggestChildName proposes a name for a child of type childType about to
// be attached to the staged object at parentID.
func (p *Project) SuggestChildName(parentID object.ObjectID, childType object.ObjectType) (string, bool) {
	parent, ok := p.staged.Get(parentID)
	if !ok {
		return "", false
	}
	return naming.SuggestChildName(parent, childType, p.staged)
}

// renameState is an in-progress interactive rename: the target object and
// the text as typed so far. At most one rename is open at a time.
type renameState struct {
	id   object.ObjectID
	text string
}

// BeginRename opens a rename session for id, seeded with the object's
// current display name. An already open session is replaced.
func (p *Project) BeginRename(id object.ObjectID) (string, error) {
	obj, ok := p.staged.Get(id)
	if !ok {
		return "", fmt.Errorf("rename %v: %w", id, pool.ErrNotFound)
	}
	p.rename = &renameState{id: id, text: p.meta.DisplayName(obj)}
	return p.rename.text, nil
}

// UpdateRename replaces the pending text of the open session, if any.
func (p *Project) UpdateRename(text string) {
	if p.rename != nil {
		p.rename.text = text
	}
}

// RenamingObject reports the open rename session.
func (p *Project) RenamingObject() (object.ObjectID, string, bool) {
	if p.rename == nil {
		return object.NullID, "", false
	}
	return p.rename.id, p.rename.text, true
}

// FinishRename closes the session. With apply set the pending text becomes
// the object's name, subject to the same validation as Rename; otherwise
// the text is discarded.
func (p *Project) FinishRename(apply bool) error {
	s := p.rename
	p.rename = nil
	if s == nil || !apply {
		return nil
	}
	return p.Rename(s.id, s.text)
}
