// Package meta tracks editor-side object metadata that is not part of the
// ISO 11783-6 wire format: human-readable names and a stable identity that
// survives object ID renumbering.
package meta

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/isobus-tools/vtpool/internal/object"
)

// Info is the editor metadata for a single object. The UID is the object's
// identity: object IDs can be renumbered, UIDs never change.
type Info struct {
	uid  uuid.UUID
	name string
}

// NewInfo returns metadata with a fresh UID and no custom name.
func NewInfo() *Info {
	return &Info{uid: uuid.New()}
}

// UID returns the stable identity of the object.
func (i *Info) UID() uuid.UUID {
	return i.uid
}

// Name returns the custom name, or "" if none was set.
func (i *Info) Name() string {
	return i.name
}

// SetName assigns a custom name. Empty names are ignored.
func (i *Info) SetName(name string) {
	if name != "" {
		i.name = name
	}
}

// ClearName removes the custom name so DisplayName falls back to the default.
func (i *Info) ClearName() {
	i.name = ""
}

// DisplayName returns the custom name if set, otherwise "{id}: {type}".
func (i *Info) DisplayName(obj object.Object) string {
	if i.name != "" {
		return i.name
	}
	return fmt.Sprintf("%d: %s", uint16(obj.GetID()), obj.Type())
}

// Table holds metadata for every object in a pool, keyed by the object's
// current ID. Entries are created lazily on first access so imported pools
// need no up-front pass.
type Table struct {
	infos map[object.ObjectID]*Info
}

func NewTable() *Table {
	return &Table{infos: make(map[object.ObjectID]*Info)}
}

// Info returns the metadata for id, creating it on first access.
func (t *Table) Info(id object.ObjectID) *Info {
	if info, ok := t.infos[id]; ok {
		return info
	}
	info := NewInfo()
	t.infos[id] = info
	return info
}

// Lookup returns the metadata for id without creating it.
func (t *Table) Lookup(id object.ObjectID) (*Info, bool) {
	info, ok := t.infos[id]
	return info, ok
}

// SetName assigns a custom name to id, creating metadata if needed.
func (t *Table) SetName(id object.ObjectID, name string) {
	t.Info(id).SetName(name)
}

// Name returns the custom name for id, or "" if none was set.
func (t *Table) Name(id object.ObjectID) string {
	if info, ok := t.infos[id]; ok {
		return info.Name()
	}
	return ""
}

// DisplayName returns the effective name shown for obj.
func (t *Table) DisplayName(obj object.Object) string {
	return t.Info(obj.GetID()).DisplayName(obj)
}

// Migrate moves metadata from old to new, preserving the UID. Used when an
// object is renumbered. Existing metadata at new is overwritten.
func (t *Table) Migrate(old, new object.ObjectID) {
	if old == new {
		return
	}
	if info, ok := t.infos[old]; ok {
		t.infos[new] = info
		delete(t.infos, old)
	}
}

// Delete drops the metadata for id.
func (t *Table) Delete(id object.ObjectID) {
	delete(t.infos, id)
}

// Len returns the number of tracked objects.
func (t *Table) Len() int {
	return len(t.infos)
}

// CustomNames returns a snapshot of all custom names keyed by object ID.
// Objects without a custom name are omitted.
func (t *Table) CustomNames() map[object.ObjectID]string {
	out := make(map[object.ObjectID]string)
	for id, info := range t.infos {
		if info.name != "" {
			out[id] = info.name
		}
	}
	return out
}
