package project

import (
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/projfile"
)

// FromFile restores a project from a saved container. Geometry stored in
// the file wins over geometry derived from the pool content; names are
// re-attached to the objects that still exist under their saved ids.
func FromFile(f *projfile.File) *Project {
	p := FromPool(f.Pool)
	if f.MaskSize != 0 {
		p.MaskSize = f.MaskSize
	}
	if f.SoftKeySize != (object.Size{}) {
		p.softKeySize = f.SoftKeySize
	}
	for id, name := range f.Names {
		if p.staged.Has(id) {
			p.meta.SetName(id, name)
		}
	}
	if !f.LastSelected.IsNull() && p.staged.Has(f.LastSelected) {
		// Restored on both sides at once so reopening a project does not
		// record a selection history entry.
		p.committedSel = f.LastSelected
		p.stagedSel = f.LastSelected
	}
	return p
}

// File snapshots the committed state for saving. Names whose objects no
// longer exist are not persisted. The returned container shares the
// committed pool; marshal it before editing further.
func (p *Project) File(version object.VTVersion) *projfile.File {
	var names map[object.ObjectID]string
	for id, name := range p.meta.CustomNames() {
		if !p.committed.Has(id) {
			continue
		}
		if names == nil {
			names = make(map[object.ObjectID]string)
		}
		names[id] = name
	}
	return &projfile.File{
		Pool:         p.committed,
		Names:        names,
		MaskSize:     p.MaskSize,
		SoftKeySize:  p.softKeySize,
		LastSelected: p.committedSel,
		VTVersion:    version,
	}
}
