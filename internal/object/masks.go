package object

import "slices"

// WorkingSet is the root object of a pool. The terminal shows its
// designator in the working set selection area and activates its mask.
type WorkingSet struct {
	ID               ObjectID
	BackgroundColour uint8
	Selectable       bool
	ActiveMask       ObjectID
	Children         []ObjectRef
	Macros           []MacroRef
	// Languages holds two-letter codes the pool provides translations for.
	Languages []string
}

func (w *WorkingSet) GetID() ObjectID   { return w.ID }
func (w *WorkingSet) SetID(id ObjectID) { w.ID = id }
func (w *WorkingSet) Type() ObjectType  { return TypeWorkingSet }

func (w *WorkingSet) ReferencedIDs() []ObjectID {
	ids := appendID(nil, w.ActiveMask)
	ids = appendRefs(ids, w.Children)
	return appendMacros(ids, w.Macros)
}

func (w *WorkingSet) Clone() Object {
	c := *w
	c.Children = slices.Clone(w.Children)
	c.Macros = slices.Clone(w.Macros)
	c.Languages = slices.Clone(w.Languages)
	return &c
}

// DataMask is a full-screen page of output and input objects.
type DataMask struct {
	ID               ObjectID
	BackgroundColour uint8
	SoftKeyMask      ObjectID
	Children         []ObjectRef
	Macros           []MacroRef
}

func (d *DataMask) GetID() ObjectID   { return d.ID }
func (d *DataMask) SetID(id ObjectID) { d.ID = id }
func (d *DataMask) Type() ObjectType  { return TypeDataMask }

func (d *DataMask) ReferencedIDs() []ObjectID {
	ids := appendID(nil, d.SoftKeyMask)
	ids = appendRefs(ids, d.Children)
	return appendMacros(ids, d.Macros)
}

func (d *DataMask) Clone() Object {
	c := *d
	c.Children = slices.Clone(d.Children)
	c.Macros = slices.Clone(d.Macros)
	return &c
}

// AlarmMask is a mask the terminal overlays on the active mask when an
// alarm is raised. Higher priority values pre-empt lower ones.
type AlarmMask struct {
	ID               ObjectID
	BackgroundColour uint8
	SoftKeyMask      ObjectID
	Priority         uint8
	AcousticSignal   uint8
	Children         []ObjectRef
	Macros           []MacroRef
}

func (a *AlarmMask) GetID() ObjectID   { return a.ID }
func (a *AlarmMask) SetID(id ObjectID) { a.ID = id }
func (a *AlarmMask) Type() ObjectType  { return TypeAlarmMask }

func (a *AlarmMask) ReferencedIDs() []ObjectID {
	ids := appendID(nil, a.SoftKeyMask)
	ids = appendRefs(ids, a.Children)
	return appendMacros(ids, a.Macros)
}

func (a *AlarmMask) Clone() Object {
	c := *a
	c.Children = slices.Clone(a.Children)
	c.Macros = slices.Clone(a.Macros)
	return &c
}

// Container groups child objects so they can be moved, shown and hidden
// together.
type Container struct {
	ID       ObjectID
	Width    uint16
	Height   uint16
	Hidden   bool
	Children []ObjectRef
	Macros   []MacroRef
}

func (c *Container) GetID() ObjectID   { return c.ID }
func (c *Container) SetID(id ObjectID) { c.ID = id }
func (c *Container) Type() ObjectType  { return TypeContainer }

func (c *Container) ReferencedIDs() []ObjectID {
	ids := appendRefs(nil, c.Children)
	return appendMacros(ids, c.Macros)
}

func (c *Container) Clone() Object {
	cp := *c
	cp.Children = slices.Clone(c.Children)
	cp.Macros = slices.Clone(c.Macros)
	return &cp
}

// SoftKeyMask arranges Key objects along the terminal's soft key strip.
// Entries are Key or ObjectPointer ids; there are no offsets because the
// terminal fixes key positions.
type SoftKeyMask struct {
	ID               ObjectID
	BackgroundColour uint8
	Keys             []ObjectID
	Macros           []MacroRef
}

func (s *SoftKeyMask) GetID() ObjectID   { return s.ID }
func (s *SoftKeyMask) SetID(id ObjectID) { s.ID = id }
func (s *SoftKeyMask) Type() ObjectType  { return TypeSoftKeyMask }

func (s *SoftKeyMask) ReferencedIDs() []ObjectID {
	ids := appendIDs(nil, s.Keys)
	return appendMacros(ids, s.Macros)
}

func (s *SoftKeyMask) Clone() Object {
	c := *s
	c.Keys = slices.Clone(s.Keys)
	c.Macros = slices.Clone(s.Macros)
	return &c
}

// Key is a soft key designator. Key code 0 is ACK, 1 is ESC; codes from 2
// up map to the physical soft keys.
type Key struct {
	ID               ObjectID
	BackgroundColour uint8
	KeyCode          uint8
	Children         []ObjectRef
	Macros           []MacroRef
}

func (k *Key) GetID() ObjectID   { return k.ID }
func (k *Key) SetID(id ObjectID) { k.ID = id }
func (k *Key) Type() ObjectType  { return TypeKey }

func (k *Key) ReferencedIDs() []ObjectID {
	ids := appendRefs(nil, k.Children)
	return appendMacros(ids, k.Macros)
}

func (k *Key) Clone() Object {
	c := *k
	c.Children = slices.Clone(k.Children)
	c.Macros = slices.Clone(k.Macros)
	return &c
}

// Button is a pressable region on a mask.
type Button struct {
	ID               ObjectID
	Width            uint16
	Height           uint16
	BackgroundColour uint8
	BorderColour     uint8
	KeyCode          uint8
	Options          uint8
	Children         []ObjectRef
	Macros           []MacroRef
}

func (b *Button) GetID() ObjectID   { return b.ID }
func (b *Button) SetID(id ObjectID) { b.ID = id }
func (b *Button) Type() ObjectType  { return TypeButton }

func (b *Button) ReferencedIDs() []ObjectID {
	ids := appendRefs(nil, b.Children)
	return appendMacros(ids, b.Macros)
}

func (b *Button) Clone() Object {
	c := *b
	c.Children = slices.Clone(b.Children)
	c.Macros = slices.Clone(b.Macros)
	return &c
}

// WindowMask is a user-layout window cell. Width and height are measured
// in layout cells, not pixels.
type WindowMask struct {
	ID               ObjectID
	Width            uint8
	Height           uint8
	WindowType       uint8
	BackgroundColour uint8
	Options          uint8
	// Name must reference an OutputString shown in the window chooser.
	Name        ObjectID
	WindowTitle ObjectID
	WindowIcon  ObjectID
	Objects     []ObjectID
	Macros      []MacroRef
}

func (w *WindowMask) GetID() ObjectID   { return w.ID }
func (w *WindowMask) SetID(id ObjectID) { w.ID = id }
func (w *WindowMask) Type() ObjectType  { return TypeWindowMask }

func (w *WindowMask) ReferencedIDs() []ObjectID {
	ids := appendID(nil, w.Name)
	ids = appendID(ids, w.WindowTitle)
	ids = appendID(ids, w.WindowIcon)
	ids = appendIDs(ids, w.Objects)
	return appendMacros(ids, w.Macros)
}

func (w *WindowMask) Clone() Object {
	c := *w
	c.Objects = slices.Clone(w.Objects)
	c.Macros = slices.Clone(w.Macros)
	return &c
}

// KeyGroup names a set of keys the operator can assign to physical
// locations as a unit.
type KeyGroup struct {
	ID      ObjectID
	Options uint8
	// Name must reference an OutputString.
	Name         ObjectID
	KeyGroupIcon ObjectID
	Keys         []ObjectID
	Macros       []MacroRef
}

func (k *KeyGroup) GetID() ObjectID   { return k.ID }
func (k *KeyGroup) SetID(id ObjectID) { k.ID = id }
func (k *KeyGroup) Type() ObjectType  { return TypeKeyGroup }

func (k *KeyGroup) ReferencedIDs() []ObjectID {
	ids := appendID(nil, k.Name)
	ids = appendID(ids, k.KeyGroupIcon)
	ids = appendIDs(ids, k.Keys)
	return appendMacros(ids, k.Macros)
}

func (k *KeyGroup) Clone() Object {
	c := *k
	c.Keys = slices.Clone(k.Keys)
	c.Macros = slices.Clone(k.Macros)
	return &c
}
