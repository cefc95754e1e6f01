package object

import "slices"

// NumberVariable stores a numeric value shared between objects.
type NumberVariable struct {
	ID    ObjectID
	Value uint32
}

func (n *NumberVariable) GetID() ObjectID   { return n.ID }
func (n *NumberVariable) SetID(id ObjectID) { n.ID = id }
func (n *NumberVariable) Type() ObjectType  { return TypeNumberVariable }

func (n *NumberVariable) ReferencedIDs() []ObjectID { return nil }

func (n *NumberVariable) Clone() Object {
	c := *n
	return &c
}

// StringVariable stores a text value shared between objects.
type StringVariable struct {
	ID    ObjectID
	Value string
}

func (s *StringVariable) GetID() ObjectID   { return s.ID }
func (s *StringVariable) SetID(id ObjectID) { s.ID = id }
func (s *StringVariable) Type() ObjectType  { return TypeStringVariable }

func (s *StringVariable) ReferencedIDs() []ObjectID { return nil }

func (s *StringVariable) Clone() Object {
	c := *s
	return &c
}

// FontAttributes styles text rendering.
type FontAttributes struct {
	ID         ObjectID
	FontColour uint8
	FontSize   uint8
	FontType   uint8
	FontStyle  uint8
	Macros     []MacroRef
}

func (f *FontAttributes) GetID() ObjectID   { return f.ID }
func (f *FontAttributes) SetID(id ObjectID) { f.ID = id }
func (f *FontAttributes) Type() ObjectType  { return TypeFontAttributes }

func (f *FontAttributes) ReferencedIDs() []ObjectID {
	return appendMacros(nil, f.Macros)
}

func (f *FontAttributes) Clone() Object {
	c := *f
	c.Macros = slices.Clone(f.Macros)
	return &c
}

// LineAttributes styles line rendering. LineArt is a 16-bit dash pattern.
type LineAttributes struct {
	ID         ObjectID
	LineColour uint8
	LineWidth  uint8
	LineArt    uint16
	Macros     []MacroRef
}

func (l *LineAttributes) GetID() ObjectID   { return l.ID }
func (l *LineAttributes) SetID(id ObjectID) { l.ID = id }
func (l *LineAttributes) Type() ObjectType  { return TypeLineAttributes }

func (l *LineAttributes) ReferencedIDs() []ObjectID {
	return appendMacros(nil, l.Macros)
}

func (l *LineAttributes) Clone() Object {
	c := *l
	c.Macros = slices.Clone(l.Macros)
	return &c
}

// FillAttributes styles area filling. FillPattern may reference a
// PictureGraphic used as the pattern.
type FillAttributes struct {
	ID          ObjectID
	FillType    uint8
	FillColour  uint8
	FillPattern ObjectID
	Macros      []MacroRef
}

func (f *FillAttributes) GetID() ObjectID   { return f.ID }
func (f *FillAttributes) SetID(id ObjectID) { f.ID = id }
func (f *FillAttributes) Type() ObjectType  { return TypeFillAttributes }

func (f *FillAttributes) ReferencedIDs() []ObjectID {
	ids := appendID(nil, f.FillPattern)
	return appendMacros(ids, f.Macros)
}

func (f *FillAttributes) Clone() Object {
	c := *f
	c.Macros = slices.Clone(f.Macros)
	return &c
}

// InputAttributes restricts the characters accepted by an InputString.
type InputAttributes struct {
	ID               ObjectID
	ValidationType   uint8
	ValidationString string
	Macros           []MacroRef
}

func (i *InputAttributes) GetID() ObjectID   { return i.ID }
func (i *InputAttributes) SetID(id ObjectID) { i.ID = id }
func (i *InputAttributes) Type() ObjectType  { return TypeInputAttributes }

func (i *InputAttributes) ReferencedIDs() []ObjectID {
	return appendMacros(nil, i.Macros)
}

func (i *InputAttributes) Clone() Object {
	c := *i
	c.Macros = slices.Clone(i.Macros)
	return &c
}

// CharacterRange is an inclusive span of 16-bit character codes.
type CharacterRange struct {
	First uint16
	Last  uint16
}

// CodePlane groups character ranges within one Unicode plane.
type CodePlane struct {
	Number uint8
	Ranges []CharacterRange
}

// ExtendedInputAttributes restricts input to characters drawn from a set
// of code planes.
type ExtendedInputAttributes struct {
	ID             ObjectID
	ValidationType uint8
	CodePlanes     []CodePlane
}

func (e *ExtendedInputAttributes) GetID() ObjectID   { return e.ID }
func (e *ExtendedInputAttributes) SetID(id ObjectID) { e.ID = id }
func (e *ExtendedInputAttributes) Type() ObjectType  { return TypeExtendedInputAttributes }

func (e *ExtendedInputAttributes) ReferencedIDs() []ObjectID { return nil }

func (e *ExtendedInputAttributes) Clone() Object {
	c := *e
	c.CodePlanes = make([]CodePlane, len(e.CodePlanes))
	for i, p := range e.CodePlanes {
		c.CodePlanes[i] = CodePlane{Number: p.Number, Ranges: slices.Clone(p.Ranges)}
	}
	return &c
}

// ObjectPointer indirects to another object, or to nothing when null.
type ObjectPointer struct {
	ID    ObjectID
	Value ObjectID
}

func (o *ObjectPointer) GetID() ObjectID   { return o.ID }
func (o *ObjectPointer) SetID(id ObjectID) { o.ID = id }
func (o *ObjectPointer) Type() ObjectType  { return TypeObjectPointer }

func (o *ObjectPointer) ReferencedIDs() []ObjectID {
	return appendID(nil, o.Value)
}

func (o *ObjectPointer) Clone() Object {
	c := *o
	return &c
}

// Macro holds a sequence of raw VT commands replayed when a bound event
// fires. The command stream is kept opaque.
type Macro struct {
	ID       ObjectID
	Commands []byte
}

func (m *Macro) GetID() ObjectID   { return m.ID }
func (m *Macro) SetID(id ObjectID) { m.ID = id }
func (m *Macro) Type() ObjectType  { return TypeMacro }

func (m *Macro) ReferencedIDs() []ObjectID { return nil }

func (m *Macro) Clone() Object {
	c := *m
	c.Commands = slices.Clone(m.Commands)
	return &c
}

// ObjectLabel pairs an object with its operator-visible label.
type ObjectLabel struct {
	ObjectID ObjectID
	// StringVariableReference supplies the label text, or NullID when
	// GraphicRepresentation is used instead.
	StringVariableReference ObjectID
	FontType                uint8
	GraphicRepresentation   ObjectID
}

// ObjectLabelReferenceList assigns labels shown by the terminal when the
// operator browses auxiliary assignments.
type ObjectLabelReferenceList struct {
	ID     ObjectID
	Labels []ObjectLabel
}

func (o *ObjectLabelReferenceList) GetID() ObjectID   { return o.ID }
func (o *ObjectLabelReferenceList) SetID(id ObjectID) { o.ID = id }
func (o *ObjectLabelReferenceList) Type() ObjectType  { return TypeObjectLabelReferenceList }

func (o *ObjectLabelReferenceList) ReferencedIDs() []ObjectID {
	var ids []ObjectID
	for _, l := range o.Labels {
		ids = appendID(ids, l.ObjectID)
		ids = appendID(ids, l.StringVariableReference)
		ids = appendID(ids, l.GraphicRepresentation)
	}
	return ids
}

func (o *ObjectLabelReferenceList) Clone() Object {
	c := *o
	c.Labels = slices.Clone(o.Labels)
	return &c
}

// WorkingSetSpecialControls activates a colour map and colour palette for
// the working set.
type WorkingSetSpecialControls struct {
	ID            ObjectID
	ColourMap     ObjectID
	ColourPalette ObjectID
}

func (w *WorkingSetSpecialControls) GetID() ObjectID   { return w.ID }
func (w *WorkingSetSpecialControls) SetID(id ObjectID) { w.ID = id }
func (w *WorkingSetSpecialControls) Type() ObjectType  { return TypeWorkingSetSpecialControls }

func (w *WorkingSetSpecialControls) ReferencedIDs() []ObjectID {
	ids := appendID(nil, w.ColourMap)
	return appendID(ids, w.ColourPalette)
}

func (w *WorkingSetSpecialControls) Clone() Object {
	c := *w
	return &c
}
