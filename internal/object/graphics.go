package object

import "slices"

// Picture graphic formats.
const (
	PictureFormatMonochrome uint8 = 0
	PictureFormat4Bit       uint8 = 1
	PictureFormat8Bit       uint8 = 2
)

// PictureGraphic displays a bitmap. The image is stored at ActualWidth by
// ActualHeight and scaled to Width on the mask, preserving aspect ratio.
type PictureGraphic struct {
	ID                 ObjectID
	Width              uint16
	ActualWidth        uint16
	ActualHeight       uint16
	Format             uint8
	Options            uint8
	TransparencyColour uint8
	Data               []byte
	Macros             []MacroRef
}

func (p *PictureGraphic) GetID() ObjectID   { return p.ID }
func (p *PictureGraphic) SetID(id ObjectID) { p.ID = id }
func (p *PictureGraphic) Type() ObjectType  { return TypePictureGraphic }

func (p *PictureGraphic) ReferencedIDs() []ObjectID {
	return appendMacros(nil, p.Macros)
}

func (p *PictureGraphic) Clone() Object {
	c := *p
	c.Data = slices.Clone(p.Data)
	c.Macros = slices.Clone(p.Macros)
	return &c
}

// GraphicsContext is a drawing surface manipulated by graphics commands.
type GraphicsContext struct {
	ID                 ObjectID
	ViewportX          int16
	ViewportY          int16
	ViewportWidth      uint16
	ViewportHeight     uint16
	CanvasWidth        uint16
	CanvasHeight       uint16
	ViewportZoom       float32
	CursorX            int16
	CursorY            int16
	ForegroundColour   uint8
	BackgroundColour   uint8
	FontAttributes     ObjectID
	LineAttributes     ObjectID
	FillAttributes     ObjectID
	Format             uint8
	Options            uint8
	TransparencyColour uint8
}

func (g *GraphicsContext) GetID() ObjectID   { return g.ID }
func (g *GraphicsContext) SetID(id ObjectID) { g.ID = id }
func (g *GraphicsContext) Type() ObjectType  { return TypeGraphicsContext }

func (g *GraphicsContext) ReferencedIDs() []ObjectID {
	ids := appendID(nil, g.FontAttributes)
	ids = appendID(ids, g.LineAttributes)
	return appendID(ids, g.FillAttributes)
}

func (g *GraphicsContext) Clone() Object {
	c := *g
	return &c
}

// Animation cycles through its children at a fixed refresh interval.
type Animation struct {
	ID                ObjectID
	Width             uint16
	Height            uint16
	RefreshInterval   uint16
	Value             uint8
	Enabled           bool
	FirstChildIndex   uint8
	LastChildIndex    uint8
	DefaultChildIndex uint8
	Options           uint8
	Children          []ObjectRef
	Macros            []MacroRef
}

func (a *Animation) GetID() ObjectID   { return a.ID }
func (a *Animation) SetID(id ObjectID) { a.ID = id }
func (a *Animation) Type() ObjectType  { return TypeAnimation }

func (a *Animation) ReferencedIDs() []ObjectID {
	ids := appendRefs(nil, a.Children)
	return appendMacros(ids, a.Macros)
}

func (a *Animation) Clone() Object {
	c := *a
	c.Children = slices.Clone(a.Children)
	c.Macros = slices.Clone(a.Macros)
	return &c
}

// ScaledGraphic displays another graphic object scaled to fit.
type ScaledGraphic struct {
	ID        ObjectID
	Width     uint16
	Height    uint16
	ScaleType uint8
	Options   uint8
	// Value references the PictureGraphic or GraphicData being scaled.
	Value  ObjectID
	Macros []MacroRef
}

func (s *ScaledGraphic) GetID() ObjectID   { return s.ID }
func (s *ScaledGraphic) SetID(id ObjectID) { s.ID = id }
func (s *ScaledGraphic) Type() ObjectType  { return TypeScaledGraphic }

func (s *ScaledGraphic) ReferencedIDs() []ObjectID {
	ids := appendID(nil, s.Value)
	return appendMacros(ids, s.Macros)
}

func (s *ScaledGraphic) Clone() Object {
	c := *s
	c.Macros = slices.Clone(s.Macros)
	return &c
}

// GraphicData holds raw image data referenced by ScaledGraphic objects.
type GraphicData struct {
	ID     ObjectID
	Format uint8
	Data   []byte
}

func (g *GraphicData) GetID() ObjectID   { return g.ID }
func (g *GraphicData) SetID(id ObjectID) { g.ID = id }
func (g *GraphicData) Type() ObjectType  { return TypeGraphicData }

func (g *GraphicData) ReferencedIDs() []ObjectID { return nil }

func (g *GraphicData) Clone() Object {
	c := *g
	c.Data = slices.Clone(g.Data)
	return &c
}

// ColourMap remaps colour indexes. The index table holds 0, 2, 16 or 256
// entries.
type ColourMap struct {
	ID      ObjectID
	Indexes []uint8
}

func (cm *ColourMap) GetID() ObjectID   { return cm.ID }
func (cm *ColourMap) SetID(id ObjectID) { cm.ID = id }
func (cm *ColourMap) Type() ObjectType  { return TypeColourMap }

func (cm *ColourMap) ReferencedIDs() []ObjectID { return nil }

func (cm *ColourMap) Clone() Object {
	c := *cm
	c.Indexes = slices.Clone(cm.Indexes)
	return &c
}

// PaletteColour is one colour table entry.
type PaletteColour struct {
	Red      uint8
	Green    uint8
	Blue     uint8
	Reserved uint8
}

// ColourPalette replaces the terminal's default colour table.
type ColourPalette struct {
	ID      ObjectID
	Options uint16
	Colours []PaletteColour
}

func (cp *ColourPalette) GetID() ObjectID   { return cp.ID }
func (cp *ColourPalette) SetID(id ObjectID) { cp.ID = id }
func (cp *ColourPalette) Type() ObjectType  { return TypeColourPalette }

func (cp *ColourPalette) ReferencedIDs() []ObjectID { return nil }

func (cp *ColourPalette) Clone() Object {
	c := *cp
	c.Colours = slices.Clone(cp.Colours)
	return &c
}

// ExternalObjectDefinition lists objects this working set exposes to
// other working sets. Name is the 64-bit ISOBUS NAME of the exporter.
type ExternalObjectDefinition struct {
	ID      ObjectID
	Options uint8
	Name    uint64
	Objects []ObjectID
}

func (e *ExternalObjectDefinition) GetID() ObjectID   { return e.ID }
func (e *ExternalObjectDefinition) SetID(id ObjectID) { e.ID = id }
func (e *ExternalObjectDefinition) Type() ObjectType  { return TypeExternalObjectDefinition }

func (e *ExternalObjectDefinition) ReferencedIDs() []ObjectID {
	return appendIDs(nil, e.Objects)
}

func (e *ExternalObjectDefinition) Clone() Object {
	c := *e
	c.Objects = slices.Clone(e.Objects)
	return &c
}

// ExternalReferenceName identifies another working set whose objects may
// be referenced through ExternalObjectPointer.
type ExternalReferenceName struct {
	ID      ObjectID
	Options uint8
	Name    uint64
}

func (e *ExternalReferenceName) GetID() ObjectID   { return e.ID }
func (e *ExternalReferenceName) SetID(id ObjectID) { e.ID = id }
func (e *ExternalReferenceName) Type() ObjectType  { return TypeExternalReferenceName }

func (e *ExternalReferenceName) ReferencedIDs() []ObjectID { return nil }

func (e *ExternalReferenceName) Clone() Object {
	c := *e
	return &c
}

// ExternalObjectPointer displays an object owned by another working set,
// falling back to a local default when the external object is absent.
type ExternalObjectPointer struct {
	ID              ObjectID
	DefaultObjectID ObjectID
	// ExternalReferenceNameID references the ExternalReferenceName that
	// identifies the owning working set.
	ExternalReferenceNameID ObjectID
	// ExternalObjectID is an id in the other working set's pool, so it
	// is not resolved against the local pool.
	ExternalObjectID ObjectID
}

func (e *ExternalObjectPointer) GetID() ObjectID   { return e.ID }
func (e *ExternalObjectPointer) SetID(id ObjectID) { e.ID = id }
func (e *ExternalObjectPointer) Type() ObjectType  { return TypeExternalObjectPointer }

func (e *ExternalObjectPointer) ReferencedIDs() []ObjectID {
	ids := appendID(nil, e.DefaultObjectID)
	return appendID(ids, e.ExternalReferenceNameID)
}

func (e *ExternalObjectPointer) Clone() Object {
	c := *e
	return &c
}
