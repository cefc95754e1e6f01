package object

import "slices"

// OutputString displays fixed or variable text.
type OutputString struct {
	ID                ObjectID
	Width             uint16
	Height            uint16
	BackgroundColour  uint8
	FontAttributes    ObjectID
	Options           uint8
	VariableReference ObjectID
	Justification     uint8
	Value             string
	Macros            []MacroRef
}

func (o *OutputString) GetID() ObjectID   { return o.ID }
func (o *OutputString) SetID(id ObjectID) { o.ID = id }
func (o *OutputString) Type() ObjectType  { return TypeOutputString }

func (o *OutputString) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.FontAttributes)
	ids = appendID(ids, o.VariableReference)
	return appendMacros(ids, o.Macros)
}

func (o *OutputString) Clone() Object {
	c := *o
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputNumber displays a fixed or variable numeric value. The displayed
// value is (Value + Offset) * Scale.
type OutputNumber struct {
	ID                ObjectID
	Width             uint16
	Height            uint16
	BackgroundColour  uint8
	FontAttributes    ObjectID
	Options           uint8
	VariableReference ObjectID
	Value             uint32
	Offset            int32
	Scale             float32
	NumberOfDecimals  uint8
	Format            uint8
	Justification     uint8
	Macros            []MacroRef
}

func (o *OutputNumber) GetID() ObjectID   { return o.ID }
func (o *OutputNumber) SetID(id ObjectID) { o.ID = id }
func (o *OutputNumber) Type() ObjectType  { return TypeOutputNumber }

func (o *OutputNumber) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.FontAttributes)
	ids = appendID(ids, o.VariableReference)
	return appendMacros(ids, o.Macros)
}

func (o *OutputNumber) Clone() Object {
	c := *o
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputList displays the list entry selected by a variable. Null entries
// render as blank.
type OutputList struct {
	ID                ObjectID
	Width             uint16
	Height            uint16
	VariableReference ObjectID
	Value             uint8
	Items             []ObjectID
	Macros            []MacroRef
}

func (o *OutputList) GetID() ObjectID   { return o.ID }
func (o *OutputList) SetID(id ObjectID) { o.ID = id }
func (o *OutputList) Type() ObjectType  { return TypeOutputList }

func (o *OutputList) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.VariableReference)
	ids = appendIDs(ids, o.Items)
	return appendMacros(ids, o.Macros)
}

func (o *OutputList) Clone() Object {
	c := *o
	c.Items = slices.Clone(o.Items)
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputLine draws a line across the object's bounding box.
type OutputLine struct {
	ID             ObjectID
	LineAttributes ObjectID
	Width          uint16
	Height         uint16
	// LineDirection 0 draws top-left to bottom-right, 1 bottom-left to
	// top-right.
	LineDirection uint8
	Macros        []MacroRef
}

func (o *OutputLine) GetID() ObjectID   { return o.ID }
func (o *OutputLine) SetID(id ObjectID) { o.ID = id }
func (o *OutputLine) Type() ObjectType  { return TypeOutputLine }

func (o *OutputLine) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.LineAttributes)
	return appendMacros(ids, o.Macros)
}

func (o *OutputLine) Clone() Object {
	c := *o
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputRectangle draws a rectangle, optionally filled.
type OutputRectangle struct {
	ID              ObjectID
	LineAttributes  ObjectID
	Width           uint16
	Height          uint16
	LineSuppression uint8
	FillAttributes  ObjectID
	Macros          []MacroRef
}

func (o *OutputRectangle) GetID() ObjectID   { return o.ID }
func (o *OutputRectangle) SetID(id ObjectID) { o.ID = id }
func (o *OutputRectangle) Type() ObjectType  { return TypeOutputRectangle }

func (o *OutputRectangle) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.LineAttributes)
	ids = appendID(ids, o.FillAttributes)
	return appendMacros(ids, o.Macros)
}

func (o *OutputRectangle) Clone() Object {
	c := *o
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputEllipse draws an ellipse, arc or segment inscribed in the
// object's bounding box.
type OutputEllipse struct {
	ID             ObjectID
	LineAttributes ObjectID
	Width          uint16
	Height         uint16
	EllipseType    uint8
	StartAngle     uint8
	EndAngle       uint8
	FillAttributes ObjectID
	Macros         []MacroRef
}

func (o *OutputEllipse) GetID() ObjectID   { return o.ID }
func (o *OutputEllipse) SetID(id ObjectID) { o.ID = id }
func (o *OutputEllipse) Type() ObjectType  { return TypeOutputEllipse }

func (o *OutputEllipse) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.LineAttributes)
	ids = appendID(ids, o.FillAttributes)
	return appendMacros(ids, o.Macros)
}

func (o *OutputEllipse) Clone() Object {
	c := *o
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputPolygon draws a closed polygon. Points are relative to the
// object's top-left corner.
type OutputPolygon struct {
	ID             ObjectID
	Width          uint16
	Height         uint16
	LineAttributes ObjectID
	FillAttributes ObjectID
	PolygonType    uint8
	Points         []Point
	Macros         []MacroRef
}

func (o *OutputPolygon) GetID() ObjectID   { return o.ID }
func (o *OutputPolygon) SetID(id ObjectID) { o.ID = id }
func (o *OutputPolygon) Type() ObjectType  { return TypeOutputPolygon }

func (o *OutputPolygon) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.LineAttributes)
	ids = appendID(ids, o.FillAttributes)
	return appendMacros(ids, o.Macros)
}

func (o *OutputPolygon) Clone() Object {
	c := *o
	c.Points = slices.Clone(o.Points)
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputMeter draws a circular gauge. The face is square with side Width.
type OutputMeter struct {
	ID                ObjectID
	Width             uint16
	NeedleColour      uint8
	BorderColour      uint8
	ArcAndTickColour  uint8
	Options           uint8
	NumberOfTicks     uint8
	StartAngle        uint8
	EndAngle          uint8
	MinValue          uint16
	MaxValue          uint16
	VariableReference ObjectID
	Value             uint16
	Macros            []MacroRef
}

func (o *OutputMeter) GetID() ObjectID   { return o.ID }
func (o *OutputMeter) SetID(id ObjectID) { o.ID = id }
func (o *OutputMeter) Type() ObjectType  { return TypeOutputMeter }

func (o *OutputMeter) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.VariableReference)
	return appendMacros(ids, o.Macros)
}

func (o *OutputMeter) Clone() Object {
	c := *o
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputLinearBarGraph draws a filled bar with an optional target line.
type OutputLinearBarGraph struct {
	ID                           ObjectID
	Width                        uint16
	Height                       uint16
	Colour                       uint8
	TargetLineColour             uint8
	Options                      uint8
	NumberOfTicks                uint8
	MinValue                     uint16
	MaxValue                     uint16
	VariableReference            ObjectID
	Value                        uint16
	TargetValueVariableReference ObjectID
	TargetValue                  uint16
	Macros                       []MacroRef
}

func (o *OutputLinearBarGraph) GetID() ObjectID   { return o.ID }
func (o *OutputLinearBarGraph) SetID(id ObjectID) { o.ID = id }
func (o *OutputLinearBarGraph) Type() ObjectType  { return TypeOutputLinearBarGraph }

func (o *OutputLinearBarGraph) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.VariableReference)
	ids = appendID(ids, o.TargetValueVariableReference)
	return appendMacros(ids, o.Macros)
}

func (o *OutputLinearBarGraph) Clone() Object {
	c := *o
	c.Macros = slices.Clone(o.Macros)
	return &c
}

// OutputArchedBarGraph draws a filled arc between two angles.
type OutputArchedBarGraph struct {
	ID                           ObjectID
	Width                        uint16
	Height                       uint16
	Colour                       uint8
	TargetLineColour             uint8
	Options                      uint8
	StartAngle                   uint8
	EndAngle                     uint8
	BarGraphWidth                uint16
	MinValue                     uint16
	MaxValue                     uint16
	VariableReference            ObjectID
	Value                        uint16
	TargetValueVariableReference ObjectID
	TargetValue                  uint16
	Macros                       []MacroRef
}

func (o *OutputArchedBarGraph) GetID() ObjectID   { return o.ID }
func (o *OutputArchedBarGraph) SetID(id ObjectID) { o.ID = id }
func (o *OutputArchedBarGraph) Type() ObjectType  { return TypeOutputArchedBarGraph }

func (o *OutputArchedBarGraph) ReferencedIDs() []ObjectID {
	ids := appendID(nil, o.VariableReference)
	ids = appendID(ids, o.TargetValueVariableReference)
	return appendMacros(ids, o.Macros)
}

func (o *OutputArchedBarGraph) Clone() Object {
	c := *o
	c.Macros = slices.Clone(o.Macros)
	return &c
}
