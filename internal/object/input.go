package object

import "slices"

// InputBoolean is an operator-editable on/off field.
type InputBoolean struct {
	ID               ObjectID
	BackgroundColour uint8
	Width            uint16
	// ForegroundColour references the FontAttributes object whose colour
	// draws the check mark.
	ForegroundColour  ObjectID
	VariableReference ObjectID
	Value             bool
	Enabled           bool
	Macros            []MacroRef
}

func (i *InputBoolean) GetID() ObjectID   { return i.ID }
func (i *InputBoolean) SetID(id ObjectID) { i.ID = id }
func (i *InputBoolean) Type() ObjectType  { return TypeInputBoolean }

func (i *InputBoolean) ReferencedIDs() []ObjectID {
	ids := appendID(nil, i.ForegroundColour)
	ids = appendID(ids, i.VariableReference)
	return appendMacros(ids, i.Macros)
}

func (i *InputBoolean) Clone() Object {
	c := *i
	c.Macros = slices.Clone(i.Macros)
	return &c
}

// InputString is an operator-editable text field.
type InputString struct {
	ID                ObjectID
	Width             uint16
	Height            uint16
	BackgroundColour  uint8
	FontAttributes    ObjectID
	InputAttributes   ObjectID
	Options           uint8
	VariableReference ObjectID
	Justification     uint8
	Value             string
	Enabled           bool
	Macros            []MacroRef
}

func (i *InputString) GetID() ObjectID   { return i.ID }
func (i *InputString) SetID(id ObjectID) { i.ID = id }
func (i *InputString) Type() ObjectType  { return TypeInputString }

func (i *InputString) ReferencedIDs() []ObjectID {
	ids := appendID(nil, i.FontAttributes)
	ids = appendID(ids, i.InputAttributes)
	ids = appendID(ids, i.VariableReference)
	return appendMacros(ids, i.Macros)
}

func (i *InputString) Clone() Object {
	c := *i
	c.Macros = slices.Clone(i.Macros)
	return &c
}

// InputNumber is an operator-editable numeric field. The displayed value
// is (Value + Offset) * Scale.
type InputNumber struct {
	ID                ObjectID
	Width             uint16
	Height            uint16
	BackgroundColour  uint8
	FontAttributes    ObjectID
	Options           uint8
	VariableReference ObjectID
	Value             uint32
	MinValue          uint32
	MaxValue          uint32
	Offset            int32
	Scale             float32
	NumberOfDecimals  uint8
	Format            uint8
	Justification     uint8
	Options2          uint8
	Macros            []MacroRef
}

func (i *InputNumber) GetID() ObjectID   { return i.ID }
func (i *InputNumber) SetID(id ObjectID) { i.ID = id }
func (i *InputNumber) Type() ObjectType  { return TypeInputNumber }

func (i *InputNumber) ReferencedIDs() []ObjectID {
	ids := appendID(nil, i.FontAttributes)
	ids = appendID(ids, i.VariableReference)
	return appendMacros(ids, i.Macros)
}

func (i *InputNumber) Clone() Object {
	c := *i
	c.Macros = slices.Clone(i.Macros)
	return &c
}

// InputList lets the operator pick one of a list of display objects.
// Null entries are allowed and render as blank rows.
type InputList struct {
	ID                ObjectID
	Width             uint16
	Height            uint16
	VariableReference ObjectID
	Value             uint8
	Options           uint8
	Items             []ObjectID
	Macros            []MacroRef
}

func (i *InputList) GetID() ObjectID   { return i.ID }
func (i *InputList) SetID(id ObjectID) { i.ID = id }
func (i *InputList) Type() ObjectType  { return TypeInputList }

func (i *InputList) ReferencedIDs() []ObjectID {
	ids := appendID(nil, i.VariableReference)
	ids = appendIDs(ids, i.Items)
	return appendMacros(ids, i.Macros)
}

func (i *InputList) Clone() Object {
	c := *i
	c.Items = slices.Clone(i.Items)
	c.Macros = slices.Clone(i.Macros)
	return &c
}
