package object

import "slices"

// AuxiliaryFunctionType1 is a version 2 auxiliary function designator.
// Retained for old pools; new designs use the type 2 objects.
type AuxiliaryFunctionType1 struct {
	ID               ObjectID
	BackgroundColour uint8
	FunctionType     uint8
	Children         []ObjectRef
}

func (a *AuxiliaryFunctionType1) GetID() ObjectID   { return a.ID }
func (a *AuxiliaryFunctionType1) SetID(id ObjectID) { a.ID = id }
func (a *AuxiliaryFunctionType1) Type() ObjectType  { return TypeAuxiliaryFunctionType1 }

func (a *AuxiliaryFunctionType1) ReferencedIDs() []ObjectID {
	return appendRefs(nil, a.Children)
}

func (a *AuxiliaryFunctionType1) Clone() Object {
	c := *a
	c.Children = slices.Clone(a.Children)
	return &c
}

// AuxiliaryInputType1 is a version 2 auxiliary input designator.
type AuxiliaryInputType1 struct {
	ID               ObjectID
	BackgroundColour uint8
	FunctionType     uint8
	InputID          uint8
	Children         []ObjectRef
}

func (a *AuxiliaryInputType1) GetID() ObjectID   { return a.ID }
func (a *AuxiliaryInputType1) SetID(id ObjectID) { a.ID = id }
func (a *AuxiliaryInputType1) Type() ObjectType  { return TypeAuxiliaryInputType1 }

func (a *AuxiliaryInputType1) ReferencedIDs() []ObjectID {
	return appendRefs(nil, a.Children)
}

func (a *AuxiliaryInputType1) Clone() Object {
	c := *a
	c.Children = slices.Clone(a.Children)
	return &c
}

// AuxiliaryFunctionType2 is a function the operator can assign to an
// auxiliary input. The low bits of FunctionAttributes carry the function
// type.
type AuxiliaryFunctionType2 struct {
	ID                 ObjectID
	BackgroundColour   uint8
	FunctionAttributes uint8
	Children           []ObjectRef
}

func (a *AuxiliaryFunctionType2) GetID() ObjectID   { return a.ID }
func (a *AuxiliaryFunctionType2) SetID(id ObjectID) { a.ID = id }
func (a *AuxiliaryFunctionType2) Type() ObjectType  { return TypeAuxiliaryFunctionType2 }

func (a *AuxiliaryFunctionType2) ReferencedIDs() []ObjectID {
	return appendRefs(nil, a.Children)
}

func (a *AuxiliaryFunctionType2) Clone() Object {
	c := *a
	c.Children = slices.Clone(a.Children)
	return &c
}

// AuxiliaryInputType2 is a physical input designator on an auxiliary
// input device.
type AuxiliaryInputType2 struct {
	ID                 ObjectID
	BackgroundColour   uint8
	FunctionAttributes uint8
	Children           []ObjectRef
}

func (a *AuxiliaryInputType2) GetID() ObjectID   { return a.ID }
func (a *AuxiliaryInputType2) SetID(id ObjectID) { a.ID = id }
func (a *AuxiliaryInputType2) Type() ObjectType  { return TypeAuxiliaryInputType2 }

func (a *AuxiliaryInputType2) ReferencedIDs() []ObjectID {
	return appendRefs(nil, a.Children)
}

func (a *AuxiliaryInputType2) Clone() Object {
	c := *a
	c.Children = slices.Clone(a.Children)
	return &c
}

// AuxiliaryControlDesignatorType2 points at an auxiliary function or
// input whose designator should be displayed in its place.
type AuxiliaryControlDesignatorType2 struct {
	ID                ObjectID
	PointerType       uint8
	AuxiliaryObjectID ObjectID
}

func (a *AuxiliaryControlDesignatorType2) GetID() ObjectID   { return a.ID }
func (a *AuxiliaryControlDesignatorType2) SetID(id ObjectID) { a.ID = id }
func (a *AuxiliaryControlDesignatorType2) Type() ObjectType {
	return TypeAuxiliaryControlDesignatorType2
}

func (a *AuxiliaryControlDesignatorType2) ReferencedIDs() []ObjectID {
	return appendID(nil, a.AuxiliaryObjectID)
}

func (a *AuxiliaryControlDesignatorType2) Clone() Object {
	c := *a
	return &c
}
