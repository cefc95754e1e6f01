// Package object defines the ISO 11783-6 virtual terminal object kinds and
// the identifiers that link them into a pool.
package object

import (
	"fmt"
)

// ObjectID identifies an object within a pool. Valid ids are 0 through
// 65534; 65535 is reserved as NullID.
type ObjectID uint16

// NullID is the reserved id meaning "no object". Attribute slots that may
// be left unset hold NullID.
const NullID ObjectID = 0xFFFF

// MaxID is the largest assignable object id.
const MaxID ObjectID = 0xFFFE

// NewObjectID validates a raw id value.
func NewObjectID(v uint16) (ObjectID, error) {
	if ObjectID(v) == NullID {
		return NullID, fmt.Errorf("object id %d is reserved", v)
	}
	return ObjectID(v), nil
}

// IsNull reports whether the id is the reserved null value.
func (id ObjectID) IsNull() bool { return id == NullID }

func (id ObjectID) String() string {
	if id.IsNull() {
		return "NULL"
	}
	return fmt.Sprintf("%d", uint16(id))
}

// Point is a position in mask coordinates. Child offsets may be negative.
type Point struct {
	X int16
	Y int16
}

// Size is a width and height in pixels.
type Size struct {
	Width  uint16
	Height uint16
}

// ObjectRef places a child object at an offset relative to its parent.
type ObjectRef struct {
	ID     ObjectID
	Offset Point
}

// MacroRef binds a macro to an event on the host object. Macro ids are
// 8-bit on the wire, so only macros with ids 0 through 255 can be bound.
type MacroRef struct {
	Event   Event
	MacroID uint8
}

// Object is implemented by every pool object kind.
type Object interface {
	// GetID returns the object's numeric id.
	GetID() ObjectID

	// SetID renumbers the object in place. References held by other
	// objects are not rewritten.
	SetID(ObjectID)

	// Type returns the object's wire type.
	Type() ObjectType

	// ReferencedIDs returns the id of every object this object points
	// at: attribute references, child references, list entries and
	// macro bindings. Null slots are omitted. The ids are not
	// guaranteed to exist in any particular pool.
	ReferencedIDs() []ObjectID

	// Clone returns a deep copy.
	Clone() Object
}

// appendID adds an attribute reference, skipping null slots.
func appendID(dst []ObjectID, id ObjectID) []ObjectID {
	if id.IsNull() {
		return dst
	}
	return append(dst, id)
}

// appendIDs adds plain id list entries, skipping null slots.
func appendIDs(dst []ObjectID, ids []ObjectID) []ObjectID {
	for _, id := range ids {
		if !id.IsNull() {
			dst = append(dst, id)
		}
	}
	return dst
}

// appendRefs adds positioned child references.
func appendRefs(dst []ObjectID, refs []ObjectRef) []ObjectID {
	for _, r := range refs {
		if !r.ID.IsNull() {
			dst = append(dst, r.ID)
		}
	}
	return dst
}

// appendMacros adds the ids of bound macros, widened from their 8-bit
// wire form.
func appendMacros(dst []ObjectID, refs []MacroRef) []ObjectID {
	for _, m := range refs {
		dst = append(dst, ObjectID(m.MacroID))
	}
	return dst
}
