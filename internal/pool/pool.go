// Package pool holds an ordered collection of virtual terminal objects
// and the queries the editor runs against it.
//
// A pool tolerates dangling references: removing an object never touches
// the objects that point at it, and lookups report absence instead of
// failing. Readers decide how to surface a missing target.
package pool

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/isobus-tools/vtpool/internal/object"
)

var (
	// ErrIDInUse is returned when an insert or renumber collides with an
	// existing object id.
	ErrIDInUse = errors.New("object id already in use")

	// ErrNotFound is returned by operations that require an existing id.
	ErrNotFound = errors.New("object not found")
)

// Pool is an insertion-ordered object collection indexed by id.
// The zero value is not usable; call New.
type Pool struct {
	objects []object.Object
	index   map[object.ObjectID]int
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{index: make(map[object.ObjectID]int)}
}

// FromObjects builds a pool from objects in order. Duplicate ids are
// rejected.
func FromObjects(objs ...object.Object) (*Pool, error) {
	p := New()
	for _, obj := range objs {
		if err := p.Add(obj); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Len returns the number of objects.
func (p *Pool) Len() int { return len(p.objects) }

// Objects returns the objects in insertion order. The slice is the
// pool's own; callers must not modify it.
func (p *Pool) Objects() []object.Object { return p.objects }

// Get looks up an object by id.
func (p *Pool) Get(id object.ObjectID) (object.Object, bool) {
	i, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return p.objects[i], true
}

// Has reports whether an id is present.
func (p *Pool) Has(id object.ObjectID) bool {
	_, ok := p.index[id]
	return ok
}

// Add appends an object. The id must be assigned and unused.
func (p *Pool) Add(obj object.Object) error {
	if obj == nil {
		return errors.New("nil object")
	}
	id := obj.GetID()
	if id.IsNull() {
		return fmt.Errorf("cannot add object with the null id")
	}
	if _, exists := p.index[id]; exists {
		return fmt.Errorf("add object %s: %w", id, ErrIDInUse)
	}
	p.index[id] = len(p.objects)
	p.objects = append(p.objects, obj)
	return nil
}

// Remove deletes the object with the given id and reports whether it was
// present. References held by other objects are left in place.
func (p *Pool) Remove(id object.ObjectID) bool {
	i, ok := p.index[id]
	if !ok {
		return false
	}
	p.objects = append(p.objects[:i], p.objects[i+1:]...)
	delete(p.index, id)
	for j := i; j < len(p.objects); j++ {
		p.index[p.objects[j].GetID()] = j
	}
	return true
}

// ByType returns the objects of one type in pool order.
func (p *Pool) ByType(t object.ObjectType) []object.Object {
	var out []object.Object
	for _, obj := range p.objects {
		if obj.Type() == t {
			out = append(out, obj)
		}
	}
	return out
}

// ByTypes returns the objects matching any of the given types, in pool
// order.
func (p *Pool) ByTypes(types ...object.ObjectType) []object.Object {
	want := make(map[object.ObjectType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []object.Object
	for _, obj := range p.objects {
		if want[obj.Type()] {
			out = append(out, obj)
		}
	}
	return out
}

// CountByType returns how many objects of the given type are present.
func (p *Pool) CountByType(t object.ObjectType) int {
	n := 0
	for _, obj := range p.objects {
		if obj.Type() == t {
			n++
		}
	}
	return n
}

// Parents returns the objects that reference the given id, in pool
// order. The id itself does not need to exist.
func (p *Pool) Parents(id object.ObjectID) []object.Object {
	var out []object.Object
	for _, obj := range p.objects {
		for _, ref := range obj.ReferencedIDs() {
			if ref == id {
				out = append(out, obj)
				break
			}
		}
	}
	return out
}

// WorkingSet returns the pool's working set object. A well-formed pool
// has exactly one; the first wins if several are present.
func (p *Pool) WorkingSet() (*object.WorkingSet, bool) {
	for _, obj := range p.objects {
		if ws, ok := obj.(*object.WorkingSet); ok {
			return ws, true
		}
	}
	return nil, false
}

// ReplaceID renumbers an object in place, keeping its pool position.
// References to the old id held by other objects are not rewritten.
func (p *Pool) ReplaceID(old, new object.ObjectID) error {
	i, ok := p.index[old]
	if !ok {
		return fmt.Errorf("renumber %s: %w", old, ErrNotFound)
	}
	if new == old {
		return nil
	}
	if new.IsNull() {
		return fmt.Errorf("renumber %s: target id is null", old)
	}
	if _, exists := p.index[new]; exists {
		return fmt.Errorf("renumber %s to %s: %w", old, new, ErrIDInUse)
	}
	p.objects[i].SetID(new)
	delete(p.index, old)
	p.index[new] = i
	return nil
}

// Clone returns a deep copy of the pool.
func (p *Pool) Clone() *Pool {
	c := &Pool{
		objects: make([]object.Object, len(p.objects)),
		index:   make(map[object.ObjectID]int, len(p.index)),
	}
	for i, obj := range p.objects {
		c.objects[i] = obj.Clone()
		c.index[obj.GetID()] = i
	}
	return c
}

// Equal reports structural equality: the same objects with the same
// attribute values in the same order.
func (p *Pool) Equal(other *Pool) bool {
	if other == nil {
		return p == nil
	}
	if len(p.objects) != len(other.objects) {
		return false
	}
	return reflect.DeepEqual(p.objects, other.objects)
}

// SortStableBy reorders the pool, keeping the relative order of objects
// the comparison treats as equal.
func (p *Pool) SortStableBy(less func(a, b object.Object) bool) {
	sort.SliceStable(p.objects, func(i, j int) bool {
		return less(p.objects[i], p.objects[j])
	})
	for i, obj := range p.objects {
		p.index[obj.GetID()] = i
	}
}

// MaxID returns the highest id in use and false when the pool is empty.
func (p *Pool) MaxID() (object.ObjectID, bool) {
	if len(p.objects) == 0 {
		return 0, false
	}
	var max object.ObjectID
	for id := range p.index {
		if id > max {
			max = id
		}
	}
	return max, true
}
