// Package alloc hands out free object IDs for a pool.
package alloc

import (
	"errors"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

// ErrExhausted means every usable object ID is taken. There is no way to
// recover: the 16-bit ID space is full.
var ErrExhausted = errors.New("object id space exhausted")

// Allocator produces object IDs not present in a pool. The common case is a
// cursor bump; only after the cursor passes the top of the ID space does it
// rescan for gaps. IDs are handed out in (0, 65534]: 0 is left for pools
// that already use it, 65535 is the null ID.
type Allocator struct {
	// next is the candidate cursor. Held one wider than ObjectID so a
	// value past MaxID cleanly signals the wrapped state.
	next uint32
}

func New() *Allocator {
	return &Allocator{next: 1}
}

// Allocate returns an ID that is not in p at call time and advances the
// cursor past it. Returns ErrExhausted when no free ID exists.
func (a *Allocator) Allocate(p *pool.Pool) (object.ObjectID, error) {
	for a.next <= uint32(object.MaxID) {
		id := object.ObjectID(a.next)
		a.next++
		if !p.Has(id) {
			return id, nil
		}
	}

	// Wrapped. Scan for the first gap.
	for v := uint32(1); v <= uint32(object.MaxID); v++ {
		id := object.ObjectID(v)
		if !p.Has(id) {
			a.next = v + 1
			return id, nil
		}
	}
	return object.NullID, ErrExhausted
}

// Resync points the cursor past the highest ID in p. Must be called after
// any operation that replaces the pool wholesale (undo, redo, load), since
// the cursor only tracks IDs this allocator handed out itself.
func (a *Allocator) Resync(p *pool.Pool) {
	if max, ok := p.MaxID(); ok {
		a.next = uint32(max) + 1
		return
	}
	a.next = 1
}
