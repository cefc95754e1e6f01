// Package iop encodes and decodes the ISO 11783-6 binary object pool
// format. A pool file is a flat sequence of objects, each introduced by a
// little-endian object ID and a one-byte type code followed by the
// type-specific body.
//
// Decoding never mutates existing state: a failure partway through a
// buffer returns an error and no pool.
package iop

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

var (
	// ErrTruncated means the buffer ended inside an object.
	ErrTruncated = errors.New("truncated object pool")

	// ErrUnknownType means a type code outside the ISO 11783-6 range.
	ErrUnknownType = errors.New("unknown object type")
)

// Decode parses a binary object pool.
func Decode(data []byte) (*pool.Pool, error) {
	r := &reader{buf: data}
	p := pool.New()
	for r.remaining() > 0 {
		start := r.off
		rawID := r.u16()
		typeCode := r.u8()
		if r.err != nil {
			return nil, r.err
		}
		id, err := object.NewObjectID(rawID)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", start, err)
		}
		t, ok := object.ParseObjectType(typeCode)
		if !ok {
			return nil, fmt.Errorf("offset %d: %w %d", start, ErrUnknownType, typeCode)
		}
		obj := decodeBody(r, t)
		if r.err != nil {
			return nil, fmt.Errorf("%v %v: %w", t, id, r.err)
		}
		obj.SetID(id)
		if err := p.Add(obj); err != nil {
			return nil, fmt.Errorf("offset %d: %w", start, err)
		}
	}
	return p, nil
}

// Encode serializes a pool in its current object order. Encoding fails only
// when a value cannot be represented in the wire format, such as a child
// list longer than its count field.
func Encode(p *pool.Pool) ([]byte, error) {
	w := &writer{}
	for _, obj := range p.Objects() {
		w.id(obj.GetID())
		w.u8(uint8(obj.Type()))
		encodeBody(w, obj)
		if w.err != nil {
			return nil, fmt.Errorf("%v %v: %w", obj.Type(), obj.GetID(), w.err)
		}
	}
	return w.buf, nil
}

// reader consumes a buffer with a sticky error: after the first failure
// every read returns zero and the error is checked once per object.
type reader struct {
	buf []byte
	off int
	err error
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if r.off+n > len(r.buf) {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, r.off, len(r.buf)-r.off)
		return false
	}
	return true
}

func (r *reader) u8() uint8 {
	if !r.need(1) {
		return 0
	}
	v := r.buf[r.off]
	r.off++
	return v
}

func (r *reader) bool8() bool {
	return r.u8() != 0
}

func (r *reader) u16() uint16 {
	if !r.need(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

func (r *reader) i16() int16 {
	return int16(r.u16())
}

func (r *reader) u32() uint32 {
	if !r.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

func (r *reader) i32() int32 {
	return int32(r.u32())
}

func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *reader) u64() uint64 {
	if !r.need(8) {
		return 0
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v
}

func (r *reader) id() object.ObjectID {
	return object.ObjectID(r.u16())
}

func (r *reader) bytes(n int) []byte {
	if n == 0 || !r.need(n) {
		return nil
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:])
	r.off += n
	return out
}

func (r *reader) str(n int) string {
	return string(r.bytes(n))
}

func (r *reader) refs(n int) []object.ObjectRef {
	if n == 0 {
		return nil
	}
	out := make([]object.ObjectRef, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		ref := object.ObjectRef{ID: r.id()}
		ref.Offset.X = r.i16()
		ref.Offset.Y = r.i16()
		out = append(out, ref)
	}
	return out
}

func (r *reader) macros(n int) []object.MacroRef {
	if n == 0 {
		return nil
	}
	out := make([]object.MacroRef, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		out = append(out, object.MacroRef{
			Event:   object.Event(r.u8()),
			MacroID: r.u8(),
		})
	}
	return out
}

func (r *reader) ids(n int) []object.ObjectID {
	if n == 0 {
		return nil
	}
	out := make([]object.ObjectID, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		out = append(out, r.id())
	}
	return out
}

// writer builds a buffer with the same sticky-error discipline as reader.
// Only count and length fields can fail, when a slice exceeds the wire
// format's field width.
type writer struct {
	buf []byte
	err error
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) bool8(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *writer) u16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *writer) i16(v int16) {
	w.u16(uint16(v))
}

func (w *writer) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) i32(v int32) {
	w.u32(uint32(v))
}

func (w *writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *writer) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *writer) id(v object.ObjectID) {
	w.u16(uint16(v))
}

func (w *writer) raw(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *writer) count8(n int, what string) {
	if n > math.MaxUint8 {
		w.fail(fmt.Errorf("%d %s exceed the one-byte count field", n, what))
		return
	}
	w.u8(uint8(n))
}

func (w *writer) count16(n int, what string) {
	if n > math.MaxUint16 {
		w.fail(fmt.Errorf("%d %s exceed the two-byte count field", n, what))
		return
	}
	w.u16(uint16(n))
}

func (w *writer) count32(n int, what string) {
	if int64(n) > math.MaxUint32 {
		w.fail(fmt.Errorf("%d %s exceed the four-byte count field", n, what))
		return
	}
	w.u32(uint32(n))
}

func (w *writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *writer) refs(rs []object.ObjectRef) {
	for _, ref := range rs {
		w.id(ref.ID)
		w.i16(ref.Offset.X)
		w.i16(ref.Offset.Y)
	}
}

func (w *writer) macros(ms []object.MacroRef) {
	for _, m := range ms {
		w.u8(uint8(m.Event))
		w.u8(m.MacroID)
	}
}

func (w *writer) ids(ids []object.ObjectID) {
	for _, id := range ids {
		w.id(id)
	}
}
