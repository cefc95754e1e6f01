package pool

import (
	"github.com/isobus-tools/vtpool/internal/object"
)

// maxTraversalDepth bounds recursive walks so reference cycles in broken
// pools cannot hang the editor.
const maxTraversalDepth = 32

// Smallest geometry any compliant terminal offers. Derived sizes never
// fall below these.
const (
	MinMaskSize    uint16 = 200
	MinSoftKeySize uint16 = 60
)

// ContentSize returns the rendered extent of an object in pixels.
// Objects without their own size, such as masks and keys, take the
// extent of their placed children. Pointer objects take the size of
// their target; a dangling or null pointer measures zero.
func (p *Pool) ContentSize(obj object.Object) object.Size {
	return p.contentSize(obj, 0)
}

func (p *Pool) contentSize(obj object.Object, depth int) object.Size {
	if depth > maxTraversalDepth {
		return object.Size{}
	}
	switch o := obj.(type) {
	case *object.WorkingSet:
		return p.childExtent(o.Children, depth)
	case *object.DataMask:
		return p.childExtent(o.Children, depth)
	case *object.AlarmMask:
		return p.childExtent(o.Children, depth)
	case *object.Container:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.SoftKeyMask:
		var s object.Size
		for _, id := range o.Keys {
			if key, ok := p.Get(id); ok {
				s = maxSize(s, p.contentSize(key, depth+1))
			}
		}
		return s
	case *object.Key:
		return p.childExtent(o.Children, depth)
	case *object.Button:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.InputBoolean:
		return object.Size{Width: o.Width, Height: o.Width}
	case *object.InputString:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.InputNumber:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.InputList:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputString:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputNumber:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputList:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputLine:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputRectangle:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputEllipse:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputPolygon:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputMeter:
		return object.Size{Width: o.Width, Height: o.Width}
	case *object.OutputLinearBarGraph:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.OutputArchedBarGraph:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.PictureGraphic:
		return pictureSize(o)
	case *object.ObjectPointer:
		if o.Value.IsNull() {
			return object.Size{}
		}
		if target, ok := p.Get(o.Value); ok {
			return p.contentSize(target, depth+1)
		}
		return object.Size{}
	case *object.ExternalObjectPointer:
		if o.DefaultObjectID.IsNull() {
			return object.Size{}
		}
		if target, ok := p.Get(o.DefaultObjectID); ok {
			return p.contentSize(target, depth+1)
		}
		return object.Size{}
	case *object.GraphicsContext:
		return object.Size{Width: o.ViewportWidth, Height: o.ViewportHeight}
	case *object.Animation:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.ScaledGraphic:
		return object.Size{Width: o.Width, Height: o.Height}
	case *object.AuxiliaryFunctionType1:
		return p.childExtent(o.Children, depth)
	case *object.AuxiliaryInputType1:
		return p.childExtent(o.Children, depth)
	case *object.AuxiliaryFunctionType2:
		return p.childExtent(o.Children, depth)
	case *object.AuxiliaryInputType2:
		return p.childExtent(o.Children, depth)
	}
	return object.Size{}
}

// childExtent measures how far placed children reach below and to the
// right of the parent origin. Children hanging off the top or left do
// not shrink the extent.
func (p *Pool) childExtent(children []object.ObjectRef, depth int) object.Size {
	var w, h int32
	for _, ref := range children {
		child, ok := p.Get(ref.ID)
		if !ok {
			continue
		}
		s := p.contentSize(child, depth+1)
		if right := int32(ref.Offset.X) + int32(s.Width); right > w {
			w = right
		}
		if bottom := int32(ref.Offset.Y) + int32(s.Height); bottom > h {
			h = bottom
		}
	}
	return object.Size{Width: clampDim(w), Height: clampDim(h)}
}

// pictureSize scales the stored bitmap to the displayed width,
// preserving aspect ratio.
func pictureSize(pic *object.PictureGraphic) object.Size {
	if pic.ActualWidth == 0 {
		return object.Size{Width: pic.Width, Height: pic.ActualHeight}
	}
	h := uint32(pic.ActualHeight) * uint32(pic.Width) / uint32(pic.ActualWidth)
	return object.Size{Width: pic.Width, Height: clampDim(int32(h))}
}

func maxSize(a, b object.Size) object.Size {
	if b.Width > a.Width {
		a.Width = b.Width
	}
	if b.Height > a.Height {
		a.Height = b.Height
	}
	return a
}

func clampDim(v int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}

// MinimumMaskSizes returns the smallest data mask area and soft key
// designator size that fit every mask and key in the pool.
func (p *Pool) MinimumMaskSizes() (uint16, object.Size) {
	maskSize := MinMaskSize
	keySize := object.Size{Width: MinSoftKeySize, Height: MinSoftKeySize}
	for _, obj := range p.objects {
		switch obj.Type() {
		case object.TypeDataMask, object.TypeAlarmMask:
			s := p.ContentSize(obj)
			if s.Width > maskSize {
				maskSize = s.Width
			}
			if s.Height > maskSize {
				maskSize = s.Height
			}
		case object.TypeKey:
			keySize = maxSize(keySize, p.ContentSize(obj))
		}
	}
	return maskSize, keySize
}

// ObjectAt finds the topmost object under a position, walking the render
// tree from root. Positions are relative to the root's origin. Children
// are painted after their parent, so later children win, and a child
// missing from the pool is skipped.
func (p *Pool) ObjectAt(root object.Object, at object.Point) (object.Object, bool) {
	return p.findAt(root, object.Point{}, at, 0)
}

func (p *Pool) findAt(obj object.Object, origin, at object.Point, depth int) (object.Object, bool) {
	if depth > maxTraversalDepth {
		return nil, false
	}

	var children []object.ObjectRef
	switch o := obj.(type) {
	case *object.DataMask:
		children = o.Children
	case *object.AlarmMask:
		children = o.Children
	case *object.Container:
		children = o.Children
	}
	for i := len(children) - 1; i >= 0; i-- {
		child, ok := p.Get(children[i].ID)
		if !ok {
			continue
		}
		childOrigin := object.Point{
			X: origin.X + children[i].Offset.X,
			Y: origin.Y + children[i].Offset.Y,
		}
		if hit, ok := p.findAt(child, childOrigin, at, depth+1); ok {
			return hit, true
		}
	}

	s := p.contentSize(obj, depth)
	if int32(at.X) >= int32(origin.X) && int32(at.X) <= int32(origin.X)+int32(s.Width) &&
		int32(at.Y) >= int32(origin.Y) && int32(at.Y) <= int32(origin.Y)+int32(s.Height) {
		return obj, true
	}
	return nil, false
}
