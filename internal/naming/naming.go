// Package naming generates human-friendly default names for pool objects.
// Names are editor metadata only and never leave the project file.
package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

// maxNameLen is the longest accepted custom name, in bytes.
const maxNameLen = 100

// maxSuggestions caps the numbered-variation search in Validate. Matches the
// 16-bit object ID space.
const maxSuggestions = 65535

var typeDisplayNames = map[object.ObjectType]string{
	object.TypeWorkingSet:                      "Working Set",
	object.TypeDataMask:                        "Data Mask",
	object.TypeAlarmMask:                       "Alarm Screen",
	object.TypeContainer:                       "Container",
	object.TypeSoftKeyMask:                     "Soft Key Mask",
	object.TypeKey:                             "Key",
	object.TypeButton:                          "Button",
	object.TypeInputBoolean:                    "Checkbox",
	object.TypeInputString:                     "Text Input",
	object.TypeInputNumber:                     "Number Input",
	object.TypeInputList:                       "List Input",
	object.TypeOutputString:                    "Text Display",
	object.TypeOutputNumber:                    "Number Display",
	object.TypeOutputList:                      "List Display",
	object.TypeOutputLine:                      "Line",
	object.TypeOutputRectangle:                 "Rectangle",
	object.TypeOutputEllipse:                   "Ellipse",
	object.TypeOutputPolygon:                   "Polygon",
	object.TypeOutputMeter:                     "Meter",
	object.TypeOutputLinearBarGraph:            "Linear Bar",
	object.TypeOutputArchedBarGraph:            "Arched Bar",
	object.TypePictureGraphic:                  "Picture",
	object.TypeNumberVariable:                  "Number Variable",
	object.TypeStringVariable:                  "String Variable",
	object.TypeFontAttributes:                  "Font Style",
	object.TypeLineAttributes:                  "Line Style",
	object.TypeFillAttributes:                  "Fill Style",
	object.TypeInputAttributes:                 "Input Style",
	object.TypeObjectPointer:                   "Object Reference",
	object.TypeMacro:                           "Macro",
	object.TypeAuxiliaryFunctionType1:          "Aux Function v1",
	object.TypeAuxiliaryInputType1:             "Aux Input v1",
	object.TypeAuxiliaryFunctionType2:          "Aux Function v2",
	object.TypeAuxiliaryInputType2:             "Aux Input v2",
	object.TypeAuxiliaryControlDesignatorType2: "Aux Control v2",
	object.TypeColourMap:                       "Colour Map",
	object.TypeGraphicsContext:                 "Graphics Context",
	object.TypeColourPalette:                   "Colour Palette",
	object.TypeGraphicData:                     "Graphic Data",
	object.TypeWorkingSetSpecialControls:       "Special Controls",
	object.TypeScaledGraphic:                   "Scaled Graphic",
	object.TypeWindowMask:                      "Window Mask",
	object.TypeKeyGroup:                        "Key Group",
	object.TypeExtendedInputAttributes:         "Extended Input Style",
	object.TypeObjectLabelReferenceList:        "Label Reference List",
	object.TypeExternalObjectDefinition:        "External Object Definition",
	object.TypeExternalReferenceName:           "External Reference Name",
	object.TypeExternalObjectPointer:           "External Object Pointer",
	object.TypeAnimation:                       "Animation",
}

// TypeDisplayName returns the user-facing name for an object type.
func TypeDisplayName(t object.ObjectType) string {
	if name, ok := typeDisplayNames[t]; ok {
		return name
	}
	return t.String()
}

// NameCounts tracks how many objects currently carry each display name.
type NameCounts map[string]int

// Add records one more use of name.
func (c NameCounts) Add(name string) {
	c[name]++
}

// Remove drops one use of name.
func (c NameCounts) Remove(name string) {
	if c[name] <= 1 {
		delete(c, name)
		return
	}
	c[name]--
}

// Taken reports whether name is in use.
func (c NameCounts) Taken(name string) bool {
	return c[name] > 0
}

// Collect builds the name counts for a pool using the given display-name
// resolver.
func Collect(p *pool.Pool, displayName func(object.Object) string) NameCounts {
	counts := make(NameCounts, p.Len())
	for _, obj := range p.Objects() {
		counts.Add(displayName(obj))
	}
	return counts
}

// SmartDefault proposes a name for a new object of type t, assuming the
// object is not in p yet. The first data mask becomes "Main Screen"; later
// ones are numbered "Data Screen N". Other types keep their bare display
// name while they are first of their type and the name is free, and are
// numbered from there on.
func SmartDefault(t object.ObjectType, p *pool.Pool, existing NameCounts) string {
	return SmartDefaultN(t, p.CountByType(t), existing)
}

// SmartDefaultN is SmartDefault with the same-type count supplied by the
// caller. Batch naming uses it to name objects as if they had been added
// one at a time: the n-th object of a type is named with count n.
func SmartDefaultN(t object.ObjectType, sameTypeCount int, existing NameCounts) string {
	base := TypeDisplayName(t)
	if t == object.TypeDataMask {
		if sameTypeCount == 0 {
			base = "Main Screen"
		} else {
			base = "Data Screen"
		}
	}

	if sameTypeCount == 0 && !existing.Taken(base) {
		return base
	}

	for counter := sameTypeCount + 1; ; counter++ {
		candidate := fmt.Sprintf("%s %d", base, counter)
		if !existing.Taken(candidate) {
			return candidate
		}
	}
}

// ContextualName derives a name from an object's own properties: key codes
// for keys and buttons, height bands for containers.
func ContextualName(obj object.Object) (string, bool) {
	switch o := obj.(type) {
	case *object.Key:
		switch {
		case o.KeyCode == 0:
			return "ACK/Enter Key", true
		case o.KeyCode == 1:
			return "ESC Key", true
		case o.KeyCode >= 2 && o.KeyCode <= 7:
			return fmt.Sprintf("Soft Key %d", o.KeyCode-1), true
		}
	case *object.Button:
		switch o.KeyCode {
		case 0:
			return "OK Button", true
		case 1:
			return "Cancel Button", true
		}
	case *object.Container:
		if o.Height < 100 {
			return "Header Container", true
		}
		if o.Height > 300 {
			return "Main Container", true
		}
	}
	return "", false
}

// SuggestChildName proposes a name for a child about to be attached to
// parent, based on what the parent already holds.
func SuggestChildName(parent object.Object, childType object.ObjectType, p *pool.Pool) (string, bool) {
	switch {
	case parent.Type() == object.TypeSoftKeyMask && childType == object.TypeKey:
		keys := countResolvedChildren(parent, p, object.TypeKey)
		return fmt.Sprintf("F%d Key", keys+1), true

	case parent.Type() == object.TypeContainer && childType == object.TypeButton:
		return "Container Button", true

	case parent.Type() == object.TypeContainer && childType == object.TypeOutputString:
		return "Container Label", true

	case parent.Type() == object.TypeDataMask && childType == object.TypeContainer:
		switch countResolvedChildren(parent, p, object.TypeContainer) {
		case 0:
			return "Header Container", true
		case 1:
			return "Main Container", true
		case 2:
			return "Footer Container", true
		}
	}
	return "", false
}

func countResolvedChildren(parent object.Object, p *pool.Pool, t object.ObjectType) int {
	n := 0
	for _, id := range parent.ReferencedIDs() {
		if child, ok := p.Get(id); ok && child.Type() == t {
			n++
		}
	}
	return n
}

// Validate checks a proposed custom name. For duplicates the error suggests
// the first free numbered variation.
func Validate(name string, existing NameCounts) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Name cannot be empty")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("Name is too long (max %d characters)", maxNameLen)
	}
	if existing.Taken(name) {
		for counter := 2; counter <= maxSuggestions; counter++ {
			suggestion := fmt.Sprintf("%s %d", name, counter)
			if !existing.Taken(suggestion) {
				return fmt.Errorf("Name '%s' already exists. Try '%s'", name, suggestion)
			}
		}
		return fmt.Errorf("Name '%s' already exists and all numbered variations up to %d are taken", name, maxSuggestions)
	}
	return nil
}
