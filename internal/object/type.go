package object

import "fmt"

// ObjectType is the wire type code of a pool object.
type ObjectType uint8

const (
	TypeWorkingSet                      ObjectType = 0
	TypeDataMask                        ObjectType = 1
	TypeAlarmMask                       ObjectType = 2
	TypeContainer                       ObjectType = 3
	TypeSoftKeyMask                     ObjectType = 4
	TypeKey                             ObjectType = 5
	TypeButton                          ObjectType = 6
	TypeInputBoolean                    ObjectType = 7
	TypeInputString                     ObjectType = 8
	TypeInputNumber                     ObjectType = 9
	TypeInputList                       ObjectType = 10
	TypeOutputString                    ObjectType = 11
	TypeOutputNumber                    ObjectType = 12
	TypeOutputLine                      ObjectType = 13
	TypeOutputRectangle                 ObjectType = 14
	TypeOutputEllipse                   ObjectType = 15
	TypeOutputPolygon                   ObjectType = 16
	TypeOutputMeter                     ObjectType = 17
	TypeOutputLinearBarGraph            ObjectType = 18
	TypeOutputArchedBarGraph            ObjectType = 19
	TypePictureGraphic                  ObjectType = 20
	TypeNumberVariable                  ObjectType = 21
	TypeStringVariable                  ObjectType = 22
	TypeFontAttributes                  ObjectType = 23
	TypeLineAttributes                  ObjectType = 24
	TypeFillAttributes                  ObjectType = 25
	TypeInputAttributes                 ObjectType = 26
	TypeObjectPointer                   ObjectType = 27
	TypeMacro                           ObjectType = 28
	TypeAuxiliaryFunctionType1          ObjectType = 29
	TypeAuxiliaryInputType1             ObjectType = 30
	TypeAuxiliaryFunctionType2          ObjectType = 31
	TypeAuxiliaryInputType2             ObjectType = 32
	TypeAuxiliaryControlDesignatorType2 ObjectType = 33
	TypeWindowMask                      ObjectType = 34
	TypeKeyGroup                        ObjectType = 35
	TypeGraphicsContext                 ObjectType = 36
	TypeOutputList                      ObjectType = 37
	TypeExtendedInputAttributes         ObjectType = 38
	TypeColourMap                       ObjectType = 39
	TypeObjectLabelReferenceList        ObjectType = 40
	TypeExternalObjectDefinition        ObjectType = 41
	TypeExternalReferenceName           ObjectType = 42
	TypeExternalObjectPointer           ObjectType = 43
	TypeAnimation                       ObjectType = 44
	TypeColourPalette                   ObjectType = 45
	TypeGraphicData                     ObjectType = 46
	TypeWorkingSetSpecialControls       ObjectType = 47
	TypeScaledGraphic                   ObjectType = 48
)

var typeNames = map[ObjectType]string{
	TypeWorkingSet:                      "WorkingSet",
	TypeDataMask:                        "DataMask",
	TypeAlarmMask:                       "AlarmMask",
	TypeContainer:                       "Container",
	TypeSoftKeyMask:                     "SoftKeyMask",
	TypeKey:                             "Key",
	TypeButton:                          "Button",
	TypeInputBoolean:                    "InputBoolean",
	TypeInputString:                     "InputString",
	TypeInputNumber:                     "InputNumber",
	TypeInputList:                       "InputList",
	TypeOutputString:                    "OutputString",
	TypeOutputNumber:                    "OutputNumber",
	TypeOutputLine:                      "OutputLine",
	TypeOutputRectangle:                 "OutputRectangle",
	TypeOutputEllipse:                   "OutputEllipse",
	TypeOutputPolygon:                   "OutputPolygon",
	TypeOutputMeter:                     "OutputMeter",
	TypeOutputLinearBarGraph:            "OutputLinearBarGraph",
	TypeOutputArchedBarGraph:            "OutputArchedBarGraph",
	TypePictureGraphic:                  "PictureGraphic",
	TypeNumberVariable:                  "NumberVariable",
	TypeStringVariable:                  "StringVariable",
	TypeFontAttributes:                  "FontAttributes",
	TypeLineAttributes:                  "LineAttributes",
	TypeFillAttributes:                  "FillAttributes",
	TypeInputAttributes:                 "InputAttributes",
	TypeObjectPointer:                   "ObjectPointer",
	TypeMacro:                           "Macro",
	TypeAuxiliaryFunctionType1:          "AuxiliaryFunctionType1",
	TypeAuxiliaryInputType1:             "AuxiliaryInputType1",
	TypeAuxiliaryFunctionType2:          "AuxiliaryFunctionType2",
	TypeAuxiliaryInputType2:             "AuxiliaryInputType2",
	TypeAuxiliaryControlDesignatorType2: "AuxiliaryControlDesignatorType2",
	TypeWindowMask:                      "WindowMask",
	TypeKeyGroup:                        "KeyGroup",
	TypeGraphicsContext:                 "GraphicsContext",
	TypeOutputList:                      "OutputList",
	TypeExtendedInputAttributes:         "ExtendedInputAttributes",
	TypeColourMap:                       "ColourMap",
	TypeObjectLabelReferenceList:        "ObjectLabelReferenceList",
	TypeExternalObjectDefinition:        "ExternalObjectDefinition",
	TypeExternalReferenceName:           "ExternalReferenceName",
	TypeExternalObjectPointer:           "ExternalObjectPointer",
	TypeAnimation:                       "Animation",
	TypeColourPalette:                   "ColourPalette",
	TypeGraphicData:                     "GraphicData",
	TypeWorkingSetSpecialControls:       "WorkingSetSpecialControls",
	TypeScaledGraphic:                   "ScaledGraphic",
}

func (t ObjectType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ObjectType(%d)", uint8(t))
}

// ParseObjectType validates a raw wire type code.
func ParseObjectType(v uint8) (ObjectType, bool) {
	t := ObjectType(v)
	_, ok := typeNames[t]
	return t, ok
}

// Types returns every object type in wire-code order.
func Types() []ObjectType {
	out := make([]ObjectType, 0, len(typeNames))
	for t := ObjectType(0); t <= TypeScaledGraphic; t++ {
		if _, ok := typeNames[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// TypeByName finds an object type by name. Matching ignores case and
// the separators people type between words, so "working-set",
// "working_set" and "WorkingSet" all resolve.
func TypeByName(name string) (ObjectType, bool) {
	needle := normalizeTypeName(name)
	if needle == "" {
		return 0, false
	}
	for t, n := range typeNames {
		if normalizeTypeName(n) == needle {
			return t, true
		}
	}
	return 0, false
}

func normalizeTypeName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
