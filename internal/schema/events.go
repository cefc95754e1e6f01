package schema

import (
	"github.com/isobus-tools/vtpool/internal/object"
)

// PossibleEvents returns the macro events an object of the given type
// can raise. Macro bindings on other events are dead and reported by
// validation. Types with no event surface return an empty list.
func PossibleEvents(t object.ObjectType) []object.Event {
	switch t {
	case object.TypeWorkingSet:
		return []object.Event{
			object.OnActivate,
			object.OnDeactivate,
			object.OnChangeActiveMask,
			object.OnChangeBackgroundColour,
			object.OnChangeChildLocation,
			object.OnChangeChildPosition,
		}
	case object.TypeDataMask:
		return []object.Event{
			object.OnShow,
			object.OnHide,
			object.OnChangeBackgroundColour,
			object.OnChangeChildLocation,
			object.OnChangeChildPosition,
			object.OnChangeSoftKeyMask,
			object.OnChangeAttribute,
			object.OnPointingEventPress,
			object.OnPointingEventRelease,
		}
	case object.TypeAlarmMask:
		return []object.Event{
			object.OnShow,
			object.OnHide,
			object.OnChangeBackgroundColour,
			object.OnChangeChildLocation,
			object.OnChangeChildPosition,
			object.OnChangePriority,
			object.OnChangeSoftKeyMask,
			object.OnChangeAttribute,
		}
	case object.TypeContainer:
		return []object.Event{
			object.OnShow,
			object.OnHide,
			object.OnChangeChildLocation,
			object.OnChangeChildPosition,
			object.OnChangeSize,
		}
	case object.TypeSoftKeyMask:
		return []object.Event{
			object.OnShow,
			object.OnHide,
			object.OnChangeBackgroundColour,
			object.OnChangeAttribute,
		}
	case object.TypeKey:
		return []object.Event{
			object.OnKeyPress,
			object.OnKeyRelease,
			object.OnChangeBackgroundColour,
			object.OnChangeChildLocation,
			object.OnChangeChildPosition,
			object.OnChangeAttribute,
			object.OnInputFieldSelection,
			object.OnInputFieldDeselection,
		}
	case object.TypeButton:
		return []object.Event{
			object.OnEnable,
			object.OnDisable,
			object.OnInputFieldSelection,
			object.OnInputFieldDeselection,
			object.OnKeyPress,
			object.OnKeyRelease,
			object.OnChangeBackgroundColour,
			object.OnChangeSize,
			object.OnChangeChildLocation,
			object.OnChangeChildPosition,
			object.OnChangeAttribute,
		}
	case object.TypeInputBoolean, object.TypeInputString, object.TypeInputNumber:
		// The input field objects share one event surface.
		return inputFieldEvents()
	case object.TypeInputList:
		return []object.Event{
			object.OnEnable,
			object.OnDisable,
			object.OnInputFieldSelection,
			object.OnInputFieldDeselection,
			object.OnESC,
			object.OnChangeValue,
			object.OnEntryOfValue,
			object.OnEntryOfNewValue,
			object.OnChangeAttribute,
			object.OnChangeSize,
		}
	case object.TypeOutputString, object.TypeOutputNumber:
		// The output field objects share one event surface.
		return []object.Event{
			object.OnChangeBackgroundColour,
			object.OnChangeValue,
			object.OnChangeAttribute,
			object.OnChangeSize,
		}
	case object.TypeOutputList:
		return []object.Event{
			object.OnChangeValue,
			object.OnChangeAttribute,
			object.OnChangeSize,
		}
	case object.TypeOutputLine:
		return []object.Event{
			object.OnChangeEndPoint,
			object.OnChangeAttribute,
			object.OnChangeSize,
		}
	case object.TypeOutputRectangle, object.TypeOutputEllipse:
		return []object.Event{
			object.OnChangeSize,
			object.OnChangeAttribute,
		}
	case object.TypeOutputPolygon:
		return []object.Event{
			object.OnChangeAttribute,
			object.OnChangeSize,
		}
	case object.TypeOutputMeter, object.TypeOutputLinearBarGraph, object.TypeOutputArchedBarGraph:
		return []object.Event{
			object.OnChangeValue,
			object.OnChangeAttribute,
			object.OnChangeSize,
		}
	case object.TypePictureGraphic:
		return []object.Event{object.OnChangeAttribute}
	case object.TypeNumberVariable, object.TypeStringVariable:
		return []object.Event{object.OnChangeValue}
	case object.TypeFontAttributes:
		return []object.Event{object.OnChangeFontAttributes, object.OnChangeAttribute}
	case object.TypeLineAttributes:
		return []object.Event{object.OnChangeLineAttributes, object.OnChangeAttribute}
	case object.TypeFillAttributes:
		return []object.Event{object.OnChangeFillAttributes, object.OnChangeAttribute}
	case object.TypeInputAttributes:
		return []object.Event{object.OnChangeValue}
	case object.TypeObjectPointer:
		return []object.Event{object.OnChangeValue}
	case object.TypeGraphicsContext:
		return []object.Event{object.OnChangeAttribute, object.OnChangeBackgroundColour}
	case object.TypeKeyGroup:
		return []object.Event{object.OnChangeAttribute}
	case object.TypeWindowMask:
		return []object.Event{
			object.OnShow,
			object.OnHide,
			object.OnChangeBackgroundColour,
			object.OnChangeChildLocation,
			object.OnChangeChildPosition,
			object.OnChangeAttribute,
			object.OnPointingEventPress,
			object.OnPointingEventRelease,
		}
	case object.TypeExternalObjectDefinition, object.TypeExternalReferenceName:
		return []object.Event{object.OnChangeAttribute}
	case object.TypeExternalObjectPointer:
		return []object.Event{object.OnChangeValue}
	case object.TypeAnimation:
		return []object.Event{
			object.OnEnable,
			object.OnDisable,
			object.OnChangeValue,
			object.OnChangeAttribute,
			object.OnChangeSize,
		}
	case object.TypeScaledGraphic:
		return []object.Event{
			object.OnChangeAttribute,
			object.OnChangeValue,
		}
	}
	return nil
}

func inputFieldEvents() []object.Event {
	return []object.Event{
		object.OnEnable,
		object.OnDisable,
		object.OnInputFieldSelection,
		object.OnInputFieldDeselection,
		object.OnESC,
		object.OnChangeBackgroundColour,
		object.OnChangeValue,
		object.OnEntryOfValue,
		object.OnEntryOfNewValue,
		object.OnChangeAttribute,
		object.OnChangeSize,
	}
}

// AllowsEvent reports whether an object of the given type can raise the
// event.
func AllowsEvent(t object.ObjectType, e object.Event) bool {
	for _, ev := range PossibleEvents(t) {
		if ev == e {
			return true
		}
	}
	return false
}
