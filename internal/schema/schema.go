// Package schema encodes which parent/child relationships and macro
// events each object type admits at each virtual terminal version.
//
// The tables grow monotonically: a relationship legal at one version
// stays legal at every later version. Several types share another type's
// rule outright (a container admits what a data mask admits, a button
// what a key admits), which is expressed by calling the other type's
// table function.
package schema

import (
	"github.com/isobus-tools/vtpool/internal/object"
)

// AllowedChildren returns the object types that may be referenced as
// children of the given type at the given version. Types that cannot
// hold children return an empty list.
func AllowedChildren(t object.ObjectType, v object.VTVersion) []object.ObjectType {
	switch t {
	case object.TypeWorkingSet:
		return workingSetChildren(v)
	case object.TypeDataMask:
		return dataMaskChildren(v)
	case object.TypeAlarmMask:
		return alarmMaskChildren(v)
	case object.TypeContainer:
		// A container admits the same objects as a data mask.
		return dataMaskChildren(v)
	case object.TypeSoftKeyMask:
		return softKeyMaskChildren(v)
	case object.TypeKey:
		return keyChildren(v)
	case object.TypeButton:
		// A button admits the same objects as a key.
		return keyChildren(v)
	case object.TypeInputList:
		return inputListChildren(v)
	case object.TypeOutputList:
		// An output list admits the same objects as a window mask.
		return windowMaskChildren(v)
	case object.TypeAuxiliaryFunctionType1:
		return auxiliaryFunctionType1Children(v)
	case object.TypeAuxiliaryInputType1:
		// Same rule as auxiliary function type 1.
		return auxiliaryFunctionType1Children(v)
	case object.TypeAuxiliaryFunctionType2:
		return auxiliaryFunctionType2Children(v)
	case object.TypeAuxiliaryInputType2:
		// Same rule as auxiliary function type 2.
		return auxiliaryFunctionType2Children(v)
	case object.TypeWindowMask:
		return windowMaskChildren(v)
	case object.TypeKeyGroup:
		return keyGroupChildren(v)
	case object.TypeAnimation:
		return animationChildren(v)
	}
	return nil
}

// AllowsChild reports whether a parent of type parent may reference a
// child of type child at the given version.
func AllowsChild(parent, child object.ObjectType, v object.VTVersion) bool {
	for _, t := range AllowedChildren(parent, v) {
		if t == child {
			return true
		}
	}
	return false
}

func workingSetChildren(v object.VTVersion) []object.ObjectType {
	allowed := []object.ObjectType{
		object.TypeOutputString,
		object.TypeOutputNumber,
		object.TypeOutputLine,
		object.TypeOutputRectangle,
		object.TypeOutputEllipse,
		object.TypeOutputPolygon,
		object.TypePictureGraphic,
	}
	if v.AtLeast(object.Version4) {
		allowed = append(allowed,
			object.TypeOutputList,
			object.TypeOutputMeter,
			object.TypeOutputLinearBarGraph,
			object.TypeOutputArchedBarGraph,
			object.TypeGraphicsContext,
			object.TypeObjectPointer,
		)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}

func dataMaskChildren(v object.VTVersion) []object.ObjectType {
	allowed := []object.ObjectType{
		object.TypeContainer,
		object.TypeButton,
		object.TypeInputBoolean,
		object.TypeInputString,
		object.TypeInputNumber,
		object.TypeInputList,
		object.TypeOutputString,
		object.TypeOutputNumber,
		object.TypeOutputLine,
		object.TypeOutputRectangle,
		object.TypeOutputEllipse,
		object.TypeOutputPolygon,
		object.TypeOutputMeter,
		object.TypeOutputLinearBarGraph,
		object.TypeOutputArchedBarGraph,
		object.TypePictureGraphic,
		object.TypeObjectPointer,
	}
	if v.AtLeast(object.Version3) {
		allowed = append(allowed, object.TypeWorkingSet)
	}
	if v.AtLeast(object.Version4) {
		allowed = append(allowed, object.TypeOutputList, object.TypeGraphicsContext)
	}
	if v.AtLeast(object.Version5) {
		allowed = append(allowed, object.TypeAnimation, object.TypeExternalObjectPointer)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}

func alarmMaskChildren(v object.VTVersion) []object.ObjectType {
	// Like a data mask, minus everything the operator could interact
	// with while the alarm is showing.
	allowed := []object.ObjectType{
		object.TypeContainer,
		object.TypeOutputString,
		object.TypeOutputNumber,
		object.TypeOutputLine,
		object.TypeOutputRectangle,
		object.TypeOutputEllipse,
		object.TypeOutputPolygon,
		object.TypeOutputMeter,
		object.TypeOutputLinearBarGraph,
		object.TypeOutputArchedBarGraph,
		object.TypePictureGraphic,
		object.TypeObjectPointer,
	}
	if v.AtLeast(object.Version3) {
		allowed = append(allowed, object.TypeWorkingSet)
	}
	if v.AtLeast(object.Version4) {
		allowed = append(allowed, object.TypeOutputList, object.TypeGraphicsContext)
	}
	if v.AtLeast(object.Version5) {
		allowed = append(allowed, object.TypeAnimation, object.TypeExternalObjectPointer)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}

func softKeyMaskChildren(v object.VTVersion) []object.ObjectType {
	allowed := []object.ObjectType{object.TypeKey, object.TypeObjectPointer}
	if v.AtLeast(object.Version5) {
		allowed = append(allowed, object.TypeExternalObjectPointer)
	}
	return allowed
}

func keyChildren(v object.VTVersion) []object.ObjectType {
	allowed := []object.ObjectType{
		object.TypeContainer,
		object.TypeOutputString,
		object.TypeOutputNumber,
		object.TypeOutputLine,
		object.TypeOutputRectangle,
		object.TypeOutputEllipse,
		object.TypeOutputPolygon,
		object.TypePictureGraphic,
		object.TypeObjectPointer,
	}
	if v.AtLeast(object.Version4) {
		allowed = append(allowed,
			object.TypeWorkingSet,
			object.TypeOutputList,
			object.TypeOutputMeter,
			object.TypeOutputLinearBarGraph,
			object.TypeOutputArchedBarGraph,
			object.TypeGraphicsContext,
		)
	}
	if v.AtLeast(object.Version5) {
		allowed = append(allowed, object.TypeAnimation, object.TypeExternalObjectPointer)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}

func inputListChildren(v object.VTVersion) []object.ObjectType {
	allowed := []object.ObjectType{
		object.TypeOutputString,
		object.TypeOutputNumber,
		object.TypePictureGraphic,
	}
	if v.AtLeast(object.Version4) {
		allowed = append(allowed,
			object.TypeWorkingSet,
			object.TypeContainer,
			object.TypeOutputList,
			object.TypeOutputLine,
			object.TypeOutputRectangle,
			object.TypeOutputEllipse,
			object.TypeOutputPolygon,
			object.TypeOutputMeter,
			object.TypeOutputLinearBarGraph,
			object.TypeOutputArchedBarGraph,
			object.TypeGraphicsContext,
			object.TypeObjectPointer,
		)
	}
	if v.AtLeast(object.Version5) {
		allowed = append(allowed, object.TypeExternalObjectPointer)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}

func auxiliaryFunctionType1Children(object.VTVersion) []object.ObjectType {
	// Version-independent; the type 1 auxiliary objects predate the
	// versioned additions.
	return []object.ObjectType{
		object.TypeOutputString,
		object.TypeOutputNumber,
		object.TypeOutputLine,
		object.TypeOutputRectangle,
		object.TypeOutputEllipse,
		object.TypeOutputPolygon,
		object.TypePictureGraphic,
	}
}

func auxiliaryFunctionType2Children(v object.VTVersion) []object.ObjectType {
	var allowed []object.ObjectType
	if v.AtLeast(object.Version3) {
		allowed = append(allowed,
			object.TypeContainer,
			object.TypeOutputString,
			object.TypeOutputNumber,
			object.TypeOutputLine,
			object.TypeOutputRectangle,
			object.TypeOutputEllipse,
			object.TypeOutputPolygon,
			object.TypeOutputMeter,
			object.TypeOutputLinearBarGraph,
			object.TypeOutputArchedBarGraph,
			object.TypePictureGraphic,
			object.TypeObjectPointer,
		)
	}
	if v.AtLeast(object.Version4) {
		allowed = append(allowed, object.TypeOutputList, object.TypeGraphicsContext)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}

func windowMaskChildren(v object.VTVersion) []object.ObjectType {
	var allowed []object.ObjectType
	if v.AtLeast(object.Version4) {
		allowed = append(allowed,
			object.TypeWorkingSet,
			object.TypeContainer,
			object.TypeButton,
			object.TypeInputBoolean,
			object.TypeInputString,
			object.TypeInputNumber,
			object.TypeInputList,
			object.TypeOutputString,
			object.TypeOutputNumber,
			object.TypeOutputList,
			object.TypeOutputLine,
			object.TypeOutputRectangle,
			object.TypeOutputEllipse,
			object.TypeOutputPolygon,
			object.TypeOutputMeter,
			object.TypeOutputLinearBarGraph,
			object.TypeOutputArchedBarGraph,
			object.TypeGraphicsContext,
			object.TypePictureGraphic,
			object.TypeObjectPointer,
		)
	}
	if v.AtLeast(object.Version5) {
		allowed = append(allowed, object.TypeAnimation, object.TypeExternalObjectPointer)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}

func keyGroupChildren(v object.VTVersion) []object.ObjectType {
	if v.AtLeast(object.Version4) {
		return []object.ObjectType{object.TypeKey}
	}
	return nil
}

func animationChildren(v object.VTVersion) []object.ObjectType {
	var allowed []object.ObjectType
	if v.AtLeast(object.Version5) {
		allowed = append(allowed,
			object.TypeContainer,
			object.TypeOutputString,
			object.TypeOutputNumber,
			object.TypeOutputList,
			object.TypeOutputLine,
			object.TypeOutputRectangle,
			object.TypeOutputEllipse,
			object.TypeOutputPolygon,
			object.TypeOutputMeter,
			object.TypeOutputLinearBarGraph,
			object.TypeOutputArchedBarGraph,
			object.TypeGraphicsContext,
			object.TypePictureGraphic,
			object.TypeObjectPointer,
		)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}

// AllowsLabelGraphic reports whether an object label may use a child of
// the given type as its graphic representation at the given version.
func AllowsLabelGraphic(child object.ObjectType, v object.VTVersion) bool {
	for _, t := range AllowedLabelGraphics(v) {
		if t == child {
			return true
		}
	}
	return false
}

// AllowedLabelGraphics returns the object types an object label's
// graphic representation may reference at the given version. Labels are
// records inside an ObjectLabelReferenceList, not objects of their own.
func AllowedLabelGraphics(v object.VTVersion) []object.ObjectType {
	var allowed []object.ObjectType
	if v.AtLeast(object.Version4) {
		allowed = append(allowed,
			object.TypeContainer,
			object.TypeOutputString,
			object.TypeOutputNumber,
			object.TypeOutputList,
			object.TypeOutputLine,
			object.TypeOutputRectangle,
			object.TypeOutputEllipse,
			object.TypeOutputPolygon,
			object.TypeOutputMeter,
			object.TypeOutputLinearBarGraph,
			object.TypeOutputArchedBarGraph,
			object.TypeGraphicsContext,
			object.TypePictureGraphic,
			object.TypeObjectPointer,
		)
	}
	if v.AtLeast(object.Version6) {
		allowed = append(allowed, object.TypeScaledGraphic)
	}
	return allowed
}
