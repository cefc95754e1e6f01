package object

// Children returns the positioned child references of an object, or nil
// for kinds that place no children.
func Children(obj Object) []ObjectRef {
	switch o := obj.(type) {
	case *WorkingSet:
		return o.Children
	case *DataMask:
		return o.Children
	case *AlarmMask:
		return o.Children
	case *Container:
		return o.Children
	case *Key:
		return o.Children
	case *Button:
		return o.Children
	case *Animation:
		return o.Children
	case *AuxiliaryFunctionType1:
		return o.Children
	case *AuxiliaryInputType1:
		return o.Children
	case *AuxiliaryFunctionType2:
		return o.Children
	case *AuxiliaryInputType2:
		return o.Children
	}
	return nil
}

// ChildIDs returns the ids an object holds in a parent role: positioned
// children plus the unpositioned entry lists of masks, key groups,
// windows and selection lists. Attribute references (variables, fonts,
// the active mask slot) are not children and are not included. Neither
// is an object pointer's target: what a pointer may reach is constrained
// by the pointer's parents, not by the pointer itself.
func ChildIDs(obj Object) []ObjectID {
	var ids []ObjectID
	for _, r := range Children(obj) {
		if !r.ID.IsNull() {
			ids = append(ids, r.ID)
		}
	}
	switch o := obj.(type) {
	case *SoftKeyMask:
		ids = appendIDs(ids, o.Keys)
	case *KeyGroup:
		ids = appendIDs(ids, o.Keys)
	case *WindowMask:
		ids = appendIDs(ids, o.Objects)
	case *InputList:
		ids = appendIDs(ids, o.Items)
	case *OutputList:
		ids = appendIDs(ids, o.Items)
	}
	return ids
}

// Macros returns the event bindings of an object, or nil for kinds that
// cannot host macros.
func Macros(obj Object) []MacroRef {
	switch o := obj.(type) {
	case *WorkingSet:
		return o.Macros
	case *DataMask:
		return o.Macros
	case *AlarmMask:
		return o.Macros
	case *Container:
		return o.Macros
	case *SoftKeyMask:
		return o.Macros
	case *Key:
		return o.Macros
	case *Button:
		return o.Macros
	case *WindowMask:
		return o.Macros
	case *KeyGroup:
		return o.Macros
	case *InputBoolean:
		return o.Macros
	case *InputString:
		return o.Macros
	case *InputNumber:
		return o.Macros
	case *InputList:
		return o.Macros
	case *OutputString:
		return o.Macros
	case *OutputNumber:
		return o.Macros
	case *OutputList:
		return o.Macros
	case *OutputLine:
		return o.Macros
	case *OutputRectangle:
		return o.Macros
	case *OutputEllipse:
		return o.Macros
	case *OutputPolygon:
		return o.Macros
	case *OutputMeter:
		return o.Macros
	case *OutputLinearBarGraph:
		return o.Macros
	case *OutputArchedBarGraph:
		return o.Macros
	case *PictureGraphic:
		return o.Macros
	case *Animation:
		return o.Macros
	case *ScaledGraphic:
		return o.Macros
	case *FontAttributes:
		return o.Macros
	case *LineAttributes:
		return o.Macros
	case *FillAttributes:
		return o.Macros
	case *InputAttributes:
		return o.Macros
	}
	return nil
}
