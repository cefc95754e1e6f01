package object

// New returns a freshly created object of the given type with usable
// defaults: white backgrounds, black foregrounds, modest sizes and no
// references. The id is left at zero for the caller to assign.
func New(t ObjectType) Object {
	switch t {
	case TypeWorkingSet:
		return &WorkingSet{BackgroundColour: 1, Selectable: true, ActiveMask: NullID}
	case TypeDataMask:
		return &DataMask{BackgroundColour: 1, SoftKeyMask: NullID}
	case TypeAlarmMask:
		return &AlarmMask{BackgroundColour: 1, SoftKeyMask: NullID, Priority: 1, AcousticSignal: 3}
	case TypeContainer:
		return &Container{Width: 100, Height: 100}
	case TypeSoftKeyMask:
		return &SoftKeyMask{BackgroundColour: 1}
	case TypeKey:
		return &Key{BackgroundColour: 1, KeyCode: 2}
	case TypeButton:
		return &Button{Width: 60, Height: 30, BackgroundColour: 1, BorderColour: 0}
	case TypeInputBoolean:
		return &InputBoolean{BackgroundColour: 1, Width: 20, ForegroundColour: NullID, VariableReference: NullID, Enabled: true}
	case TypeInputString:
		return &InputString{Width: 100, Height: 20, BackgroundColour: 1, FontAttributes: NullID, InputAttributes: NullID, VariableReference: NullID, Enabled: true}
	case TypeInputNumber:
		return &InputNumber{Width: 80, Height: 20, BackgroundColour: 1, FontAttributes: NullID, VariableReference: NullID, MaxValue: 65535, Scale: 1, Options2: 1}
	case TypeInputList:
		return &InputList{Width: 80, Height: 20, VariableReference: NullID, Options: 1}
	case TypeOutputString:
		return &OutputString{Width: 100, Height: 20, BackgroundColour: 1, FontAttributes: NullID, VariableReference: NullID, Value: "Text"}
	case TypeOutputNumber:
		return &OutputNumber{Width: 80, Height: 20, BackgroundColour: 1, FontAttributes: NullID, VariableReference: NullID, Scale: 1}
	case TypeOutputList:
		return &OutputList{Width: 80, Height: 20, VariableReference: NullID}
	case TypeOutputLine:
		return &OutputLine{LineAttributes: NullID, Width: 100, Height: 100}
	case TypeOutputRectangle:
		return &OutputRectangle{LineAttributes: NullID, Width: 100, Height: 60, FillAttributes: NullID}
	case TypeOutputEllipse:
		return &OutputEllipse{LineAttributes: NullID, Width: 100, Height: 60, EndAngle: 180, FillAttributes: NullID}
	case TypeOutputPolygon:
		return &OutputPolygon{Width: 100, Height: 100, LineAttributes: NullID, FillAttributes: NullID}
	case TypeOutputMeter:
		return &OutputMeter{Width: 100, NeedleColour: 8, BorderColour: 0, ArcAndTickColour: 0, NumberOfTicks: 5, EndAngle: 90, MaxValue: 100, VariableReference: NullID}
	case TypeOutputLinearBarGraph:
		return &OutputLinearBarGraph{Width: 40, Height: 100, Colour: 8, TargetLineColour: 0, MaxValue: 100, VariableReference: NullID, TargetValueVariableReference: NullID}
	case TypeOutputArchedBarGraph:
		return &OutputArchedBarGraph{Width: 100, Height: 100, Colour: 8, TargetLineColour: 0, EndAngle: 90, BarGraphWidth: 20, MaxValue: 100, VariableReference: NullID, TargetValueVariableReference: NullID}
	case TypePictureGraphic:
		return &PictureGraphic{Width: 100, Format: PictureFormat8Bit}
	case TypeNumberVariable:
		return &NumberVariable{}
	case TypeStringVariable:
		return &StringVariable{}
	case TypeFontAttributes:
		return &FontAttributes{FontColour: 0, FontSize: 8}
	case TypeLineAttributes:
		return &LineAttributes{LineColour: 0, LineWidth: 1, LineArt: 0xFFFF}
	case TypeFillAttributes:
		return &FillAttributes{FillType: 1, FillColour: 1, FillPattern: NullID}
	case TypeInputAttributes:
		return &InputAttributes{}
	case TypeObjectPointer:
		return &ObjectPointer{Value: NullID}
	case TypeMacro:
		return &Macro{}
	case TypeAuxiliaryFunctionType1:
		return &AuxiliaryFunctionType1{BackgroundColour: 1}
	case TypeAuxiliaryInputType1:
		return &AuxiliaryInputType1{BackgroundColour: 1}
	case TypeAuxiliaryFunctionType2:
		return &AuxiliaryFunctionType2{BackgroundColour: 1}
	case TypeAuxiliaryInputType2:
		return &AuxiliaryInputType2{BackgroundColour: 1}
	case TypeAuxiliaryControlDesignatorType2:
		return &AuxiliaryControlDesignatorType2{AuxiliaryObjectID: NullID}
	case TypeWindowMask:
		return &WindowMask{Width: 1, Height: 1, BackgroundColour: 1, Name: NullID, WindowTitle: NullID, WindowIcon: NullID}
	case TypeKeyGroup:
		return &KeyGroup{Name: NullID, KeyGroupIcon: NullID}
	case TypeGraphicsContext:
		return &GraphicsContext{ViewportWidth: 100, ViewportHeight: 100, CanvasWidth: 100, CanvasHeight: 100, ViewportZoom: 1, ForegroundColour: 0, BackgroundColour: 1, FontAttributes: NullID, LineAttributes: NullID, FillAttributes: NullID, Format: PictureFormat8Bit}
	case TypeExtendedInputAttributes:
		return &ExtendedInputAttributes{}
	case TypeColourMap:
		return &ColourMap{}
	case TypeObjectLabelReferenceList:
		return &ObjectLabelReferenceList{}
	case TypeExternalObjectDefinition:
		return &ExternalObjectDefinition{}
	case TypeExternalReferenceName:
		return &ExternalReferenceName{}
	case TypeExternalObjectPointer:
		return &ExternalObjectPointer{DefaultObjectID: NullID, ExternalReferenceNameID: NullID, ExternalObjectID: NullID}
	case TypeAnimation:
		return &Animation{Width: 100, Height: 100, RefreshInterval: 100, Enabled: true}
	case TypeColourPalette:
		return &ColourPalette{}
	case TypeGraphicData:
		return &GraphicData{}
	case TypeWorkingSetSpecialControls:
		return &WorkingSetSpecialControls{ColourMap: NullID, ColourPalette: NullID}
	case TypeScaledGraphic:
		return &ScaledGraphic{Width: 100, Height: 100, ScaleType: 1, Value: NullID}
	}
	return nil
}
