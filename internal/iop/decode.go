package iop

import "github.com/isobus-tools/vtpool/internal/object"

// decodeBody reads the type-specific part of an object. The caller has
// already consumed the id and type code and checks r.err afterwards, so the
// per-type readers lean on the reader's sticky error and return whatever
// partial object they built.
func decodeBody(r *reader, t object.ObjectType) object.Object {
	switch t {
	case object.TypeWorkingSet:
		o := &object.WorkingSet{}
		o.BackgroundColour = r.u8()
		o.Selectable = r.bool8()
		o.ActiveMask = r.id()
		nChildren := int(r.u8())
		nMacros := int(r.u8())
		nLanguages := int(r.u8())
		o.Children = r.refs(nChildren)
		o.Macros = r.macros(nMacros)
		for i := 0; i < nLanguages && r.err == nil; i++ {
			o.Languages = append(o.Languages, r.str(2))
		}
		return o

	case object.TypeDataMask:
		o := &object.DataMask{}
		o.BackgroundColour = r.u8()
		o.SoftKeyMask = r.id()
		nChildren := int(r.u8())
		nMacros := int(r.u8())
		o.Children = r.refs(nChildren)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeAlarmMask:
		o := &object.AlarmMask{}
		o.BackgroundColour = r.u8()
		o.SoftKeyMask = r.id()
		o.Priority = r.u8()
		o.AcousticSignal = r.u8()
		nChildren := int(r.u8())
		nMacros := int(r.u8())
		o.Children = r.refs(nChildren)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeContainer:
		o := &object.Container{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.Hidden = r.bool8()
		nChildren := int(r.u8())
		nMacros := int(r.u8())
		o.Children = r.refs(nChildren)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeSoftKeyMask:
		o := &object.SoftKeyMask{}
		o.BackgroundColour = r.u8()
		nKeys := int(r.u8())
		nMacros := int(r.u8())
		o.Keys = r.ids(nKeys)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeKey:
		o := &object.Key{}
		o.BackgroundColour = r.u8()
		o.KeyCode = r.u8()
		nChildren := int(r.u8())
		nMacros := int(r.u8())
		o.Children = r.refs(nChildren)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeButton:
		o := &object.Button{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.BackgroundColour = r.u8()
		o.BorderColour = r.u8()
		o.KeyCode = r.u8()
		o.Options = r.u8()
		nChildren := int(r.u8())
		nMacros := int(r.u8())
		o.Children = r.refs(nChildren)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeInputBoolean:
		o := &object.InputBoolean{}
		o.BackgroundColour = r.u8()
		o.Width = r.u16()
		o.ForegroundColour = r.id()
		o.VariableReference = r.id()
		o.Value = r.bool8()
		o.Enabled = r.bool8()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeInputString:
		o := &object.InputString{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.BackgroundColour = r.u8()
		o.FontAttributes = r.id()
		o.InputAttributes = r.id()
		o.Options = r.u8()
		o.VariableReference = r.id()
		o.Justification = r.u8()
		o.Value = r.str(int(r.u8()))
		o.Enabled = r.bool8()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeInputNumber:
		o := &object.InputNumber{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.BackgroundColour = r.u8()
		o.FontAttributes = r.id()
		o.Options = r.u8()
		o.VariableReference = r.id()
		o.Value = r.u32()
		o.MinValue = r.u32()
		o.MaxValue = r.u32()
		o.Offset = r.i32()
		o.Scale = r.f32()
		o.NumberOfDecimals = r.u8()
		o.Format = r.u8()
		o.Justification = r.u8()
		o.Options2 = r.u8()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeInputList:
		o := &object.InputList{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.VariableReference = r.id()
		o.Value = r.u8()
		nItems := int(r.u8())
		o.Options = r.u8()
		nMacros := int(r.u8())
		o.Items = r.ids(nItems)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputString:
		o := &object.OutputString{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.BackgroundColour = r.u8()
		o.FontAttributes = r.id()
		o.Options = r.u8()
		o.VariableReference = r.id()
		o.Justification = r.u8()
		o.Value = r.str(int(r.u16()))
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputNumber:
		o := &object.OutputNumber{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.BackgroundColour = r.u8()
		o.FontAttributes = r.id()
		o.Options = r.u8()
		o.VariableReference = r.id()
		o.Value = r.u32()
		o.Offset = r.i32()
		o.Scale = r.f32()
		o.NumberOfDecimals = r.u8()
		o.Format = r.u8()
		o.Justification = r.u8()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputLine:
		o := &object.OutputLine{}
		o.LineAttributes = r.id()
		o.Width = r.u16()
		o.Height = r.u16()
		o.LineDirection = r.u8()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputRectangle:
		o := &object.OutputRectangle{}
		o.LineAttributes = r.id()
		o.Width = r.u16()
		o.Height = r.u16()
		o.LineSuppression = r.u8()
		o.FillAttributes = r.id()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputEllipse:
		o := &object.OutputEllipse{}
		o.LineAttributes = r.id()
		o.Width = r.u16()
		o.Height = r.u16()
		o.EllipseType = r.u8()
		o.StartAngle = r.u8()
		o.EndAngle = r.u8()
		o.FillAttributes = r.id()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputPolygon:
		o := &object.OutputPolygon{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.LineAttributes = r.id()
		o.FillAttributes = r.id()
		o.PolygonType = r.u8()
		nPoints := int(r.u8())
		nMacros := int(r.u8())
		for i := 0; i < nPoints && r.err == nil; i++ {
			pt := object.Point{X: r.i16(), Y: r.i16()}
			o.Points = append(o.Points, pt)
		}
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputMeter:
		o := &object.OutputMeter{}
		o.Width = r.u16()
		o.NeedleColour = r.u8()
		o.BorderColour = r.u8()
		o.ArcAndTickColour = r.u8()
		o.Options = r.u8()
		o.NumberOfTicks = r.u8()
		o.StartAngle = r.u8()
		o.EndAngle = r.u8()
		o.MinValue = r.u16()
		o.MaxValue = r.u16()
		o.VariableReference = r.id()
		o.Value = r.u16()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputLinearBarGraph:
		o := &object.OutputLinearBarGraph{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.Colour = r.u8()
		o.TargetLineColour = r.u8()
		o.Options = r.u8()
		o.NumberOfTicks = r.u8()
		o.MinValue = r.u16()
		o.MaxValue = r.u16()
		o.VariableReference = r.id()
		o.Value = r.u16()
		o.TargetValueVariableReference = r.id()
		o.TargetValue = r.u16()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeOutputArchedBarGraph:
		o := &object.OutputArchedBarGraph{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.Colour = r.u8()
		o.TargetLineColour = r.u8()
		o.Options = r.u8()
		o.StartAngle = r.u8()
		o.EndAngle = r.u8()
		o.BarGraphWidth = r.u16()
		o.MinValue = r.u16()
		o.MaxValue = r.u16()
		o.VariableReference = r.id()
		o.Value = r.u16()
		o.TargetValueVariableReference = r.id()
		o.TargetValue = r.u16()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypePictureGraphic:
		o := &object.PictureGraphic{}
		o.Width = r.u16()
		o.ActualWidth = r.u16()
		o.ActualHeight = r.u16()
		o.Format = r.u8()
		o.Options = r.u8()
		o.TransparencyColour = r.u8()
		nData := int(r.u32())
		nMacros := int(r.u8())
		o.Data = r.bytes(nData)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeNumberVariable:
		return &object.NumberVariable{Value: r.u32()}

	case object.TypeStringVariable:
		return &object.StringVariable{Value: r.str(int(r.u16()))}

	case object.TypeFontAttributes:
		o := &object.FontAttributes{}
		o.FontColour = r.u8()
		o.FontSize = r.u8()
		o.FontType = r.u8()
		o.FontStyle = r.u8()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeLineAttributes:
		o := &object.LineAttributes{}
		o.LineColour = r.u8()
		o.LineWidth = r.u8()
		o.LineArt = r.u16()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeFillAttributes:
		o := &object.FillAttributes{}
		o.FillType = r.u8()
		o.FillColour = r.u8()
		o.FillPattern = r.id()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeInputAttributes:
		o := &object.InputAttributes{}
		o.ValidationType = r.u8()
		o.ValidationString = r.str(int(r.u8()))
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeObjectPointer:
		return &object.ObjectPointer{Value: r.id()}

	case object.TypeMacro:
		return &object.Macro{Commands: r.bytes(int(r.u16()))}

	case object.TypeAuxiliaryFunctionType1:
		o := &object.AuxiliaryFunctionType1{}
		o.BackgroundColour = r.u8()
		o.FunctionType = r.u8()
		o.Children = r.refs(int(r.u8()))
		return o

	case object.TypeAuxiliaryInputType1:
		o := &object.AuxiliaryInputType1{}
		o.BackgroundColour = r.u8()
		o.FunctionType = r.u8()
		o.InputID = r.u8()
		o.Children = r.refs(int(r.u8()))
		return o

	case object.TypeAuxiliaryFunctionType2:
		o := &object.AuxiliaryFunctionType2{}
		o.BackgroundColour = r.u8()
		o.FunctionAttributes = r.u8()
		o.Children = r.refs(int(r.u8()))
		return o

	case object.TypeAuxiliaryInputType2:
		o := &object.AuxiliaryInputType2{}
		o.BackgroundColour = r.u8()
		o.FunctionAttributes = r.u8()
		o.Children = r.refs(int(r.u8()))
		return o

	case object.TypeAuxiliaryControlDesignatorType2:
		o := &object.AuxiliaryControlDesignatorType2{}
		o.PointerType = r.u8()
		o.AuxiliaryObjectID = r.id()
		return o

	case object.TypeWindowMask:
		o := &object.WindowMask{}
		o.Width = r.u8()
		o.Height = r.u8()
		o.WindowType = r.u8()
		o.BackgroundColour = r.u8()
		o.Options = r.u8()
		o.Name = r.id()
		o.WindowTitle = r.id()
		o.WindowIcon = r.id()
		nObjects := int(r.u8())
		nMacros := int(r.u8())
		o.Objects = r.ids(nObjects)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeKeyGroup:
		o := &object.KeyGroup{}
		o.Options = r.u8()
		o.Name = r.id()
		o.KeyGroupIcon = r.id()
		nKeys := int(r.u8())
		nMacros := int(r.u8())
		o.Keys = r.ids(nKeys)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeGraphicsContext:
		o := &object.GraphicsContext{}
		o.ViewportX = r.i16()
		o.ViewportY = r.i16()
		o.ViewportWidth = r.u16()
		o.ViewportHeight = r.u16()
		o.CanvasWidth = r.u16()
		o.CanvasHeight = r.u16()
		o.ViewportZoom = r.f32()
		o.CursorX = r.i16()
		o.CursorY = r.i16()
		o.ForegroundColour = r.u8()
		o.BackgroundColour = r.u8()
		o.FontAttributes = r.id()
		o.LineAttributes = r.id()
		o.FillAttributes = r.id()
		o.Format = r.u8()
		o.Options = r.u8()
		o.TransparencyColour = r.u8()
		return o

	case object.TypeOutputList:
		o := &object.OutputList{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.VariableReference = r.id()
		o.Value = r.u8()
		nItems := int(r.u8())
		nMacros := int(r.u8())
		o.Items = r.ids(nItems)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeExtendedInputAttributes:
		o := &object.ExtendedInputAttributes{}
		o.ValidationType = r.u8()
		nPlanes := int(r.u8())
		for i := 0; i < nPlanes && r.err == nil; i++ {
			plane := object.CodePlane{Number: r.u8()}
			nRanges := int(r.u16())
			for j := 0; j < nRanges && r.err == nil; j++ {
				plane.Ranges = append(plane.Ranges, object.CharacterRange{
					First: r.u16(),
					Last:  r.u16(),
				})
			}
			o.CodePlanes = append(o.CodePlanes, plane)
		}
		return o

	case object.TypeColourMap:
		return &object.ColourMap{Indexes: r.bytes(int(r.u16()))}

	case object.TypeObjectLabelReferenceList:
		o := &object.ObjectLabelReferenceList{}
		nLabels := int(r.u16())
		for i := 0; i < nLabels && r.err == nil; i++ {
			o.Labels = append(o.Labels, object.ObjectLabel{
				ObjectID:                r.id(),
				StringVariableReference: r.id(),
				FontType:                r.u8(),
				GraphicRepresentation:   r.id(),
			})
		}
		return o

	case object.TypeExternalObjectDefinition:
		o := &object.ExternalObjectDefinition{}
		o.Options = r.u8()
		o.Name = r.u64()
		o.Objects = r.ids(int(r.u8()))
		return o

	case object.TypeExternalReferenceName:
		o := &object.ExternalReferenceName{}
		o.Options = r.u8()
		o.Name = r.u64()
		return o

	case object.TypeExternalObjectPointer:
		o := &object.ExternalObjectPointer{}
		o.DefaultObjectID = r.id()
		o.ExternalReferenceNameID = r.id()
		o.ExternalObjectID = r.id()
		return o

	case object.TypeAnimation:
		o := &object.Animation{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.RefreshInterval = r.u16()
		o.Value = r.u8()
		o.Enabled = r.bool8()
		o.FirstChildIndex = r.u8()
		o.LastChildIndex = r.u8()
		o.DefaultChildIndex = r.u8()
		o.Options = r.u8()
		nChildren := int(r.u8())
		nMacros := int(r.u8())
		o.Children = r.refs(nChildren)
		o.Macros = r.macros(nMacros)
		return o

	case object.TypeColourPalette:
		o := &object.ColourPalette{}
		o.Options = r.u16()
		nColours := int(r.u16())
		for i := 0; i < nColours && r.err == nil; i++ {
			o.Colours = append(o.Colours, object.PaletteColour{
				Red:      r.u8(),
				Green:    r.u8(),
				Blue:     r.u8(),
				Reserved: r.u8(),
			})
		}
		return o

	case object.TypeGraphicData:
		o := &object.GraphicData{}
		o.Format = r.u8()
		o.Data = r.bytes(int(r.u32()))
		return o

	case object.TypeWorkingSetSpecialControls:
		o := &object.WorkingSetSpecialControls{}
		o.ColourMap = r.id()
		o.ColourPalette = r.id()
		return o

	case object.TypeScaledGraphic:
		o := &object.ScaledGraphic{}
		o.Width = r.u16()
		o.Height = r.u16()
		o.ScaleType = r.u8()
		o.Options = r.u8()
		o.Value = r.id()
		nMacros := int(r.u8())
		o.Macros = r.macros(nMacros)
		return o
	}

	// Decode checked the type code against the known set already.
	panic("unreachable object type " + t.String())
}
