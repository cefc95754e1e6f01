package iop

import (
	"fmt"

	"github.com/isobus-tools/vtpool/internal/object"
)

// encodeBody writes the type-specific part of an object. The id and type
// code header is written by the caller.
func encodeBody(w *writer, obj object.Object) {
	switch o := obj.(type) {
	case *object.WorkingSet:
		w.u8(o.BackgroundColour)
		w.bool8(o.Selectable)
		w.id(o.ActiveMask)
		w.count8(len(o.Children), "children")
		w.count8(len(o.Macros), "macros")
		w.count8(len(o.Languages), "languages")
		w.refs(o.Children)
		w.macros(o.Macros)
		for _, lang := range o.Languages {
			if len(lang) != 2 {
				w.fail(fmt.Errorf("language code %q is not two bytes", lang))
				return
			}
			w.raw([]byte(lang))
		}

	case *object.DataMask:
		w.u8(o.BackgroundColour)
		w.id(o.SoftKeyMask)
		w.count8(len(o.Children), "children")
		w.count8(len(o.Macros), "macros")
		w.refs(o.Children)
		w.macros(o.Macros)

	case *object.AlarmMask:
		w.u8(o.BackgroundColour)
		w.id(o.SoftKeyMask)
		w.u8(o.Priority)
		w.u8(o.AcousticSignal)
		w.count8(len(o.Children), "children")
		w.count8(len(o.Macros), "macros")
		w.refs(o.Children)
		w.macros(o.Macros)

	case *object.Container:
		w.u16(o.Width)
		w.u16(o.Height)
		w.bool8(o.Hidden)
		w.count8(len(o.Children), "children")
		w.count8(len(o.Macros), "macros")
		w.refs(o.Children)
		w.macros(o.Macros)

	case *object.SoftKeyMask:
		w.u8(o.BackgroundColour)
		w.count8(len(o.Keys), "keys")
		w.count8(len(o.Macros), "macros")
		w.ids(o.Keys)
		w.macros(o.Macros)

	case *object.Key:
		w.u8(o.BackgroundColour)
		w.u8(o.KeyCode)
		w.count8(len(o.Children), "children")
		w.count8(len(o.Macros), "macros")
		w.refs(o.Children)
		w.macros(o.Macros)

	case *object.Button:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.BackgroundColour)
		w.u8(o.BorderColour)
		w.u8(o.KeyCode)
		w.u8(o.Options)
		w.count8(len(o.Children), "children")
		w.count8(len(o.Macros), "macros")
		w.refs(o.Children)
		w.macros(o.Macros)

	case *object.InputBoolean:
		w.u8(o.BackgroundColour)
		w.u16(o.Width)
		w.id(o.ForegroundColour)
		w.id(o.VariableReference)
		w.bool8(o.Value)
		w.bool8(o.Enabled)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.InputString:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.BackgroundColour)
		w.id(o.FontAttributes)
		w.id(o.InputAttributes)
		w.u8(o.Options)
		w.id(o.VariableReference)
		w.u8(o.Justification)
		w.count8(len(o.Value), "value bytes")
		w.raw([]byte(o.Value))
		w.bool8(o.Enabled)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.InputNumber:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.BackgroundColour)
		w.id(o.FontAttributes)
		w.u8(o.Options)
		w.id(o.VariableReference)
		w.u32(o.Value)
		w.u32(o.MinValue)
		w.u32(o.MaxValue)
		w.i32(o.Offset)
		w.f32(o.Scale)
		w.u8(o.NumberOfDecimals)
		w.u8(o.Format)
		w.u8(o.Justification)
		w.u8(o.Options2)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.InputList:
		w.u16(o.Width)
		w.u16(o.Height)
		w.id(o.VariableReference)
		w.u8(o.Value)
		w.count8(len(o.Items), "items")
		w.u8(o.Options)
		w.count8(len(o.Macros), "macros")
		w.ids(o.Items)
		w.macros(o.Macros)

	case *object.OutputString:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.BackgroundColour)
		w.id(o.FontAttributes)
		w.u8(o.Options)
		w.id(o.VariableReference)
		w.u8(o.Justification)
		w.count16(len(o.Value), "value bytes")
		w.raw([]byte(o.Value))
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.OutputNumber:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.BackgroundColour)
		w.id(o.FontAttributes)
		w.u8(o.Options)
		w.id(o.VariableReference)
		w.u32(o.Value)
		w.i32(o.Offset)
		w.f32(o.Scale)
		w.u8(o.NumberOfDecimals)
		w.u8(o.Format)
		w.u8(o.Justification)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.OutputLine:
		w.id(o.LineAttributes)
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.LineDirection)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.OutputRectangle:
		w.id(o.LineAttributes)
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.LineSuppression)
		w.id(o.FillAttributes)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.OutputEllipse:
		w.id(o.LineAttributes)
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.EllipseType)
		w.u8(o.StartAngle)
		w.u8(o.EndAngle)
		w.id(o.FillAttributes)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.OutputPolygon:
		w.u16(o.Width)
		w.u16(o.Height)
		w.id(o.LineAttributes)
		w.id(o.FillAttributes)
		w.u8(o.PolygonType)
		w.count8(len(o.Points), "points")
		w.count8(len(o.Macros), "macros")
		for _, pt := range o.Points {
			w.i16(pt.X)
			w.i16(pt.Y)
		}
		w.macros(o.Macros)

	case *object.OutputMeter:
		w.u16(o.Width)
		w.u8(o.NeedleColour)
		w.u8(o.BorderColour)
		w.u8(o.ArcAndTickColour)
		w.u8(o.Options)
		w.u8(o.NumberOfTicks)
		w.u8(o.StartAngle)
		w.u8(o.EndAngle)
		w.u16(o.MinValue)
		w.u16(o.MaxValue)
		w.id(o.VariableReference)
		w.u16(o.Value)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.OutputLinearBarGraph:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.Colour)
		w.u8(o.TargetLineColour)
		w.u8(o.Options)
		w.u8(o.NumberOfTicks)
		w.u16(o.MinValue)
		w.u16(o.MaxValue)
		w.id(o.VariableReference)
		w.u16(o.Value)
		w.id(o.TargetValueVariableReference)
		w.u16(o.TargetValue)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.OutputArchedBarGraph:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.Colour)
		w.u8(o.TargetLineColour)
		w.u8(o.Options)
		w.u8(o.StartAngle)
		w.u8(o.EndAngle)
		w.u16(o.BarGraphWidth)
		w.u16(o.MinValue)
		w.u16(o.MaxValue)
		w.id(o.VariableReference)
		w.u16(o.Value)
		w.id(o.TargetValueVariableReference)
		w.u16(o.TargetValue)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.PictureGraphic:
		w.u16(o.Width)
		w.u16(o.ActualWidth)
		w.u16(o.ActualHeight)
		w.u8(o.Format)
		w.u8(o.Options)
		w.u8(o.TransparencyColour)
		w.count32(len(o.Data), "data bytes")
		w.count8(len(o.Macros), "macros")
		w.raw(o.Data)
		w.macros(o.Macros)

	case *object.NumberVariable:
		w.u32(o.Value)

	case *object.StringVariable:
		w.count16(len(o.Value), "value bytes")
		w.raw([]byte(o.Value))

	case *object.FontAttributes:
		w.u8(o.FontColour)
		w.u8(o.FontSize)
		w.u8(o.FontType)
		w.u8(o.FontStyle)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.LineAttributes:
		w.u8(o.LineColour)
		w.u8(o.LineWidth)
		w.u16(o.LineArt)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.FillAttributes:
		w.u8(o.FillType)
		w.u8(o.FillColour)
		w.id(o.FillPattern)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.InputAttributes:
		w.u8(o.ValidationType)
		w.count8(len(o.ValidationString), "validation bytes")
		w.raw([]byte(o.ValidationString))
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	case *object.ObjectPointer:
		w.id(o.Value)

	case *object.Macro:
		w.count16(len(o.Commands), "command bytes")
		w.raw(o.Commands)

	case *object.AuxiliaryFunctionType1:
		w.u8(o.BackgroundColour)
		w.u8(o.FunctionType)
		w.count8(len(o.Children), "children")
		w.refs(o.Children)

	case *object.AuxiliaryInputType1:
		w.u8(o.BackgroundColour)
		w.u8(o.FunctionType)
		w.u8(o.InputID)
		w.count8(len(o.Children), "children")
		w.refs(o.Children)

	case *object.AuxiliaryFunctionType2:
		w.u8(o.BackgroundColour)
		w.u8(o.FunctionAttributes)
		w.count8(len(o.Children), "children")
		w.refs(o.Children)

	case *object.AuxiliaryInputType2:
		w.u8(o.BackgroundColour)
		w.u8(o.FunctionAttributes)
		w.count8(len(o.Children), "children")
		w.refs(o.Children)

	case *object.AuxiliaryControlDesignatorType2:
		w.u8(o.PointerType)
		w.id(o.AuxiliaryObjectID)

	case *object.WindowMask:
		w.u8(o.Width)
		w.u8(o.Height)
		w.u8(o.WindowType)
		w.u8(o.BackgroundColour)
		w.u8(o.Options)
		w.id(o.Name)
		w.id(o.WindowTitle)
		w.id(o.WindowIcon)
		w.count8(len(o.Objects), "objects")
		w.count8(len(o.Macros), "macros")
		w.ids(o.Objects)
		w.macros(o.Macros)

	case *object.KeyGroup:
		w.u8(o.Options)
		w.id(o.Name)
		w.id(o.KeyGroupIcon)
		w.count8(len(o.Keys), "keys")
		w.count8(len(o.Macros), "macros")
		w.ids(o.Keys)
		w.macros(o.Macros)

	case *object.GraphicsContext:
		w.i16(o.ViewportX)
		w.i16(o.ViewportY)
		w.u16(o.ViewportWidth)
		w.u16(o.ViewportHeight)
		w.u16(o.CanvasWidth)
		w.u16(o.CanvasHeight)
		w.f32(o.ViewportZoom)
		w.i16(o.CursorX)
		w.i16(o.CursorY)
		w.u8(o.ForegroundColour)
		w.u8(o.BackgroundColour)
		w.id(o.FontAttributes)
		w.id(o.LineAttributes)
		w.id(o.FillAttributes)
		w.u8(o.Format)
		w.u8(o.Options)
		w.u8(o.TransparencyColour)

	case *object.OutputList:
		w.u16(o.Width)
		w.u16(o.Height)
		w.id(o.VariableReference)
		w.u8(o.Value)
		w.count8(len(o.Items), "items")
		w.count8(len(o.Macros), "macros")
		w.ids(o.Items)
		w.macros(o.Macros)

	case *object.ExtendedInputAttributes:
		w.u8(o.ValidationType)
		w.count8(len(o.CodePlanes), "code planes")
		for _, plane := range o.CodePlanes {
			w.u8(plane.Number)
			w.count16(len(plane.Ranges), "character ranges")
			for _, rg := range plane.Ranges {
				w.u16(rg.First)
				w.u16(rg.Last)
			}
		}

	case *object.ColourMap:
		w.count16(len(o.Indexes), "colour indexes")
		w.raw(o.Indexes)

	case *object.ObjectLabelReferenceList:
		w.count16(len(o.Labels), "labels")
		for _, l := range o.Labels {
			w.id(l.ObjectID)
			w.id(l.StringVariableReference)
			w.u8(l.FontType)
			w.id(l.GraphicRepresentation)
		}

	case *object.ExternalObjectDefinition:
		w.u8(o.Options)
		w.u64(o.Name)
		w.count8(len(o.Objects), "objects")
		w.ids(o.Objects)

	case *object.ExternalReferenceName:
		w.u8(o.Options)
		w.u64(o.Name)

	case *object.ExternalObjectPointer:
		w.id(o.DefaultObjectID)
		w.id(o.ExternalReferenceNameID)
		w.id(o.ExternalObjectID)

	case *object.Animation:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u16(o.RefreshInterval)
		w.u8(o.Value)
		w.bool8(o.Enabled)
		w.u8(o.FirstChildIndex)
		w.u8(o.LastChildIndex)
		w.u8(o.DefaultChildIndex)
		w.u8(o.Options)
		w.count8(len(o.Children), "children")
		w.count8(len(o.Macros), "macros")
		w.refs(o.Children)
		w.macros(o.Macros)

	case *object.ColourPalette:
		w.u16(o.Options)
		w.count16(len(o.Colours), "colours")
		for _, c := range o.Colours {
			w.u8(c.Red)
			w.u8(c.Green)
			w.u8(c.Blue)
			w.u8(c.Reserved)
		}

	case *object.GraphicData:
		w.u8(o.Format)
		w.count32(len(o.Data), "data bytes")
		w.raw(o.Data)

	case *object.WorkingSetSpecialControls:
		w.id(o.ColourMap)
		w.id(o.ColourPalette)

	case *object.ScaledGraphic:
		w.u16(o.Width)
		w.u16(o.Height)
		w.u8(o.ScaleType)
		w.u8(o.Options)
		w.id(o.Value)
		w.count8(len(o.Macros), "macros")
		w.macros(o.Macros)

	default:
		w.fail(fmt.Errorf("%w %d", ErrUnknownType, uint8(obj.Type())))
	}
}
