package object

import "fmt"

// Event is a macro trigger condition. The codes are the 8-bit event ids
// used in macro bindings on the wire.
type Event uint8

const (
	OnActivate               Event = 1
	OnDeactivate             Event = 2
	OnShow                   Event = 3
	OnHide                   Event = 4
	OnEnable                 Event = 5
	OnDisable                Event = 6
	OnChangeActiveMask       Event = 7
	OnChangeSoftKeyMask      Event = 8
	OnChangeAttribute        Event = 9
	OnChangeBackgroundColour Event = 10
	OnChangeFontAttributes   Event = 11
	OnChangeLineAttributes   Event = 12
	OnChangeFillAttributes   Event = 13
	OnChangeChildLocation    Event = 14
	OnChangeSize             Event = 15
	OnChangeValue            Event = 16
	OnChangePriority         Event = 17
	OnChangeEndPoint         Event = 18
	OnInputFieldSelection    Event = 19
	OnInputFieldDeselection  Event = 20
	OnESC                    Event = 21
	OnEntryOfValue           Event = 22
	OnEntryOfNewValue        Event = 23
	OnKeyPress               Event = 24
	OnKeyRelease             Event = 25
	OnChangeChildPosition    Event = 26
	OnPointingEventPress     Event = 27
	OnPointingEventRelease   Event = 28
)

var eventNames = map[Event]string{
	OnActivate:               "OnActivate",
	OnDeactivate:             "OnDeactivate",
	OnShow:                   "OnShow",
	OnHide:                   "OnHide",
	OnEnable:                 "OnEnable",
	OnDisable:                "OnDisable",
	OnChangeActiveMask:       "OnChangeActiveMask",
	OnChangeSoftKeyMask:      "OnChangeSoftKeyMask",
	OnChangeAttribute:        "OnChangeAttribute",
	OnChangeBackgroundColour: "OnChangeBackgroundColour",
	OnChangeFontAttributes:   "OnChangeFontAttributes",
	OnChangeLineAttributes:   "OnChangeLineAttributes",
	OnChangeFillAttributes:   "OnChangeFillAttributes",
	OnChangeChildLocation:    "OnChangeChildLocation",
	OnChangeSize:             "OnChangeSize",
	OnChangeValue:            "OnChangeValue",
	OnChangePriority:         "OnChangePriority",
	OnChangeEndPoint:         "OnChangeEndPoint",
	OnInputFieldSelection:    "OnInputFieldSelection",
	OnInputFieldDeselection:  "OnInputFieldDeselection",
	OnESC:                    "OnESC",
	OnEntryOfValue:           "OnEntryOfValue",
	OnEntryOfNewValue:        "OnEntryOfNewValue",
	OnKeyPress:               "OnKeyPress",
	OnKeyRelease:             "OnKeyRelease",
	OnChangeChildPosition:    "OnChangeChildPosition",
	OnPointingEventPress:     "OnPointingEventPress",
	OnPointingEventRelease:   "OnPointingEventRelease",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// ParseEvent validates a raw wire event id.
func ParseEvent(v uint8) (Event, bool) {
	e := Event(v)
	_, ok := eventNames[e]
	return e, ok
}

// Events returns every event in wire-code order.
func Events() []Event {
	out := make([]Event, 0, len(eventNames))
	for e := OnActivate; e <= OnPointingEventRelease; e++ {
		out = append(out, e)
	}
	return out
}
