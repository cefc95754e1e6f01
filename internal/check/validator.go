// Package check handles pool-wide validation.
package check

import (
	"fmt"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
	"github.com/isobus-tools/vtpool/internal/schema"
)

// Stable finding codes, surfaced verbatim in the CLI envelope.
const (
	CodeDanglingRef     = "DANGLING_REF"
	CodeNoWorkingSet    = "NO_WORKING_SET"
	CodeChildNotAllowed = "CHILD_NOT_ALLOWED"
	CodeEventNotAllowed = "EVENT_NOT_ALLOWED"
	CodeMacroUnbindable = "MACRO_ID_UNBINDABLE"
	CodeNotAMacro       = "MACRO_TARGET_NOT_MACRO"
)

// Issue represents a validation finding.
type Issue struct {
	Level IssueLevel
	Code  string
	// ObjectID is the object the finding is about; NullID for findings
	// about the pool as a whole.
	ObjectID object.ObjectID
	Message  string
}

// IssueLevel indicates the severity of an issue. Errors name pools a
// terminal would reject or render wrongly; warnings name constructs the
// terminal tolerates but ignores.
type IssueLevel int

const (
	LevelError IssueLevel = iota
	LevelWarning
)

func (l IssueLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Validator validates pools against the relationship and event tables of
// one VT version.
type Validator struct {
	version     object.VTVersion
	displayName func(object.Object) string
}

// NewValidator creates a validator. displayName labels objects in
// messages; nil falls back to "{id}: {type}".
func NewValidator(version object.VTVersion, displayName func(object.Object) string) *Validator {
	if displayName == nil {
		displayName = func(obj object.Object) string {
			return fmt.Sprintf("%s: %s", obj.GetID(), obj.Type())
		}
	}
	return &Validator{version: version, displayName: displayName}
}

// Version returns the VT version the validator checks against.
func (v *Validator) Version() object.VTVersion {
	return v.version
}

// ValidatePool walks every object and returns all findings. A pool with
// no findings returns an empty slice.
func (v *Validator) ValidatePool(p *pool.Pool) []Issue {
	var issues []Issue

	if _, ok := p.WorkingSet(); !ok {
		issues = append(issues, Issue{
			Level:    LevelWarning,
			Code:     CodeNoWorkingSet,
			ObjectID: object.NullID,
			Message:  "pool has no working set",
		})
	}

	for _, obj := range p.Objects() {
		issues = append(issues, v.validateObject(p, obj)...)
	}

	return issues
}

func (v *Validator) validateObject(p *pool.Pool, obj object.Object) []Issue {
	var issues []Issue
	label := v.displayName(obj)

	// Dangling references, deduped per target so an id listed twice is
	// reported once.
	seen := make(map[object.ObjectID]struct{})
	for _, ref := range obj.ReferencedIDs() {
		if _, done := seen[ref]; done {
			continue
		}
		seen[ref] = struct{}{}
		if !p.Has(ref) {
			issues = append(issues, Issue{
				Level:    LevelError,
				Code:     CodeDanglingRef,
				ObjectID: obj.GetID(),
				Message:  fmt.Sprintf("%q references missing object %s", label, ref),
			})
		}
	}

	// Parent/child relationships. Missing children were already reported
	// above, so only resolvable ones are checked against the tables.
	checked := make(map[object.ObjectID]struct{})
	for _, childID := range object.ChildIDs(obj) {
		if _, done := checked[childID]; done {
			continue
		}
		checked[childID] = struct{}{}
		child, ok := p.Get(childID)
		if !ok {
			continue
		}
		if !schema.AllowsChild(obj.Type(), child.Type(), v.version) {
			issues = append(issues, Issue{
				Level:    LevelError,
				Code:     CodeChildNotAllowed,
				ObjectID: obj.GetID(),
				Message: fmt.Sprintf("%q cannot hold a %s child (object %s) at %s",
					label, child.Type(), child.GetID(), v.version),
			})
		}
	}

	// Label graphics have their own allow list. The labeled object and
	// the string variable columns may reference any type.
	if list, ok := obj.(*object.ObjectLabelReferenceList); ok {
		for _, l := range list.Labels {
			graphic, ok := p.Get(l.GraphicRepresentation)
			if !ok {
				continue
			}
			if !schema.AllowsLabelGraphic(graphic.Type(), v.version) {
				issues = append(issues, Issue{
					Level:    LevelError,
					Code:     CodeChildNotAllowed,
					ObjectID: obj.GetID(),
					Message: fmt.Sprintf("%q cannot use a %s (object %s) as a label graphic at %s",
						label, graphic.Type(), graphic.GetID(), v.version),
				})
			}
		}
	}

	// Macro bindings: the event must be one the host type can emit, and
	// the 8-bit target id must name a Macro object. Missing targets are
	// covered by the dangling pass.
	for _, m := range object.Macros(obj) {
		if !schema.AllowsEvent(obj.Type(), m.Event) {
			issues = append(issues, Issue{
				Level:    LevelWarning,
				Code:     CodeEventNotAllowed,
				ObjectID: obj.GetID(),
				Message:  fmt.Sprintf("%q binds a macro to %s, which never fires on a %s", label, m.Event, obj.Type()),
			})
		}
		if target, ok := p.Get(object.ObjectID(m.MacroID)); ok && target.Type() != object.TypeMacro {
			issues = append(issues, Issue{
				Level:    LevelError,
				Code:     CodeNotAMacro,
				ObjectID: obj.GetID(),
				Message:  fmt.Sprintf("%q binds %s to object %d, which is a %s, not a Macro", label, m.Event, m.MacroID, target.Type()),
			})
		}
	}

	// Macro ids above 255 cannot appear in any event binding.
	if obj.Type() == object.TypeMacro && obj.GetID() > 255 {
		issues = append(issues, Issue{
			Level:    LevelWarning,
			Code:     CodeMacroUnbindable,
			ObjectID: obj.GetID(),
			Message:  fmt.Sprintf("macro %s cannot be bound to events; bindings carry 8-bit ids", obj.GetID()),
		})
	}

	return issues
}

// Counts tallies issues by severity.
func Counts(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		if issue.Level == LevelError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}
