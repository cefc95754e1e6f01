package check

import (
	"strings"
	"testing"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

func mustPool(t *testing.T, objs ...object.Object) *pool.Pool {
	t.Helper()
	p, err := pool.FromObjects(objs...)
	if err != nil {
		t.Fatalf("FromObjects: %v", err)
	}
	return p
}

// withCode returns the issues carrying the given code.
func withCode(issues []Issue, code string) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Code == code {
			out = append(out, issue)
		}
	}
	return out
}

func TestValidateCleanPool(t *testing.T) {
	p := mustPool(t,
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: 4000},
		&object.SoftKeyMask{ID: 4000, Keys: []object.ObjectID{5000}},
		&object.Key{ID: 5000},
	)

	issues := NewValidator(object.Version3, nil).ValidatePool(p)
	if len(issues) != 0 {
		t.Fatalf("ValidatePool returned %d issues, want none:\n%v", len(issues), issues)
	}
}

func TestValidateNoWorkingSet(t *testing.T) {
	p := mustPool(t, &object.NumberVariable{ID: 21000, Value: 40})

	issues := NewValidator(object.Version3, nil).ValidatePool(p)
	if len(issues) != 1 {
		t.Fatalf("ValidatePool returned %d issues, want 1: %v", len(issues), issues)
	}
	got := issues[0]
	if got.Code != CodeNoWorkingSet || got.Level != LevelWarning {
		t.Errorf("issue = %+v, want %s warning", got, CodeNoWorkingSet)
	}
	if got.ObjectID != object.NullID {
		t.Errorf("ObjectID = %s, want the null id for pool-level findings", got.ObjectID)
	}
}

func TestValidateDanglingRefs(t *testing.T) {
	t.Run("missing soft key mask", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: 4000},
		)

		issues := NewValidator(object.Version3, nil).ValidatePool(p)
		dangling := withCode(issues, CodeDanglingRef)
		if len(dangling) != 1 {
			t.Fatalf("got %d dangling findings, want 1: %v", len(dangling), issues)
		}
		if dangling[0].Level != LevelError {
			t.Errorf("level = %s, want ERROR", dangling[0].Level)
		}
		if dangling[0].ObjectID != 1000 {
			t.Errorf("ObjectID = %s, want 1000", dangling[0].ObjectID)
		}
		if !strings.Contains(dangling[0].Message, "4000") {
			t.Errorf("message %q does not name the missing id", dangling[0].Message)
		}
	})

	t.Run("repeated target reported once", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
			&object.Container{ID: 3000, Children: []object.ObjectRef{
				{ID: 9999}, {ID: 9999},
			}},
		)

		issues := NewValidator(object.Version3, nil).ValidatePool(p)
		if dangling := withCode(issues, CodeDanglingRef); len(dangling) != 1 {
			t.Errorf("got %d dangling findings, want 1: %v", len(dangling), dangling)
		}
	})
}

func TestValidateChildRules(t *testing.T) {
	t.Run("key under data mask", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID,
				Children: []object.ObjectRef{{ID: 5000}}},
			&object.Key{ID: 5000},
		)

		issues := NewValidator(object.Version3, nil).ValidatePool(p)
		bad := withCode(issues, CodeChildNotAllowed)
		if len(bad) != 1 {
			t.Fatalf("got %d relationship findings, want 1: %v", len(bad), issues)
		}
		if bad[0].Level != LevelError || bad[0].ObjectID != 1000 {
			t.Errorf("issue = %+v, want error on object 1000", bad[0])
		}
	})

	t.Run("version gates the tables", func(t *testing.T) {
		// An output list under a working set arrived with version 4.
		objs := []object.Object{
			&object.WorkingSet{ID: 0, ActiveMask: 1000,
				Children: []object.ObjectRef{{ID: 12000}}},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
			&object.OutputList{ID: 12000, VariableReference: object.NullID},
		}

		v3 := NewValidator(object.Version3, nil).ValidatePool(mustPool(t, objs...))
		if len(withCode(v3, CodeChildNotAllowed)) != 1 {
			t.Errorf("VT3: got findings %v, want one relationship error", v3)
		}

		v4 := NewValidator(object.Version4, nil).ValidatePool(mustPool(t, objs...))
		if len(withCode(v4, CodeChildNotAllowed)) != 0 {
			t.Errorf("VT4: unexpected relationship findings: %v", v4)
		}
	})

	t.Run("missing child not double reported", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID,
				Children: []object.ObjectRef{{ID: 7777}}},
		)

		issues := NewValidator(object.Version3, nil).ValidatePool(p)
		if n := len(withCode(issues, CodeDanglingRef)); n != 1 {
			t.Errorf("got %d dangling findings, want 1", n)
		}
		if n := len(withCode(issues, CodeChildNotAllowed)); n != 0 {
			t.Errorf("missing child also produced a relationship finding")
		}
	})

	t.Run("pointer target is not table checked", func(t *testing.T) {
		// The pointer's parents constrain what it may reach; the pointer
		// itself has no child rule, so its target passes untyped.
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID,
				Children: []object.ObjectRef{{ID: 27000}}},
			&object.ObjectPointer{ID: 27000, Value: 5000},
			&object.Key{ID: 5000},
		)

		issues := NewValidator(object.Version3, nil).ValidatePool(p)
		if len(issues) != 0 {
			t.Errorf("ValidatePool returned %v, want none", issues)
		}
	})
}

func TestValidateLabelGraphics(t *testing.T) {
	t.Run("disallowed graphic type", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
			&object.ObjectLabelReferenceList{ID: 40000, Labels: []object.ObjectLabel{
				{ObjectID: 1000, StringVariableReference: object.NullID, GraphicRepresentation: 5000},
			}},
			&object.Key{ID: 5000},
		)

		issues := NewValidator(object.Version4, nil).ValidatePool(p)
		bad := withCode(issues, CodeChildNotAllowed)
		if len(bad) != 1 {
			t.Fatalf("got %d relationship findings, want 1: %v", len(bad), issues)
		}
		if bad[0].Level != LevelError || bad[0].ObjectID != 40000 {
			t.Errorf("issue = %+v, want error on object 40000", bad[0])
		}
		if !strings.Contains(bad[0].Message, "Key") {
			t.Errorf("message %q does not name the graphic type", bad[0].Message)
		}
	})

	t.Run("output field accepted, labeled object untyped", func(t *testing.T) {
		// The first column may point at any object; only the graphic
		// column is held to the label allow list.
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
			&object.ObjectLabelReferenceList{ID: 40000, Labels: []object.ObjectLabel{
				{ObjectID: 21000, StringVariableReference: object.NullID, GraphicRepresentation: 11000},
			}},
			&object.NumberVariable{ID: 21000},
			&object.OutputString{ID: 11000, FontAttributes: object.NullID,
				VariableReference: object.NullID},
		)

		issues := NewValidator(object.Version4, nil).ValidatePool(p)
		if len(issues) != 0 {
			t.Errorf("ValidatePool returned %v, want none", issues)
		}
	})

	t.Run("missing graphic left to the dangling pass", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
			&object.ObjectLabelReferenceList{ID: 40000, Labels: []object.ObjectLabel{
				{ObjectID: 1000, StringVariableReference: object.NullID, GraphicRepresentation: 9999},
			}},
		)

		issues := NewValidator(object.Version4, nil).ValidatePool(p)
		if n := len(withCode(issues, CodeDanglingRef)); n != 1 {
			t.Errorf("got %d dangling findings, want 1: %v", n, issues)
		}
		if n := len(withCode(issues, CodeChildNotAllowed)); n != 0 {
			t.Errorf("missing graphic also produced a relationship finding")
		}
	})
}

func TestValidateMacros(t *testing.T) {
	t.Run("impossible event", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID,
				Macros: []object.MacroRef{{Event: object.OnKeyPress, MacroID: 200}}},
			&object.Macro{ID: 200},
		)

		issues := NewValidator(object.Version3, nil).ValidatePool(p)
		bad := withCode(issues, CodeEventNotAllowed)
		if len(bad) != 1 {
			t.Fatalf("got %d event findings, want 1: %v", len(bad), issues)
		}
		if bad[0].Level != LevelWarning {
			t.Errorf("level = %s, want WARN", bad[0].Level)
		}
		if !strings.Contains(bad[0].Message, "OnKeyPress") {
			t.Errorf("message %q does not name the event", bad[0].Message)
		}
	})

	t.Run("target is not a macro", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID,
				Macros: []object.MacroRef{{Event: object.OnShow, MacroID: 150}}},
			&object.NumberVariable{ID: 150},
		)

		issues := NewValidator(object.Version3, nil).ValidatePool(p)
		bad := withCode(issues, CodeNotAMacro)
		if len(bad) != 1 {
			t.Fatalf("got %d target findings, want 1: %v", len(bad), issues)
		}
		if bad[0].Level != LevelError || bad[0].ObjectID != 1000 {
			t.Errorf("issue = %+v, want error on object 1000", bad[0])
		}
	})

	t.Run("missing target is a dangling ref", func(t *testing.T) {
		p := mustPool(t,
			&object.WorkingSet{ID: 0, ActiveMask: 1000},
			&object.DataMask{ID: 1000, SoftKeyMask: object.NullID,
				Macros: []object.MacroRef{{Event: object.OnShow, MacroID: 210}}},
		)

		issues := NewValidator(object.Version3, nil).ValidatePool(p)
		if n := len(withCode(issues, CodeDanglingRef)); n != 1 {
			t.Errorf("got %d dangling findings, want 1: %v", n, issues)
		}
		if n := len(withCode(issues, CodeNotAMacro)); n != 0 {
			t.Errorf("missing target also produced a target-type finding")
		}
	})
}

func TestValidateMacroIDRange(t *testing.T) {
	p := mustPool(t,
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: object.NullID},
		&object.Macro{ID: 255},
		&object.Macro{ID: 300},
	)

	issues := NewValidator(object.Version3, nil).ValidatePool(p)
	bad := withCode(issues, CodeMacroUnbindable)
	if len(bad) != 1 {
		t.Fatalf("got %d range findings, want 1: %v", len(bad), issues)
	}
	if bad[0].ObjectID != 300 {
		t.Errorf("ObjectID = %s, want 300", bad[0].ObjectID)
	}
	if bad[0].Level != LevelWarning {
		t.Errorf("level = %s, want WARN", bad[0].Level)
	}
}

func TestValidatorUsesDisplayNames(t *testing.T) {
	p := mustPool(t,
		&object.WorkingSet{ID: 0, ActiveMask: 1000},
		&object.DataMask{ID: 1000, SoftKeyMask: 4000},
	)

	v := NewValidator(object.Version3, func(obj object.Object) string {
		if obj.GetID() == 1000 {
			return "MainScreen"
		}
		return obj.GetID().String()
	})

	issues := withCode(v.ValidatePool(p), CodeDanglingRef)
	if len(issues) != 1 {
		t.Fatalf("got %d dangling findings, want 1", len(issues))
	}
	if !strings.Contains(issues[0].Message, "MainScreen") {
		t.Errorf("message %q does not use the display name", issues[0].Message)
	}
}

func TestCounts(t *testing.T) {
	issues := []Issue{
		{Level: LevelError},
		{Level: LevelWarning},
		{Level: LevelError},
	}
	errs, warns := Counts(issues)
	if errs != 2 || warns != 1 {
		t.Errorf("Counts = (%d, %d), want (2, 1)", errs, warns)
	}
}

func TestIssueLevelString(t *testing.T) {
	if got := LevelError.String(); got != "ERROR" {
		t.Errorf("LevelError = %q", got)
	}
	if got := LevelWarning.String(); got != "WARN" {
		t.Errorf("LevelWarning = %q", got)
	}
}
