package schema

import (
	"github.com/isobus-tools/vtpool/internal/object"
)

// TypeSpec is the serializable form of one object type's rules, used by
// the schema dump command.
type TypeSpec struct {
	Code     uint8               `yaml:"code" json:"code"`
	Name     string              `yaml:"name" json:"name"`
	Children map[string][]string `yaml:"children,omitempty" json:"children,omitempty"`
	Events   []string            `yaml:"events,omitempty" json:"events,omitempty"`
}

// Dump returns the full relationship and event tables in wire-code
// order, one entry per object type.
func Dump() []TypeSpec {
	var specs []TypeSpec
	for _, t := range object.Types() {
		spec := TypeSpec{
			Code: uint8(t),
			Name: t.String(),
		}
		children := make(map[string][]string)
		for _, v := range object.Versions() {
			allowed := AllowedChildren(t, v)
			if len(allowed) == 0 {
				continue
			}
			names := make([]string, len(allowed))
			for i, c := range allowed {
				names[i] = c.String()
			}
			children[v.String()] = names
		}
		if len(children) > 0 {
			spec.Children = children
		}
		for _, e := range PossibleEvents(t) {
			spec.Events = append(spec.Events, e.String())
		}
		specs = append(specs, spec)
	}
	return specs
}
