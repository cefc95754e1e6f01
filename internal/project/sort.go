package project

import (
	"fmt"
	"strings"

	"github.com/isobus-tools/vtpool/internal/object"
)

// SortKey selects an object ordering for list views.
type SortKey uint8

const (
	SortByType SortKey = iota
	SortByName
	SortByID
)

// ParseSortKey maps the user-facing key names.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(s) {
	case "type":
		return SortByType, nil
	case "name":
		return SortByName, nil
	case "id":
		return SortByID, nil
	}
	return 0, fmt.Errorf("unknown sort key %q (want type, name or id)", s)
}

func (k SortKey) String() string {
	switch k {
	case SortByType:
		return "type"
	case SortByName:
		return "name"
	case SortByID:
		return "id"
	}
	return fmt.Sprintf("SortKey(%d)", uint8(k))
}

// SortObjects reorders the staged pool by key. Ties keep their relative
// order. Object order is part of pool identity, so the reorder lands in
// history at the next commit. Name ordering compares display names
// case-insensitively.
func (p *Project) SortObjects(key SortKey) {
	switch key {
	case SortByType:
		p.staged.SortStableBy(func(a, b object.Object) bool {
			return uint8(a.Type()) < uint8(b.Type())
		})
	case SortByName:
		p.staged.SortStableBy(func(a, b object.Object) bool {
			return strings.ToLower(p.DisplayName(a)) < strings.ToLower(p.DisplayName(b))
		})
	case SortByID:
		p.staged.SortStableBy(func(a, b object.Object) bool {
			return a.GetID() < b.GetID()
		})
	}
}

// FilterObjects returns the staged objects whose display name contains
// query, case-insensitively. An empty query matches everything. The result
// for an empty query is the pool's own slice; callers must not modify it.
func (p *Project) FilterObjects(query string) []object.Object {
	objs := p.staged.Objects()
	if query == "" {
		return objs
	}
	q := strings.ToLower(query)
	var out []object.Object
	for _, obj := range objs {
		if strings.Contains(strings.ToLower(p.DisplayName(obj)), q) {
			out = append(out, obj)
		}
	}
	return out
}
