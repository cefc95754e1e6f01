// Package slugs provides filename slugification helpers used across vtpool.
//
// Project and pool files are frequently named after object display names
// ("Main Screen", "Engine RPM Gauge"), which need normalizing before they
// can serve as path components.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Name converts a display name to a safe lowercase file stem.
func Name(s string) string {
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	}
	return slugged
}

// ProjectFile derives a project filename from a display name.
// Falls back to "untitled" when the name slugs to nothing.
func ProjectFile(name string) string {
	return stem(name) + ".vtp"
}

// PoolFile derives a pool export filename from a display name.
func PoolFile(name string) string {
	return stem(name) + ".iop"
}

func stem(name string) string {
	s := Name(name)
	if s == "" {
		return "untitled"
	}
	return s
}
