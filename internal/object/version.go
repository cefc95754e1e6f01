package object

import "fmt"

// VTVersion is a virtual terminal specification version. Later versions
// admit strictly more parent/child relationships than earlier ones.
type VTVersion uint8

const (
	Version2 VTVersion = 2
	Version3 VTVersion = 3
	Version4 VTVersion = 4
	Version5 VTVersion = 5
	Version6 VTVersion = 6
)

// DefaultVersion is assumed when a pool does not state its version.
// Version 3 is the baseline the installed fleet supports.
const DefaultVersion = Version3

// AtLeast reports whether v is the given version or later.
func (v VTVersion) AtLeast(min VTVersion) bool { return v >= min }

func (v VTVersion) String() string { return fmt.Sprintf("VT%d", uint8(v)) }

// ParseVTVersion validates a numeric version.
func ParseVTVersion(n uint8) (VTVersion, error) {
	if n < uint8(Version2) || n > uint8(Version6) {
		return DefaultVersion, fmt.Errorf("unsupported VT version %d", n)
	}
	return VTVersion(n), nil
}

// Versions returns the supported versions in ascending order.
func Versions() []VTVersion {
	return []VTVersion{Version2, Version3, Version4, Version5, Version6}
}
