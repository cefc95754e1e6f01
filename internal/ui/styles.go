package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA): Highlights, object ids, interactive elements
// - Muted (gray): Secondary info, counts
// - No colored success/error/warning - use unicode symbols only

const defaultAccentColor = "#A78BFA"

var (
	// Accent style for file paths, object ids, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccentColor))

	// Muted style for secondary info, hints, counts
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccentColor)).Bold(true)
)

// accentColor is the active accent, empty when accent styling is disabled.
var accentColor = defaultAccentColor

// ConfigureTheme applies a user-configured accent color to the shared styles.
// "none", "off" and "default" disable the accent; invalid values are ignored.
func ConfigureTheme(accent string) {
	switch strings.ToLower(strings.TrimSpace(accent)) {
	case "":
		return
	case "none", "off", "default":
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}

	color, ok := normalizeAccentColor(accent)
	if !ok {
		return
	}

	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color, or false when accents are disabled.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

// normalizeAccentColor validates and canonicalizes an accent color value.
// Accepts ANSI color codes ("0" to "255") and hex colors ("#RGB" or "#RRGGBB").
func normalizeAccentColor(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	switch strings.ToLower(trimmed) {
	case "none", "off", "default":
		return "", false
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return strconv.Itoa(n), true
	}

	if !strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	hex := strings.ToLower(strings.TrimPrefix(trimmed, "#"))
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for i := 0; i < len(hex); i++ {
			if !isHexDigit(hex[i]) {
				return "", false
			}
			expanded.WriteByte(hex[i])
			expanded.WriteByte(hex[i])
		}
		return "#" + expanded.String(), true
	case 6:
		for i := 0; i < len(hex); i++ {
			if !isHexDigit(hex[i]) {
				return "", false
			}
		}
		return "#" + hex, true
	default:
		return "", false
	}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f')
}
