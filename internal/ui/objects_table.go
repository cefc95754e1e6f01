package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Alignment represents column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// ColumnDef defines a column in an ObjectsTable.
type ColumnDef struct {
	Name       string         // Header name (used for layout lookups, not displayed)
	WidthRatio float64        // Proportion of available width (0.0-1.0), 0 means fixed width
	MinWidth   int            // Minimum width in characters
	MaxWidth   int            // Maximum width (0 = no limit)
	Align      Alignment      // Text alignment
	Style      lipgloss.Style // Style to apply to cells in this column
}

// Row represents a single row in an ObjectsTable.
type Row struct {
	Cells []string // Cell values for each column
}

// ObjectsTable renders object listings as aligned columns sized to the
// terminal.
type ObjectsTable struct {
	display *DisplayContext
	columns []ColumnDef
	rows    []Row
}

// Standard column definitions for object listings.
var (
	// ColID is the object id column (fixed width, right-aligned, accented).
	ColID = ColumnDef{
		Name:     "id",
		MinWidth: 5,
		MaxWidth: 6,
		Align:    AlignRight,
		Style:    Accent,
	}

	// ColType is the object type column.
	ColType = ColumnDef{
		Name:       "type",
		WidthRatio: 0.30,
		MinWidth:   12,
		MaxWidth:   26,
		Align:      AlignLeft,
	}

	// ColName is the display name column (flexible width).
	ColName = ColumnDef{
		Name:       "name",
		WidthRatio: 0.45,
		MinWidth:   16,
		MaxWidth:   60,
		Align:      AlignLeft,
	}

	// ColDetail is the secondary info column (children, referenced ids).
	ColDetail = ColumnDef{
		Name:       "detail",
		WidthRatio: 0.25,
		MinWidth:   10,
		MaxWidth:   40,
		Align:      AlignLeft,
		Style:      Muted,
	}
)

// Standard layouts.
var (
	// ObjectsLayout is used for object listings: [id, type, name, detail]
	ObjectsLayout = []ColumnDef{ColID, ColType, ColName, ColDetail}

	// ObjectsNarrowLayout drops the detail column on narrow terminals.
	ObjectsNarrowLayout = []ColumnDef{ColID, ColType, ColName}
)

// NewObjectsTable creates an ObjectsTable with the given display context and
// column layout.
func NewObjectsTable(display *DisplayContext, columns []ColumnDef) *ObjectsTable {
	return &ObjectsTable{
		display: display,
		columns: columns,
		rows:    make([]Row, 0),
	}
}

// AddRow adds a row to the table.
func (t *ObjectsTable) AddRow(cells ...string) {
	t.rows = append(t.rows, Row{Cells: cells})
}

// ColumnWidth returns the calculated width for a column by name.
// Callers can pre-truncate cell content to the actual available width.
func (t *ObjectsTable) ColumnWidth(columnName string) int {
	widths := t.calculateWidths()
	for i, col := range t.columns {
		if col.Name == columnName {
			return widths[i]
		}
	}
	return 40 // fallback
}

// calculateWidths computes column widths based on terminal size and column definitions.
func (t *ObjectsTable) calculateWidths() []int {
	widths := make([]int, len(t.columns))

	// First pass: calculate fixed widths and total ratio
	var totalRatio float64
	var fixedWidth int
	const columnPadding = 2 // padding between columns

	for i, col := range t.columns {
		if col.WidthRatio == 0 {
			// Fixed-width column: use MinWidth or calculate from content
			widths[i] = col.MinWidth
			if col.MaxWidth > 0 && widths[i] > col.MaxWidth {
				widths[i] = col.MaxWidth
			}
			fixedWidth += widths[i]
		} else {
			totalRatio += col.WidthRatio
		}
	}

	// Calculate available space for flexible columns
	totalPadding := (len(t.columns) - 1) * columnPadding
	leftMargin := 2 // indent for aesthetic
	available := t.display.TermWidth - fixedWidth - totalPadding - leftMargin

	if available < 0 {
		available = 0
	}

	// Second pass: distribute available space by ratio
	for i, col := range t.columns {
		if col.WidthRatio > 0 {
			ratio := col.WidthRatio / totalRatio
			width := int(float64(available) * ratio)

			if width < col.MinWidth {
				width = col.MinWidth
			}
			if col.MaxWidth > 0 && width > col.MaxWidth {
				width = col.MaxWidth
			}

			widths[i] = width
		}
	}

	return widths
}

// Render generates the table output as a string.
func (t *ObjectsTable) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := t.calculateWidths()

	tableRows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		tableRow := make([]string, len(t.columns))
		for j := range t.columns {
			if j < len(row.Cells) {
				tableRow[j] = row.Cells[j]
			}
		}
		tableRows[i] = tableRow
	}

	// Borderless layout; object listings read better without row separators.
	tbl := table.New().
		Border(lipgloss.Border{}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col >= len(t.columns) {
				return lipgloss.NewStyle()
			}

			colDef := t.columns[col]
			style := colDef.Style
			if style.Value() == "" {
				style = lipgloss.NewStyle()
			}

			style = style.Width(widths[col])

			switch colDef.Align {
			case AlignRight:
				style = style.Align(lipgloss.Right)
			case AlignCenter:
				style = style.Align(lipgloss.Center)
			default:
				style = style.Align(lipgloss.Left)
			}

			// Add right padding except for last column
			if col < len(t.columns)-1 {
				style = style.PaddingRight(2)
			}

			return style
		}).
		Rows(tableRows...)

	return tbl.Render()
}

// TruncateWithEllipsis truncates a string to maxLen, adding ellipsis if needed.
// It tries to break at word boundaries.
func TruncateWithEllipsis(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}

	// Try to truncate at a word boundary
	truncated := s[:maxLen-3]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}
