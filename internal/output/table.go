package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: ColorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		CellStyle:   lipgloss.NewStyle(),
	}
}

// Table represents a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// MemberRow is one row of a member inventory.
type MemberRow struct {
	Kind   string
	Name   string
	CRC32  string
	Size   string
	Target string
	Status string
}

// RenderMemberTable renders archive members. Empty Target and Status columns
// are omitted.
func RenderMemberTable(rows []MemberRow) string {
	withStatus := false
	for _, r := range rows {
		if r.Status != "" || r.Target != "" {
			withStatus = true
			break
		}
	}

	if !withStatus {
		t := NewTable("KIND", "ENTRY", "CRC32", "SIZE")
		for _, r := range rows {
			t.Row(r.Kind, r.Name, r.CRC32, r.Size)
		}
		return t.String()
	}

	t := NewTable("KIND", "ENTRY", "CRC32", "TARGET", "STATUS")
	for _, r := range rows {
		t.Row(r.Kind, r.Name, r.CRC32, r.Target, StatusStyle(r.Status).Render(r.Status))
	}
	return t.String()
}
