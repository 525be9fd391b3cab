package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
		wantDim  bool
	}{
		{name: "written returns green", status: StatusWritten, wantFG: ColorGreen},
		{name: "new returns green", status: StatusNew, wantFG: ColorGreen},
		{name: "changed returns yellow", status: StatusChanged, wantFG: ColorYellow},
		{name: "unchanged returns faint", status: StatusUnchanged, wantDim: true},
		{name: "skipped returns faint", status: StatusSkipped, wantDim: true},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatMemberLine(t *testing.T) {
	line := FormatMemberLine("lib", "commons.jar", StatusSkipped)
	assert.Contains(t, line, "commons.jar")
	assert.Contains(t, line, StatusSkipped)
	assert.Contains(t, line, "lib:")
}

func TestFormatMemberLine_LongNameKeepsGap(t *testing.T) {
	name := strings.Repeat("x", 80)
	line := FormatMemberLine("web", name, StatusWritten)
	assert.Contains(t, line, name+"  ")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("deployed"), "deployed")
	assert.Contains(t, FormatCheckmark("deployed"), "✔")
}
