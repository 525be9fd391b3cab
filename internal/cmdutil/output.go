package cmdutil

import (
	"fmt"
	"io"

	"github.com/eardeploy/cli/internal/output"
)

// Member kinds shown in reports.
const (
	KindLibrary = "library"
	KindWeb     = "web"
)

// MemberResult is the outcome of deploying or planning one member.
type MemberResult struct {
	Kind   string
	Name   string
	Target string
	Status string
}

// WroteStatus maps an extraction outcome to its report status.
func WroteStatus(wrote bool) string {
	if wrote {
		return output.StatusWritten
	}
	return output.StatusSkipped
}

// WriteMemberLines writes one status line per result.
func WriteMemberLines(w io.Writer, results []MemberResult) {
	for _, r := range results {
		output.Println(w, "  "+output.FormatMemberLine(r.Kind, r.Name, r.Status))
	}
}

// CountStatus returns how many results carry status.
func CountStatus(results []MemberResult, status string) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// DeploySummary renders the closing line of a deployment.
func DeploySummary(archive string, results []MemberResult) string {
	return output.FormatCheckmark(fmt.Sprintf("Deployed %s: %d written, %d skipped",
		archive,
		CountStatus(results, output.StatusWritten),
		CountStatus(results, output.StatusSkipped)))
}

// MemberRows converts results into inventory table rows.
func MemberRows(results []MemberResult) []output.MemberRow {
	rows := make([]output.MemberRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, output.MemberRow{
			Kind:   r.Kind,
			Name:   r.Name,
			Target: r.Target,
			Status: r.Status,
		})
	}
	return rows
}
