package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/abbsmeta/internal/core/domain"
)

// Brand Colors.
var (
	Iris  = lipgloss.Color("#8B5CF6")
	Slate = lipgloss.Color("#667085")
	Green = lipgloss.Color("#22A06B")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(Green)
	labelStyle = lipgloss.NewStyle().Foreground(Slate).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(Iris)
)

// renderReport formats the summary of a finished scan.
func renderReport(tree string, r domain.ScanReport) string {
	var b strings.Builder
	title := fmt.Sprintf("✓ scanned %s in %s", tree, r.Duration.Round(time.Millisecond))
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')

	rows := []struct {
		label string
		value int
	}{
		{"tasks", r.Tasks},
		{"unchanged", r.Skipped},
		{"discarded", r.Discarded},
		{"packages", r.Packages},
		{"spec entries", r.Specs},
		{"dependencies", r.Dependencies},
	}
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(fmt.Sprint(row.value)))
		b.WriteByte('\n')
	}
	return b.String()
}
