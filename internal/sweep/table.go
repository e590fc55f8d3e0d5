package sweep

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stencilbench/internal/bench"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	tableRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	tableFrameStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// Table renders a styled summary of sweep results for the terminal. The
// CSV file remains the machine-readable contract; this is for humans.
func Table(rows []bench.Result) string {
	var b strings.Builder

	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-8s %-5s %6s %6s %7s %12s %10s %12s",
		"backend", "prec", "N", "M", "iters", "runtime_ms", "mlups", "rel_error")))
	b.WriteString("\n")

	for _, r := range rows {
		b.WriteString(tableRowStyle.Render(fmt.Sprintf("%-8s %-5s %6d %6d %7d %12.3f %10.3f %12.4e",
			r.Backend, r.Precision, r.N, r.M, r.Iters, r.RuntimeMS, r.MLUPS, r.RelError)))
		b.WriteString("\n")
	}

	return tableFrameStyle.Render(strings.TrimRight(b.String(), "\n"))
}
