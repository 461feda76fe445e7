package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bgricker/pipesim/internal/report"
	"github.com/charmbracelet/lipgloss"
)

var (
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	gray  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const ruleWidth = 80

// PrettyRenderer renders pipeline output in a human-friendly format.
type PrettyRenderer struct {
	out io.Writer
}

// NewPretty creates a PrettyRenderer writing to the provided writer.
func NewPretty(out io.Writer) *PrettyRenderer {
	return &PrettyRenderer{out: out}
}

// RenderBanner prints the opening banner of a run. A non-empty subtitle
// is appended to the title line.
func (p *PrettyRenderer) RenderBanner(subtitle string) error {
	title := "PIPELINE SIMULATOR"
	if subtitle != "" {
		title += " - " + subtitle
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n%s\n", rule())
	fmt.Fprintf(&buf, "%s\n", cyan.Render(title))
	fmt.Fprintf(&buf, "%s\n\n", rule())
	_, err := buf.WriteTo(p.out)
	return err
}

// RenderPlan lists the stages a run would execute, in order.
func (p *PrettyRenderer) RenderPlan(stages []report.StageResult) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Pipeline stages:\n")
	for i, st := range stages {
		fmt.Fprintf(&buf, "  %d. %s\n", i+1, st.Name)
	}
	_, err := buf.WriteTo(p.out)
	return err
}

// RenderResults prints the per-stage table, the overall verdict, and on
// a fully green run the contents of the deployment directory.
func (p *PrettyRenderer) RenderResults(results []report.StageResult, summary report.Summary, deployDir string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n%s\n", rule())
	fmt.Fprintf(&buf, "PIPELINE EXECUTION SUMMARY\n")
	fmt.Fprintf(&buf, "%s\n", rule())

	for _, res := range results {
		fmt.Fprintf(&buf, "%-30s %s %s\n", res.Name, statusMarker(res.Status), gray.Render("("+formatDuration(res.Duration)+")"))
		if res.Status == report.StatusFailed && res.Detail != "" {
			fmt.Fprintf(&buf, "%s\n", gray.Render("  "+res.Detail))
		}
	}

	verdict := green.Render("✓ SUCCESS")
	if !summary.Success {
		verdict = red.Render("✗ FAILURE")
	}
	fmt.Fprintf(&buf, "\nOverall Status: %s\n", verdict)
	fmt.Fprintf(&buf, "%s\n", gray.Render(fmt.Sprintf("%d passed, %d failed (%s)", summary.Passed, summary.Failed, formatDuration(summary.Duration))))

	if summary.Success {
		fmt.Fprintf(&buf, "\nDeployment Directory: %s\n", deployDir)
		fmt.Fprintf(&buf, "\nFiles in deployment:\n")
		if err := writeTree(&buf, deployDir); err != nil {
			return err
		}
	}
	fmt.Fprintf(&buf, "\n%s\n\n", rule())

	_, err := buf.WriteTo(p.out)
	return err
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}

// statusMarker styles the whole glyph-and-word unit so assertions and
// alignment are unaffected by the escape sequences around it.
func statusMarker(status report.Status) string {
	switch status {
	case report.StatusPassed:
		return green.Render("✓ PASSED")
	case report.StatusFailed:
		return red.Render("✗ FAILED")
	case report.StatusRunning:
		return cyan.Render("● RUNNING")
	default:
		return gray.Render(string(status))
	}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Truncate(time.Millisecond).String()
}
