package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chriserin/rfrecord/internal/db"
)

var (
	wroteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skipStyle  = lipgloss.NewStyle().Faint(true)
	stepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	recStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func WroteLine(w io.Writer, path string, steps int) {
	fmt.Fprintf(w, "%s  %s (%d steps)\n", wroteStyle.Render("wrote"), path, steps)
}

func SkipLine(w io.Writer, line int, text string) {
	fmt.Fprintf(w, "%s   line %d: %s\n", skipStyle.Render("skip"), line, text)
}

func StepLine(w io.Writer, n int, statement string) {
	fmt.Fprintf(w, "%s  %3d  %s\n", stepStyle.Render("step"), n, statement)
}

func RecordingLine(w io.Writer, command []string) {
	fmt.Fprintf(w, "%s    %s\n", recStyle.Render("rec"), strings.Join(command, " "))
	fmt.Fprintln(w, "Perform your browser interactions in the opened window, then close it to finish.")
}

func SummaryLine(w io.Writer, actions, skipped int) {
	fmt.Fprintf(w, "converted %d actions, skipped %d lines\n", actions, skipped)
}

func RunHint(w io.Writer, path string) {
	fmt.Fprintf(w, "run it with:\n  robot %s\n", path)
}

// HistoryRow prints one conversion with columns padded to the given widths.
func HistoryRow(w io.Writer, c db.Conversion, nameWidth, sourceWidth int) {
	mode := "headed"
	if c.Headless {
		mode = "headless"
	}
	fmt.Fprintf(w, "%-4d  %-*s  %-*s  %-8s  %-8s  %3d steps  %s\n",
		c.ID, nameWidth, c.TestName, sourceWidth, c.Source, c.Browser, mode, c.ActionCount, c.OutputPath)
}
