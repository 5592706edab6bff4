// Package tui provides the terminal output for scan runs: styled status
// lines, warnings on stderr, a progress bar over files, and the final
// scan report.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
)

// Colors (Swiss minimal)
var (
	accent  = lipgloss.Color("#FF0000")
	muted   = lipgloss.Color("#666666")
	success = lipgloss.Color("#00CC66")
	warning = lipgloss.Color("#FFAA00")
	white   = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(white)
	accentStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	successStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
)

// PrintHeader prints the tool banner.
func PrintHeader(version string) {
	fmt.Println()
	fmt.Println(titleStyle.Render("  LOGSIFT") + mutedStyle.Render(" v"+version))
	fmt.Println(mutedStyle.Render("  Log error categorizer and report generator"))
	fmt.Println()
}

// Warn prints a non-fatal diagnostic to stderr. Warnings never affect the
// exit status.
func Warn(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, warnStyle.Render("[WARN] "+fmt.Sprintf(format, args...)))
}

// Errorf prints a fatal diagnostic to stderr.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, accentStyle.Render("[ERRO] "+fmt.Sprintf(format, args...)))
}

// ScanReport holds the figures printed after a completed run.
type ScanReport struct {
	FilesScanned int
	FilesSkipped int
	Categories   int
	Occurrences  int
	Duration     time.Duration
	Artifacts    []string
}

// PrintScanReport prints the final report after a scan.
func PrintScanReport(report *ScanReport) {
	fmt.Println()
	fmt.Println(successStyle.Render("  ✓ SCAN COMPLETE"))
	fmt.Println()
	fmt.Printf("  %s %s", mutedStyle.Render("Files:"), titleStyle.Render(fmt.Sprintf("%d", report.FilesScanned)))
	if report.FilesSkipped > 0 {
		fmt.Printf(" %s", warnStyle.Render(fmt.Sprintf("(%d skipped)", report.FilesSkipped)))
	}
	fmt.Println()
	fmt.Printf("  %s %s\n", mutedStyle.Render("Categories:"), titleStyle.Render(fmt.Sprintf("%d", report.Categories)))
	fmt.Printf("  %s %s\n", mutedStyle.Render("Occurrences:"), titleStyle.Render(formatNumber(int64(report.Occurrences))))
	if report.Duration > 0 {
		fmt.Printf("  %s %s\n", mutedStyle.Render("Time:"), titleStyle.Render(formatDuration(report.Duration)))
	}

	if len(report.Artifacts) > 0 {
		fmt.Println()
		for _, path := range report.Artifacts {
			fmt.Printf("  %s %s\n", mutedStyle.Render("Wrote:"), path)
		}
	}
	fmt.Println()
}

// ShowProgress creates a progress bar over the input files.
func ShowProgress(total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(false),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// ClearLine clears the current line.
func ClearLine() {
	fmt.Print("\r\033[K")
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}

func formatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}
