package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/observerdev/observer/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	critTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	highTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	medTagStyle   = lipgloss.NewStyle().Foreground(info)
	lowTagStyle   = lipgloss.NewStyle().Foreground(dim)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	ruleNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats the full analysis report for the terminal.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	grade := report.Grade()
	title := headerStyle.Render("observer")
	subtitle := dimStyle.Render("Project Health")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", report.Health))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Rules ──
	for _, r := range report.Summary.Results {
		renderRule(&b, r)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Buckets ──
	if len(report.Buckets) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n\n")
		return b.String()
	}

	for _, bucket := range report.Buckets {
		renderBucket(&b, bucket)
	}

	if report.Insights != nil {
		renderInsights(&b, report.Insights)
	}

	b.WriteString("\n")
	return b.String()
}

func renderRule(b *strings.Builder, r domain.ValidationResult) {
	var icon string
	switch r.Status {
	case domain.StatusPass:
		icon = passStyle.Render("●")
	case domain.StatusWarning:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	name := ruleNameStyle.Render(padRight(r.Rule, 26))
	bar := coloredBar(r.Score, 20)
	score := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(r.Score)).Render(fmt.Sprintf("%3d", r.Score))
	coverage := dimStyle.Render(fmt.Sprintf("%d/%d", r.Coverage.Passed, r.Coverage.Total))

	fmt.Fprintf(b, "  %s %s %s  %s %s\n", icon, name, bar, score, coverage)
}

func renderBucket(b *strings.Builder, bucket domain.Bucket) {
	count := dimStyle.Render(fmt.Sprintf("%d issues", bucket.Count))
	fmt.Fprintf(b, "  %s  %s\n", titleStyle.Render(bucket.Title), count)
	fmt.Fprintf(b, "  %s\n\n", faintStyle.Render(bucket.Description))

	for _, issue := range bucket.Issues {
		renderIssue(b, issue)
	}
	b.WriteString("\n")
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := severityTag(issue.Severity)
	loc := issue.File
	if issue.Line > 0 {
		loc = fmt.Sprintf("%s:%d", issue.File, issue.Line)
	}

	fmt.Fprintf(b, "    %s %s\n", tag, fileStyle.Render(loc))
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(issue.Message))
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render("→ "+issue.Suggestion))
	}
}

func renderInsights(b *strings.Builder, ins *domain.Insights) {
	if len(ins.Patterns) == 0 && len(ins.Hotspots) == 0 && len(ins.Recommendations) == 0 {
		return
	}

	b.WriteString("  " + separatorLine + "\n\n")
	b.WriteString("  " + titleStyle.Render("Insights") + "\n\n")

	for _, p := range ins.Patterns {
		fmt.Fprintf(b, "    %s %s\n", warnStyle.Render("▪"), dimStyle.Render(p))
	}
	for _, h := range ins.Hotspots {
		fmt.Fprintf(b, "    %s %s\n", failStyle.Render("▪"), dimStyle.Render(h))
	}
	for _, r := range ins.Recommendations {
		fmt.Fprintf(b, "    %s %s\n", passStyle.Render("▪"), dimStyle.Render(r))
	}
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityCritical:
		return critTagStyle.Render("crit ")
	case domain.SeverityHigh:
		return highTagStyle.Render("high ")
	case domain.SeverityMedium:
		return medTagStyle.Render("med  ")
	default:
		return lowTagStyle.Render("low  ")
	}
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats the snapshot history for terminal output.
func RenderHistory(entries []domain.SnapshotEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No snapshot history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Snapshot History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		totals := fmt.Sprintf("%3d total  %s %s %s",
			e.Total,
			failStyle.Render(fmt.Sprintf("%d", e.Blockers)),
			warnStyle.Render(fmt.Sprintf("%d", e.Structural)),
			dimStyle.Render(fmt.Sprintf("%d", e.Compliance)),
		)

		line := fmt.Sprintf("  %s  %s", dimStyle.Render(date), totals)
		switch {
		case e.Diff > 0:
			line += "  " + failStyle.Render(fmt.Sprintf("↑%d", e.Diff))
		case e.Diff < 0:
			line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -e.Diff))
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
