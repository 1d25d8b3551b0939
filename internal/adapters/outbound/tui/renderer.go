package tui

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/fabric"
)

// ── Warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
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

	verdictColors = map[string]lipgloss.Color{
		domain.LabelThisIsIt:   success,
		domain.LabelSmartPick:  warning,
		domain.LabelNotThisOne: danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

var titleCaser = cases.Title(language.English)

// label turns identifiers such as "upper_arm" or "smart_pick" into
// "Upper Arm" and "Smart Pick".
func label(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// RenderScore formats a scoring result as a terminal score card. title is
// the garment's name and may be empty.
func RenderScore(r *domain.ScoreResult, title string) string {
	var b strings.Builder

	// ── Header ──
	color := verdictColor(r.Verdict)
	subtitle := "Garment Fit Score"
	if title != "" {
		subtitle = title
	}
	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%.1f / 10", r.OverallScore))
	verdictStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(label(r.Verdict))
	meta := dimStyle.Render(fmt.Sprintf("%s · %s · confidence %.2f", label(string(r.Category)), label(string(r.BodyShape)), r.Confidence))

	b.WriteString(boxStyle.Render(headerStyle.Render("stydev") + "\n" + dimStyle.Render(subtitle) + "\n\n" +
		scoreStyled + "  " + verdictStyled + "\n" + meta))
	b.WriteString("\n\n")

	// ── Principles ──
	b.WriteString("  " + titleStyle.Render("Principles") + "\n\n")
	for _, p := range sortedPrinciples(r.PrincipleScores) {
		renderPrinciple(&b, p)
	}

	// ── Goals ──
	if len(r.GoalVerdicts) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Goals") + "\n\n")
		for _, gv := range r.GoalVerdicts {
			fmt.Fprintf(&b, "    %s %s %s\n", goalIcon(gv.Verdict), padRight(label(string(gv.Goal)), 24),
				dimStyle.Render(fmt.Sprintf("%+.2f", gv.Score)))
		}
	}

	// ── Zones ──
	if len(r.ZoneScores) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Zones") + "\n\n")
		zones := make([]string, 0, len(r.ZoneScores))
		for z := range r.ZoneScores {
			zones = append(zones, z)
		}
		slices.Sort(zones)
		for _, z := range zones {
			zs := r.ZoneScores[z]
			line := fmt.Sprintf("    %s %s", padRight(label(z), 14), signedBar(zs.Score, 16))
			if len(zs.Flags) > 0 {
				line += "  " + failStyle.Render(strings.Join(zs.Flags, ", "))
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Gates, context, fixes ──
	if len(r.Exceptions) > 0 {
		b.WriteString("  " + titleStyle.Render("Fabric gates") + "\n")
		for _, e := range r.Exceptions {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render(e.ExceptionID), dimStyle.Render(e.Reason))
		}
		b.WriteString("\n")
	}
	if len(r.ContextAdjustments) > 0 {
		b.WriteString("  " + titleStyle.Render("Context") + "\n")
		for _, a := range r.ContextAdjustments {
			fmt.Fprintf(&b, "    %s %s\n", infoTagStyle.Render(padRight(a.Key, 24)), signed(a.Delta))
		}
		b.WriteString("\n")
	}
	if len(r.Fixes) > 0 {
		b.WriteString("  " + titleStyle.Render("Suggested fixes") + "\n")
		for _, f := range r.Fixes {
			fmt.Fprintf(&b, "    %d. %s %s\n", f.Priority, f.WhatToChange,
				passStyle.Render(fmt.Sprintf("+%.2f", f.ExpectedImprovement)))
		}
		b.WriteString("\n")
	}
	if len(r.StylingNotes) > 0 {
		b.WriteString("  " + titleStyle.Render("Layering") + "\n")
		for _, n := range r.StylingNotes {
			b.WriteString("    " + dimStyle.Render("· "+n) + "\n")
		}
		b.WriteString("\n")
	}
	if len(r.Exceptions)+len(r.ContextAdjustments)+len(r.Fixes)+len(r.StylingNotes) == 0 {
		b.WriteString("  " + passStyle.Render("Nothing to change.") + "\n\n")
	}
	return b.String()
}

// sortedPrinciples orders applicable principles by impact, strongest first,
// then the inactive ones by name.
func sortedPrinciples(in []domain.PrincipleResult) []domain.PrincipleResult {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b domain.PrincipleResult) int {
		if a.Applicable != b.Applicable {
			if a.Applicable {
				return -1
			}
			return 1
		}
		if a.Applicable {
			if c := cmp.Compare(math.Abs(b.Score), math.Abs(a.Score)); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func renderPrinciple(b *strings.Builder, p domain.PrincipleResult) {
	name := padRight(p.Name, 22)
	if !p.Applicable {
		fmt.Fprintf(b, "    %s %s %s\n", skipStyle.Render("○"), skipStyle.Render(name), skipStyle.Render("n/a"))
		return
	}

	var icon string
	switch {
	case p.Score >= 0.15:
		icon = passStyle.Render("●")
	case p.Score > -0.15:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}
	fmt.Fprintf(b, "    %s %s %s %s  %s\n", icon, name, signedBar(p.Score, 16), signed(p.Score),
		faintStyle.Render(truncate(p.Reasoning, 48)))
}

// signedBar draws a -1..+1 score as a bar that fills left of the centre
// for negatives and right of it for positives.
func signedBar(score float64, width int) string {
	half := width / 2
	n := int(math.Round(math.Min(1, math.Abs(score)) * float64(half)))
	left := strings.Repeat("░", half)
	right := strings.Repeat("░", half)
	switch {
	case score < 0:
		left = strings.Repeat("░", half-n) + failStyle.Render(strings.Repeat("█", n))
	case score > 0:
		right = passStyle.Render(strings.Repeat("█", n)) + strings.Repeat("░", half-n)
	}
	return faintStyle.Render(left) + dimStyle.Render("│") + faintStyle.Render(right)
}

func signed(v float64) string {
	s := fmt.Sprintf("%+.2f", v)
	switch {
	case v > 0:
		return passStyle.Render(s)
	case v < 0:
		return failStyle.Render(s)
	}
	return dimStyle.Render(s)
}

func goalIcon(verdict string) string {
	switch verdict {
	case domain.VerdictPass:
		return passStyle.Render("✓")
	case domain.VerdictFail:
		return failStyle.Render("✗")
	default:
		return warnStyle.Render("~")
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats scoring history for terminal output.
func RenderHistory(entries []domain.ScoreEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No score history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Score History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}
		title := e.Title
		if title == "" {
			title = label(string(e.Category))
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(verdictColor(e.Verdict)).
			Render(fmt.Sprintf("%4.1f/10", e.OverallScore))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(ts),
			scoreStyled,
			padRight(truncate(title, 28), 28),
			faintStyle.Render(label(e.Verdict)),
		)

		if i > 0 {
			diff := domain.Round(e.OverallScore-entries[i-1].OverallScore, 1)
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.1f", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.1f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// RenderCling formats per-zone cling assessments.
func RenderCling(fabricName string, zones map[string]fabric.ClingResult) string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Cling risk") + "  " + dimStyle.Render(fabricName) + "\n\n")

	names := make([]string, 0, len(zones))
	for z := range zones {
		names = append(names, z)
	}
	slices.Sort(names)
	for _, z := range names {
		c := zones[z]
		icon := passStyle.Render("●")
		if c.ExceedsThreshold {
			icon = failStyle.Render("●")
		}
		fmt.Fprintf(&b, "    %s %s %s  %s\n", icon, padRight(label(z), 12),
			dimStyle.Render(fmt.Sprintf("demand %5.1f%% / threshold %4.1f%%", c.StretchDemandPct, c.BaseThreshold)),
			faintStyle.Render(fmt.Sprintf("severity %.2f", c.Severity)))
	}
	return b.String()
}

func verdictColor(verdict string) lipgloss.Color {
	if c, ok := verdictColors[verdict]; ok {
		return c
	}
	return fg
}
