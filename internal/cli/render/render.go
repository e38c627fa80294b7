// Package render formats tracker data for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/scoring"
)

const barWidth = 20

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	badgeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(24)
	lockedBadgeStyle = badgeStyle.
				BorderForeground(lipgloss.Color("238")).
				Foreground(lipgloss.Color("240"))
)

// Title renders a section heading
func Title(s string) string {
	return titleStyle.Render(s)
}

// Muted renders secondary text
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Warning renders a hint the user should act on
func Warning(s string) string {
	return warnStyle.Render(s)
}

// Success renders a confirmation line
func Success(s string) string {
	return okStyle.Render("✓ " + s)
}

// Bar draws value out of max as a fixed-width bar colored by tier.
func Bar(value, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := value * width / max
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	pct := value * 100 / max
	color := lipgloss.Color(scoring.TierFor(pct).Color())
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

// Score prints the total, level and per-category breakdown with tips.
func Score(w io.Writer, s models.ScoreData) {
	color := lipgloss.Color(scoring.TierFor(s.Total).Color())
	total := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d", s.Total))
	fmt.Fprintf(w, "%s %s/100  %s\n", Title("Wellness score:"), total, LevelLabel(s.Level))
	fmt.Fprintf(w, "%s\n\n", Bar(s.Total, 100, barWidth*2))

	for _, c := range scoring.Categories {
		v := c.Value(s.Breakdown)
		fmt.Fprintf(w, "  %s %-14s %s %2d/%-2d\n", c.Icon, c.Title, Bar(v, c.Max, barWidth), v, c.Max)
		if v < c.Max {
			fmt.Fprintf(w, "     %s\n", Muted("Tip: "+c.Improvement))
		}
	}
}

// ScoreDelta describes the change from a previous score
func ScoreDelta(prev *models.ScoreData, cur models.ScoreData) string {
	if prev == nil {
		return ""
	}
	d := cur.Total - prev.Total
	switch {
	case d > 0:
		return okStyle.Render(fmt.Sprintf("▲ %d", d))
	case d < 0:
		return warnStyle.Render(fmt.Sprintf("▼ %d", -d))
	default:
		return Muted("no change")
	}
}

// LevelLabel capitalizes a level for display
func LevelLabel(l models.Level) string {
	s := string(l)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Badge renders one badge card. Locked badges are dimmed.
func Badge(b models.Badge) string {
	if b.UnlockedAt == nil {
		return lockedBadgeStyle.Render(fmt.Sprintf("🔒 %s\n%s", b.Title, b.Description))
	}
	return badgeStyle.Render(fmt.Sprintf("%s %s\n%s\n%s", b.Icon, b.Title, b.Description,
		Muted("Unlocked "+b.UnlockedAt.Format(constants.DateFormat))))
}

// BadgeGrid lays badges out in rows of perRow cards.
func BadgeGrid(bs []models.Badge, perRow int) string {
	if perRow <= 0 {
		perRow = 3
	}
	var rows []string
	for i := 0; i < len(bs); i += perRow {
		end := i + perRow
		if end > len(bs) {
			end = len(bs)
		}
		cards := make([]string, 0, end-i)
		for _, b := range bs[i:end] {
			cards = append(cards, Badge(b))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// BadgeLine is the compact one-line form used in command output
func BadgeLine(b models.Badge) string {
	return fmt.Sprintf("%s %s: %s", b.Icon, b.Title, b.Description)
}

// Challenge prints one catalog entry with the user's progress, if any.
func Challenge(w io.Writer, c models.Challenge, uc *models.UserChallenge) {
	diff := lipgloss.NewStyle().Foreground(lipgloss.Color(challenges.DifficultyColor(c.Difficulty))).Render(string(c.Difficulty))
	fmt.Fprintf(w, "%s %s  [%s]  %s\n", challenges.CategoryIcon(c.Category), Title(c.Title), diff, Muted(c.ID))
	fmt.Fprintf(w, "   %d days · %s · %d participants\n", c.Duration, c.DailyGoal, c.Participants)
	if uc == nil {
		return
	}
	status := fmt.Sprintf("day %d/%d, streak %d", challenges.CurrentDay(*uc, c), c.Duration, uc.Streak)
	if uc.Completed {
		status = okStyle.Render("completed")
	}
	fmt.Fprintf(w, "   %s %d%%  %s\n", Bar(challenges.ProgressPercent(*uc), 100, barWidth), challenges.ProgressPercent(*uc), status)
}

// Days draws a challenge calendar, one cell per day.
func Days(days []challenges.DayStatus) string {
	cells := make([]string, len(days))
	for i, d := range days {
		switch d {
		case challenges.DayCompleted:
			cells[i] = okStyle.Render("■")
		case challenges.DayMissed:
			cells[i] = warnStyle.Render("■")
		case challenges.DayCurrent:
			cells[i] = titleStyle.Render("□")
		default:
			cells[i] = mutedStyle.Render("·")
		}
	}
	var b strings.Builder
	for i, c := range cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		} else if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c)
	}
	return b.String()
}

// Since formats how long ago t was in coarse units.
func Since(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
