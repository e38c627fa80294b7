package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/thrive/internal/cli/render"
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/scoring"
	"github.com/julianstephens/thrive/internal/tracker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = docStyle.Render(m.dashboard.View())
	case StateChallenges:
		content = docStyle.Render(m.challengeList.View())
	case StateBadges:
		content = docStyle.Render(m.badges.View())
	case StateProfile:
		content = docStyle.Render(m.profile.View())
	case StateEditHabits:
		content = docStyle.Render(m.form.View())
	case StateConfirmLeave:
		content = m.viewConfirmLeave()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var out []string
	for i, title := range tabs {
		if m.state == SessionState(i) {
			out = append(out, activeTabStyle.Render(title))
		} else {
			out = append(out, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render("✗ " + m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewConfirmLeave() string {
	return lipgloss.Place(m.width, m.height-chromeHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Leave %s and discard its progress?", m.leaveID)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func renderDashboard(d tracker.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Welcome back, %s\n\n", render.Title(d.Profile.Name))

	if d.Score == nil {
		b.WriteString("No score yet. Press 'e' to log your habits.\n")
	} else {
		render.Score(&b, *d.Score)
	}
	if d.Stale {
		msg := "Your habits haven't been updated in a day. Press 'e' to refresh your score."
		if d.LastUpdated != nil {
			msg = fmt.Sprintf("Habits last updated %s. Press 'e' to refresh your score.", render.Since(*d.LastUpdated, time.Now()))
		}
		fmt.Fprintf(&b, "\n%s\n", render.Warning(msg))
	}

	fmt.Fprintf(&b, "\n%s\n", render.Title("Active challenges"))
	if len(d.Active) == 0 {
		b.WriteString("  None. Join one from the Challenges tab.\n")
	}
	for _, e := range d.Active {
		uc := e.UserChallenge
		render.Challenge(&b, e.Challenge, &uc)
	}

	fmt.Fprintf(&b, "\n%s  streak %d · best %d\n", render.Title("Recent badges"), d.Profile.CurrentStreak, d.Profile.LongestStreak)
	if len(d.RecentBadges) == 0 {
		b.WriteString("  None yet.\n")
	}
	for _, badge := range d.RecentBadges {
		fmt.Fprintf(&b, "  %s\n", render.BadgeLine(badge))
	}
	return b.String()
}

func renderBadges(st tracker.ProfileStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/%d\n\n", render.Title("Badges earned:"), st.BadgesEarned, st.BadgesTotal)
	if len(st.Unlocked) > 0 {
		b.WriteString(render.BadgeGrid(st.Unlocked, 3))
		b.WriteString("\n\n")
	}
	if len(st.Locked) > 0 {
		fmt.Fprintf(&b, "%s\n", render.Title("Locked"))
		b.WriteString(render.BadgeGrid(st.Locked, 3))
		b.WriteString("\n")
	}
	return b.String()
}

func renderProfile(st tracker.ProfileStats) string {
	p := st.Profile
	var b strings.Builder
	fmt.Fprintln(&b, render.Title(p.Name))
	fmt.Fprintf(&b, "Member since %s (%d days)\n\n", p.JoinDate.Local().Format(constants.DateFormat), st.DaysSinceJoin)

	fmt.Fprintf(&b, "  %-22s %d\n", "Wellness score", p.TotalScore)
	fmt.Fprintf(&b, "  %-22s %s\n", "Level", render.LevelLabel(scoring.LevelFor(p.TotalScore)))
	fmt.Fprintf(&b, "  %-22s %d days\n", "Current streak", p.CurrentStreak)
	fmt.Fprintf(&b, "  %-22s %d days\n", "Longest streak", p.LongestStreak)
	fmt.Fprintf(&b, "  %-22s %d\n", "Completed challenges", p.CompletedChallenges)

	fmt.Fprintf(&b, "\n%s\n", render.Title("Badge collection"))
	for _, cc := range st.ByCategory {
		fmt.Fprintf(&b, "  %-10s %s %d/%d\n", cc.Category, render.Bar(cc.Unlocked, cc.Total, 10), cc.Unlocked, cc.Total)
	}

	fmt.Fprintf(&b, "\n%s\n", render.Title("Recent weeks"))
	if len(st.History) == 0 {
		b.WriteString("  No weekly logs yet. Press 'w' to record this week.\n")
	}
	for _, l := range st.History {
		fmt.Fprintf(&b, "  %s  %s %3d\n", l.Week, render.Bar(l.Score, 100, 20), l.Score)
	}
	return b.String()
}
