package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/thrive/internal/cli/render"
	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/tui/components/challengelist"
	"github.com/julianstephens/thrive/internal/tui/forms"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.setSize(msg.Width, msg.Height)
		if m.state != StateEditHabits {
			return m, nil
		}
	}

	switch m.state {
	case StateEditHabits:
		return m.updateHabitForm(msg)
	case StateConfirmLeave:
		return m.updateConfirmLeave(msg)
	}

	switch msg := msg.(type) {
	case challengelist.JoinMsg:
		m.join(msg.ID)
		return m, nil
	case challengelist.CheckInMsg:
		m.checkIn(msg.ID, msg.Completed)
		return m, nil
	case challengelist.LeaveMsg:
		m.leaveID = msg.ID
		m.state = StateConfirmLeave
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabs))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + SessionState(len(tabs))) % SessionState(len(tabs))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Habits):
			h, _ := m.svc.Habits()
			m.habitForm = forms.NewHabitFormModel(h)
			m.form = forms.NewHabitForm(m.habitForm)
			m.state = StateEditHabits
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Week):
			m.logWeek()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			m.setStatus("Refreshed")
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case StateChallenges:
		m.challengeList, cmd = m.challengeList.Update(msg)
	case StateBadges:
		m.badges, cmd = m.badges.Update(msg)
	case StateProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	return m, cmd
}

func (m Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateDashboard
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = StateDashboard
		h, err := m.habitForm.Habits()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.submitHabits(h)
		return m, nil
	case huh.StateAborted:
		m.state = StateDashboard
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmLeave(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Confirm):
		if err := m.svc.LeaveChallenge(m.leaveID); err != nil {
			m.setError(err)
		} else {
			m.refresh()
			m.setStatus("Left " + m.leaveID)
		}
		m.leaveID = ""
		m.state = StateChallenges
	case key.Matches(k, m.keys.Cancel):
		m.leaveID = ""
		m.state = StateChallenges
	}
	return m, nil
}

func (m *Model) submitHabits(h models.HabitsData) {
	res, err := m.svc.SubmitHabits(h)
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()

	status := fmt.Sprintf("Score %d/100", res.Score.Total)
	if delta := render.ScoreDelta(res.Previous, res.Score); delta != "" {
		status += " (" + delta + ")"
	}
	m.setStatus(status + badgeSuffix(res.NewBadges))
}

func (m *Model) join(id string) {
	uc, err := m.svc.JoinChallenge(id)
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	m.setStatus("Joined " + uc.ChallengeID)
}

func (m *Model) checkIn(id string, completed bool) {
	res, err := m.svc.CheckIn(id, -1, completed)
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()

	verb := "completed"
	if !completed {
		verb = "missed"
	}
	status := fmt.Sprintf("Day %d of %s %s", res.Day+1, res.Challenge.Title, verb)
	if res.JustCompleted {
		status += ". Challenge complete!"
	}
	m.setStatus(status + badgeSuffix(res.NewBadges))
}

func (m *Model) logWeek() {
	res, err := m.svc.LogWeek("")
	if err != nil {
		m.setError(err)
		return
	}
	m.refresh()

	verb := "Logged"
	if res.Replaced {
		verb = "Updated"
	}
	m.setStatus(fmt.Sprintf("%s week %s", verb, res.Log.Week) + badgeSuffix(res.NewBadges))
}

func badgeSuffix(bs []models.Badge) string {
	if len(bs) == 0 {
		return ""
	}
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Icon + " " + b.Title
	}
	return " · unlocked " + strings.Join(names, ", ")
}
