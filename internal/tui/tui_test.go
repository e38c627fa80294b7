package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/storage"
	"github.com/julianstephens/thrive/internal/tracker"
	"github.com/julianstephens/thrive/internal/tui/components/challengelist"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc := tracker.New(storage.NewRepository(storage.NewMemoryStore()))
	m := NewModel(svc)
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// sendAndDispatch delivers msg and then the message produced by its command.
func sendAndDispatch(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("expected a command for %v", msg)
	}
	return send(t, m, cmd())
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.state != StateDashboard {
		t.Errorf("state = %v, want dashboard", m.state)
	}
	if !strings.Contains(m.dashboard.Content(), constants.DefaultProfileName) {
		t.Errorf("dashboard missing profile name:\n%s", m.dashboard.Content())
	}
	if !strings.Contains(m.dashboard.Content(), "No score yet") {
		t.Errorf("dashboard should prompt for habits:\n%s", m.dashboard.Content())
	}
	if !strings.Contains(m.badges.Content(), "0/10") {
		t.Errorf("badges page:\n%s", m.badges.Content())
	}
	if view := m.View(); !strings.Contains(view, "Challenges") {
		t.Errorf("view missing tab bar:\n%s", view)
	}
}

func TestTabNavigation(t *testing.T) {
	m := newTestModel(t)

	want := []SessionState{StateChallenges, StateBadges, StateProfile, StateDashboard}
	for _, w := range want {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.state != w {
			t.Fatalf("after tab state = %v, want %v", m.state, w)
		}
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != StateProfile {
		t.Errorf("shift+tab from dashboard = %v, want profile", m.state)
	}
}

func TestLogWeek_NoHabits(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, runes("w"))
	if !m.statusErr || m.status != tracker.ErrNoHabits.Error() {
		t.Errorf("status = %q (err %v), want no habits error", m.status, m.statusErr)
	}
}

func TestSubmitHabitsAndLogWeek(t *testing.T) {
	m := newTestModel(t)

	m.submitHabits(models.DefaultHabits())
	if m.statusErr || !strings.Contains(m.status, "Score 70/100") {
		t.Errorf("status = %q", m.status)
	}
	if !strings.Contains(m.status, "Wellness Warrior") {
		t.Errorf("status should list the new badge: %q", m.status)
	}
	if !strings.Contains(m.dashboard.Content(), "Wellness score:") {
		t.Errorf("dashboard not refreshed:\n%s", m.dashboard.Content())
	}

	m = send(t, m, runes("w"))
	if m.statusErr || !strings.HasPrefix(m.status, "Logged week") {
		t.Errorf("status = %q", m.status)
	}
	m = send(t, m, runes("w"))
	if !strings.HasPrefix(m.status, "Updated week") {
		t.Errorf("status = %q", m.status)
	}
	if !strings.Contains(m.profile.Content(), storage.WeekKey(time.Now())) {
		t.Errorf("profile missing week history:\n%s", m.profile.Content())
	}
}

func TestChallengeActions(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = sendAndDispatch(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.statusErr || m.status != "Joined "+challenges.HydrationID {
		t.Fatalf("status = %q", m.status)
	}
	if len(m.svc.Enrollments()) != 1 {
		t.Fatal("expected one enrollment")
	}

	m = sendAndDispatch(t, m, runes("c"))
	if !strings.HasPrefix(m.status, "Day 1 of 7-Day Hydration Challenge completed") {
		t.Errorf("status = %q", m.status)
	}
	m = sendAndDispatch(t, m, runes("m"))
	if !strings.HasPrefix(m.status, "Day 2 of 7-Day Hydration Challenge missed") {
		t.Errorf("status = %q", m.status)
	}

	i, ok := m.challengeList.Selected()
	if !ok || !i.Joined() || !strings.Contains(i.Description(), "day 3/7") {
		t.Errorf("list not refreshed: %+v", i)
	}
}

func TestLeaveChallenge_Confirm(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = sendAndDispatch(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = sendAndDispatch(t, m, runes("d"))
	if m.state != StateConfirmLeave || m.leaveID != challenges.HydrationID {
		t.Fatalf("state = %v, leaveID = %q", m.state, m.leaveID)
	}
	if !strings.Contains(m.View(), "discard its progress") {
		t.Error("confirmation prompt not shown")
	}

	m = send(t, m, runes("n"))
	if m.state != StateChallenges || len(m.svc.Enrollments()) != 1 {
		t.Fatal("cancel should keep the enrollment")
	}

	m = sendAndDispatch(t, m, runes("d"))
	m = send(t, m, runes("y"))
	if m.state != StateChallenges {
		t.Errorf("state = %v, want challenges", m.state)
	}
	if len(m.svc.Enrollments()) != 0 {
		t.Error("enrollment should be removed")
	}
	if m.status != "Left "+challenges.HydrationID {
		t.Errorf("status = %q", m.status)
	}
}

func TestChallengeList_IgnoresInvalidActions(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	for _, k := range []string{"c", "m", "d"} {
		_, cmd := m.challengeList.Update(runes(k))
		if cmd == nil {
			continue
		}
		switch cmd().(type) {
		case challengelist.CheckInMsg, challengelist.LeaveMsg:
			t.Errorf("%q on an unjoined challenge produced an action", k)
		}
	}
}

func TestEditHabits_OpenAndCancel(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runes("e"))
	m = next.(Model)
	if m.state != StateEditHabits || m.form == nil || m.habitForm == nil {
		t.Fatalf("state = %v, form = %v", m.state, m.form)
	}
	if cmd == nil {
		t.Error("expected form init command")
	}
	if m.habitForm.Quality != models.DefaultHabits().Sleep.Quality {
		t.Errorf("form not seeded from defaults: %+v", m.habitForm)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateDashboard {
		t.Errorf("esc should close the form, state = %v", m.state)
	}
}

func TestErrorStatus(t *testing.T) {
	m := newTestModel(t)
	m.setError(errors.New("boom"))
	if !strings.Contains(m.View(), "boom") {
		t.Error("error status not rendered")
	}
	m.setStatus("fine")
	if m.statusErr {
		t.Error("setStatus should clear the error flag")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
