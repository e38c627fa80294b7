package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/thrive/internal/tracker"
	"github.com/julianstephens/thrive/internal/tui/components/challengelist"
	"github.com/julianstephens/thrive/internal/tui/components/panel"
	"github.com/julianstephens/thrive/internal/tui/forms"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateChallenges
	StateBadges
	StateProfile
	StateEditHabits
	StateConfirmLeave
)

// tabs are the states reachable with tab/shift+tab, in order.
var tabs = []string{"Dashboard", "Challenges", "Badges", "Profile"}

// chromeHeight is the space taken by the tab bar, status line and help.
const chromeHeight = 5

type Model struct {
	svc           *tracker.Service
	state         SessionState
	keys          KeyMap
	help          help.Model
	dashboard     panel.Model
	challengeList challengelist.Model
	badges        panel.Model
	profile       panel.Model
	form          *huh.Form
	habitForm     *forms.HabitFormModel
	leaveID       string
	status        string
	statusErr     bool
	quitting      bool
	width         int
	height        int
}

func NewModel(svc *tracker.Service) Model {
	m := Model{
		svc:           svc,
		state:         StateDashboard,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		dashboard:     panel.New(0, 0, "Loading..."),
		challengeList: challengelist.New(nil, 0, 0),
		badges:        panel.New(0, 0, "No badges yet."),
		profile:       panel.New(0, 0, "Loading..."),
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := m.keys.ShortHelp()
	if m.state == StateChallenges {
		ck := m.challengeList.Keys()
		keys = append(keys, ck.Join, ck.CheckIn, ck.Miss, ck.Leave)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	groups := m.keys.FullHelp()
	if m.state == StateChallenges {
		ck := m.challengeList.Keys()
		groups = append(groups, []key.Binding{ck.Join, ck.CheckIn, ck.Miss, ck.Leave})
	}
	return groups
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads every page from the tracker.
func (m *Model) refresh() {
	d, err := m.svc.Dashboard()
	if err != nil {
		m.setError(err)
		return
	}
	m.dashboard.SetContent(renderDashboard(d))

	st, err := m.svc.ProfileStats()
	if err != nil {
		m.setError(err)
		return
	}
	m.badges.SetContent(renderBadges(st))
	m.profile.SetContent(renderProfile(st))

	m.challengeList.SetChallenges(m.svc.Challenges("", ""))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	h := height - chromeHeight
	if h < 0 {
		h = 0
	}
	m.dashboard.SetSize(width, h)
	m.challengeList.SetSize(width, h)
	m.badges.SetSize(width, h)
	m.profile.SetSize(width, h)
}
