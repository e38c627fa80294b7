package challengelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/tracker"
)

type JoinMsg struct {
	ID string
}

type CheckInMsg struct {
	ID        string
	Completed bool
}

type LeaveMsg struct {
	ID string
}

type Item struct {
	Listing tracker.ChallengeListing
}

func (i Item) Joined() bool { return i.Listing.Enrollment != nil }

func (i Item) Title() string {
	c := i.Listing.Challenge
	title := challenges.CategoryIcon(c.Category) + " " + c.Title
	switch {
	case i.Joined() && i.Listing.Enrollment.Completed:
		title += " ✓"
	case i.Joined():
		title += " •"
	}
	return title
}

func (i Item) Description() string {
	c := i.Listing.Challenge
	if !i.Joined() {
		return fmt.Sprintf("%s · %d days · %s", c.Difficulty, c.Duration, c.DailyGoal)
	}
	uc := *i.Listing.Enrollment
	if uc.Completed {
		return fmt.Sprintf("completed · %d%%", challenges.ProgressPercent(uc))
	}
	return fmt.Sprintf("day %d/%d · streak %d · %d%%", challenges.CurrentDay(uc, c), c.Duration, uc.Streak, challenges.ProgressPercent(uc))
}

func (i Item) FilterValue() string { return i.Listing.Challenge.Title }

type KeyMap struct {
	Join    key.Binding
	CheckIn key.Binding
	Miss    key.Binding
	Leave   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Join: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "join"),
		),
		CheckIn: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "check in"),
		),
		Miss: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark missed"),
		),
		Leave: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "leave"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(listings []tracker.ChallengeListing, width, height int) Model {
	l := list.New(toItems(listings), list.NewDefaultDelegate(), width, height)
	l.Title = "Challenges"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Join, keys.CheckIn, keys.Miss, keys.Leave}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Join, keys.CheckIn, keys.Miss, keys.Leave}
	}

	return Model{list: l, keys: keys}
}

func toItems(listings []tracker.ChallengeListing) []list.Item {
	items := make([]list.Item, len(listings))
	for i, l := range listings {
		items[i] = Item{Listing: l}
	}
	return items
}

func (m *Model) SetChallenges(listings []tracker.ChallengeListing) {
	m.list.SetItems(toItems(listings))
}

// Selected returns the highlighted item, if any.
func (m Model) Selected() (Item, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i, ok
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		i, ok := m.Selected()
		if !ok {
			break
		}
		id := i.Listing.Challenge.ID
		switch {
		case key.Matches(msg, m.keys.Join):
			if !i.Joined() {
				return m, func() tea.Msg { return JoinMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.CheckIn):
			if i.Joined() && !i.Listing.Enrollment.Completed {
				return m, func() tea.Msg { return CheckInMsg{ID: id, Completed: true} }
			}
		case key.Matches(msg, m.keys.Miss):
			if i.Joined() && !i.Listing.Enrollment.Completed {
				return m, func() tea.Msg { return CheckInMsg{ID: id, Completed: false} }
			}
		case key.Matches(msg, m.keys.Leave):
			if i.Joined() {
				return m, func() tea.Msg { return LeaveMsg{ID: id} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No challenges available."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
