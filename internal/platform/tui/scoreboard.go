package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/leaderboard"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/storage"
)

const maxLocalScores = 100

// scoreSource selects which table the scoreboard shows.
type scoreSource int

const (
	sourceLocal  scoreSource = iota // SQLite on this machine
	sourceRemote                    // Shared leaderboard service
)

// remoteScoresMsg carries a fetched leaderboard page back to Update.
type remoteScoresMsg struct {
	game    string
	entries []leaderboard.Entry
	err     error
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Source   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Source, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Source, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Source: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "local/online"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen. It shows
// local scores by default and flips to the shared leaderboard when a client
// is configured.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	lb         *leaderboard.Client

	source    scoreSource
	fetching  bool
	remoteErr string

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, lb *leaderboard.Client, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		lb:     lb,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadLocal(m.games[0].ID)
	}

	return m
}

// createTable creates a new table with the score columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 18},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadLocal fills the table from the SQLite store.
func (m *ScoreboardModel) loadLocal(gameID string) {
	m.source = sourceLocal
	m.remoteErr = ""

	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	scores, err := m.store.TopScores(gameID, maxLocalScores)
	if err != nil {
		scores = nil
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// fetchRemote returns a command that loads the shared top table.
func (m *ScoreboardModel) fetchRemote(gameID string) tea.Cmd {
	lb := m.lb
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		top, err := lb.Top(ctx, gameID)
		if err != nil {
			return remoteScoresMsg{game: gameID, err: err}
		}
		return remoteScoresMsg{game: gameID, entries: top.Entries}
	}
}

// applyRemote fills the table from a fetched leaderboard page.
func (m *ScoreboardModel) applyRemote(entries []leaderboard.Entry) {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", e.Rank),
			e.Player,
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// currentGame returns the selected game's ID.
func (m ScoreboardModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload refreshes the table for the current game and source.
func (m *ScoreboardModel) reload() tea.Cmd {
	if m.source == sourceRemote {
		m.fetching = true
		return m.fetchRemote(m.currentGame())
	}
	m.loadLocal(m.currentGame())
	return nil
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				cmd = m.reload()
			}
			return m, cmd

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor--
				if m.gameCursor < 0 {
					m.gameCursor = len(m.games) - 1
				}
				cmd = m.reload()
			}
			return m, cmd

		case key.Matches(msg, m.keys.Source):
			if !m.lb.Enabled() {
				return m, nil
			}
			if m.source == sourceLocal {
				m.source = sourceRemote
			} else {
				m.source = sourceLocal
			}
			cmd = m.reload()
			return m, cmd
		}

	case remoteScoresMsg:
		m.fetching = false
		if msg.game != m.currentGame() || m.source != sourceRemote {
			return m, nil // Stale fetch, a newer selection superseded it
		}
		if msg.err != nil {
			m.remoteErr = msg.err.Error()
			m.table.SetRows(nil)
			return m, nil
		}
		m.remoteErr = ""
		m.applyRemote(msg.entries)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		rows := m.table.Rows()
		m.table = m.createTable()
		m.table.SetRows(rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	label := "LOCAL"
	if m.source == sourceRemote {
		label = "ONLINE"
	}
	title := fmt.Sprintf("HIGH SCORES (%s)", label)
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES (%s) - %s", label, m.games[m.gameCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	switch {
	case m.fetching:
		b.WriteString(centerText("Loading leaderboard...", m.width))
	case m.remoteErr != "":
		b.WriteString(centerText("Leaderboard unavailable: "+m.remoteErr, m.width))
		b.WriteString("\n")
		b.WriteString(centerText("Press O to switch back to local scores", m.width))
	case len(m.table.Rows()) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(emptyStyle.Render("No scores recorded yet."), m.width))
	default:
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, lb *leaderboard.Client, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, lb, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
