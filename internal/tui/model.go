// Package tui implements the interactive terminal interface: a main
// menu, the two lookup screens, a browsable county list, and help.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/billie-coop/bigsky/internal/app"
)

// screen identifies the active pane
type screen int

const (
	screenMenu screen = iota
	screenPrefix
	screenCity
	screenBrowse
	screenHelp
)

// Model is the root TUI model
type Model struct {
	app    *app.App
	screen screen
	width  int
	height int

	menu   menuModel
	prefix prefixModel
	city   cityModel
	browse browseModel
	help   helpModel
	status *statusBar

	quitting bool
}

// New creates the root model for the given app
func New(a *app.App) Model {
	return Model{
		app:    a,
		menu:   newMenu(),
		prefix: newPrefixScreen(),
		city:   newCityScreen(),
		browse: newBrowse(a.Store.Counties()),
		help:   newHelp(),
		status: newStatusBar(),
	}
}

// Init returns an initial command
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.status.SetWidth(msg.Width)

		// Banner and status bar take four rows between them.
		contentHeight := msg.Height - 4
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.browse = m.browse.SetSize(msg.Width, contentHeight)
		m.help = m.help.SetSize(msg.Width, contentHeight)
		return m, nil

	case clearStatusMsg:
		m.status.Clear(msg)
		return m, nil

	case cityAddedMsg:
		m.app.Log.Info("city added",
			zap.String("city", msg.city),
			zap.Int("prefix", msg.prefix),
		)
		return m, m.status.ShowSuccess("City added for future lookups.")

	case cityAddFailedMsg:
		m.app.Log.Error("city add failed", zap.Error(msg.err))
		return m, m.status.ShowError("Could not save city: " + msg.err.Error())

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		// The list and viewport screens consume raw key messages for
		// their own navigation.
		switch m.screen {
		case screenBrowse:
			var cmd tea.Cmd
			var done bool
			m.browse, cmd, done = m.browse.Update(msg)
			if done {
				m.screen = screenMenu
			}
			return m, cmd
		case screenHelp:
			var cmd tea.Cmd
			var done bool
			m.help, cmd, done = m.help.Update(msg)
			if done {
				m.screen = screenMenu
			}
			return m, cmd
		default:
			return m.handleKey(key)
		}
	}

	return m, nil
}

// handleKey drives the menu and the two lookup screens
func (m Model) handleKey(key string) (Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		var choice menuChoice
		m.menu, choice = m.menu.Handle(key)
		switch choice {
		case choicePrefix:
			m.screen = screenPrefix
		case choiceCity:
			m.screen = screenCity
		case choiceBrowse:
			m.screen = screenBrowse
		case choiceHelp:
			m.screen = screenHelp
		case choiceQuit:
			m.quitting = true
			return m, tea.Quit
		case choiceInvalid:
			return m, m.status.ShowInfo("Invalid choice.")
		}

	case screenPrefix:
		var done bool
		m.prefix, done = m.prefix.Handle(key, m.app.Store)
		if done {
			m.screen = screenMenu
		}

	case screenCity:
		var cmd tea.Cmd
		var done bool
		m.city, cmd, done = m.city.Handle(key, m.app.Store)
		if done {
			m.screen = screenMenu
		}
		return m, cmd
	}

	return m, nil
}

// View renders the UI
func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) render() string {
	var s strings.Builder

	s.WriteString(renderBanner("🏔 Bigsky"))
	s.WriteString("  ")
	s.WriteString(dimStyle.Render("Montana license plate lookup"))
	s.WriteString("\n\n")

	switch m.screen {
	case screenMenu:
		s.WriteString(m.menu.View())
	case screenPrefix:
		s.WriteString(m.prefix.View())
	case screenCity:
		s.WriteString(m.city.View())
	case screenBrowse:
		s.WriteString(m.browse.View())
	case screenHelp:
		s.WriteString(m.help.View())
	}

	content := s.String()

	// Pin the status bar to the bottom row when we know the height.
	if m.height > 0 {
		gap := m.height - lipgloss.Height(content) - 1
		if gap > 0 {
			content += strings.Repeat("\n", gap)
		}
		content += "\n" + m.status.View()
	} else if bar := m.status.View(); bar != "" {
		content += "\n" + bar
	}

	return content
}
