package tui

import (
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
)

const helpText = `# Bigsky

Montana license plates begin with a numeric county prefix. Bigsky looks
those prefixes up in both directions.

## Lookups

- **Prefix lookup** resolves a plate prefix to its county and county seat.
- **City lookup** resolves a city name to its county and plate prefix.
  Names are case-insensitive, so *BOZEMAN* and *bozeman* both work.

## Adding cities

When a city is unknown, you can file it under a prefix. New entries are
appended to the city file and survive restarts. County seats are always
recognized without being saved.

## Keys

- ` + "`1`" + ` / ` + "`2`" + ` / ` + "`3`" + ` pick a menu option directly
- ` + "`b`" + ` browses all counties, ` + "`/`" + ` filters the list
- ` + "`?`" + ` shows this help
- ` + "`esc`" + ` returns to the menu, ` + "`ctrl+c`" + ` quits from anywhere
`

// helpModel is the scrollable help screen
type helpModel struct {
	viewport viewport.Model
	ready    bool
}

func newHelp() helpModel {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return helpModel{viewport: vp}
}

// SetSize rebuilds the viewport and re-wraps the help text
func (h helpModel) SetSize(width, height int) helpModel {
	h.viewport = viewport.New(
		viewport.WithWidth(width),
		viewport.WithHeight(height),
	)
	h.viewport.MouseWheelEnabled = true
	h.viewport.SetContent(renderMarkdown(helpText, width))
	h.ready = true
	return h
}

// Update routes messages to the viewport. done reports that the user
// wants the menu back.
func (h helpModel) Update(msg tea.Msg) (helpModel, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "?":
			return h, nil, true
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd, false
}

// View renders the help screen
func (h helpModel) View() string {
	if !h.ready {
		return dimStyle.Render("Loading help...")
	}
	return h.viewport.View()
}
