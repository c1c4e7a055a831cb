package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/bigsky/internal/lookup"
)

// cityPhase tracks which prompt the city screen is showing
type cityPhase int

const (
	phaseName cityPhase = iota
	phasePrefix
)

// cityAddedMsg reports that a new city was saved
type cityAddedMsg struct {
	city   string
	prefix int
}

// cityAddFailedMsg reports that saving a new city failed
type cityAddFailedMsg struct {
	err error
}

// addCityCmd persists a city mapping off the update loop
func addCityCmd(store *lookup.Store, city string, prefix int) tea.Cmd {
	return func() tea.Msg {
		if err := store.AddCity(city, prefix); err != nil {
			return cityAddFailedMsg{err: err}
		}
		return cityAddedMsg{city: city, prefix: prefix}
	}
}

// cityModel is the city lookup screen. Unknown cities roll into a second
// prompt that files the city under a prefix.
type cityModel struct {
	phase       cityPhase
	nameInput   *textInput
	prefixInput *textInput

	// pending holds the normalized name waiting for a prefix
	pending string
	notice  string
	result  string
	errMsg  string
}

func newCityScreen() cityModel {
	return cityModel{
		nameInput:   newTextInput("e.g. Bozeman"),
		prefixInput: newTextInput("-1 cancels"),
	}
}

// Handle processes a key. done reports that the user wants the menu back.
func (c cityModel) Handle(key string, store *lookup.Store) (cityModel, tea.Cmd, bool) {
	if c.phase == phasePrefix {
		return c.handlePrefixKey(key, store)
	}
	return c.handleNameKey(key, store)
}

func (c cityModel) handleNameKey(key string, store *lookup.Store) (cityModel, tea.Cmd, bool) {
	switch key {
	case "esc":
		return c.reset(), nil, true
	case "enter":
		name := lookup.Normalize(c.nameInput.Value())
		c.nameInput.Reset()
		c.result = ""
		c.errMsg = ""

		if name == "q" {
			return c.reset(), nil, true
		}
		if name == "" {
			c.errMsg = "City name cannot be empty."
			return c, nil, false
		}

		if match, ok := store.FindCity(name); ok {
			countyName := "(unknown)"
			if match.County != nil {
				countyName = match.County.Name
			}
			c.result = fmt.Sprintf("County: %s\nLicense Prefix: %d", countyName, match.Prefix)
			return c, nil, false
		}

		// Unknown city, offer to file it under a prefix.
		c.pending = name
		c.notice = "City not found."
		c.phase = phasePrefix
	default:
		c.nameInput.Handle(key)
	}
	return c, nil, false
}

func (c cityModel) handlePrefixKey(key string, store *lookup.Store) (cityModel, tea.Cmd, bool) {
	switch key {
	case "esc":
		return c.backToName(), nil, false
	case "enter":
		value := strings.TrimSpace(c.prefixInput.Value())
		c.prefixInput.Reset()

		prefix, err := strconv.Atoi(value)
		if err != nil {
			c = c.backToName()
			c.errMsg = "Invalid prefix."
			return c, nil, false
		}
		if prefix == -1 {
			return c.backToName(), nil, false
		}
		if _, ok := store.FindCounty(prefix); !ok {
			c = c.backToName()
			c.errMsg = "That license prefix does not exist."
			return c, nil, false
		}

		city := c.pending
		c = c.backToName()
		return c, addCityCmd(store, city, prefix), false
	default:
		c.prefixInput.Handle(key)
	}
	return c, nil, false
}

// backToName returns to the name prompt, dropping the pending city
func (c cityModel) backToName() cityModel {
	c.phase = phaseName
	c.pending = ""
	c.notice = ""
	c.errMsg = ""
	c.prefixInput.Reset()
	return c
}

func (c cityModel) reset() cityModel {
	c = c.backToName()
	c.nameInput.Reset()
	c.result = ""
	return c
}

// View renders the city lookup screen
func (c cityModel) View() string {
	var s strings.Builder

	if c.phase == phasePrefix {
		s.WriteString(dimStyle.Render(fmt.Sprintf("City: %s", c.pending)))
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(c.notice))
		s.WriteString("\n\n")
		s.WriteString(promptStyle.Render("Enter license prefix for this city (or -1 to cancel):"))
		s.WriteString("\n\n> ")
		s.WriteString(c.prefixInput.View())
		s.WriteString("\n\n")
		s.WriteString(dimStyle.Render("Enter to save • Esc to cancel"))
		return s.String()
	}

	s.WriteString(promptStyle.Render("Enter city name (or 'q' to return):"))
	s.WriteString("\n\n> ")
	s.WriteString(c.nameInput.View())
	s.WriteString("\n")

	if c.errMsg != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(c.errMsg))
		s.WriteString("\n")
	}
	if c.result != "" {
		s.WriteString("\n")
		s.WriteString(normalStyle.Render(c.result))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("Enter to look up • Esc to return to the menu"))

	return s.String()
}
