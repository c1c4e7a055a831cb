package tui

import (
	"fmt"
	"strings"
)

// menuChoice identifies an activated main menu entry
type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePrefix
	choiceCity
	choiceQuit
	choiceBrowse
	choiceHelp
	choiceInvalid
)

type menuEntry struct {
	key    string
	label  string
	choice menuChoice
}

// menuModel is the main menu screen
type menuModel struct {
	cursor  int
	entries []menuEntry
}

func newMenu() menuModel {
	return menuModel{
		entries: []menuEntry{
			{"1", "Lookup by license plate prefix", choicePrefix},
			{"2", "Lookup by city", choiceCity},
			{"3", "Quit", choiceQuit},
		},
	}
}

// Handle processes a key and reports the activated choice, if any.
// Digit keys both move the cursor and activate.
func (m menuModel) Handle(key string) (menuModel, menuChoice) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter":
		return m, m.entries[m.cursor].choice
	case "b":
		return m, choiceBrowse
	case "?":
		return m, choiceHelp
	default:
		for i, entry := range m.entries {
			if key == entry.key {
				m.cursor = i
				return m, entry.choice
			}
		}
		if len(key) == 1 || key == "space" {
			return m, choiceInvalid
		}
	}
	return m, choiceNone
}

// View renders the menu
func (m menuModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Select an option:"))
	s.WriteString("\n\n")

	for i, entry := range m.entries {
		line := fmt.Sprintf("%s - %s", entry.key, entry.label)
		if i == m.cursor {
			s.WriteString(selectedStyle.Render("> " + line))
		} else {
			s.WriteString(normalStyle.Render("  " + line))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("↑/↓ or j/k to navigate • Enter or 1-3 to select • b to browse counties • ? for help"))

	return s.String()
}
