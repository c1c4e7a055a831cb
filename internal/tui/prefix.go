package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/billie-coop/bigsky/internal/lookup"
)

// prefixModel is the license plate prefix lookup screen
type prefixModel struct {
	input  *textInput
	result string
	errMsg string
}

func newPrefixScreen() prefixModel {
	return prefixModel{input: newTextInput("e.g. 6")}
}

// Handle processes a key. done reports that the user wants the menu back.
func (p prefixModel) Handle(key string, store *lookup.Store) (prefixModel, bool) {
	switch key {
	case "esc":
		return p.reset(), true
	case "enter":
		value := strings.TrimSpace(p.input.Value())
		p.input.Reset()

		if strings.EqualFold(value, "q") {
			return p.reset(), true
		}

		prefix, err := strconv.Atoi(value)
		if err != nil {
			p.errMsg = "Please enter a valid number."
			p.result = ""
			return p, false
		}

		county, ok := store.FindCounty(prefix)
		if !ok {
			p.errMsg = "Unknown license plate prefix."
			p.result = ""
			return p, false
		}

		p.errMsg = ""
		p.result = fmt.Sprintf("County: %s\nCounty Seat: %s", county.Name, county.Seat)
	default:
		p.input.Handle(key)
	}
	return p, false
}

func (p prefixModel) reset() prefixModel {
	p.input.Reset()
	p.result = ""
	p.errMsg = ""
	return p
}

// View renders the prefix lookup screen
func (p prefixModel) View() string {
	var s strings.Builder

	s.WriteString(promptStyle.Render("Enter license plate prefix (or 'q' to return):"))
	s.WriteString("\n\n> ")
	s.WriteString(p.input.View())
	s.WriteString("\n")

	if p.errMsg != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(p.errMsg))
		s.WriteString("\n")
	}
	if p.result != "" {
		s.WriteString("\n")
		s.WriteString(normalStyle.Render(p.result))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("Enter to look up • Esc to return to the menu"))

	return s.String()
}
