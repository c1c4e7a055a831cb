package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// textInput is a basic single-line input field
type textInput struct {
	value       string
	placeholder string
	focused     bool
	cursorPos   int
}

// newTextInput creates a new text input
func newTextInput(placeholder string) *textInput {
	return &textInput{
		placeholder: placeholder,
		focused:     true,
	}
}

// Value returns the current value
func (t *textInput) Value() string {
	return t.value
}

// SetValue sets the value
func (t *textInput) SetValue(value string) {
	t.value = value
	t.cursorPos = len(value)
}

// Reset clears the input
func (t *textInput) Reset() {
	t.value = ""
	t.cursorPos = 0
}

// IsEmpty returns true if the input holds only whitespace
func (t *textInput) IsEmpty() bool {
	return strings.TrimSpace(t.value) == ""
}

// Focus focuses the input
func (t *textInput) Focus() {
	t.focused = true
}

// Blur removes focus
func (t *textInput) Blur() {
	t.focused = false
}

// Handle processes a single key, already stringified by the caller
func (t *textInput) Handle(key string) {
	if !t.focused {
		return
	}

	// Bubble Tea v2 reports the space key as "space" not " "
	if key == "space" {
		t.value = t.value[:t.cursorPos] + " " + t.value[t.cursorPos:]
		t.cursorPos++
		return
	}

	switch key {
	case "backspace":
		if t.cursorPos > 0 {
			t.value = t.value[:t.cursorPos-1] + t.value[t.cursorPos:]
			t.cursorPos--
		}
	case "delete":
		if t.cursorPos < len(t.value) {
			t.value = t.value[:t.cursorPos] + t.value[t.cursorPos+1:]
		}
	case "left":
		if t.cursorPos > 0 {
			t.cursorPos--
		}
	case "right":
		if t.cursorPos < len(t.value) {
			t.cursorPos++
		}
	case "home", "ctrl+a":
		t.cursorPos = 0
	case "end", "ctrl+e":
		t.cursorPos = len(t.value)
	case "ctrl+u":
		// Kill to beginning of line
		t.value = t.value[t.cursorPos:]
		t.cursorPos = 0
	case "ctrl+k":
		// Kill to end of line
		t.value = t.value[:t.cursorPos]
	default:
		// Regular character input - printable ASCII only, space handled above
		if len(key) == 1 {
			char := key[0]
			if char >= 33 && char <= 126 {
				t.value = t.value[:t.cursorPos] + key + t.value[t.cursorPos:]
				t.cursorPos++
			}
		}
	}
}

// View renders the input
func (t *textInput) View() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	if !t.focused {
		if t.value == "" && t.placeholder != "" {
			return style.Foreground(lipgloss.Color("241")).Render(t.placeholder)
		}
		return style.Render(t.value)
	}

	cursorStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("205")).
		Foreground(lipgloss.Color("0"))

	// Show cursor
	display := t.value
	if t.cursorPos < len(display) {
		before := display[:t.cursorPos]
		after := display[t.cursorPos+1:]
		display = before + cursorStyle.Render(string(display[t.cursorPos])) + after
	} else {
		display += cursorStyle.Render(" ")
	}

	if t.value == "" && t.placeholder != "" {
		display += style.Foreground(lipgloss.Color("241")).Render(t.placeholder)
	}

	return style.Render(display)
}
