package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// statusType represents the type of status message
type statusType int

const (
	statusInfo statusType = iota
	statusWarning
	statusError
	statusSuccess
)

// statusMessage is a transient message shown in the status bar
type statusMessage struct {
	content   string
	kind      statusType
	timestamp time.Time
}

// clearStatusMsg is sent when a status message should be cleared
type clearStatusMsg struct {
	timestamp time.Time
}

// statusBar shows temporary messages at the bottom of the screen
type statusBar struct {
	message     *statusMessage
	width       int
	leftContent string

	// Timer for clearing messages
	clearAfter time.Duration
}

// newStatusBar creates a new status bar
func newStatusBar() *statusBar {
	return &statusBar{
		clearAfter: 5 * time.Second,
	}
}

// Set shows a message and returns a command that clears it later
func (s *statusBar) Set(content string, kind statusType) tea.Cmd {
	s.message = &statusMessage{
		content:   content,
		kind:      kind,
		timestamp: time.Now(),
	}

	stamp := s.message.timestamp
	return tea.Tick(s.clearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{timestamp: stamp}
	})
}

// ShowInfo shows an info message
func (s *statusBar) ShowInfo(message string) tea.Cmd {
	return s.Set(message, statusInfo)
}

// ShowError shows an error message
func (s *statusBar) ShowError(message string) tea.Cmd {
	return s.Set(message, statusError)
}

// ShowSuccess shows a success message
func (s *statusBar) ShowSuccess(message string) tea.Cmd {
	return s.Set(message, statusSuccess)
}

// SetLeftContent sets the left side content
func (s *statusBar) SetLeftContent(content string) {
	s.leftContent = content
}

// SetWidth sets the render width
func (s *statusBar) SetWidth(width int) {
	s.width = width
}

// Clear drops the current message if the timestamps match
func (s *statusBar) Clear(msg clearStatusMsg) {
	if s.message != nil && msg.timestamp.Equal(s.message.timestamp) {
		s.message = nil
	}
}

// View renders the status bar
func (s *statusBar) View() string {
	if s.width == 0 {
		return ""
	}

	leftContent := s.leftContent
	rightContent := ""
	if s.message != nil {
		rightContent = s.formatMessage()
	}

	availableWidth := s.width - 2 // Account for padding

	if len(leftContent)+len(rightContent) > availableWidth {
		if len(rightContent) > 40 {
			rightContent = rightContent[:37] + "..."
		}

		remaining := availableWidth - len(rightContent)
		if len(leftContent) > remaining && remaining > 3 {
			leftContent = leftContent[:remaining-3] + "..."
		}
	}

	content := leftContent
	if rightContent != "" {
		// Right-align the message
		spacesNeeded := availableWidth - len(leftContent) - len(rightContent)
		if spacesNeeded > 0 {
			content += fmt.Sprintf("%*s%s", spacesNeeded, "", rightContent)
		} else {
			content += " " + rightContent
		}
	}

	return statusBarStyle.Width(s.width).Render(content)
}

// formatMessage prepends a type marker to the message
func (s *statusBar) formatMessage() string {
	if s.message == nil {
		return ""
	}

	switch s.message.kind {
	case statusSuccess:
		return "✅ " + s.message.content
	case statusWarning:
		return "⚠️ " + s.message.content
	case statusError:
		return "❌ " + s.message.content
	default:
		return s.message.content
	}
}
