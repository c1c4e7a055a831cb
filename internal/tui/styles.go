package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	normalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	promptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
)

// Banner gradient endpoints, a Montana evening sky.
var (
	skyBlue = lipgloss.Color("#56B6F0")
	sunGold = lipgloss.Color("#F0B656")
)

// renderBanner renders the app title with a horizontal gradient.
func renderBanner(text string) string {
	if text == "" {
		return ""
	}

	var output strings.Builder
	if len(text) == 1 {
		return lipgloss.NewStyle().Foreground(skyBlue).Bold(true).Render(text)
	}

	// Handle Unicode properly
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, string(gr.Runes()))
	}

	colors := blendColors(len(clusters), skyBlue, sunGold)
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i]).Bold(true)
		fmt.Fprint(&output, style.Render(cluster))
	}

	return output.String()
}

// blendColors creates a gradient between colors
func blendColors(steps int, color1, color2 color.Color) []color.Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.Color{color1}
	}

	colors := make([]color.Color, steps)

	// Convert to colorful for better blending
	c1, _ := colorful.MakeColor(color1)
	c2, _ := colorful.MakeColor(color2)

	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		// Use HCL color space for perceptually uniform blending
		colors[i] = c1.BlendHcl(c2, t)
	}

	return colors
}
