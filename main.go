// Package main is the entry point for the bigsky application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/joho/godotenv"

	"github.com/billie-coop/bigsky/internal/app"
	"github.com/billie-coop/bigsky/internal/tui"
)

func main() {
	// A local .env can override config without editing it.
	_ = godotenv.Load()

	workingDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := app.New(workingDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(a), tea.WithAltScreen())
	_, runErr := p.Run()
	a.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Println("Thanks for playing. Goodbye!")
}
