package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/bigsky/internal/lookup"
)

// countyItem implements list.Item
type countyItem struct {
	county lookup.County
}

func (i countyItem) Title() string {
	return fmt.Sprintf("%d · %s County", i.county.Prefix, i.county.Name)
}

func (i countyItem) Description() string {
	return "County seat: " + i.county.Seat
}

func (i countyItem) FilterValue() string {
	return fmt.Sprintf("%d %s %s", i.county.Prefix, i.county.Name, i.county.Seat)
}

// browseModel is the scrollable county reference screen
type browseModel struct {
	list list.Model
}

func newBrowse(counties []lookup.County) browseModel {
	items := make([]list.Item, 0, len(counties))
	for _, county := range counties {
		items = append(items, countyItem{county: county})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Montana counties by license plate prefix"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)
	l.KeyMap.Quit.SetEnabled(false) // Leaving is handled here, not by the list

	return browseModel{list: l}
}

// SetSize resizes the embedded list
func (b browseModel) SetSize(width, height int) browseModel {
	b.list.SetWidth(width)
	b.list.SetHeight(height)
	return b
}

// Update routes messages to the list. done reports that the user wants
// the menu back. While a filter is active the list keeps esc and q for
// its own filter handling.
func (b browseModel) Update(msg tea.Msg) (browseModel, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		key := keyMsg.String()
		if (key == "esc" || key == "q") && b.list.FilterState() == list.Unfiltered {
			return b, nil, true
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd, false
}

// View renders the county list
func (b browseModel) View() string {
	return b.list.View()
}
