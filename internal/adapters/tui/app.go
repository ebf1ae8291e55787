package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"patternmap/internal/adapters/tui/views"
	"patternmap/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewExplorer ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state    ViewState
	explorer *views.ExplorerModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(cat *application.Catalog, opts views.ExplorerOptions) *App {
	var names []string
	for _, l := range cat.Data.ObservedLayers() {
		names = append(names, l.Name)
	}
	return &App{
		state:    ViewExplorer,
		explorer: views.NewExplorerModel(cat, opts),
		help:     views.NewHelpModel(names),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.explorer.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.explorer.Update(msg)
		return a, cmd

	// Debounced work belongs to the explorer whichever view is shown
	case views.DebouncedMsg:
		_, cmd := a.explorer.Update(msg)
		return a, cmd

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToExplorerMsg:
		a.state = ViewExplorer
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewExplorer:
		_, cmd = a.explorer.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.explorer.View()
	}
}
