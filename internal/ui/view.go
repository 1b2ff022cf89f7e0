package ui

import tea "github.com/charmbracelet/bubbletea"

// View is one screen of the app: the search form, the destination list or
// the destination detail. AppModel routes messages to the current one.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
