package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var keybindHelpBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(ColorAccent)).
	Padding(0, 1).
	MarginTop(1)

// RenderKeybindHelp renders the bar shown while the leader key is waiting:
// the keys that may follow the current sequence in mode, plus esc to cancel.
// Returns "" when nothing can follow.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil || keyHandler.Registry == nil {
		return ""
	}
	currentSeq := strings.Join(keyHandler.Buffer, " ")
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	h := help.New()
	h.Styles.ShortKey = Styles.Selected
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted

	prefix := keyHandler.LeaderSeq
	if currentSeq != "" {
		prefix = currentSeq
	}
	return keybindHelpBox.Render(Styles.Muted.Render(prefix) + " " + h.ShortHelpView(bindings))
}
