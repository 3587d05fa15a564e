package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/strengthmap/internal/ui/components"
)

type keyMap struct {
	components.LikertKeyMap
	Back key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		LikertKeyMap: components.DefaultLikertKeys,
		Back:         key.NewBinding(key.WithKeys("b", "left", "backspace"), key.WithHelp("b", "前の質問")),
		Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "中断")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
