package boardview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	toggle   key.Binding
	keyword  key.Binding
	prevWord key.Binding
	nextWord key.Binding
	reset    key.Binding
	dismiss  key.Binding
	hide     key.Binding
	add      key.Binding
	upload   key.Binding
	template key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	help     key.Binding
	quit     key.Binding
	submit   key.Binding
	cancel   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("↵/space", "open/close"),
		),
		keyword: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "filter by keyword"),
		),
		prevWord: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous keyword"),
		),
		nextWord: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next keyword"),
		),
		reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filter"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss error"),
		),
		hide: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hide active keyword"),
		),
		add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add keyword"),
		),
		upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		template: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "write template"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.keyword, k.reset, k.upload, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right, k.toggle},
		{k.keyword, k.prevWord, k.nextWord, k.reset, k.hide, k.add},
		{k.upload, k.template, k.dismiss},
		{k.pageUp, k.pageDown, k.help, k.quit},
	}
}
