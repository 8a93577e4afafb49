package teaui

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Open   key.Binding
	Pick   key.Binding
	Choose key.Binding
	Save   key.Binding
	Delete key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Prev:   key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[/p", "prev month")),
		Next:   key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]/n", "next month")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Open:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("⏎", "record mood")),
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "pick mood")),
		Choose: key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "pick focused")),
		Save:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("⏎/s", "save")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// calendarKeys is the help.KeyMap shown while browsing the month.
type calendarKeys struct{ keyMap }

func (k calendarKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Prev, k.Next, k.Today, k.Help, k.Quit}
}

func (k calendarKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Prev, k.Next, k.Today},
		{k.Open, k.Help, k.Quit},
	}
}

// pickerKeys is the help.KeyMap shown while the mood picker is open.
type pickerKeys struct{ keyMap }

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Save, k.Delete, k.Cancel}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Left, k.Right, k.Choose},
		{k.Save, k.Delete, k.Cancel},
	}
}
