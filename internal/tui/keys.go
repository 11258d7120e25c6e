package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle     key.Binding
	Reset      key.Binding
	Forward    key.Binding
	Back       key.Binding
	Faster     key.Binding
	Slower     key.Binding
	ChunkUp    key.Binding
	ChunkDown  key.Binding
	Fullscreen key.Binding
	Highlight  key.Binding
	Bigger     key.Binding
	Smaller    key.Binding
	Samples    key.Binding
	Custom     key.Binding
	Upload     key.Binding
	Quiz       key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Forward:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next chunk")),
		Back:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev chunk")),
		Faster:     key.NewBinding(key.WithKeys("up", "+", "="), key.WithHelp("↑/+", "faster")),
		Slower:     key.NewBinding(key.WithKeys("down", "-"), key.WithHelp("↓/-", "slower")),
		ChunkUp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "bigger chunk")),
		ChunkDown:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "smaller chunk")),
		Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Highlight:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "highlight style")),
		Bigger:     key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "larger text")),
		Smaller:    key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "smaller text")),
		Samples:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "samples")),
		Custom:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "custom text")),
		Upload:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
		Quiz:       key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "quiz")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy chunk")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Faster, k.Slower, k.Forward, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Forward, k.Back},
		{k.Faster, k.Slower, k.ChunkUp, k.ChunkDown},
		{k.Fullscreen, k.Highlight, k.Bigger, k.Smaller},
		{k.Samples, k.Custom, k.Upload, k.Quiz},
		{k.Copy, k.Help, k.Quit},
	}
}
