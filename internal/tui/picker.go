package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/metcalfc/skim/internal/library"
	"github.com/metcalfc/skim/internal/reader"
)

type sampleItem struct {
	sample library.Sample
}

func (i sampleItem) Title() string { return i.sample.Title }

func (i sampleItem) Description() string {
	return strings.Join([]string{i.sample.ID, pluralWords(reader.CountWords(i.sample.Text))}, " · ")
}

func (i sampleItem) FilterValue() string { return i.sample.Title }

func pluralWords(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}

func newSampleList() list.Model {
	samples := library.Samples()
	items := make([]list.Item, len(samples))
	for i, s := range samples {
		items[i] = sampleItem{sample: s}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Text Source"
	l.SetShowStatusBar(false)
	return l
}

func (m *Model) updateSamples(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && m.samples.FilterState() != list.Filtering {
		switch km.String() {
		case "esc", "q":
			m.mode = modeRead
			return m, nil
		case "enter":
			if item, ok := m.samples.SelectedItem().(sampleItem); ok {
				m.load(Source{Title: item.sample.Title, Text: item.sample.Text})
			}
			m.mode = modeRead
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.samples, cmd = m.samples.Update(msg)
	return m, cmd
}

func (m *Model) updateCustom(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.custom.Blur()
			m.mode = modeRead
			return m, nil
		case "ctrl+s":
			text := m.custom.Value()
			if strings.TrimSpace(text) == "" {
				m.setError("Please enter some text to read.")
				return m, nil
			}
			m.custom.Blur()
			m.load(Source{Title: "Custom text", Text: text})
			m.mode = modeRead
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.custom, cmd = m.custom.Update(msg)
	return m, cmd
}

func (m *Model) viewCustom() string {
	return strings.Join([]string{
		titleStyle.Render("Custom text"),
		m.custom.View(),
		m.renderStatus(),
		statusStyle.Render("ctrl+s: load text  esc: cancel"),
	}, "\n")
}

func (m *Model) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && (km.String() == "esc" || km.String() == "q") {
		m.mode = modeRead
		return m, nil
	}

	var cmd tea.Cmd
	m.files, cmd = m.files.Update(msg)

	if ok, path := m.files.DidSelectFile(msg); ok {
		m.mode = modeRead
		return m, tea.Batch(cmd, readFile(path, false))
	}
	if ok, path := m.files.DidSelectDisabledFile(msg); ok {
		m.setError("Unsupported file type: " + path + ". Supported: " + strings.Join(reader.SupportedFormats(), ", "))
		return m, cmd
	}
	return m, cmd
}

func (m *Model) viewUpload() string {
	return strings.Join([]string{
		titleStyle.Render("Open a file") + "  " + statusStyle.Render(strings.Join(reader.AllowedExtensions(), " ")),
		m.files.View(),
		m.renderStatus(),
		statusStyle.Render("enter: open  esc: cancel"),
	}, "\n")
}
