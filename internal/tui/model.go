// Package tui provides the Bubble Tea reading interface.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/metcalfc/skim/internal/display"
	"github.com/metcalfc/skim/internal/pacer"
	"github.com/metcalfc/skim/internal/quiz"
	"github.com/metcalfc/skim/internal/reader"
)

const refreshInterval = 500 * time.Millisecond

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeRead mode = iota
	modeSamples
	modeCustom
	modeUpload
	modeQuiz
)

// Source is a text to load into the pacer.
type Source struct {
	Title string
	Text  string
	// Path is set for texts read from disk so that reloads can be matched.
	Path string
}

// Options configures NewModel.
type Options struct {
	Pacer    *pacer.Pacer
	Feed     *Feed
	Settings display.Settings
	Bank     quiz.Bank
	Source   Source
	Logger   zerolog.Logger
	// Dir is where the file picker starts. Defaults to the working directory.
	Dir string
}

// ReloadMsg asks the model to re-read Path if it is the current source.
type ReloadMsg struct {
	Path string
}

type fileLoadedMsg struct {
	path   string
	text   string
	err    error
	reload bool
}

type refreshMsg time.Time

// Model implements the Bubble Tea reading UI.
type Model struct {
	pacer    *pacer.Pacer
	feed     *Feed
	snap     pacer.Snapshot
	words    []string
	settings display.Settings
	log      zerolog.Logger

	sourceTitle string
	sourcePath  string

	mode     mode
	keys     keyMap
	help     help.Model
	progress progress.Model
	samples  list.Model
	custom   textarea.Model
	files    filepicker.Model

	bank       quiz.Bank
	quiz       *quiz.Session
	quizCursor int

	status    string
	statusErr bool

	width  int
	height int
}

// NewModel constructs the reading UI and loads opts.Source into the pacer.
func NewModel(opts Options) *Model {
	if len(opts.Bank.Questions) == 0 {
		opts.Bank = quiz.DefaultBank()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type your own text here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	fp := filepicker.New()
	fp.AllowedTypes = reader.AllowedExtensions()
	fp.CurrentDirectory = opts.Dir
	if fp.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			fp.CurrentDirectory = wd
		}
	}

	m := &Model{
		pacer:    opts.Pacer,
		feed:     opts.Feed,
		settings: opts.Settings,
		log:      opts.Logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		samples:  newSampleList(),
		custom:   ta,
		files:    fp,
		bank:     opts.Bank,
		width:    80,
		height:   24,
	}
	m.resize()
	m.load(opts.Source)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.feed.wait(), refresh())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		var cmd tea.Cmd
		m.files, cmd = m.files.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.snap = pacer.Snapshot(msg)
		return m, m.feed.wait()

	case refreshMsg:
		if m.snap.Running {
			m.snap = m.pacer.Snapshot()
		}
		return m, refresh()

	case ReloadMsg:
		if msg.Path == "" || msg.Path != m.sourcePath {
			return m, nil
		}
		return m, readFile(msg.Path, true)

	case fileLoadedMsg:
		m.handleFileLoaded(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.pacer.Close()
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeSamples:
		return m.updateSamples(msg)
	case modeCustom:
		return m.updateCustom(msg)
	case modeUpload:
		return m.updateUpload(msg)
	case modeQuiz:
		return m.updateQuiz(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleReadKey(msg)
	}
	return m, nil
}

func (m *Model) handleReadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.pacer.Close()
		return m, tea.Quit
	case key.Matches(msg, k.Toggle):
		m.pacer.Toggle()
	case key.Matches(msg, k.Reset):
		m.pacer.Reset()
	case key.Matches(msg, k.Forward):
		m.pacer.StepForward()
	case key.Matches(msg, k.Back):
		m.pacer.StepBack()
	case key.Matches(msg, k.Faster):
		m.pacer.IncreaseSpeed()
	case key.Matches(msg, k.Slower):
		m.pacer.DecreaseSpeed()
	case key.Matches(msg, k.ChunkUp):
		m.pacer.SetChunkSize(m.snap.ChunkSize + 1)
	case key.Matches(msg, k.ChunkDown):
		m.pacer.SetChunkSize(m.snap.ChunkSize - 1)
	case key.Matches(msg, k.Fullscreen):
		m.settings.ToggleFullscreen()
	case key.Matches(msg, k.Highlight):
		m.settings.SetHighlightStyle(m.settings.Highlight.Next())
		m.setStatus("Highlight style: " + m.settings.Highlight.Label())
	case key.Matches(msg, k.Bigger):
		m.settings.Size = m.settings.Size.Bigger()
	case key.Matches(msg, k.Smaller):
		m.settings.Size = m.settings.Size.Smaller()
	case key.Matches(msg, k.Copy):
		m.copyChunk()
		return m, nil
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.Samples):
		m.pacer.Pause()
		m.mode = modeSamples
	case key.Matches(msg, k.Custom):
		m.pacer.Pause()
		m.mode = modeCustom
		return m, m.custom.Focus()
	case key.Matches(msg, k.Upload):
		m.pacer.Pause()
		m.mode = modeUpload
		return m, m.files.Init()
	case key.Matches(msg, k.Quiz):
		m.pacer.Pause()
		m.quiz = quiz.NewSession(m.bank)
		m.quizCursor = 0
		m.mode = modeQuiz
	default:
		return m, nil
	}
	m.snap = m.pacer.Snapshot()
	return m, nil
}

// load replaces the document and reports the word count.
func (m *Model) load(src Source) {
	m.pacer.LoadText(src.Text)
	m.words = m.pacer.Words()
	m.snap = m.pacer.Snapshot()
	m.sourceTitle = src.Title
	m.sourcePath = src.Path
	m.setStatus(fmt.Sprintf("Loaded text with %d words.", len(m.words)))
	m.log.Info().Str("source", src.Title).Int("words", len(m.words)).Msg("text loaded")
}

func (m *Model) handleFileLoaded(msg fileLoadedMsg) {
	if msg.err != nil {
		m.log.Error().Err(msg.err).Str("path", msg.path).Msg("read source")
		m.setError("Could not read " + filepath.Base(msg.path) + ": " + msg.err.Error())
		return
	}
	if msg.reload && msg.path != m.sourcePath {
		return
	}
	m.load(Source{Title: filepath.Base(msg.path), Text: msg.text, Path: msg.path})
	if msg.reload {
		m.setStatus(fmt.Sprintf("Reloaded %s: %d words.", filepath.Base(msg.path), len(m.words)))
	}
}

func (m *Model) copyChunk() {
	if len(m.snap.Chunk) == 0 {
		return
	}
	text := strings.Join(m.snap.Chunk, " ")
	if err := writeClipboard(text); err != nil {
		m.setError("Could not copy to clipboard: " + err.Error())
		return
	}
	m.setStatus(fmt.Sprintf("Copied %q to clipboard.", text))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.progress.Width = max(10, m.width-4)
	m.samples.SetSize(m.width, max(5, m.height-2))
	m.custom.SetWidth(max(10, m.width-4))
	m.custom.SetHeight(max(3, m.height-6))
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func readFile(path string, reload bool) tea.Cmd {
	return func() tea.Msg {
		text, err := reader.ExtractText(path)
		return fileLoadedMsg{path: path, text: text, err: err, reload: reload}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case modeSamples:
		return m.samples.View()
	case modeCustom:
		return m.viewCustom()
	case modeUpload:
		return m.viewUpload()
	case modeQuiz:
		return m.viewQuiz()
	}
	if m.settings.Fullscreen {
		return m.viewFullscreen()
	}
	return m.viewRead()
}

func (m *Model) viewRead() string {
	header := titleStyle.Render("skim") + "  " + m.sourceTitle + "  " + renderState(m.snap)
	stats := renderStats(m.snap, m.progress)
	status := m.renderStatus()
	helpView := m.help.View(m.keys)

	used := lipgloss.Height(header) + lipgloss.Height(stats) + lipgloss.Height(status) + lipgloss.Height(helpView)
	// Two border rows around the passage.
	passageHeight := max(1, m.height-used-2)
	passageWidth := max(10, int(float64(m.width)*columnFraction(m.settings.Size)))

	body := "No text to read."
	if len(m.words) > 0 {
		body = renderPassage(m.words, m.snap.Position, m.snap.ChunkSize, passageWidth, passageHeight, chunkStyle(m.settings.Highlight))
	}
	panel := panelStyle.Width(passageWidth + 2).Height(passageHeight).Render(body)
	panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)

	return strings.Join([]string{header, panel, stats, status, helpView}, "\n")
}

func (m *Model) viewFullscreen() string {
	focus := renderFocus(m.snap.Chunk, m.width, chunkStyle(m.settings.Highlight))
	if len(m.words) == 0 {
		focus = "No text to read."
	}
	body := lipgloss.Place(m.width, max(1, m.height-1), lipgloss.Left, lipgloss.Center, focus)
	footer := statusStyle.Render(fmt.Sprintf("%s  %d WPM  %d%%  f: exit fullscreen",
		renderState(m.snap), m.snap.WPM, int(m.snap.ProgressPercent)))
	return body + "\n" + footer
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
