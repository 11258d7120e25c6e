//go:build gui

package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/metcalfc/skim/internal/display"
	"github.com/metcalfc/skim/internal/library"
	"github.com/metcalfc/skim/internal/pacer"
	"github.com/metcalfc/skim/internal/quiz"
	"github.com/metcalfc/skim/internal/reader"
	"github.com/metcalfc/skim/internal/watch"
)

const appName = "skim-gui"

// GUI text is drawn larger than body text.
const displayScale = 3

// refreshInterval keeps the elapsed time label moving between ticks.
const refreshInterval = 500 * time.Millisecond

type window struct {
	s        *session
	pacer    *pacer.Pacer
	settings display.Settings
	title    string
	path     string

	win      fyne.Window
	words    *fyne.Container
	status   *widget.Label
	message  *widget.Label
	progress *widget.ProgressBar
}

func hexColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.White
	}
	return c
}

func newText(s string, c color.Color, size float32, font display.FontFamily) *canvas.Text {
	t := canvas.NewText(s, c)
	t.TextSize = size
	t.TextStyle.Bold = true
	t.TextStyle.Monospace = font == display.FontMono
	t.TextStyle.Italic = font == display.FontSerif
	return t
}

// createWordDisplay anchors a single word on its recognition point.
func createWordDisplay(word string, size float32, font display.FontFamily, windowWidth float32) *fyne.Container {
	before, focus, after := reader.SplitAtORP(word)

	beforeText := newText(before, color.White, size, font)
	focusText := newText(focus, color.RGBA{R: 255, G: 0, B: 0, A: 255}, size, font)
	afterText := newText(after, color.White, size, font)

	centerX := windowWidth / 2
	beforeX := max(0, centerX-beforeText.MinSize().Width)
	beforeText.Move(fyne.NewPos(beforeX, 0))
	focusText.Move(fyne.NewPos(centerX, 0))
	afterText.Move(fyne.NewPos(centerX+focusText.MinSize().Width, 0))

	return &fyne.Container{
		Layout:  &centerVerticalLayout{},
		Objects: []fyne.CanvasObject{beforeText, focusText, afterText},
	}
}

// createChunkDisplay centres a multi-word chunk in the highlight colours.
func createChunkDisplay(chunk []string, size float32, settings display.Settings) fyne.CanvasObject {
	colors := settings.Highlight.Colors()
	text := newText(strings.Join(chunk, " "), hexColor(colors.Foreground), size, settings.Font)
	if colors.Background == "" {
		return container.NewCenter(text)
	}
	bg := canvas.NewRectangle(hexColor(colors.Background))
	return container.NewCenter(container.NewStack(bg, container.NewPadded(text)))
}

type centerVerticalLayout struct{}

func (l *centerVerticalLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var maxH float32
	for _, o := range objects {
		maxH = max(maxH, o.MinSize().Height)
	}
	return fyne.NewSize(0, maxH)
}

func (l *centerVerticalLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var maxH float32
	for _, o := range objects {
		maxH = max(maxH, o.MinSize().Height)
	}
	y := max(0, (size.Height-maxH)/2)
	for _, o := range objects {
		o.Move(fyne.NewPos(o.Position().X, y))
		o.Resize(o.MinSize())
	}
}

func (w *window) render(snap pacer.Snapshot) {
	width := w.win.Canvas().Size().Width
	if width <= 0 {
		width = 800
	}
	size := w.settings.Size.Points() * displayScale

	var content fyne.CanvasObject = widget.NewLabel("No text to read.")
	switch len(snap.Chunk) {
	case 0:
	case 1:
		content = createWordDisplay(snap.Chunk[0], size, w.settings.Font, width)
	default:
		content = createChunkDisplay(snap.Chunk, size, w.settings)
	}
	w.words.Objects = []fyne.CanvasObject{content}
	w.words.Refresh()

	state := " [PAUSED]"
	switch {
	case snap.Running:
		state = ""
	case snap.Finished:
		state = " [DONE]"
	}
	w.status.SetText(fmt.Sprintf("%s | Words %d/%d | %d WPM | Chunk %d | %d%% | Read %s | Left %s%s",
		w.title, snap.Position, snap.TotalWords, snap.WPM, snap.ChunkSize,
		int(math.Round(snap.ProgressPercent)), snap.ElapsedLabel, snap.RemainingLabel, state))
	w.progress.SetValue(snap.ProgressPercent / 100)
}

func (w *window) load(title, path, text string) {
	w.title = title
	w.path = path
	w.pacer.LoadText(text)
	w.message.SetText(fmt.Sprintf("Loaded text with %d words.", len(w.pacer.Words())))
	w.s.log.Info().Str("source", title).Msg("text loaded")
}

func (w *window) openFile() {
	w.pacer.Pause()
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		path := rc.URI().Path()
		text, err := reader.ExtractText(path)
		if err != nil {
			dialog.ShowError(fmt.Errorf("could not read the file: %w", err), w.win)
			return
		}
		w.load(rc.URI().Name(), path, text)
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter(reader.AllowedExtensions()))
	d.Show()
}

func (w *window) enterText() {
	w.pacer.Pause()
	entry := widget.NewMultiLineEntry()
	entry.SetPlaceHolder("Paste or type your own text here...")
	entry.SetMinRowsVisible(10)
	dialog.ShowCustomConfirm("Custom text", "Load text", "Cancel", entry, func(ok bool) {
		if !ok {
			return
		}
		if strings.TrimSpace(entry.Text) == "" {
			dialog.ShowInformation("Custom text", "Please enter some text to read.", w.win)
			return
		}
		w.load("Custom text", "", entry.Text)
	}, w.win)
}

func (w *window) takeQuiz() {
	w.pacer.Pause()
	w.askQuestion(quiz.NewSession(w.s.bank))
}

func (w *window) askQuestion(q *quiz.Session) {
	current := q.Current()
	radio := widget.NewRadioGroup(current.Options, func(choice string) {
		if err := q.SelectText(choice); err != nil {
			w.s.log.Error().Err(err).Msg("quiz answer")
		}
	})
	if sel, ok := q.Selected(); ok {
		radio.SetSelected(current.Options[sel])
	}
	body := container.NewVBox(
		widget.NewLabel(fmt.Sprintf("Question %d of %d", q.Index()+1, q.Len())),
		widget.NewLabelWithStyle(current.Prompt, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		radio,
	)
	next := "Next"
	if q.IsLast() {
		next = "Submit"
	}
	dialog.ShowCustomConfirm(q.Title(), next, "Cancel", body, func(ok bool) {
		if !ok {
			return
		}
		if !q.CanAdvance() {
			w.askQuestion(q)
			return
		}
		q.Next()
		if q.Done() {
			msg := fmt.Sprintf("Your score: %d out of %d", q.Score(), q.Len())
			w.message.SetText(msg)
			dialog.ShowInformation("Quiz Completed!", msg, w.win)
			return
		}
		w.askQuestion(q)
	}, w.win)
}

func (w *window) toggleFullscreen() {
	w.win.SetFullScreen(w.settings.ToggleFullscreen())
}

func (w *window) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeySpace:
		w.pacer.Toggle()
	case fyne.KeyUp:
		w.pacer.IncreaseSpeed()
	case fyne.KeyDown:
		w.pacer.DecreaseSpeed()
	case fyne.KeyLeft:
		w.pacer.StepBack()
	case fyne.KeyRight:
		w.pacer.StepForward()
	case fyne.KeyF, fyne.KeyF11:
		w.toggleFullscreen()
	case fyne.KeyEscape:
		if w.settings.Fullscreen {
			w.toggleFullscreen()
		}
	case fyne.KeyQ:
		w.pacer.Close()
		fyne.CurrentApp().Quit()
	}
}

func (w *window) handleRune(r rune) {
	switch r {
	case 'r', 'R':
		w.pacer.Reset()
	case ']':
		w.pacer.SetChunkSize(w.pacer.Snapshot().ChunkSize + 1)
	case '[':
		w.pacer.SetChunkSize(w.pacer.Snapshot().ChunkSize - 1)
	case 'c', 'C':
		w.settings.SetHighlightStyle(w.settings.Highlight.Next())
		w.message.SetText("Highlight style: " + w.settings.Highlight.Label())
		w.render(w.pacer.Snapshot())
	case 'g', 'G':
		w.settings.Font = w.settings.Font.Next()
		w.message.SetText("Font: " + w.settings.Font.Label())
		w.render(w.pacer.Snapshot())
	case '+', '=':
		w.settings.Size = w.settings.Size.Bigger()
		w.render(w.pacer.Snapshot())
	case '-':
		w.settings.Size = w.settings.Size.Smaller()
		w.render(w.pacer.Snapshot())
	}
}

func (w *window) toolbar() fyne.CanvasObject {
	samples := library.Samples()
	titles := make([]string, len(samples))
	for i, s := range samples {
		titles[i] = s.Title
	}
	picker := widget.NewSelect(titles, func(title string) {
		for _, s := range samples {
			if s.Title == title && title != w.title {
				w.load(s.Title, "", s.Text)
			}
		}
	})
	picker.PlaceHolder = "Sample text"

	return container.NewHBox(
		picker,
		widget.NewButton("Custom text", w.enterText),
		widget.NewButton("Open file", w.openFile),
		widget.NewButton("Quiz", w.takeQuiz),
		widget.NewButton("Fullscreen", w.toggleFullscreen),
	)
}

// runReader opens the reader window and blocks until it is closed.
func runReader(ctx context.Context, s *session) error {
	a := app.New()
	w := &window{
		s:        s,
		settings: s.settings,
		win:      a.NewWindow(appName + " - Speed Reader"),
		words:    container.NewStack(),
		status:   widget.NewLabel(""),
		message:  widget.NewLabel(""),
		progress: widget.NewProgressBar(),
	}
	w.status.Alignment = fyne.TextAlignCenter
	w.progress.TextFormatter = func() string { return "" }

	w.pacer = pacer.New(
		pacer.WithWPM(s.cfg.WPM),
		pacer.WithChunkSize(s.cfg.ChunkSize),
		pacer.WithLogger(s.log),
		pacer.WithOnChange(func(snap pacer.Snapshot) {
			fyne.Do(func() { w.render(snap) })
		}),
	)
	defer w.pacer.Close()

	controls := widget.NewLabel("SPACE: start/pause  ↑/↓: speed  ←/→: chunk  [/]: chunk size  +/-: text size  C: highlight  G: font  R: reset  F: fullscreen  Q: quit")
	controls.Alignment = fyne.TextAlignCenter

	w.win.SetContent(container.NewBorder(
		container.NewVBox(w.toolbar(), w.status),
		container.NewVBox(w.progress, w.message, controls),
		nil, nil,
		w.words,
	))
	w.win.Canvas().SetOnTypedKey(w.handleKey)
	w.win.Canvas().SetOnTypedRune(w.handleRune)
	w.win.Resize(fyne.NewSize(900, 600))
	w.win.SetFullScreen(w.settings.Fullscreen)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w.win.SetOnClosed(func() {
		cancel()
		w.pacer.Close()
	})

	if s.cfg.Watch && s.source.Path != "" {
		fw := watch.New(s.source.Path, func(path string) {
			text, err := reader.ExtractText(path)
			fyne.Do(func() {
				if err != nil {
					w.message.SetText("Reload failed: " + err.Error())
					return
				}
				if path == w.path {
					w.load(w.title, path, text)
				}
			})
		}, watch.WithLogger(s.log))
		go func() {
			if err := fw.Run(ctx); err != nil {
				s.log.Warn().Err(err).Msg("file watcher stopped")
			}
		}()
	}

	go func() {
		t := time.NewTicker(refreshInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if snap := w.pacer.Snapshot(); snap.Running {
					fyne.Do(func() { w.render(snap) })
				}
			}
		}
	}()

	a.Lifecycle().SetOnStarted(func() {
		w.load(s.source.Title, s.source.Path, s.source.Text)
	})

	w.win.ShowAndRun()
	return nil
}
