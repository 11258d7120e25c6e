//go:build !gui

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/metcalfc/skim/internal/pacer"
	"github.com/metcalfc/skim/internal/tui"
	"github.com/metcalfc/skim/internal/watch"
)

const appName = "skim"

// runReader runs the terminal UI until the user quits. With --watch the
// source file is watched alongside and reloads are sent into the program.
func runReader(ctx context.Context, s *session) error {
	feed := tui.NewFeed()
	p := pacer.New(
		pacer.WithWPM(s.cfg.WPM),
		pacer.WithChunkSize(s.cfg.ChunkSize),
		pacer.WithLogger(s.log),
		pacer.WithOnChange(feed.Publish),
	)
	defer p.Close()

	m := tui.NewModel(tui.Options{
		Pacer:    p,
		Feed:     feed,
		Settings: s.settings,
		Bank:     s.bank,
		Source:   tui.Source{Title: s.source.Title, Text: s.source.Text, Path: s.source.Path},
		Logger:   s.log,
	})
	prog := tea.NewProgram(m, tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gctx)
	defer stopWatch()

	if s.cfg.Watch && s.source.Path != "" {
		w := watch.New(s.source.Path, func(path string) {
			prog.Send(tui.ReloadMsg{Path: path})
		}, watch.WithLogger(s.log))
		g.Go(func() error {
			if err := w.Run(watchCtx); err != nil {
				s.log.Warn().Err(err).Msg("file watcher stopped")
			}
			return nil
		})
	}

	g.Go(func() error {
		defer stopWatch()
		if _, err := prog.Run(); err != nil {
			return fmt.Errorf("run reader: %w", err)
		}
		return nil
	})

	return g.Wait()
}
