package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/metcalfc/skim/internal/pacer"
)

// Feed carries pacer snapshots from the tick goroutine into the program.
// Only the newest snapshot is kept; an undelivered older one is dropped.
type Feed struct {
	ch chan pacer.Snapshot
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{ch: make(chan pacer.Snapshot, 1)}
}

// Publish queues s, replacing any snapshot not yet delivered. It never blocks.
func (f *Feed) Publish(s pacer.Snapshot) {
	for {
		select {
		case f.ch <- s:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

type snapshotMsg pacer.Snapshot

func (f *Feed) wait() tea.Cmd {
	if f == nil {
		return nil
	}
	return func() tea.Msg {
		return snapshotMsg(<-f.ch)
	}
}
