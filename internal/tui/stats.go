package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/metcalfc/skim/internal/pacer"
)

func renderStats(s pacer.Snapshot, bar progress.Model) string {
	rows := [][2]string{
		{"Current speed", fmt.Sprintf("%d WPM", s.WPM)},
		{"Chunk size", fmt.Sprintf("%d", s.ChunkSize)},
		{"Completion", fmt.Sprintf("%d%%", int(math.Round(s.ProgressPercent)))},
		{"Words read", fmt.Sprintf("%d / %d", s.Position, s.TotalWords)},
		{"Time read", s.ElapsedLabel},
		{"Time remaining", s.RemainingLabel},
	}
	segments := make([]string, len(rows))
	for i, r := range rows {
		segments[i] = labelStyle.Render(r[0]+":") + " " + r[1]
	}
	return strings.Join(segments, "  ") + "\n" + bar.ViewAs(s.ProgressPercent/100)
}

func renderState(s pacer.Snapshot) string {
	switch {
	case s.Running:
		return runningStyle.Render("[READING]")
	case s.Finished:
		return runningStyle.Render("[DONE]")
	default:
		return pausedStyle.Render("[PAUSED]")
	}
}
