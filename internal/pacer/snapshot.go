package pacer

import (
	"fmt"
	"math"
	"time"
)

// Snapshot is a read-only view of a Pacer with derived statistics.
type Snapshot struct {
	Position   int
	TotalWords int
	Running    bool
	WPM        int
	ChunkSize  int

	// Finished reports that the last run stopped on the final chunk. It is
	// cleared by starting, stepping, resetting or loading.
	Finished bool

	// Chunk holds the words currently highlighted.
	Chunk []string

	ProgressPercent float64
	Elapsed         time.Duration
	Remaining       time.Duration
	ElapsedLabel    string
	RemainingLabel  string
	TickInterval    time.Duration
}

// WordsPerSecond is the reading speed expressed per second.
func (s Snapshot) WordsPerSecond() float64 {
	return float64(s.WPM) / 60
}

func (p *Pacer) snapshotLocked() Snapshot {
	total := len(p.words)
	s := Snapshot{
		Position:     p.position,
		TotalWords:   total,
		Running:      p.running,
		Finished:     p.finished && p.position >= p.lastChunkLocked(),
		WPM:          p.wpm,
		ChunkSize:    p.chunkSize,
		TickInterval: tickInterval(p.wpm, p.chunkSize),
	}

	if total > 0 {
		s.ProgressPercent = float64(p.position) / float64(total) * 100
		end := min(p.position+p.chunkSize, total)
		s.Chunk = append([]string(nil), p.words[p.position:end]...)
	}

	s.Elapsed = p.accumulated
	if p.running {
		if d := p.clock.Now().Sub(p.runStartedAt); d > 0 {
			s.Elapsed += d
		}
	}

	remainingSecs := math.Max(0, float64(total-p.position)/s.WordsPerSecond())
	s.Remaining = time.Duration(remainingSecs * float64(time.Second))

	s.ElapsedLabel = FormatClock(s.Elapsed)
	s.RemainingLabel = FormatClock(s.Remaining)
	return s
}

// FormatClock renders d as MM:SS with whole seconds. Minutes are not capped
// at 59, so long texts read as e.g. "125:07".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
