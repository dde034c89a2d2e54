package editor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	activityMaxEntries = 32
	activityLineHeight = 14
)

// ActivityEntry is a single line in the activity log.
type ActivityEntry struct {
	Frame   int
	Swatch  color.RGBA // paint color, zero for entries without one
	Message string
}

// ActivityLog is a ring buffer of recent commits and cancels shown in the
// side panel.
type ActivityLog struct {
	entries []ActivityEntry
	head    int
	count   int
}

// NewActivityLog creates a log with a fixed capacity.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{
		entries: make([]ActivityEntry, activityMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (al *ActivityLog) Add(frame int, swatch color.RGBA, msg string) {
	al.entries[al.head] = ActivityEntry{
		Frame:   frame,
		Swatch:  swatch,
		Message: msg,
	}
	al.head = (al.head + 1) % activityMaxEntries
	if al.count < activityMaxEntries {
		al.count++
	}
}

// Len returns the number of stored entries.
func (al *ActivityLog) Len() int { return al.count }

// Recent returns entries in chronological order (oldest first).
func (al *ActivityLog) Recent() []ActivityEntry {
	result := make([]ActivityEntry, al.count)
	for i := 0; i < al.count; i++ {
		idx := (al.head - al.count + i + activityMaxEntries) % activityMaxEntries
		result[i] = al.entries[idx]
	}
	return result
}

// Draw renders the newest entries that fit in the box at (x, y, w, h),
// newest at the bottom.
func (al *ActivityLog) Draw(screen *ebiten.Image, x, y, w, h int) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 18, G: 20, B: 24, A: 255}, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w), 16, color.RGBA{R: 30, G: 34, B: 42, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "ACTIVITY", x+6, y)

	entries := al.Recent()
	maxVisible := (h - 20) / activityLineHeight
	if maxVisible <= 0 {
		return
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	ly := y + 20
	for i, e := range entries {
		if i == len(entries)-1 {
			vector.FillRect(screen, float32(x+2), float32(ly), float32(w-4), activityLineHeight, color.RGBA{R: 40, G: 46, B: 58, A: 200}, false)
		}
		if e.Swatch.A > 0 {
			vector.FillRect(screen, float32(x+5), float32(ly+4), 5, 6, e.Swatch, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Frame, e.Message), x+14, ly)
		ly += activityLineHeight
	}
}
