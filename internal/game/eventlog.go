package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	logPanelWidth = 240
	logMaxEntries = 60
	logLineHeight = 14
	logTitleH     = 18
)

// EventKind classifies an event log line.
type EventKind uint8

const (
	EventClick EventKind = iota
	EventHazard
	EventReload
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventHazard:
		return "hazard"
	case EventReload:
		return "reload"
	case EventError:
		return "error"
	}
	return "unknown"
}

func (k EventKind) color() color.Color {
	switch k {
	case EventClick:
		return colornames.Lightgreen
	case EventHazard:
		return colornames.Orange
	case EventReload:
		return colornames.Skyblue
	default:
		return colornames.Tomato
	}
}

// EventEntry is a single line in the event log.
type EventEntry struct {
	Tick    int
	Kind    EventKind
	Message string
}

// EventLog is a ring buffer of board events rendered on-screen.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]EventEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (el *EventLog) Add(tick int, kind EventKind, msg string) {
	el.entries[el.head] = EventEntry{Tick: tick, Kind: kind, Message: msg}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Addf is Add with formatting.
func (el *EventLog) Addf(tick int, kind EventKind, format string, args ...any) {
	el.Add(tick, kind, fmt.Sprintf(format, args...))
}

// Len returns the number of stored entries.
func (el *EventLog) Len() int {
	return el.count
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the log panel at panelX, newest entry at the bottom.
func (el *EventLog) Draw(screen *ebiten.Image, face ebtext.Face, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, logPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, px, 0, logPanelWidth, logTitleH, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	drawText(screen, face, "EVENT LOG", panelX+8, 3, colornames.White)
	vector.StrokeLine(screen, px, logTitleH, px+logPanelWidth, logTitleH, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := el.Recent()
	maxVisible := (panelH - logTitleH - 6) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	const recent = 3
	y := logTitleH + 4
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, px+2, float32(y), logPanelWidth-4, logLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, px+5, float32(y+4), 3, 6, e.Kind.color(), false)
		drawText(screen, face, fmt.Sprintf("%5d %s", e.Tick, e.Message), panelX+12, y+1, colornames.Gainsboro)
		y += logLineHeight
	}
}
