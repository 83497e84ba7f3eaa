package model

import (
	"fmt"
	"strings"
	"time"
)

// EventKind tells which field of an Event is set
type EventKind int

const (
	EventLog EventKind = iota
	EventProgress
	EventDone
)

// Progress is a (current, total) pair. Current counts finished URLs.
type Progress struct {
	Current int
	Total   int
}

// Fraction returns Current/Total in [0, 1]
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total)
}

// Event is one message sent from the worker to the UI.
type Event struct {
	Kind     EventKind
	Line     string
	Progress Progress
	Summary  *RunSummary
}

// LogEvent creates a log line event
func LogEvent(line string) Event {
	return Event{Kind: EventLog, Line: line}
}

// ProgressEvent creates a progress event
func ProgressEvent(current, total int) Event {
	return Event{Kind: EventProgress, Progress: Progress{Current: current, Total: total}}
}

// DoneEvent creates the terminal event of a run
func DoneEvent(summary RunSummary) Event {
	return Event{Kind: EventDone, Summary: &summary}
}

// RunSummary is the outcome of one run
type RunSummary struct {
	RunID      string
	Total      int
	Succeeded  int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// OK reports whether every URL of the run succeeded
func (s RunSummary) OK() bool {
	return s.Failed == 0
}

// Status returns the final status of the run
func (s RunSummary) Status() RunStatus {
	if s.OK() {
		return RunStatusCompleted
	}
	return RunStatusCompletedWithErrors
}

// Message returns the one-line summary shown at the end of the run
func (s RunSummary) Message() string {
	if s.OK() {
		return fmt.Sprintf("All downloads completed successfully (%d/%d)", s.Succeeded, s.Total)
	}
	return fmt.Sprintf("Completed with errors: %d/%d downloads succeeded", s.Succeeded, s.Total)
}

// Hook statuses reported by the engine
const (
	HookStatusDownloading = "downloading"
	HookStatusFinished    = "finished"
)

// HookUpdate is one progress record from the download engine. Display fields
// may be empty when the engine does not know them.
type HookUpdate struct {
	Status   string
	Percent  string
	Speed    string
	ETA      string
	Filename string
}

// FormatETA returns seconds formatted as mm:ss or hh:mm:ss, or "" if unknown
func FormatETA(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var b strings.Builder
	if hours > 0 {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%02d:%02d", minutes, secs))
	return b.String()
}

// FormatSpeed returns a bytes-per-second rate in MB/s, or "" if unknown
func FormatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
}
