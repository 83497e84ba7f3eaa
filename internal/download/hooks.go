package download

import (
	"fmt"
	"strings"

	"github.com/ytget/yt-dlp-gui/internal/model"
)

// NotAvailable replaces progress fields the engine did not report
const NotAvailable = "N/A"

// Log line prefixes of the diagnostic logger
const (
	PrefixDebug   = "[DEBUG] "
	PrefixWarning = "[WARN] "
	PrefixError   = "[ERROR] "
)

// dependencySignatures identify a missing ffmpeg/ffprobe executable
var dependencySignatures = []string{
	"[winerror 2]",
	"ffmpeg not found",
	"ffprobe not found",
	"ffprobe and ffmpeg not found",
}

// IsDependencyMissing reports whether msg says the post-processing tool could
// not be found or executed.
func IsDependencyMissing(msg string) bool {
	lower := strings.ToLower(msg)
	for _, sig := range dependencySignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}

// progressHook turns engine progress records into log lines for one URL.
type progressHook struct {
	index int
	total int
	emit  func(string)
}

func (h *progressHook) prefix() string {
	if h.total > 1 {
		return fmt.Sprintf("[%d/%d] ", h.index, h.total)
	}
	return ""
}

func (h *progressHook) handle(u model.HookUpdate) {
	switch u.Status {
	case model.HookStatusDownloading:
		h.emit(fmt.Sprintf("%s⬇ %s @ %s ETA %s", h.prefix(), orNA(u.Percent), orNA(u.Speed), orNA(u.ETA)))
	case model.HookStatusFinished:
		h.emit(h.prefix() + "✅ Download finished, starting post-processing...")
	}
}

func orNA(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NotAvailable
	}
	return s
}

// runLogger forwards engine diagnostics to the run's log channel.
type runLogger struct {
	emit    func(string)
	verbose bool
}

// Debug forwards a debug message when the run is verbose
func (l *runLogger) Debug(msg string) {
	if !l.verbose {
		return
	}
	l.emit(PrefixDebug + msg)
}

// Warning forwards a warning message
func (l *runLogger) Warning(msg string) {
	l.emit(PrefixWarning + msg)
}

// Error forwards an error message unless it reports a missing ffmpeg, which
// the worker already accounts for.
func (l *runLogger) Error(msg string) {
	if IsDependencyMissing(msg) {
		return
	}
	l.emit(PrefixError + msg)
}
