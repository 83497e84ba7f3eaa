package download

import (
	"context"

	"github.com/ytget/yt-dlp-gui/internal/model"
)

// Engine downloads a single URL. Download blocks until the transfer and its
// post-processing are done and returns a non-nil error on failure.
type Engine interface {
	Download(ctx context.Context, url string, cfg EngineConfig) error
}

// DiagnosticLogger receives the engine's own log messages.
type DiagnosticLogger interface {
	Debug(msg string)
	Warning(msg string)
	Error(msg string)
}

// PlaylistResolver expands a playlist URL into the URLs of its videos.
type PlaylistResolver interface {
	IsPlaylistURL(url string) bool
	ResolvePlaylist(ctx context.Context, url string) ([]string, error)
}

// EngineConfig is the per-URL configuration handed to the Engine.
type EngineConfig struct {
	Format         string
	OutputTemplate string
	FFmpegDir      string

	// Post-processing
	MergeFormat  string
	RecodeFormat string
	ExtractAudio bool
	AudioFormat  string
	AudioQuality string

	Subtitles bool
	Simulate  bool
	Proxy     string
	Verbose   bool

	// Progress is called for every progress record of the engine.
	Progress func(model.HookUpdate)
	Logger   DiagnosticLogger
}
