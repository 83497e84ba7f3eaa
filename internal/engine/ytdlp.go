package engine

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-dlp-gui/internal/download"
	"github.com/ytget/yt-dlp-gui/internal/model"
)

// ProgressInterval is how often go-ytdlp reports progress
const ProgressInterval = 500 * time.Millisecond

// yt-dlp output prefixes
const (
	ErrorLinePrefix   = "ERROR:"
	WarningLinePrefix = "WARNING:"
	StderrPipe        = "stderr"
	YTDLPCommand      = "yt-dlp"
)

// YTDLP implements download.Engine with the yt-dlp executable
type YTDLP struct {
	autoInstall bool
	installOnce sync.Once
	installErr  error
}

// NewYTDLP creates the engine. With autoInstall set, yt-dlp is downloaded by
// go-ytdlp the first time it is needed if it is not on PATH.
func NewYTDLP(autoInstall bool) *YTDLP {
	return &YTDLP{autoInstall: autoInstall}
}

// Download runs yt-dlp for one URL
func (e *YTDLP) Download(ctx context.Context, url string, cfg download.EngineConfig) error {
	if err := e.ensureInstalled(ctx); err != nil {
		return err
	}

	dl := buildCommand(cfg)

	fwd := &progressForwarder{fn: cfg.Progress}
	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		fwd.forward(toHookUpdate(update))
	})

	result, err := dl.Run(ctx, url)
	fwd.close()

	var lastError string
	if result != nil {
		lastError = forwardLogs(result.OutputLogs, cfg.Logger)
	}
	if err != nil {
		if lastError != "" {
			return fmt.Errorf("%s: %w", lastError, err)
		}
		return err
	}
	return nil
}

// ensureInstalled installs yt-dlp once when it is missing and auto-install is on
func (e *YTDLP) ensureInstalled(ctx context.Context) error {
	if !e.autoInstall {
		return nil
	}
	e.installOnce.Do(func() {
		if _, err := exec.LookPath(YTDLPCommand); err == nil {
			return
		}
		log.Printf("%s not found on PATH, installing", YTDLPCommand)
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			e.installErr = fmt.Errorf("install %s: %w", YTDLPCommand, err)
		}
	})
	return e.installErr
}

// buildCommand maps the engine configuration onto yt-dlp flags
func buildCommand(cfg download.EngineConfig) *ytdlp.Command {
	dl := ytdlp.New().
		Format(cfg.Format).
		Output(cfg.OutputTemplate).
		NoKeepVideo()

	if cfg.FFmpegDir != "" {
		dl = dl.FFmpegLocation(cfg.FFmpegDir)
	}
	if cfg.MergeFormat != "" {
		dl = dl.MergeOutputFormat(cfg.MergeFormat)
	}
	if cfg.RecodeFormat != "" {
		dl = dl.RecodeVideo(cfg.RecodeFormat)
	}
	if cfg.ExtractAudio {
		dl = dl.ExtractAudio().
			AudioFormat(cfg.AudioFormat).
			AudioQuality(cfg.AudioQuality)
	}
	if cfg.Subtitles {
		dl = dl.WriteSubs()
	}
	if cfg.Simulate {
		dl = dl.Simulate()
	}
	if cfg.Proxy != "" {
		dl = dl.Proxy(cfg.Proxy)
	}
	if cfg.Verbose {
		dl = dl.Verbose()
	}
	return dl
}

// toHookUpdate converts a go-ytdlp progress update to the engine-neutral record
func toHookUpdate(update ytdlp.ProgressUpdate) model.HookUpdate {
	u := model.HookUpdate{
		Status:   string(update.Status),
		Filename: update.Filename,
	}

	if update.TotalBytes > 0 {
		u.Percent = update.PercentString()
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			u.Speed = model.FormatSpeed(float64(update.DownloadedBytes) / elapsed.Seconds())
		}
	}

	if eta := update.ETA(); eta > 0 {
		u.ETA = model.FormatETA(int(eta.Seconds()))
	}
	return u
}

// forwardLogs sends yt-dlp stderr lines to logger and returns the last
// ERROR line, which the caller reports as the failure itself.
func forwardLogs(logs []*ytdlp.ResultLog, logger download.DiagnosticLogger) string {
	var lines []string
	for _, l := range logs {
		if l == nil || l.Pipe != StderrPipe {
			continue
		}
		if line := strings.TrimSpace(l.Line); line != "" {
			lines = append(lines, line)
		}
	}
	return dispatchLines(lines, logger)
}

func dispatchLines(lines []string, logger download.DiagnosticLogger) string {
	lastError := -1
	for i, line := range lines {
		if strings.HasPrefix(line, ErrorLinePrefix) {
			lastError = i
		}
	}

	for i, line := range lines {
		if i == lastError || logger == nil {
			continue
		}
		switch {
		case strings.HasPrefix(line, ErrorLinePrefix):
			logger.Error(strings.TrimSpace(strings.TrimPrefix(line, ErrorLinePrefix)))
		case strings.HasPrefix(line, WarningLinePrefix):
			logger.Warning(strings.TrimSpace(strings.TrimPrefix(line, WarningLinePrefix)))
		default:
			logger.Debug(line)
		}
	}

	if lastError < 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(lines[lastError], ErrorLinePrefix))
}

// progressForwarder drops updates that arrive after Download has returned
type progressForwarder struct {
	mu     sync.Mutex
	fn     func(model.HookUpdate)
	closed bool
}

func (f *progressForwarder) forward(u model.HookUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.fn == nil {
		return
	}
	f.fn(u)
}

func (f *progressForwarder) close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}
