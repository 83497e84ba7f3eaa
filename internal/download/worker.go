package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-dlp-gui/internal/model"
	"github.com/ytget/yt-dlp-gui/internal/platform"
)

// Post-processing defaults
const (
	DefaultOutputTemplate = "%(title)s.%(ext)s"
	MergeOutputFormat     = "mp4"
	AudioOutputFormat     = "mp3"
	AudioOutputQuality    = "192"
)

// EventBufferSize is the capacity of the channel returned by Start
const EventBufferSize = 64

// LowDiskSpaceThreshold triggers a warning before the run starts
const LowDiskSpaceThreshold = 1 << 30

// Worker runs downloads for the UI. One run may be active at a time.
type Worker struct {
	engine    Engine
	ffmpegDir string
	resolver  PlaylistResolver

	probeFFmpeg func(dir string) (string, bool)
	freeSpace   func(dir string) (uint64, error)

	running atomic.Bool
}

// NewWorker creates a worker driving engine. ffmpegDir is the resolved
// directory of the ffmpeg binaries.
func NewWorker(engine Engine, ffmpegDir string) *Worker {
	return &Worker{
		engine:      engine,
		ffmpegDir:   ffmpegDir,
		probeFFmpeg: platform.ProbeFFmpeg,
		freeSpace:   platform.FreeSpace,
	}
}

// SetPlaylistResolver sets the resolver used by runs that expand playlists
func (w *Worker) SetPlaylistResolver(resolver PlaylistResolver) {
	w.resolver = resolver
}

// FFmpegDir returns the ffmpeg directory the worker passes to the engine
func (w *Worker) FFmpegDir() string {
	return w.ffmpegDir
}

// IsRunning reports whether a run is in progress
func (w *Worker) IsRunning() bool {
	return w.running.Load()
}

// Start runs opts on a new goroutine. The returned channel receives the run's
// events in order and is closed after the EventDone event.
func (w *Worker) Start(ctx context.Context, opts model.Options) <-chan model.Event {
	out := make(chan model.Event, EventBufferSize)
	go func() {
		defer close(out)
		w.Run(ctx, opts, out)
	}()
	return out
}

// Run processes every URL of opts sequentially, sending events to out. It
// always sends exactly one EventDone event, as its last event.
func (w *Worker) Run(ctx context.Context, opts model.Options, out chan<- model.Event) model.RunSummary {
	r := &run{
		id:  uuid.NewString(),
		out: out,
	}

	if !w.running.CompareAndSwap(false, true) {
		r.log(PrefixError + "a download is already in progress")
		summary := model.RunSummary{
			RunID:      r.id,
			Total:      len(opts.URLs),
			Failed:     len(opts.URLs),
			StartedAt:  time.Now(),
			FinishedAt: time.Now(),
		}
		out <- model.DoneEvent(summary)
		return summary
	}
	defer w.running.Store(false)

	opts = opts.Clone()
	started := time.Now()
	log.Printf("Run %s started with %d URL(s)", r.id, len(opts.URLs))

	w.checkDependencies(r, opts.OutputDir)

	urls := opts.URLs
	if opts.ExpandPlaylists {
		urls = w.expandPlaylists(ctx, r, urls)
	}
	format := BuildFormat(opts.MediaType, opts.Quality)
	total := len(urls)

	succeeded, failed := 0, 0
	r.progress(0, total)

	for i, url := range urls {
		index := i + 1
		r.log(fmt.Sprintf("Starting %d/%d: %s", index, total, url))

		hook := &progressHook{index: index, total: total, emit: r.log}
		cfg := w.engineConfig(opts, format, r)
		cfg.Progress = hook.handle

		err := w.downloadOne(ctx, url, cfg)
		switch {
		case err == nil:
			succeeded++
			r.log(fmt.Sprintf("Finished %d/%d: %s", index, total, url))
		case IsDependencyMissing(err.Error()):
			failed++
			log.Printf("Run %s: %s failed on missing ffmpeg: %v", r.id, url, err)
		default:
			failed++
			r.log(fmt.Sprintf("%s%s: %v", PrefixError, url, err))
			log.Printf("Run %s: download failed for %s: %v", r.id, url, err)
		}

		r.progress(index, total)
	}

	summary := model.RunSummary{
		RunID:      r.id,
		Total:      total,
		Succeeded:  succeeded,
		Failed:     failed,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	r.log(summary.Message())
	log.Printf("Run %s finished: %d/%d succeeded", r.id, succeeded, total)

	out <- model.DoneEvent(summary)
	return summary
}

// downloadOne calls the engine, converting a panic into an error.
func (w *Worker) downloadOne(ctx context.Context, url string, cfg EngineConfig) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("download engine panicked: %v", rec)
		}
	}()
	return w.engine.Download(ctx, url, cfg)
}

// engineConfig builds the per-URL engine configuration
func (w *Worker) engineConfig(opts model.Options, format string, r *run) EngineConfig {
	cfg := EngineConfig{
		Format:         format,
		OutputTemplate: filepath.Join(opts.OutputDir, DefaultOutputTemplate),
		FFmpegDir:      w.ffmpegDir,
		MergeFormat:    MergeOutputFormat,
		Subtitles:      opts.Subtitles,
		Simulate:       opts.Simulate,
		Proxy:          opts.Proxy,
		Verbose:        opts.Verbose,
		Logger:         &runLogger{emit: r.log, verbose: opts.Verbose},
	}

	if opts.MediaType == model.MediaAudioOnly {
		cfg.ExtractAudio = true
		cfg.AudioFormat = AudioOutputFormat
		cfg.AudioQuality = AudioOutputQuality
	} else {
		cfg.RecodeFormat = MergeOutputFormat
	}
	return cfg
}

// checkDependencies logs the ffmpeg status and the free space at the
// destination. Neither check stops the run.
func (w *Worker) checkDependencies(r *run, outputDir string) {
	if path, ok := w.probeFFmpeg(w.ffmpegDir); ok {
		r.log("[INFO] ✅ ffmpeg found at: " + path)
	} else {
		r.log("[WARNING] ❌ ffmpeg NOT found at: " + path + " - merge might fail!")
	}

	free, err := w.freeSpace(outputDir)
	if err != nil {
		log.Printf("Run %s: free space check failed for %s: %v", r.id, outputDir, err)
		return
	}
	if free < LowDiskSpaceThreshold {
		r.log(fmt.Sprintf("[WARNING] only %s free in %s", platform.FormatBytes(free), outputDir))
	}
}

// expandPlaylists replaces playlist URLs with the URLs of their videos
func (w *Worker) expandPlaylists(ctx context.Context, r *run, urls []string) []string {
	if w.resolver == nil {
		return urls
	}

	expanded := make([]string, 0, len(urls))
	for _, url := range urls {
		if !w.resolver.IsPlaylistURL(url) {
			expanded = append(expanded, url)
			continue
		}

		videos, err := w.resolver.ResolvePlaylist(ctx, url)
		if err != nil || len(videos) == 0 {
			if err == nil {
				err = fmt.Errorf("playlist is empty")
			}
			r.log(fmt.Sprintf("%splaylist %s not expanded: %v", PrefixWarning, url, err))
			expanded = append(expanded, url)
			continue
		}

		r.log(fmt.Sprintf("[INFO] playlist %s: %d videos", url, len(videos)))
		expanded = append(expanded, videos...)
	}
	return expanded
}

// run holds the state of one invocation of Worker.Run
type run struct {
	id  string
	out chan<- model.Event
}

func (r *run) log(line string) {
	r.out <- model.LogEvent(line)
}

func (r *run) progress(current, total int) {
	r.out <- model.ProgressEvent(current, total)
}
