package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ytget/yt-dlp-gui/internal/config"
	"github.com/ytget/yt-dlp-gui/internal/download"
	"github.com/ytget/yt-dlp-gui/internal/engine"
	"github.com/ytget/yt-dlp-gui/internal/model"
	"github.com/ytget/yt-dlp-gui/internal/platform"
)

var version = "dev"

var errBadTimeout = errors.New("playlist timeout must be positive")

// cliConfig holds the parsed command line
type cliConfig struct {
	opts        model.Options
	ffmpegDir   string
	verbose     bool
	autoInstall bool
	noPlaylists bool
	showVersion bool

	playlistTimeout time.Duration
}

func main() {
	log.SetOutput(io.Discard)

	env := config.LoadEnv()
	cfg, err := parseArgs(os.Args[1:], env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if cfg.showVersion {
		fmt.Printf("yt-dlp-cli v%s\n", version)
		return
	}

	if err := platform.CreateDirectoryIfNotExists(cfg.opts.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	worker := download.NewWorker(engine.NewYTDLP(cfg.autoInstall), platform.ResolveFFmpegDir(cfg.ffmpegDir))
	expander := platform.NewPlaylistExpander()
	expander.SetTimeout(cfg.playlistTimeout)
	worker.SetPlaylistResolver(expander)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, ok := render(worker.Start(ctx, cfg.opts), os.Stdout, newBar(os.Stderr))
	if !ok || !summary.OK() {
		os.Exit(1)
	}
}

// parseArgs builds the run configuration. Environment overrides act as
// defaults for the matching flags.
func parseArgs(args []string, env config.Env) (cliConfig, error) {
	var cfg cliConfig
	var media, quality string

	fs := flag.NewFlagSet("yt-dlp-cli", flag.ContinueOnError)
	fs.StringVar(&media, "media", string(config.DefaultMediaType), "media type: audio, video or audio_video")
	fs.StringVar(&quality, "quality", string(config.DefaultQuality), "best, worst or a height such as 720p")
	fs.StringVar(&cfg.opts.OutputDir, "o", defaultOutputDir(), "destination folder")
	fs.BoolVar(&cfg.opts.Subtitles, "subs", false, "download subtitles")
	fs.BoolVar(&cfg.opts.Simulate, "simulate", false, "resolve the downloads without writing files")
	fs.StringVar(&cfg.opts.Proxy, "proxy", env.Proxy, "proxy URL")
	fs.StringVar(&cfg.ffmpegDir, "ffmpeg", env.FFmpegDir, "directory holding the ffmpeg binaries")
	fs.BoolVar(&cfg.verbose, "v", env.Verbose, "show yt-dlp debug output")
	fs.BoolVar(&cfg.autoInstall, "install", env.AutoInstall, "download yt-dlp if it is missing")
	fs.BoolVar(&cfg.noPlaylists, "no-playlists", false, "do not expand playlist URLs")
	fs.DurationVar(&cfg.playlistTimeout, "playlist-timeout", platform.DefaultParseTimeout, "time limit for listing one playlist")
	fs.BoolVar(&cfg.showVersion, "version", false, "print the version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: yt-dlp-cli [flags] URL [URL...]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.showVersion {
		return cfg, nil
	}

	cfg.opts.URLs = fs.Args()
	cfg.opts.MediaType = model.MediaType(media)
	cfg.opts.Quality = model.Quality(quality).Normalize()
	cfg.opts.Verbose = cfg.verbose
	cfg.opts.ExpandPlaylists = !cfg.noPlaylists

	if err := cfg.opts.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid arguments: %w", err)
	}
	if cfg.playlistTimeout <= 0 {
		return cfg, fmt.Errorf("invalid arguments: %w", errBadTimeout)
	}
	return cfg, nil
}

func defaultOutputDir() string {
	if dir, err := platform.GetHomeDownloadsDir(); err == nil {
		return dir
	}
	return config.FallbackDownloadDir
}

func newBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("downloads"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("url"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// render prints the run's log lines to out and tracks progress on bar. It
// returns the summary and whether one was received.
func render(events <-chan model.Event, out io.Writer, bar *progressbar.ProgressBar) (model.RunSummary, bool) {
	var summary model.RunSummary
	received := false

	for ev := range events {
		switch ev.Kind {
		case model.EventLog:
			_ = bar.Clear()
			fmt.Fprintln(out, ev.Line)
		case model.EventProgress:
			if ev.Progress.Total > 0 && int64(ev.Progress.Total) != bar.GetMax64() {
				bar.ChangeMax(ev.Progress.Total)
			}
			_ = bar.Set(ev.Progress.Current)
		case model.EventDone:
			_ = bar.Finish()
			if ev.Summary != nil {
				summary = *ev.Summary
				received = true
			}
		}
	}
	return summary, received
}
