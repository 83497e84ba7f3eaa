package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-dlp-gui/internal/config"
	"github.com/ytget/yt-dlp-gui/internal/download"
	"github.com/ytget/yt-dlp-gui/internal/engine"
	"github.com/ytget/yt-dlp-gui/internal/platform"
	"github.com/ytget/yt-dlp-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-dlp-gui"
	AppName = "yt-dlp GUI"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	env := config.LoadEnv()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		log.Printf("failed to ensure downloads dir: %v", err)
	}

	override := settings.GetFFmpegDirectory()
	if env.FFmpegDir != "" {
		override = env.FFmpegDir
	}
	ffmpegDir := platform.ResolveFFmpegDir(override)
	log.Printf("Using ffmpeg directory: %s", ffmpegDir)

	worker := download.NewWorker(engine.NewYTDLP(env.AutoInstall), ffmpegDir)
	worker.SetPlaylistResolver(platform.NewPlaylistExpander())

	ui.NewRootUI(myWindow, myApp, worker, env)

	myWindow.ShowAndRun()
}
