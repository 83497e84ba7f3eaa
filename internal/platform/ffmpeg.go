package platform

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// FFmpeg lookup constants
const (
	FFmpegCommand     = "ffmpeg"
	FFmpegVersionFlag = "-version"
	WindowsExeSuffix  = ".exe"

	// BundledFFmpegDir is where packaged builds ship ffmpeg, relative to the executable
	BundledFFmpegDir = "ffmpeg/bin"

	ProbeTimeout = 10 * time.Second
)

// FFmpegBinaryName returns the ffmpeg executable name for the current OS
func FFmpegBinaryName() string {
	if runtime.GOOS == OSWindows {
		return FFmpegCommand + WindowsExeSuffix
	}
	return FFmpegCommand
}

// ResolveFFmpegDir returns the directory holding the ffmpeg binaries. It is
// called once at startup; the result is passed to the download worker.
//
// Order: override, the bundled directory next to the executable, the
// directory of ffmpeg on PATH. When none has ffmpeg the bundled directory is
// returned so that the startup probe reports where ffmpeg was expected.
func ResolveFFmpegDir(override string) string {
	return resolveFFmpegDir(override, executableDir(), exec.LookPath)
}

func resolveFFmpegDir(override, exeDir string, lookPath func(string) (string, error)) string {
	if override != "" {
		return override
	}

	bundled := filepath.Join(exeDir, filepath.FromSlash(BundledFFmpegDir))
	if fileExists(filepath.Join(bundled, FFmpegBinaryName())) {
		return bundled
	}

	if path, err := lookPath(FFmpegCommand); err == nil {
		return filepath.Dir(path)
	}
	return bundled
}

// ProbeFFmpeg runs "ffmpeg -version" from dir. It returns the binary path
// and whether the binary could be executed.
func ProbeFFmpeg(dir string) (string, bool) {
	path := filepath.Join(dir, FFmpegBinaryName())

	ctx, cancel := context.WithTimeout(context.Background(), ProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, FFmpegVersionFlag)
	if err := cmd.Run(); err != nil {
		return path, false
	}
	return path, true
}

// executableDir returns the directory of the running binary, falling back to
// the working directory.
func executableDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
