package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveFFmpegDir(t *testing.T) {
	withBundle := t.TempDir()
	bundled := filepath.Join(withBundle, filepath.FromSlash(BundledFFmpegDir))
	if err := os.MkdirAll(bundled, 0755); err != nil {
		t.Fatalf("Failed to create bundle dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bundled, FFmpegBinaryName()), nil, 0755); err != nil {
		t.Fatalf("Failed to create fake ffmpeg: %v", err)
	}
	withoutBundle := t.TempDir()

	onPath := func(string) (string, error) { return "/usr/local/bin/ffmpeg", nil }
	notOnPath := func(string) (string, error) { return "", errors.New("not found") }

	tests := []struct {
		name     string
		override string
		exeDir   string
		lookPath func(string) (string, error)
		expected string
	}{
		{
			name:     "override wins",
			override: "/custom/ffmpeg",
			exeDir:   withBundle,
			lookPath: onPath,
			expected: "/custom/ffmpeg",
		},
		{
			name:     "bundled next to executable",
			exeDir:   withBundle,
			lookPath: onPath,
			expected: bundled,
		},
		{
			name:     "found on PATH",
			exeDir:   withoutBundle,
			lookPath: onPath,
			expected: filepath.Dir("/usr/local/bin/ffmpeg"),
		},
		{
			name:     "not found reports bundled location",
			exeDir:   withoutBundle,
			lookPath: notOnPath,
			expected: filepath.Join(withoutBundle, filepath.FromSlash(BundledFFmpegDir)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveFFmpegDir(tt.override, tt.exeDir, tt.lookPath)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestProbeFFmpeg_Missing(t *testing.T) {
	dir := t.TempDir()
	path, ok := ProbeFFmpeg(dir)

	if ok {
		t.Error("Expected probe to fail in an empty directory")
	}
	if path != filepath.Join(dir, FFmpegBinaryName()) {
		t.Errorf("Unexpected probed path: %s", path)
	}
}

func TestProbeFFmpeg_Executable(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("shell script stand-in requires a POSIX shell")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\necho ffmpeg version test\n"
	if err := os.WriteFile(filepath.Join(dir, FFmpegBinaryName()), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake ffmpeg: %v", err)
	}

	if _, ok := ProbeFFmpeg(dir); !ok {
		t.Error("Expected probe to succeed for an executable ffmpeg")
	}
}
