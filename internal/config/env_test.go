package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadEnv(t *testing.T) {
	t.Setenv(EnvFFmpegDir, "/opt/ffmpeg/bin")
	t.Setenv(EnvProxy, "http://proxy:3128")
	t.Setenv(EnvAutoInstall, "true")
	t.Setenv(EnvVerbose, "not-a-bool")

	env := ReadEnv()

	if env.FFmpegDir != "/opt/ffmpeg/bin" {
		t.Errorf("Expected ffmpeg dir override, got %q", env.FFmpegDir)
	}
	if env.Proxy != "http://proxy:3128" {
		t.Errorf("Expected proxy override, got %q", env.Proxy)
	}
	if !env.AutoInstall {
		t.Error("Expected auto install to be enabled")
	}
	if env.Verbose {
		t.Error("Invalid boolean should read as false")
	}
}

func TestLoadEnv_File(t *testing.T) {
	t.Setenv(EnvFFmpegDir, "")
	os.Unsetenv(EnvFFmpegDir)
	t.Setenv(EnvProxy, "http://from-environment:8080")

	path := filepath.Join(t.TempDir(), ".env")
	content := EnvFFmpegDir + "=/from/dotenv\n" + EnvProxy + "=http://from-dotenv:8080\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	env := LoadEnv(path)

	if env.FFmpegDir != "/from/dotenv" {
		t.Errorf("Expected value from .env, got %q", env.FFmpegDir)
	}
	if env.Proxy != "http://from-environment:8080" {
		t.Errorf("Environment should win over .env, got %q", env.Proxy)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Setenv(EnvProxy, "")
	env := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if env.Proxy != "" {
		t.Errorf("Expected empty proxy, got %q", env.Proxy)
	}
}
