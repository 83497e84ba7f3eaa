package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read at startup
const (
	EnvFFmpegDir   = "YTDLP_GUI_FFMPEG_DIR"
	EnvProxy       = "YTDLP_GUI_PROXY"
	EnvAutoInstall = "YTDLP_GUI_AUTO_INSTALL"
	EnvVerbose     = "YTDLP_GUI_VERBOSE"
)

// Env holds overrides taken from the environment
type Env struct {
	FFmpegDir   string
	Proxy       string
	AutoInstall bool
	Verbose     bool
}

// LoadEnv loads .env files (if any) into the process environment and reads
// the overrides. Variables already set in the environment win.
func LoadEnv(files ...string) Env {
	if err := godotenv.Load(files...); err != nil {
		// It's okay if .env doesn't exist
		log.Printf("No .env file loaded: %v", err)
	}
	return ReadEnv()
}

// ReadEnv reads the overrides from the current environment
func ReadEnv() Env {
	return Env{
		FFmpegDir:   os.Getenv(EnvFFmpegDir),
		Proxy:       os.Getenv(EnvProxy),
		AutoInstall: envBool(EnvAutoInstall),
		Verbose:     envBool(EnvVerbose),
	}
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
