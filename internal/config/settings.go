package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-dlp-gui/internal/model"
	"github.com/ytget/yt-dlp-gui/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir     = "download_directory"
	KeyMediaType       = "media_type"
	KeyQuality         = "quality"
	KeySubtitles       = "subtitles"
	KeyProxyEnabled    = "proxy_enabled"
	KeyProxyURL        = "proxy_url"
	KeyFFmpegDir       = "ffmpeg_directory"
	KeyLanguage        = "app_language"
	KeyVerbose         = "verbose_log"
	KeyExpandPlaylists = "expand_playlists"
)

// Default values
const (
	DefaultMediaType       = model.MediaAudioVideo
	DefaultQuality         = model.QualityBest
	DefaultProxyURL        = "http://127.0.0.1:8080"
	DefaultLanguage        = "system"
	DefaultExpandPlaylists = true
	FallbackDownloadDir    = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMediaType returns the last selected media type
func (s *Settings) GetMediaType() model.MediaType {
	m := model.MediaType(s.app.Preferences().StringWithFallback(KeyMediaType, string(DefaultMediaType)))
	if !m.IsValid() {
		return DefaultMediaType
	}
	return m
}

// SetMediaType stores the selected media type
func (s *Settings) SetMediaType(m model.MediaType) {
	s.app.Preferences().SetString(KeyMediaType, string(m))
}

// GetQuality returns the last selected quality token
func (s *Settings) GetQuality() model.Quality {
	q := s.app.Preferences().String(KeyQuality)
	if q == "" {
		return DefaultQuality
	}
	return model.Quality(q)
}

// SetQuality stores the selected quality token
func (s *Settings) SetQuality(q model.Quality) {
	s.app.Preferences().SetString(KeyQuality, string(q))
}

// GetSubtitles returns whether subtitles are downloaded
func (s *Settings) GetSubtitles() bool {
	return s.app.Preferences().Bool(KeySubtitles)
}

// SetSubtitles sets whether subtitles are downloaded
func (s *Settings) SetSubtitles(enabled bool) {
	s.app.Preferences().SetBool(KeySubtitles, enabled)
}

// GetProxyEnabled returns whether downloads go through the proxy
func (s *Settings) GetProxyEnabled() bool {
	return s.app.Preferences().Bool(KeyProxyEnabled)
}

// SetProxyEnabled sets whether downloads go through the proxy
func (s *Settings) SetProxyEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyProxyEnabled, enabled)
}

// GetProxyURL returns the proxy URL
func (s *Settings) GetProxyURL() string {
	url := s.app.Preferences().String(KeyProxyURL)
	if url == "" {
		return DefaultProxyURL
	}
	return url
}

// SetProxyURL sets the proxy URL
func (s *Settings) SetProxyURL(url string) {
	s.app.Preferences().SetString(KeyProxyURL, url)
}

// GetFFmpegDirectory returns the user override for the ffmpeg directory, or
// "" to locate ffmpeg automatically.
func (s *Settings) GetFFmpegDirectory() string {
	return s.app.Preferences().String(KeyFFmpegDir)
}

// SetFFmpegDirectory sets the ffmpeg directory override
func (s *Settings) SetFFmpegDirectory(dir string) {
	s.app.Preferences().SetString(KeyFFmpegDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetVerbose returns whether yt-dlp debug output is shown in the log
func (s *Settings) GetVerbose() bool {
	return s.app.Preferences().Bool(KeyVerbose)
}

// SetVerbose sets whether yt-dlp debug output is shown in the log
func (s *Settings) SetVerbose(verbose bool) {
	s.app.Preferences().SetBool(KeyVerbose, verbose)
}

// GetExpandPlaylists returns whether playlist URLs are expanded before a run
func (s *Settings) GetExpandPlaylists() bool {
	return s.app.Preferences().BoolWithFallback(KeyExpandPlaylists, DefaultExpandPlaylists)
}

// SetExpandPlaylists sets whether playlist URLs are expanded before a run
func (s *Settings) SetExpandPlaylists(expand bool) {
	s.app.Preferences().SetBool(KeyExpandPlaylists, expand)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"it":     "Italiano",
		"ru":     "Русский",
	}
}
