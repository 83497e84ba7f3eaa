package model

import (
	"errors"
	"fmt"
	"strings"
)

// MediaType selects which streams a run downloads. Exactly one is active.
type MediaType string

const (
	MediaAudioOnly  MediaType = "audio"
	MediaVideoOnly  MediaType = "video"
	MediaAudioVideo MediaType = "audio_video"
)

// String returns the string representation of MediaType
func (m MediaType) String() string {
	return string(m)
}

// IsValid reports whether m is one of the known media types
func (m MediaType) IsValid() bool {
	switch m {
	case MediaAudioOnly, MediaVideoOnly, MediaAudioVideo:
		return true
	}
	return false
}

// MediaTypes returns the selectable media types in display order
func MediaTypes() []MediaType {
	return []MediaType{MediaAudioOnly, MediaVideoOnly, MediaAudioVideo}
}

// Quality is a quality token: "best", "worst" or "<N>p".
type Quality string

const (
	QualityBest  Quality = "best"
	QualityWorst Quality = "worst"
)

// QualityOptions returns the quality tokens offered in the UI
func QualityOptions() []Quality {
	return []Quality{QualityBest, QualityWorst, "1080p", "720p", "480p"}
}

// Normalize lower-cases and trims the token
func (q Quality) Normalize() Quality {
	return Quality(strings.ToLower(strings.TrimSpace(string(q))))
}

// Height returns N for a "<N>p" token. ok is false for any other token.
func (q Quality) Height() (height string, ok bool) {
	s := string(q.Normalize())
	if len(s) < 2 || !strings.HasSuffix(s, "p") {
		return "", false
	}
	digits := s[:len(s)-1]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return digits, true
}

// Validation errors returned by Options.Validate
var (
	ErrNoURLs           = errors.New("no URL entered")
	ErrNoOutputDir      = errors.New("no destination folder selected")
	ErrInvalidMediaType = errors.New("invalid media type")
)

// Options is the input of one run. It is not modified after being handed to
// the worker.
type Options struct {
	URLs      []string
	MediaType MediaType
	Quality   Quality
	OutputDir string
	Subtitles bool
	Simulate  bool
	// Proxy is the proxy URL, empty when no proxy is used.
	Proxy string
	// Verbose forwards yt-dlp debug output to the log.
	Verbose bool
	// ExpandPlaylists replaces playlist URLs with their videos before the run.
	ExpandPlaylists bool
}

// ParseURLs splits free-form input on whitespace, dropping empty entries
func ParseURLs(input string) []string {
	return strings.Fields(input)
}

// Validate checks the options the way the UI shell does before a run starts
func (o Options) Validate() error {
	if len(o.URLs) == 0 {
		return ErrNoURLs
	}
	if strings.TrimSpace(o.OutputDir) == "" {
		return ErrNoOutputDir
	}
	if !o.MediaType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMediaType, o.MediaType)
	}
	return nil
}

// Clone returns a copy that shares no slices with o
func (o Options) Clone() Options {
	c := o
	c.URLs = append([]string(nil), o.URLs...)
	return c
}
