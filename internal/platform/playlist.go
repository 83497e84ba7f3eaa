package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistExpander lists the videos of YouTube playlists using the ytdlp library
type PlaylistExpander struct {
	timeout time.Duration
}

// NewPlaylistExpander creates a new playlist expander
func NewPlaylistExpander() *PlaylistExpander {
	return &PlaylistExpander{
		timeout: DefaultParseTimeout,
	}
}

// SetTimeout sets the timeout for a single playlist lookup
func (p *PlaylistExpander) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// IsPlaylistURL reports whether url names a playlist
func (p *PlaylistExpander) IsPlaylistURL(url string) bool {
	return p.extractPlaylistID(url) != ""
}

// ResolvePlaylist returns the watch URLs of every video in the playlist
func (p *PlaylistExpander) ResolvePlaylist(ctx context.Context, url string) ([]string, error) {
	playlistID := p.extractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	urls := make([]string, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		urls = append(urls, fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID))
	}
	return urls, nil
}

// extractPlaylistID extracts the playlist ID from various URL formats
func (p *PlaylistExpander) extractPlaylistID(url string) string {
	if !strings.Contains(url, PlaylistParam) {
		return ""
	}
	parts := strings.SplitN(url, PlaylistParam, 2)
	playlistPart := parts[1]
	if i := strings.Index(playlistPart, ParamSeparator); i >= 0 {
		playlistPart = playlistPart[:i]
	}
	return playlistPart
}
