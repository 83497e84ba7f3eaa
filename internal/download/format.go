package download

import (
	"fmt"

	"github.com/ytget/yt-dlp-gui/internal/model"
)

// Format expressions understood by yt-dlp's -f option
const (
	FormatBestAudio = "bestaudio"

	FormatVideoBest  = "bestvideo[ext=mp4]/bestvideo"
	FormatVideoWorst = "worstvideo[ext=mp4]/worstvideo"
	formatVideoCap   = "bestvideo[height<=%[1]s][ext=mp4]/bestvideo[height<=%[1]s]"

	FormatMuxedBest  = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	FormatMuxedWorst = "worstvideo+worstaudio/worst"
	formatMuxedCap   = "bestvideo[height<=%[1]s][ext=mp4]+bestaudio[ext=m4a]/best[height<=%[1]s][ext=mp4]/best"
)

// BuildFormat returns the format-selection expression for a media type and a
// quality token. Unrecognized tokens fall back to the "best" rule.
func BuildFormat(media model.MediaType, quality model.Quality) string {
	if media == model.MediaAudioOnly {
		return FormatBestAudio
	}

	q := quality.Normalize()
	height, capped := q.Height()

	if media == model.MediaVideoOnly {
		switch {
		case q == model.QualityWorst:
			return FormatVideoWorst
		case capped:
			return fmt.Sprintf(formatVideoCap, height)
		default:
			return FormatVideoBest
		}
	}

	switch {
	case q == model.QualityWorst:
		return FormatMuxedWorst
	case capped:
		return fmt.Sprintf(formatMuxedCap, height)
	default:
		return FormatMuxedBest
	}
}
