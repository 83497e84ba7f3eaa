package platform

// Package platform contains OS/platform integration and external tooling glue:
// locating and probing ffmpeg, free-space checks, playlist expansion via the
// ytdlp library, and filesystem/OS helpers used by the UI.
