package engine

// Package engine runs yt-dlp through github.com/lrstanley/go-ytdlp and adapts
// its progress updates and output to the download package's Engine contract.
