package download

// Package download implements the download run: it builds the yt-dlp format
// expression from the user's choices, drives an Engine over the URL list one
// URL at a time, and streams log lines, progress tuples and the final summary
// to the UI over a single ordered channel.
