package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It collects the run options, starts the download worker, and renders the
// worker's log lines, progress and summary. All UI strings are localized via
// Localization.
