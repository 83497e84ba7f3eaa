package config

// Package config persists the user's choices in Fyne preferences and reads
// startup overrides from the environment and optional .env files.
