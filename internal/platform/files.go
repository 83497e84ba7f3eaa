package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// writeProbePattern names the temporary file used by CheckWritableDir
const writeProbePattern = ".yt-dlp-gui-*"

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CheckWritableDir returns an error unless dirPath is an existing directory
// that the current user can create files in.
func CheckWritableDir(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("destination folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination is not a folder: %s", dirPath)
	}

	f, err := os.CreateTemp(dirPath, writeProbePattern)
	if err != nil {
		return fmt.Errorf("destination folder is not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	downloadsDir := filepath.Join(homeDir, "Downloads")
	return downloadsDir, nil
}

// OpenFolder opens a directory in the system file manager
func OpenFolder(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, absPath)
	case OSWindows:
		cmd = exec.Command(ExplorerCommand, absPath)
	case OSLinux:
		cmd = exec.Command(XDGOpenCommand, absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return cmd.Start()
}
