package platform

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// FreeSpace returns the bytes available to the user on the filesystem
// holding path.
func FreeSpace(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return usage.Free, nil
}

// FormatBytes returns a human readable size (e.g. "1.5 GB")
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
