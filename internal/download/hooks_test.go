package download

import (
	"testing"

	"github.com/ytget/yt-dlp-gui/internal/model"
)

func TestIsDependencyMissing(t *testing.T) {
	tests := []struct {
		msg      string
		expected bool
	}{
		{"[WinError 2] The system cannot find the file specified", true},
		{"ERROR: Postprocessing: ffprobe and ffmpeg not found. Please install or provide the path using --ffmpeg-location", true},
		{"ERROR: ffmpeg not found", true},
		{"ERROR: Unsupported URL: https://example.com", false},
		{"HTTP Error 403: Forbidden", false},
		{"", false},
	}

	for _, test := range tests {
		if got := IsDependencyMissing(test.msg); got != test.expected {
			t.Errorf("IsDependencyMissing(%q) = %v, expected %v", test.msg, got, test.expected)
		}
	}
}

func TestProgressHook(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		total    int
		update   model.HookUpdate
		expected []string
	}{
		{
			name:     "downloading single URL",
			index:    1,
			total:    1,
			update:   model.HookUpdate{Status: "downloading", Percent: " 42.0%", Speed: "1.2MB/s", ETA: "00:10"},
			expected: []string{"⬇ 42.0% @ 1.2MB/s ETA 00:10"},
		},
		{
			name:     "downloading with index prefix",
			index:    2,
			total:    3,
			update:   model.HookUpdate{Status: "downloading", Percent: "5.0%", Speed: "3.0MB/s", ETA: "01:00"},
			expected: []string{"[2/3] ⬇ 5.0% @ 3.0MB/s ETA 01:00"},
		},
		{
			name:     "missing fields degrade to N/A",
			index:    1,
			total:    1,
			update:   model.HookUpdate{Status: "downloading"},
			expected: []string{"⬇ N/A @ N/A ETA N/A"},
		},
		{
			name:     "finished",
			index:    1,
			total:    1,
			update:   model.HookUpdate{Status: "finished"},
			expected: []string{"✅ Download finished, starting post-processing..."},
		},
		{
			name:     "other status is ignored",
			index:    1,
			total:    2,
			update:   model.HookUpdate{Status: "post_processing"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []string
			hook := &progressHook{index: tt.index, total: tt.total, emit: func(s string) { lines = append(lines, s) }}
			hook.handle(tt.update)

			if len(lines) != len(tt.expected) {
				t.Fatalf("expected %d lines, got %d: %v", len(tt.expected), len(lines), lines)
			}
			for i := range lines {
				if lines[i] != tt.expected[i] {
					t.Errorf("line %d = %q, expected %q", i, lines[i], tt.expected[i])
				}
			}
		})
	}
}

func TestRunLogger(t *testing.T) {
	var lines []string
	emit := func(s string) { lines = append(lines, s) }

	quiet := &runLogger{emit: emit}
	quiet.Debug("extracting")
	quiet.Warning("falling back")
	quiet.Error("HTTP Error 404")
	quiet.Error("[WinError 2] cannot find ffmpeg")

	expected := []string{"[WARN] falling back", "[ERROR] HTTP Error 404"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}

	lines = nil
	verbose := &runLogger{emit: emit, verbose: true}
	verbose.Debug("extracting")
	if len(lines) != 1 || lines[0] != "[DEBUG] extracting" {
		t.Errorf("verbose logger should forward debug, got %v", lines)
	}
}
