package model

import "testing"

func TestFormatETA(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{-1, ""},
		{0, ""},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		result := FormatETA(test.seconds)
		if result != test.expected {
			t.Errorf("FormatETA(%d) = %q, expected %q", test.seconds, result, test.expected)
		}
	}
}

func TestFormatSpeed(t *testing.T) {
	if got := FormatSpeed(0); got != "" {
		t.Errorf("FormatSpeed(0) = %q, expected empty", got)
	}
	if got := FormatSpeed(1.5 * 1024 * 1024); got != "1.5MB/s" {
		t.Errorf("FormatSpeed() = %q, expected 1.5MB/s", got)
	}
}

func TestProgress_Fraction(t *testing.T) {
	tests := []struct {
		progress Progress
		expected float64
	}{
		{Progress{0, 0}, 0},
		{Progress{0, 4}, 0},
		{Progress{1, 4}, 0.25},
		{Progress{4, 4}, 1},
	}

	for _, test := range tests {
		if got := test.progress.Fraction(); got != test.expected {
			t.Errorf("Progress%v.Fraction() = %v, expected %v", test.progress, got, test.expected)
		}
	}
}

func TestRunSummary_Message(t *testing.T) {
	tests := []struct {
		name     string
		summary  RunSummary
		status   RunStatus
		expected string
	}{
		{
			name:     "all succeeded",
			summary:  RunSummary{Total: 3, Succeeded: 3},
			status:   RunStatusCompleted,
			expected: "All downloads completed successfully (3/3)",
		},
		{
			name:     "partial failure",
			summary:  RunSummary{Total: 3, Succeeded: 2, Failed: 1},
			status:   RunStatusCompletedWithErrors,
			expected: "Completed with errors: 2/3 downloads succeeded",
		},
		{
			name:     "single URL failed",
			summary:  RunSummary{Total: 1, Succeeded: 0, Failed: 1},
			status:   RunStatusCompletedWithErrors,
			expected: "Completed with errors: 0/1 downloads succeeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.summary.Message(); got != tt.expected {
				t.Errorf("Message() = %q, expected %q", got, tt.expected)
			}
			if got := tt.summary.Status(); got != tt.status {
				t.Errorf("Status() = %s, expected %s", got, tt.status)
			}
		})
	}
}

func TestDoneEvent(t *testing.T) {
	summary := RunSummary{RunID: "run-1", Total: 1, Succeeded: 1}
	ev := DoneEvent(summary)

	if ev.Kind != EventDone {
		t.Fatalf("expected EventDone, got %v", ev.Kind)
	}
	if ev.Summary == nil || ev.Summary.RunID != "run-1" {
		t.Errorf("expected summary to be attached, got %+v", ev.Summary)
	}
}
