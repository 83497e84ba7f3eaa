package model

import "testing"

func TestRunStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusIdle, false},
		{RunStatusRunning, true},
		{RunStatusCompleted, false},
		{RunStatusCompletedWithErrors, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusIdle, false},
		{RunStatusRunning, false},
		{RunStatusCompleted, true},
		{RunStatusCompletedWithErrors, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_String(t *testing.T) {
	status := RunStatusCompletedWithErrors
	expected := "Completed with errors"
	result := status.String()

	if result != expected {
		t.Errorf("RunStatus.String() = %s, expected %s", result, expected)
	}
}
