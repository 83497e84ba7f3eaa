package model

// RunStatus represents the state of the download run shown in the UI
type RunStatus string

const (
	// RunStatusIdle means no run has been started yet
	RunStatusIdle RunStatus = "Idle"

	// RunStatusRunning means the worker is processing URLs
	RunStatusRunning RunStatus = "Running"

	// RunStatusCompleted means every URL succeeded
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusCompletedWithErrors means at least one URL failed
	RunStatusCompletedWithErrors RunStatus = "Completed with errors"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true while a run is in progress
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning
}

// IsFinished returns true once a run has produced its summary
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusCompletedWithErrors
}
