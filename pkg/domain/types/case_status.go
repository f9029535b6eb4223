package types

import "fmt"

// CaseStatus represents the progress state of a tracked case
type CaseStatus string

const (
	CaseStatusInProgress CaseStatus = "in-progress"
	CaseStatusCompleted  CaseStatus = "completed"
)

// AllCaseStatuses returns all valid case statuses
func AllCaseStatuses() []CaseStatus {
	return []CaseStatus{
		CaseStatusInProgress,
		CaseStatusCompleted,
	}
}

// IsValid checks if the case status is valid
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusInProgress,
		CaseStatusCompleted:
		return true
	default:
		return false
	}
}

// Normalize maps any wire value that is not "completed" to in-progress,
// matching the remote service's loose status field.
func (s CaseStatus) Normalize() CaseStatus {
	if s == CaseStatusCompleted {
		return CaseStatusCompleted
	}
	return CaseStatusInProgress
}

// String returns the string representation of the case status
func (s CaseStatus) String() string {
	return string(s)
}

// ParseCaseStatus parses a string into a CaseStatus
func ParseCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid case status: %s", s)
	}
	return status, nil
}
