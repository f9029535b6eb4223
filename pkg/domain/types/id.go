package types

// ServiceID identifies one civil-petition service (the backend calls this
// cpInfoId). Curated guidance entries share the same id space.
type ServiceID string

// String returns the string representation of the service ID
func (x ServiceID) String() string {
	return string(x)
}

// CaseID identifies one tracked case. Assigned by the backend.
type CaseID string

// String returns the string representation of the case ID
func (x CaseID) String() string {
	return string(x)
}

// MemberID identifies a signed-in member.
type MemberID string

// String returns the string representation of the member ID
func (x MemberID) String() string {
	return string(x)
}
