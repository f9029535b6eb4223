package types

import "strings"

// StepMode classifies how a procedural step is carried out. The remote
// service may send arbitrary free-text modes; those are preserved verbatim.
type StepMode string

const (
	StepModeOnline  StepMode = "ONLINE"
	StepModeOffline StepMode = "OFFLINE"
	StepModeHybrid  StepMode = "HYBRID"
)

// Display labels for the known step modes.
const (
	LabelOnline  = "온라인 신청"
	LabelOffline = "방문 신청"
	LabelHybrid  = "온라인/방문"
	LabelDefault = "진행"
)

// Label returns the display label for the mode. Unknown non-empty modes are
// returned as-is; an empty mode falls back to the given label, or to the
// generic default when the fallback is empty too.
func (m StepMode) Label(fallback string) string {
	switch StepMode(strings.ToUpper(string(m))) {
	case StepModeOnline:
		return LabelOnline
	case StepModeOffline:
		return LabelOffline
	case StepModeHybrid:
		return LabelHybrid
	}
	if m == "" {
		if fallback != "" {
			return fallback
		}
		return LabelDefault
	}
	return string(m)
}

// String returns the string representation of the step mode
func (m StepMode) String() string {
	return string(m)
}
