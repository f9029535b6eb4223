package model

import (
	"encoding/json"
	"time"

	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
)

// CaseEntry is a member's tracked progress on one service. Entries are held
// only by the case store; UI layers read snapshots and never mutate them.
type CaseEntry struct {
	CaseID      types.CaseID     `json:"caseId"`
	MemberID    types.MemberID   `json:"memberId"`
	ServiceID   types.ServiceID  `json:"serviceId"`
	Title       string           `json:"title"`
	Summary     string           `json:"summary,omitempty"`
	Status      types.CaseStatus `json:"status"`
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt time.Time        `json:"completedAt,omitzero"`
	Checklist   []string         `json:"checklist"`
}

// HasDocument reports whether the given document id is marked prepared.
func (e *CaseEntry) HasDocument(docID string) bool {
	for _, id := range e.Checklist {
		if id == docID {
			return true
		}
	}
	return false
}

// CaseRecord is the wire shape of a case returned by the backend. Checklist
// is a JSON-encoded string array; timestamps are RFC 3339 strings.
type CaseRecord struct {
	CaseID      string `json:"caseId"`
	MemberID    string `json:"memberId"`
	CPInfoID    string `json:"cpInfoId"`
	Status      string `json:"status,omitempty"`
	Checklist   string `json:"checklist,omitempty"`
	StartedAt   string `json:"startedAt,omitempty"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// ParseChecklist decodes a wire checklist. Malformed JSON, a non-array
// value, or non-string elements degrade to an empty list rather than an
// error; local display must never fail on bad persisted data.
func ParseChecklist(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(parsed))
	for _, item := range parsed {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// EncodeChecklist renders a checklist in the wire format.
func EncodeChecklist(checklist []string) string {
	if checklist == nil {
		checklist = []string{}
	}
	data, err := json.Marshal(checklist)
	if err != nil {
		return "[]"
	}
	return string(data)
}
