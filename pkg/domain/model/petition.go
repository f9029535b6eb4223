package model

import (
	"encoding/json"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
)

// StepRecord is the canonical form of one procedural action. A zero Order
// means the backend did not assign a position.
type StepRecord struct {
	ID           string
	Order        int
	Mode         types.StepMode
	Content      string
	LinkURL      string
	Institutions []Institution
}

// Step is the wire representation of a petition step: either a plain
// instruction string or a structured record. The union is decoded once
// here; everything downstream works with the canonical StepRecord.
type Step struct {
	StepRecord
}

// StepFromText builds a step from a plain instruction string. Only Content
// is set, matching a string element on the wire.
func StepFromText(content string) Step {
	return Step{StepRecord: StepRecord{Content: content}}
}

type stepWire struct {
	ID           json.RawMessage `json:"id"`
	Order        *int            `json:"order"`
	Mode         string          `json:"mode"`
	Content      string          `json:"content"`
	LinkURL      string          `json:"linkUrl"`
	Institutions []Institution   `json:"institutions"`
}

// UnmarshalJSON accepts a JSON string, an object, or null. The id field may
// arrive as a string or a number.
func (s *Step) UnmarshalJSON(data []byte) error {
	*s = Step{}

	trimmed := string(data)
	if trimmed == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var content string
		if err := json.Unmarshal(data, &content); err != nil {
			return goerr.Wrap(err, "failed to decode step text")
		}
		s.Content = content
		return nil
	}

	var wire stepWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return goerr.Wrap(err, "failed to decode step record")
	}

	s.ID = decodeStepID(wire.ID)
	if wire.Order != nil {
		s.Order = *wire.Order
	}
	s.Mode = types.StepMode(wire.Mode)
	s.Content = wire.Content
	s.LinkURL = wire.LinkURL
	s.Institutions = wire.Institutions
	return nil
}

// MarshalJSON always emits the structured form.
func (s Step) MarshalJSON() ([]byte, error) {
	wire := struct {
		ID           string        `json:"id,omitempty"`
		Order        int           `json:"order,omitempty"`
		Mode         string        `json:"mode,omitempty"`
		Content      string        `json:"content"`
		LinkURL      string        `json:"linkUrl,omitempty"`
		Institutions []Institution `json:"institutions,omitempty"`
	}{
		ID:           s.ID,
		Order:        s.Order,
		Mode:         string(s.Mode),
		Content:      s.Content,
		LinkURL:      s.LinkURL,
		Institutions: s.Institutions,
	}
	return json.Marshal(wire)
}

func decodeStepID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	var num int64
	if err := json.Unmarshal(raw, &num); err == nil {
		return strconv.FormatInt(num, 10)
	}
	return ""
}

// Institution is an office attached to a petition step. Coordinates arrive
// as nullable strings on the wire.
type Institution struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// CivilPetition is one government procedure record from the backend.
type CivilPetition struct {
	InfoID       types.ServiceID `json:"infoId"`
	Name         string          `json:"cpName"`
	Summary      string          `json:"simple"`
	Descriptions []string        `json:"descriptions"`
	OnlineSteps  []Step          `json:"onlineSteps"`
	OfflineSteps []Step          `json:"offlineSteps"`
}
