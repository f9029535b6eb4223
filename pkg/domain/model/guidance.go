package model

import "github.com/cloudbridge-lab/minwon/pkg/domain/types"

// DocumentRequirement describes one document a citizen must prepare for a
// service.
type DocumentRequirement struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	IssuingAuthority string   `json:"issuingAuthority,omitempty"`
	AvailableFormats []string `json:"availableFormats,omitempty"`
	DownloadURL      string   `json:"downloadUrl,omitempty"`
	DownloadLabel    string   `json:"downloadLabel,omitempty"`
	Fee              string   `json:"fee,omitempty"`
	ValidityPeriod   string   `json:"validityPeriod,omitempty"`
	PreparationNotes string   `json:"preparationNotes,omitempty"`
}

// GuidanceStep is one hand-authored application step in a guidance detail.
type GuidanceStep struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedTime     string   `json:"estimatedTime,omitempty"`
	RequiredDocuments []string `json:"requiredDocuments,omitempty"`
}

// ServiceGuidanceDetail is the curated guidance content for one service.
type ServiceGuidanceDetail struct {
	ID                    types.ServiceID       `json:"id"`
	Title                 string                `json:"title"`
	Summary               string                `json:"summary"`
	EligibilityHighlights []string              `json:"eligibilityHighlights,omitempty"`
	OnlineSteps           []GuidanceStep        `json:"onlineSteps,omitempty"`
	OfflineSteps          []GuidanceStep        `json:"offlineSteps,omitempty"`
	Documents             []DocumentRequirement `json:"documents,omitempty"`
	LastReviewed          string                `json:"lastReviewed,omitempty"`
	Notes                 string                `json:"notes,omitempty"`
}

// RequiredDocumentIDs returns the ids of every document in the checklist.
func (d *ServiceGuidanceDetail) RequiredDocumentIDs() []string {
	ids := make([]string, len(d.Documents))
	for i, doc := range d.Documents {
		ids[i] = doc.ID
	}
	return ids
}
