package usecase

import "github.com/cloudbridge-lab/minwon/pkg/domain/model"

// Fallback labels for links that carry no label of their own.
const (
	fallbackLinkLabel   = "바로가기"
	fallbackIssuerLabel = "발급 사이트"
)

// CollectRequiredLinks gathers every distinct external reference from a
// resolved sequence and a document-requirement list, in first-seen order:
// sequence rows first (in sequence order), then documents. Entries are
// deduplicated by exact URL; the first occurrence's label and context win.
func CollectRequiredLinks(sequence []model.SequenceRow, documents []model.DocumentRequirement) []model.RequiredLinkEntry {
	seen := make(map[string]struct{})
	entries := []model.RequiredLinkEntry{}

	for _, row := range sequence {
		links := row.Links
		if len(links) == 0 && row.LinkURL != "" {
			links = []model.SequenceLink{{Label: fallbackLinkLabel, URL: row.LinkURL}}
		}

		context := row.Title
		if context == "" {
			context = row.Type
		}

		for _, link := range links {
			if _, ok := seen[link.URL]; ok {
				continue
			}
			seen[link.URL] = struct{}{}

			label := link.Label
			if label == "" {
				label = fallbackLinkLabel
			}
			entries = append(entries, model.RequiredLinkEntry{
				Label:   label,
				URL:     link.URL,
				Context: context,
			})
		}
	}

	for _, doc := range documents {
		if doc.DownloadURL == "" {
			continue
		}
		if _, ok := seen[doc.DownloadURL]; ok {
			continue
		}
		seen[doc.DownloadURL] = struct{}{}

		label := doc.DownloadLabel
		if label == "" {
			label = doc.IssuingAuthority
		}
		if label == "" {
			label = fallbackIssuerLabel
		}
		entries = append(entries, model.RequiredLinkEntry{
			Label:   label,
			URL:     doc.DownloadURL,
			Context: doc.Name,
		})
	}

	return entries
}
