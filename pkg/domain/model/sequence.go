package model

// SequenceLink is one labeled external reference attached to a sequence row.
type SequenceLink struct {
	Label string `json:"label" toml:"label"`
	URL   string `json:"url" toml:"url"`
}

// SequenceRow is one normalized, orderable unit of a procedural walkthrough.
// Rows come either from a curated sequence table or are synthesized from raw
// petition steps. Within one resolved sequence, Order values are unique and
// increase with array position.
type SequenceRow struct {
	ID        string         `json:"id" toml:"id"`
	Order     int            `json:"order" toml:"order"`
	Type      string         `json:"type" toml:"type"`
	Title     string         `json:"title,omitempty" toml:"title"`
	Content   string         `json:"content" toml:"content"`
	Checklist []string       `json:"checklist,omitempty" toml:"checklist"`
	Note      string         `json:"note,omitempty" toml:"note"`
	LinkURL   string         `json:"linkUrl,omitempty" toml:"link_url"`
	Links     []SequenceLink `json:"links,omitempty" toml:"links"`
}

// RequiredLinkEntry is one deduplicated external reference collected from a
// resolved sequence and a document-requirement list. Context names where the
// link came from (the row or document it belongs to).
type RequiredLinkEntry struct {
	Label   string `json:"label"`
	URL     string `json:"url"`
	Context string `json:"context,omitempty"`
}
