package models

// Document is an uploaded file attached to a client. Local mode embeds the
// bytes as a data URL; server mode stores the file on disk and keeps only the
// generated filename plus the URL it is served back from.
type Document struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Path    string `json:"path,omitempty"`
	URL     string `json:"url,omitempty"`
	DataURL string `json:"dataUrl,omitempty"`
	DateISO string `json:"dateISO"`
}
