// Package documents implements the instance-document domain: lightweight
// content inspection of uploaded reporting documents before submission.
// Inspection guesses the serialization format and whether the content looks
// like an XBRL instance; authoritative validation belongs to the remote
// engine.
package documents

// Format is the guessed serialization format of an uploaded document.
type Format string

const (
	FormatXML     Format = "xml"
	FormatJSON    Format = "json"
	FormatUnknown Format = "unknown"
)

// Inspection is the result of sniffing an uploaded document.
type Inspection struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	Format      Format `json:"format"`
	IsInstance  bool   `json:"is_instance"`
}
