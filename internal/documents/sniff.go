package documents

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFormat guesses a document's serialization format from its leading
// content. The checks are deliberately shallow string tests; the remote
// engine performs the authoritative parse.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(trimmed) == 0 {
		return FormatUnknown
	}

	switch trimmed[0] {
	case '<':
		return FormatXML
	case '{', '[':
		return FormatJSON
	}
	return FormatUnknown
}

// IsInstance reports whether the content looks like an XBRL instance
// document for the detected format: an xbrl root element for XML, or the
// OIM documentInfo/facts keys for JSON.
func IsInstance(data []byte, format Format) bool {
	content := string(data)
	switch format {
	case FormatXML:
		return strings.Contains(content, "<xbrl") ||
			strings.Contains(content, ":xbrl ") ||
			strings.Contains(content, ":xbrl>")
	case FormatJSON:
		return strings.Contains(content, `"documentInfo"`) &&
			strings.Contains(content, `"facts"`)
	case FormatUnknown:
		return false
	}
	return false
}
