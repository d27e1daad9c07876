// Package ingestion turns uploaded files into student profiles, whatever their format.
package ingestion

import "strings"

const utf8BOM = "\uFEFF"

// NormalizeText prepares uploaded text for parsing without touching field content
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Drop the byte-order mark spreadsheet exports put in front of the header
	content = strings.TrimPrefix(content, utf8BOM)

	// 2. Normalize line endings (CRLF → LF, lone CR → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	return content
}
