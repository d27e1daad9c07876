package parsing

import "strings"

// TokenizeRow splits one line of delimited text into trimmed fields.
//
// A double quote toggles quoted mode and is itself dropped; commas inside quotes are kept.
// There is no escaping of literal quotes: "" simply toggles twice. The final field is
// always emitted, so "a," yields ["a", ""]. The scan is bytewise; quote and comma are
// ASCII, so multi-byte characters and invalid UTF-8 bytes pass through unchanged.
func TokenizeRow(line string) []string {
	fields := make([]string, 0, strings.Count(line, ",")+1)
	var buf strings.Builder
	insideQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			insideQuotes = !insideQuotes
		case c == ',' && !insideQuotes:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(buf.String()))

	return fields
}

// fieldAt returns the field at index i, or "" when the row is short
func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// stripQuotes removes every double quote character
func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// splitList splits a list cell on the | sub-delimiter, trimming items and dropping blanks
func splitList(value string) []string {
	parts := strings.Split(value, "|")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
