package ingestion

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format is the kind of an uploaded file
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DetectFormat decides how to read an upload: by extension first, then by content
func DetectFormat(name string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}

	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		switch {
		case m.Is("application/json"):
			return FormatJSON, nil
		case m.Is("text/csv"):
			return FormatCSV, nil
		}
	}

	return "", &FormatError{Name: name, Detected: mt.String()}
}
