package ingestion

import "fmt"

// FormatError is returned for uploads that are neither CSV nor JSON
type FormatError struct {
	Name     string
	Detected string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported upload %s: detected %s, expected CSV or JSON", e.Name, e.Detected)
}

// ImportError wraps a failure to import a single upload
type ImportError struct {
	Name  string
	Cause error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s: %v", e.Name, e.Cause)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
