package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/student-portfolio/internal/schemas"
	"github.com/jonathan/student-portfolio/internal/types"
)

// LoadProfile loads a student profile from a JSON file
func LoadProfile(path string) (*types.StudentProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return DecodeProfile(content)
}

// DecodeProfile validates and decodes an uploaded profile document.
// Malformed JSON is a LoadError; a document without a name and school is a ValidationError.
func DecodeProfile(content []byte) (*types.StudentProfile, error) {
	if err := schemas.ValidateStudentProfile(content); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			return nil, &ValidationError{
				Message: "invalid student data format",
				Fields:  schemaErr.Fields(),
				Cause:   err,
			}
		}
		return nil, &LoadError{
			Message: "invalid JSON file",
			Cause:   err,
		}
	}

	var p types.StudentProfile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	Normalize(&p)

	// whitespace-only names pass the schema but not the trimmed check
	if missing := missingFields(&p); len(missing) > 0 {
		return nil, &ValidationError{
			Message: "invalid student data format",
			Fields:  missing,
		}
	}

	return &p, nil
}
