package profile

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/student-portfolio/internal/types"
)

var validate = newValidator()

// newValidator returns a validator that reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RecordIssue lists the required fields a parsed record is missing
type RecordIssue struct {
	Index     int      `json:"index"`
	ProfileID string   `json:"profileId"`
	FullName  string   `json:"fullName,omitempty"`
	Missing   []string `json:"missing"`
}

// CheckRecords reports the records of an import batch that cannot be shown as complete profiles.
// An empty batch returns ErrNothingToImport.
func CheckRecords(records []types.ProfileRecord) ([]RecordIssue, error) {
	if len(records) == 0 {
		return nil, ErrNothingToImport
	}

	var issues []RecordIssue
	for i := range records {
		missing := missingFields(&records[i])
		if len(missing) == 0 {
			continue
		}
		issues = append(issues, RecordIssue{
			Index:     i,
			ProfileID: records[i].ProfileID,
			FullName:  records[i].FullName,
			Missing:   missing,
		})
	}
	return issues, nil
}

// Validate checks that a full profile has the fields a portfolio page needs
func Validate(p *types.StudentProfile) error {
	if missing := missingFields(p); len(missing) > 0 {
		return &ValidationError{
			Message: "missing information",
			Fields:  missing,
		}
	}
	return nil
}

// missingFields returns the JSON names of required fields that are empty
func missingFields(v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return missing
}
