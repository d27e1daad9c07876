// Package schemas embeds the JSON Schema documents for uploaded artifacts.
package schemas

import _ "embed"

// StudentProfile is the JSON Schema for a full student profile upload
//
//go:embed student_profile.schema.json
var StudentProfile string
