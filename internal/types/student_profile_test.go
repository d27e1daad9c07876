package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentProfile_ExtraFieldsRoundTrip(t *testing.T) {
	input := `{
		"fullName": "Erica Cangan",
		"schoolName": "Lincoln High School",
		"email": "erica@example.com",
		"linkedinUrl": "https://linkedin.com/in/erica",
		"favouriteNumber": 7,
		"archetype": {"title": "The Visionary Collaborator", "description": "", "quote": ""}
	}`

	var profile StudentProfile
	require.NoError(t, json.Unmarshal([]byte(input), &profile))

	assert.Equal(t, "Erica Cangan", profile.FullName)
	assert.Equal(t, "The Visionary Collaborator", profile.Archetype.Title)
	assert.Equal(t, map[string]string{
		"email":       "erica@example.com",
		"linkedinUrl": "https://linkedin.com/in/erica",
	}, profile.Extra, "only string-valued unknown keys are carried")

	out, err := json.Marshal(profile)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	assert.Equal(t, "erica@example.com", generic["email"])
	assert.Equal(t, "Lincoln High School", generic["schoolName"])
	assert.NotContains(t, generic, "Extra")
	assert.NotContains(t, generic, "favouriteNumber")
}

func TestStudentProfile_ExtraNeverShadowsFields(t *testing.T) {
	profile := StudentProfile{
		FullName: "Real Name",
		Extra:    map[string]string{"fullName": "Shadow"},
	}

	out, err := json.Marshal(profile)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	assert.Equal(t, "Real Name", generic["fullName"])
}

func TestStudentProfile_EnsureCollections(t *testing.T) {
	var profile StudentProfile
	profile.EnsureCollections()

	out, err := json.Marshal(profile)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"coreStrengths":[]`)
	assert.Contains(t, s, `"skills":{}`)
	assert.Contains(t, s, `"careerPaths":[]`)
	assert.NotContains(t, s, `"publications"`)
}
