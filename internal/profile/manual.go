package profile

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jonathan/student-portfolio/internal/types"
)

// manualDateLayout is how manual entries record lastUpdated
const manualDateLayout = "January 2, 2006"

// ManualEntry holds the values of the manual entry form.
// CoreStrengths and Passions are comma-separated.
type ManualEntry struct {
	FullName             string
	SchoolName           string
	Grade                string
	Year                 string
	AboutMe              string
	PersonalBio          string
	CoreStrengths        string
	Passions             string
	ArchetypeTitle       string
	ArchetypeDescription string
	ArchetypeQuote       string

	// ProfileImage is the raw picture file; it must be an image
	ProfileImage []byte
}

// Build turns the form into a full profile stamped at now
func (e ManualEntry) Build(now time.Time) (*types.StudentProfile, error) {
	p := &types.StudentProfile{
		FullName:    e.FullName,
		SchoolName:  e.SchoolName,
		Grade:       e.Grade,
		Year:        e.Year,
		AboutMe:     e.AboutMe,
		PersonalBio: e.PersonalBio,
		Archetype: types.Archetype{
			Title:       e.ArchetypeTitle,
			Description: e.ArchetypeDescription,
			Quote:       e.ArchetypeQuote,
		},
		CoreStrengths: splitComma(e.CoreStrengths),
		Passions:      splitComma(e.Passions),
	}
	Normalize(p)

	if missing := missingFields(p); len(missing) > 0 {
		return nil, &ValidationError{
			Message: "please fill in at least your name and school",
			Fields:  missing,
		}
	}

	if len(e.ProfileImage) > 0 {
		dataURL, err := ImageDataURL(e.ProfileImage)
		if err != nil {
			return nil, err
		}
		p.ProfileImage = dataURL
	}

	p.ProfileID = fmt.Sprintf("STU-%d", now.UnixMilli())
	p.LastUpdated = now.Format(manualDateLayout)

	return p, nil
}

// ImageDataURL encodes an image file as a data URL, rejecting anything that is not an image
func ImageDataURL(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", &ValidationError{
			Message: fmt.Sprintf("profile picture must be an image, got %s", mt.String()),
			Fields:  []string{"profileImage"},
		}
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func splitComma(value string) []string {
	if value == "" {
		return nil
	}
	return cleanList(strings.Split(value, ","))
}
