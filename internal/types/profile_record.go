package types

import (
	"encoding/json"
	"reflect"
)

// ProfileRecord is a sparse student profile produced by bulk import.
// Scalars absent from the source stay empty; collections are always non-nil so they encode as [] and {}.
type ProfileRecord struct {
	ProfileID         string            `json:"profileId"`
	LastUpdated       string            `json:"lastUpdated"`
	FullName          string            `json:"fullName,omitempty" validate:"required"`
	SchoolName        string            `json:"schoolName,omitempty" validate:"required"`
	Grade             string            `json:"grade,omitempty"`
	Year              string            `json:"year,omitempty"`
	AboutMe           string            `json:"aboutMe,omitempty"`
	AchievementLevel  string            `json:"achievementLevel,omitempty"`
	PersonalBio       string            `json:"personalBio,omitempty"`
	Archetype         Archetype         `json:"archetype"`
	SocialEnergyStyle SocialEnergyStyle `json:"socialEnergyStyle"`
	CoreStrengths     []string          `json:"coreStrengths,omitempty"`
	Passions          []string          `json:"passions,omitempty"`

	Skills          map[string]SkillScore `json:"skills"`
	Projects        []Project             `json:"projects"`
	CaseStudies     []CaseStudy           `json:"caseStudies"`
	Extracurricular []Extracurricular     `json:"extracurricular"`
	CareerPaths     []CareerPath          `json:"careerPaths"`

	// Extra holds columns that have no typed field, keyed by their header name
	Extra map[string]string `json:"-"`
}

// NewProfileRecord returns a record with every collection initialised to empty
func NewProfileRecord() ProfileRecord {
	return ProfileRecord{
		Skills:          map[string]SkillScore{},
		Projects:        []Project{},
		CaseStudies:     []CaseStudy{},
		Extracurricular: []Extracurricular{},
		CareerPaths:     []CareerPath{},
	}
}

type profileRecordJSON ProfileRecord

// IsRecordKey reports whether key is a typed ProfileRecord JSON key.
// Extra entries under such a key are kept in memory but left out of the JSON encoding.
func IsRecordKey(key string) bool {
	_, ok := jsonKeys(reflect.TypeOf(profileRecordJSON{}))[key]
	return ok
}

// MarshalJSON flattens Extra into the top-level object
func (r ProfileRecord) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(profileRecordJSON(r), r.Extra)
}

// UnmarshalJSON decodes the known fields and collects unknown string fields into Extra
func (r *ProfileRecord) UnmarshalJSON(data []byte) error {
	var aux profileRecordJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	extra, err := collectExtra(data, aux)
	if err != nil {
		return err
	}
	*r = ProfileRecord(aux)
	r.Extra = extra
	return nil
}

// Profile promotes the record to a full StudentProfile
func (r ProfileRecord) Profile() StudentProfile {
	p := StudentProfile{
		FullName:          r.FullName,
		SchoolName:        r.SchoolName,
		Grade:             r.Grade,
		Year:              r.Year,
		ProfileID:         r.ProfileID,
		LastUpdated:       r.LastUpdated,
		AchievementLevel:  r.AchievementLevel,
		AboutMe:           r.AboutMe,
		Archetype:         r.Archetype,
		SocialEnergyStyle: r.SocialEnergyStyle,
		PersonalBio:       r.PersonalBio,
		CoreStrengths:     append([]string(nil), r.CoreStrengths...),
		Passions:          append([]string(nil), r.Passions...),
		Skills:            make(map[string]SkillScore, len(r.Skills)),
		Projects:          append([]Project(nil), r.Projects...),
		CaseStudies:       append([]CaseStudy(nil), r.CaseStudies...),
		Extracurricular:   append([]Extracurricular(nil), r.Extracurricular...),
		CareerPaths:       append([]CareerPath(nil), r.CareerPaths...),
	}
	for name, score := range r.Skills {
		p.Skills[name] = score
	}
	if len(r.Extra) > 0 {
		p.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			p.Extra[k] = v
		}
	}
	p.EnsureCollections()
	return p
}
