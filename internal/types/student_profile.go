// Package types provides type definitions for the student portfolio records shared across the toolkit.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// Archetype describes the personality archetype shown at the top of a portfolio
type Archetype struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Quote       string `json:"quote"`
}

// SocialEnergyStyle describes how a student engages with people around them
type SocialEnergyStyle struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// SkillScore is a skill gauge: an overall percentage plus named sub-skill percentages
type SkillScore struct {
	Overall   float64            `json:"overall"`
	SubSkills map[string]float64 `json:"subSkills"`
}

// Project is a portfolio project card
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      string   `json:"skills"`
	Tools       string   `json:"tools,omitempty"`
	Duration    string   `json:"duration"`
	Images      []string `json:"images,omitempty"`
}

// CaseStudyStep is one slide of a case-study gallery
type CaseStudyStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// CaseStudy is a project told as an ordered sequence of steps
type CaseStudy struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Skills      string          `json:"skills"`
	Duration    string          `json:"duration"`
	Steps       []CaseStudyStep `json:"steps"`
}

// ExtracurricularImage is a captioned highlight of an extracurricular activity
type ExtracurricularImage struct {
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

// Extracurricular is an activity outside the classroom
type Extracurricular struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Skills      string                 `json:"skills"`
	Duration    string                 `json:"duration"`
	Images      []ExtracurricularImage `json:"images,omitempty"`
}

// Publication is an article, video or post the student published
type Publication struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Platform  string `json:"platform"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// CareerPath is a career the student is exploring
type CareerPath struct {
	Title        string   `json:"title"`
	Field        string   `json:"field"`
	WhyLoveIt    []string `json:"whyLoveIt"`
	DayLooksLike []string `json:"dayLooksLike"`
	KeySubjects  []string `json:"keySubjects"`
}

// StudentProfile is the complete record a portfolio page is rendered from.
// Unknown string-valued JSON keys are kept in Extra and written back under their own names.
type StudentProfile struct {
	FullName          string                `json:"fullName" validate:"required"`
	SchoolName        string                `json:"schoolName" validate:"required"`
	Grade             string                `json:"grade"`
	Year              string                `json:"year"`
	ProfileID         string                `json:"profileId"`
	LastUpdated       string                `json:"lastUpdated"`
	AchievementLevel  string                `json:"achievementLevel,omitempty"`
	ProfileImage      string                `json:"profileImage,omitempty"`
	AboutMe           string                `json:"aboutMe"`
	Archetype         Archetype             `json:"archetype"`
	SocialEnergyStyle SocialEnergyStyle     `json:"socialEnergyStyle"`
	PersonalBio       string                `json:"personalBio"`
	CoreStrengths     []string              `json:"coreStrengths"`
	Passions          []string              `json:"passions"`
	Skills            map[string]SkillScore `json:"skills"`
	Projects          []Project             `json:"projects"`
	CaseStudies       []CaseStudy           `json:"caseStudies"`
	Extracurricular   []Extracurricular     `json:"extracurricular"`
	Publications      []Publication         `json:"publications,omitempty"`
	CareerPaths       []CareerPath          `json:"careerPaths"`

	Extra map[string]string `json:"-"`
}

type studentProfileJSON StudentProfile

// MarshalJSON flattens Extra into the top-level object
func (p StudentProfile) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(studentProfileJSON(p), p.Extra)
}

// UnmarshalJSON decodes the known fields and collects unknown string fields into Extra
func (p *StudentProfile) UnmarshalJSON(data []byte) error {
	var aux studentProfileJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	extra, err := collectExtra(data, aux)
	if err != nil {
		return err
	}
	*p = StudentProfile(aux)
	p.Extra = extra
	return nil
}

// EnsureCollections replaces nil collections with empty ones so they encode as [] and {}
func (p *StudentProfile) EnsureCollections() {
	if p.CoreStrengths == nil {
		p.CoreStrengths = []string{}
	}
	if p.Passions == nil {
		p.Passions = []string{}
	}
	if p.Skills == nil {
		p.Skills = map[string]SkillScore{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.CaseStudies == nil {
		p.CaseStudies = []CaseStudy{}
	}
	if p.Extracurricular == nil {
		p.Extracurricular = []Extracurricular{}
	}
	if p.CareerPaths == nil {
		p.CareerPaths = []CareerPath{}
	}
}
