package parsing

import "github.com/jonathan/student-portfolio/internal/types"

// DefaultArchetype is used when the input has no archetype columns at all
var DefaultArchetype = types.Archetype{
	Title:       "The Innovator",
	Description: "A creative problem-solver who thinks outside the box",
	Quote:       "Innovation distinguishes between a leader and a follower",
}

// DefaultSocialEnergyStyle is used when the input has no social energy columns at all
var DefaultSocialEnergyStyle = types.SocialEnergyStyle{
	Type:        "Ambivert",
	Description: "Balanced between social interaction and solitary work",
}

// ArchetypeBuilder accumulates archetype columns of a single row.
// Setting one key never resets the others.
type ArchetypeBuilder struct {
	value   types.Archetype
	touched bool
}

// SetTitle sets the archetype title
func (b *ArchetypeBuilder) SetTitle(v string) {
	b.value.Title = v
	b.touched = true
}

// SetDescription sets the archetype description
func (b *ArchetypeBuilder) SetDescription(v string) {
	b.value.Description = v
	b.touched = true
}

// SetQuote sets the archetype quote
func (b *ArchetypeBuilder) SetQuote(v string) {
	b.value.Quote = v
	b.touched = true
}

// Build returns the accumulated archetype, or fallback if no archetype column was seen.
// Keys without a column stay empty.
func (b *ArchetypeBuilder) Build(fallback types.Archetype) types.Archetype {
	if !b.touched {
		return fallback
	}
	return b.value
}

// SocialEnergyBuilder accumulates social energy columns of a single row
type SocialEnergyBuilder struct {
	value   types.SocialEnergyStyle
	touched bool
}

// SetType sets the social energy type
func (b *SocialEnergyBuilder) SetType(v string) {
	b.value.Type = v
	b.touched = true
}

// SetDescription sets the social energy description
func (b *SocialEnergyBuilder) SetDescription(v string) {
	b.value.Description = v
	b.touched = true
}

// Build returns the accumulated style, or fallback if no social energy column was seen
func (b *SocialEnergyBuilder) Build(fallback types.SocialEnergyStyle) types.SocialEnergyStyle {
	if !b.touched {
		return fallback
	}
	return b.value
}

// recordBuilder is the record-in-progress for one data row
type recordBuilder struct {
	rec          types.ProfileRecord
	archetype    ArchetypeBuilder
	socialEnergy SocialEnergyBuilder
}

func newRecordBuilder() *recordBuilder {
	return &recordBuilder{rec: types.NewProfileRecord()}
}

type setter func(b *recordBuilder, value string)

// columnSetters maps known header names to the field they populate.
// Headers not listed here land in ProfileRecord.Extra.
var columnSetters = map[string]setter{
	"fullName":         func(b *recordBuilder, v string) { b.rec.FullName = v },
	"schoolName":       func(b *recordBuilder, v string) { b.rec.SchoolName = v },
	"grade":            func(b *recordBuilder, v string) { b.rec.Grade = v },
	"year":             func(b *recordBuilder, v string) { b.rec.Year = v },
	"aboutMe":          func(b *recordBuilder, v string) { b.rec.AboutMe = v },
	"achievementLevel": func(b *recordBuilder, v string) { b.rec.AchievementLevel = v },
	"personalBio":      func(b *recordBuilder, v string) { b.rec.PersonalBio = v },
	"coreStrengths":    func(b *recordBuilder, v string) { b.rec.CoreStrengths = splitList(v) },
	"passions":         func(b *recordBuilder, v string) { b.rec.Passions = splitList(v) },

	"archetypeTitle":       func(b *recordBuilder, v string) { b.archetype.SetTitle(v) },
	"archetypeDescription": func(b *recordBuilder, v string) { b.archetype.SetDescription(v) },
	"archetypeQuote":       func(b *recordBuilder, v string) { b.archetype.SetQuote(v) },

	"socialEnergyType":        func(b *recordBuilder, v string) { b.socialEnergy.SetType(v) },
	"socialEnergyDescription": func(b *recordBuilder, v string) { b.socialEnergy.SetDescription(v) },
}

// set dispatches one (header, value) pair
func (b *recordBuilder) set(header, value string) {
	if fn, ok := columnSetters[header]; ok {
		fn(b, value)
		return
	}
	if b.rec.Extra == nil {
		b.rec.Extra = make(map[string]string)
	}
	b.rec.Extra[header] = value
}

// build finalizes the record with its synthetic identity
func (b *recordBuilder) build(profileID, lastUpdated string) types.ProfileRecord {
	rec := b.rec
	rec.Archetype = b.archetype.Build(DefaultArchetype)
	rec.SocialEnergyStyle = b.socialEnergy.Build(DefaultSocialEnergyStyle)
	rec.ProfileID = profileID
	rec.LastUpdated = lastUpdated
	return rec
}

// IsKnownColumn reports whether header maps to a typed field
func IsKnownColumn(header string) bool {
	_, ok := columnSetters[header]
	return ok
}
