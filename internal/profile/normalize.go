package profile

import (
	"strings"

	"github.com/jonathan/student-portfolio/internal/types"
)

const (
	minScore = 0
	maxScore = 100
)

// Normalize cleans a profile in place: trims text, drops blank list items,
// clamps skill scores to 0-100 and makes every collection non-nil.
func Normalize(p *types.StudentProfile) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.SchoolName = strings.TrimSpace(p.SchoolName)
	p.Grade = strings.TrimSpace(p.Grade)
	p.Year = strings.TrimSpace(p.Year)
	p.AchievementLevel = strings.TrimSpace(p.AchievementLevel)
	p.AboutMe = strings.TrimSpace(p.AboutMe)
	p.PersonalBio = strings.TrimSpace(p.PersonalBio)

	p.Archetype.Title = strings.TrimSpace(p.Archetype.Title)
	p.Archetype.Description = strings.TrimSpace(p.Archetype.Description)
	p.Archetype.Quote = strings.TrimSpace(p.Archetype.Quote)
	p.SocialEnergyStyle.Type = strings.TrimSpace(p.SocialEnergyStyle.Type)
	p.SocialEnergyStyle.Description = strings.TrimSpace(p.SocialEnergyStyle.Description)

	p.CoreStrengths = cleanList(p.CoreStrengths)
	p.Passions = cleanList(p.Passions)
	p.Skills = normalizeSkills(p.Skills)

	for i := range p.CareerPaths {
		path := &p.CareerPaths[i]
		path.WhyLoveIt = cleanList(path.WhyLoveIt)
		path.DayLooksLike = cleanList(path.DayLooksLike)
		path.KeySubjects = cleanList(path.KeySubjects)
	}

	p.EnsureCollections()
}

// cleanList trims items and drops blank ones, keeping order and duplicates
func cleanList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

func normalizeSkills(skills map[string]types.SkillScore) map[string]types.SkillScore {
	normalized := make(map[string]types.SkillScore, len(skills))
	for name, score := range skills {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		sub := make(map[string]float64, len(score.SubSkills))
		for subName, value := range score.SubSkills {
			subName = strings.TrimSpace(subName)
			if subName == "" {
				continue
			}
			sub[subName] = clampScore(value)
		}
		normalized[name] = types.SkillScore{
			Overall:   clampScore(score.Overall),
			SubSkills: sub,
		}
	}
	return normalized
}

func clampScore(v float64) float64 {
	return min(max(v, minScore), maxScore)
}
