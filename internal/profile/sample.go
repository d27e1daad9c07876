package profile

import "github.com/jonathan/student-portfolio/internal/types"

// SampleProfile returns the example portfolio shown to first-time visitors
func SampleProfile() types.StudentProfile {
	return types.StudentProfile{
		FullName:         "Erica Cangan",
		SchoolName:       "Lincoln High School",
		Grade:            "11th Grade",
		Year:             "2024-2025",
		ProfileID:        "STU-2024-EC-8472",
		LastUpdated:      "October 13, 2025",
		AchievementLevel: "Exemplary",
		AboutMe: "A well-crafted profile snapshot establishes your professional presence and helps viewers quickly " +
			"understand your academic standing and current educational context. I am passionate about technology, " +
			"creative problem-solving, and making a positive impact in my community.",
		Archetype: types.Archetype{
			Title: "The Visionary Collaborator",
			Description: "Erica Cangan thrives as a dynamic, forward-thinking leader who empowers teams, adapts to change, " +
				"and navigates complex challenges with confidence, analytical insight, and a spirit of innovation.",
			Quote: "Together we imagine, adapt, and achieve what others believe impossible.",
		},
		SocialEnergyStyle: types.SocialEnergyStyle{
			Type: "People-Powered",
			Description: "Erica radiates social energy, excelling in lively environments and inspiring those around her " +
				"to connect, collaborate, and reach new heights together.",
		},
		PersonalBio: "I'm a curious learner who loves tackling complex challenges and creating innovative solutions. " +
			"Whether I'm coding a new app, leading a community project, or exploring the intersection of art and " +
			"technology, I bring enthusiasm and dedication to everything I do.",
		CoreStrengths: []string{"Curious Thinker", "Team Player", "Problem Solver", "Creative Innovator", "Strategic Planner"},
		Passions:      []string{"Technology", "Digital Art", "Environmental Science", "Community Service", "Public Speaking", "Reading"},
		Skills: map[string]types.SkillScore{
			"Adaptability":      {Overall: 88, SubSkills: map[string]float64{"Flexibility": 84, "Problem-Solving": 90, "Openness to Change": 91}},
			"Teamwork":          {Overall: 92, SubSkills: map[string]float64{"Collaboration": 100, "Communication": 89, "Conflict Resolution": 71}},
			"Confidence":        {Overall: 92, SubSkills: map[string]float64{"Public Speaking": 73, "Self-Advocacy": 100, "Risk-Taking": 100}},
			"Creative Thinking": {Overall: 67, SubSkills: map[string]float64{"Brainstorming": 50, "Innovation": 84, "Originality": 67}},
			"Critical Thinking": {Overall: 100, SubSkills: map[string]float64{"Analysis": 100, "Evaluation": 100, "Reasoning": 100}},
			"Leadership":        {Overall: 83, SubSkills: map[string]float64{"Delegation": 100, "Motivation": 67, "Strategic Vision": 83}},
			"Problem Solving":   {Overall: 83, SubSkills: map[string]float64{"Root Cause Analysis": 100, "Creative Solutions": 67, "Implementation": 83}},
			"Time Management":   {Overall: 100, SubSkills: map[string]float64{"Prioritization": 100, "Scheduling": 100, "Goal Achievement": 100}},
		},
		Projects: []types.Project{
			{
				Title: "Science Fair Robot",
				Description: "Developed an autonomous robot for a science fair, capable of navigating a custom-built maze " +
					"and identifying colored objects.",
				Skills:   "Problem-solving, Prototyping, Critical Thinking",
				Tools:    "Robotics Kit, Python, Arduino",
				Duration: "3 months",
			},
			{
				Title: "Community Garden Initiative",
				Description: "Co-led a community initiative to establish and maintain a sustainable urban garden, " +
					"organizing volunteer workdays and securing local partnerships.",
				Skills:   "Project Management, Leadership, Collaboration",
				Tools:    "Project Management Software, Community Platforms",
				Duration: "6 months",
			},
			{
				Title:       "Digital Art Portfolio",
				Description: "Created a comprehensive digital art collection showcasing different artistic styles and techniques.",
				Skills:      "Creative Thinking, Visual Design, Adaptability",
				Tools:       "Adobe Creative Suite, Procreate, Figma",
				Duration:    "5 months",
			},
		},
		CaseStudies: []types.CaseStudy{},
		Extracurricular: []types.Extracurricular{
			{
				Title:       "Environmental Club President",
				Description: "Led the school's environmental club, organizing campus cleanups, recycling initiatives, and awareness campaigns.",
				Skills:      "Leadership, Environmental Advocacy, Team Building, Public Speaking",
				Duration:    "1 year",
				Images: []types.ExtracurricularImage{
					{Caption: "Campus Cleanup", Description: "Students working together during a campus-wide cleanup initiative."},
					{Caption: "Recycling Program", Description: "Setting up recycling bins and educating students about proper waste sorting."},
				},
			},
			{
				Title:       "Debate Team Captain",
				Description: "Captained the school debate team to regional championships, mentoring younger members.",
				Skills:      "Critical Thinking, Public Speaking, Research, Mentorship",
				Duration:    "2 years",
				Images: []types.ExtracurricularImage{
					{Caption: "Competition Day", Description: "Team members preparing arguments before a major debate competition."},
					{Caption: "Trophy Ceremony", Description: "Celebrating our regional championship victory."},
				},
			},
		},
		Publications: []types.Publication{
			{Title: "The Impact of Technology on Modern Education", Date: "September 2024", Platform: "School Tech Blog", Link: "#"},
			{Title: "Building Sustainable Communities Through Youth Engagement", Date: "August 2024", Platform: "Community Newsletter", Link: "#"},
		},
		CareerPaths: []types.CareerPath{
			{
				Title:        "Innovation Project Manager",
				Field:        "Design/Engineering",
				WhyLoveIt:    []string{"Lead cutting-edge projects", "Merge creativity with strategy", "See tangible impact"},
				DayLooksLike: []string{"Facilitating brainstorming sessions", "Managing cross-functional teams", "Developing project roadmaps"},
				KeySubjects:  []string{"Project Management", "Design Thinking", "Engineering Principles", "Business Strategy"},
			},
			{
				Title:        "Product Design Lead",
				Field:        "Design/Engineering",
				WhyLoveIt:    []string{"Create intuitive and impactful products", "Guide design vision", "Foster a user-centric approach"},
				DayLooksLike: []string{"Overseeing UX/UI research", "Leading design sprints", "Mentoring junior designers"},
				KeySubjects:  []string{"UX/UI Design", "Industrial Design", "Human-Computer Interaction", "User Research"},
			},
		},
	}
}
