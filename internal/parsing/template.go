package parsing

import "strings"

const (
	// TemplateFilename is the file name offered when the template is downloaded
	TemplateFilename = "student_portfolio_template.csv"
	// TemplateMIMEType is the content type of the template download
	TemplateMIMEType = "text/csv"
)

// templateHeaders is the column order of the CSV template
var templateHeaders = []string{
	"fullName",
	"email",
	"linkedinUrl",
	"schoolName",
	"grade",
	"year",
	"aboutMe",
	"achievementLevel",
	"personalBio",
	"coreStrengths",
	"passions",
}

// templateRows are the illustrative rows, in templateHeaders order
var templateRows = [][]string{
	{
		"John Smith",
		"john.smith@email.com",
		"https://linkedin.com/in/johnsmith",
		"Lincoln High School",
		"11th",
		"2024-2025",
		"Passionate about technology and innovation",
		"Scholar",
		"I'm a tech enthusiast who loves building projects that make a difference",
		"Problem Solving|Creative Thinking|Leadership",
		"Coding|Robotics|AI",
	},
	{
		"Sarah Johnson",
		"sarah.johnson@email.com",
		"https://linkedin.com/in/sarahjohnson",
		"Washington Academy",
		"12th",
		"2024-2025",
		"Aspiring environmental scientist and activist",
		"Valedictorian",
		"I'm passionate about sustainability and creating a better future for our planet",
		"Research|Public Speaking|Data Analysis",
		"Environmental Science|Climate Action|Community Service",
	},
}

// GenerateTemplate returns the CSV template: a plain header row followed by sample rows
// whose cells are wrapped in double quotes.
func GenerateTemplate() string {
	lines := make([]string, 0, len(templateRows)+1)
	lines = append(lines, strings.Join(templateHeaders, ","))

	for _, row := range templateRows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = `"` + cell + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n")
}

// TemplateSampleNames returns the full names used in the template rows
func TemplateSampleNames() []string {
	names := make([]string, len(templateRows))
	for i, row := range templateRows {
		names[i] = row[0]
	}
	return names
}

// Download is a file offered to the user
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Template returns the CSV template as a download
func Template() Download {
	return Download{
		Filename:    TemplateFilename,
		ContentType: TemplateMIMEType,
		Body:        []byte(GenerateTemplate()),
	}
}
