package board

const maxCardPassions = 3

// Card is the summary shown for a profile on the board
type Card struct {
	ProfileID   string   `json:"profileId"`
	Name        string   `json:"name"`
	School      string   `json:"school"`
	Achievement string   `json:"achievement,omitempty"`
	Grade       string   `json:"grade,omitempty"`
	Year        string   `json:"year,omitempty"`
	AboutMe     string   `json:"aboutMe,omitempty"`
	Passions    []string `json:"passions,omitempty"`
}

// Cards summarizes entries for the board view
func Cards(entries []Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		p := e.Profile
		card := Card{
			ProfileID:   p.ProfileID,
			Name:        p.FullName,
			School:      p.SchoolName,
			Achievement: p.AchievementLevel,
			Grade:       p.Grade,
			Year:        p.Year,
			AboutMe:     p.AboutMe,
		}
		if card.Name == "" {
			card.Name = "Unknown Student"
		}
		if card.School == "" {
			card.School = "School not specified"
		}
		if n := min(len(p.Passions), maxCardPassions); n > 0 {
			card.Passions = append([]string(nil), p.Passions[:n]...)
		}
		cards = append(cards, card)
	}
	return cards
}
