package domain

// Quest represents a quest from the content catalog
type Quest struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	ShortDescription string   `json:"short_description"`
	Reward           string   `json:"reward"`
	Difficulty       string   `json:"difficulty,omitempty"`
	Steps            []string `json:"steps,omitempty"`
}
