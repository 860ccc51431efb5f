package domain

// VocationAll is the sentinel vocation meaning a spell is usable by everyone
const VocationAll = "All"

// Spell represents a castable spell from the content catalog
type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Incantation string `json:"incantation"`
	Vocation    string `json:"vocation"`
	Level       int    `json:"level"`
	Mana        int    `json:"mana"`
	Effect      string `json:"effect"`
	Type        string `json:"type,omitempty"`
}
