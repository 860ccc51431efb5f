package domain

// Monster represents a creature from the content catalog.
// Loot is unstructured text, not a parsed item list.
type Monster struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HP         int    `json:"hp"`
	Exp        int    `json:"exp"`
	Loot       string `json:"loot"`
	Location   string `json:"location"`
	Difficulty string `json:"difficulty,omitempty"`
}
