package domain

// ServerInfo represents the singleton server information record.
// Rates maps a rate name (exp, loot, skill, magic) to its multiplier.
type ServerInfo struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Rates          map[string]float64 `json:"rates"`
	Version        string             `json:"version"`
	Website        string             `json:"website,omitempty"`
	Discord        string             `json:"discord,omitempty"`
	AdditionalInfo string             `json:"additional_info,omitempty"`
}
