package domain

// Entity kind tags used in unified search results
const (
	EntityTypeWeapon     = "weapon"
	EntityTypeEquipment  = "equipment"
	EntityTypeSpell      = "spell"
	EntityTypeMonster    = "monster"
	EntityTypeQuest      = "quest"
	EntityTypeServerInfo = "server_info"
)

// SearchEntityTypes is the fixed merge order of the unified search.
// Results from earlier kinds sort before results from later kinds.
var SearchEntityTypes = []string{
	EntityTypeWeapon,
	EntityTypeEquipment,
	EntityTypeSpell,
	EntityTypeMonster,
	EntityTypeQuest,
}

// SearchResult is the uniform envelope produced by the unified search.
// It is transient: built per query, never persisted.
type SearchResult struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id,omitempty"`
	Name       string `json:"name"`
	Snippet    string `json:"snippet"`
}

// ValidEntityType reports whether kind is one of the searchable kinds
func ValidEntityType(kind string) bool {
	for _, t := range SearchEntityTypes {
		if t == kind {
			return true
		}
	}
	return false
}
