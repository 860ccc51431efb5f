package catalog

import "github.com/fibulaproject/fibulopedia/internal/domain"

var monsterRequiredFields = []string{"id", "name", "hp", "exp", "loot", "location"}

func buildMonster(rec Record) domain.Monster {
	return domain.Monster{
		ID:         ToString(rec["id"]),
		Name:       ToString(rec["name"]),
		HP:         ToInt(rec["hp"], 0),
		Exp:        ToInt(rec["exp"], 0),
		Loot:       ToString(rec["loot"]),
		Location:   ToString(rec["location"]),
		Difficulty: ToString(rec["difficulty"]),
	}
}

func monsterTextFields(m domain.Monster) []string {
	return []string{m.Name, m.Location, m.Loot}
}

// Monsters loads all monsters from the content store, in source order
func (s *Service) Monsters() []domain.Monster {
	return loadCatalog(s.store, MonstersFile, domain.EntityTypeMonster, monsterRequiredFields, buildMonster)
}

// MonsterByID returns the first monster with the given id
func (s *Service) MonsterByID(id string) (domain.Monster, error) {
	if m, ok := findByID(s.Monsters(), id, func(m domain.Monster) string { return m.ID }); ok {
		return m, nil
	}
	return domain.Monster{}, domain.ErrNotFound
}

// SearchMonsters matches query against name, location and loot.
// An empty query returns the full collection.
func (s *Service) SearchMonsters(query string) []domain.Monster {
	return searchCatalog(s.Monsters(), query, monsterTextFields)
}

// FilterMonstersByLocation filters monsters on the location category
func (s *Service) FilterMonstersByLocation(location string) []domain.Monster {
	return filterCatalog(s.Monsters(), location, func(m domain.Monster) string { return m.Location })
}

// MonsterLocations returns the distinct location values, sorted
func (s *Service) MonsterLocations() []string {
	return distinctValues(s.Monsters(), func(m domain.Monster) string { return m.Location })
}
