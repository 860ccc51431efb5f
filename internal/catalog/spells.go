package catalog

import "github.com/fibulaproject/fibulopedia/internal/domain"

var spellRequiredFields = []string{"id", "name", "incantation", "vocation", "level", "mana", "effect"}

func buildSpell(rec Record) domain.Spell {
	return domain.Spell{
		ID:          ToString(rec["id"]),
		Name:        ToString(rec["name"]),
		Incantation: ToString(rec["incantation"]),
		Vocation:    ToString(rec["vocation"]),
		Level:       ToInt(rec["level"], 0),
		Mana:        ToInt(rec["mana"], 0),
		Effect:      ToString(rec["effect"]),
		Type:        ToString(rec["type"]),
	}
}

func spellTextFields(sp domain.Spell) []string {
	return []string{sp.Name, sp.Incantation, sp.Effect, sp.Vocation}
}

// Spells loads all spells from the content store, in source order
func (s *Service) Spells() []domain.Spell {
	return loadCatalog(s.store, SpellsFile, domain.EntityTypeSpell, spellRequiredFields, buildSpell)
}

// SpellByID returns the first spell with the given id
func (s *Service) SpellByID(id string) (domain.Spell, error) {
	if sp, ok := findByID(s.Spells(), id, func(sp domain.Spell) string { return sp.ID }); ok {
		return sp, nil
	}
	return domain.Spell{}, domain.ErrNotFound
}

// SearchSpells matches query against name, incantation, effect and
// vocation. An empty query returns the full collection.
func (s *Service) SearchSpells(query string) []domain.Spell {
	return searchCatalog(s.Spells(), query, spellTextFields)
}

// FilterSpellsByVocation filters spells on the vocation category.
// The sentinel vocation "All" only matches itself; resolving it against
// every class is a presentation concern.
func (s *Service) FilterSpellsByVocation(vocation string) []domain.Spell {
	return filterCatalog(s.Spells(), vocation, func(sp domain.Spell) string { return sp.Vocation })
}

// SpellVocations returns the distinct vocation values, sorted
func (s *Service) SpellVocations() []string {
	return distinctValues(s.Spells(), func(sp domain.Spell) string { return sp.Vocation })
}
