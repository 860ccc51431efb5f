package catalog

import "github.com/fibulaproject/fibulopedia/internal/domain"

var questRequiredFields = []string{"id", "name", "location", "short_description", "reward"}

func buildQuest(rec Record) domain.Quest {
	return domain.Quest{
		ID:               ToString(rec["id"]),
		Name:             ToString(rec["name"]),
		Location:         ToString(rec["location"]),
		ShortDescription: ToString(rec["short_description"]),
		Reward:           ToString(rec["reward"]),
		Difficulty:       ToString(rec["difficulty"]),
		Steps:            ToStringList(rec["steps"]),
	}
}

func questTextFields(q domain.Quest) []string {
	return []string{q.Name, q.Location, q.ShortDescription, q.Reward}
}

// Quests loads all quests from the content store, in source order
func (s *Service) Quests() []domain.Quest {
	return loadCatalog(s.store, QuestsFile, domain.EntityTypeQuest, questRequiredFields, buildQuest)
}

// QuestByID returns the first quest with the given id
func (s *Service) QuestByID(id string) (domain.Quest, error) {
	if q, ok := findByID(s.Quests(), id, func(q domain.Quest) string { return q.ID }); ok {
		return q, nil
	}
	return domain.Quest{}, domain.ErrNotFound
}

// SearchQuests matches query against name, location, short description
// and reward. An empty query returns the full collection.
func (s *Service) SearchQuests(query string) []domain.Quest {
	return searchCatalog(s.Quests(), query, questTextFields)
}

// FilterQuestsByLocation filters quests on the location category
func (s *Service) FilterQuestsByLocation(location string) []domain.Quest {
	return filterCatalog(s.Quests(), location, func(q domain.Quest) string { return q.Location })
}

// QuestLocations returns the distinct location values, sorted
func (s *Service) QuestLocations() []string {
	return distinctValues(s.Quests(), func(q domain.Quest) string { return q.Location })
}
