package search

import (
	"log/slog"
	"strings"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/domain"
	"github.com/fibulaproject/fibulopedia/internal/metrics"
)

// Service fans a query out across every catalog kind and merges the hits
// into a single capped, uniformly-enveloped result list.
type Service struct {
	catalog    *catalog.Service
	maxResults int
	snippetLen int
}

// NewService creates a unified search service over the given catalog.
// maxResults caps the merged result list; snippetLen bounds snippets.
func NewService(cat *catalog.Service, maxResults, snippetLen int) *Service {
	return &Service{
		catalog:    cat,
		maxResults: maxResults,
		snippetLen: snippetLen,
	}
}

// SearchAll queries every entity kind and merges the hits in the fixed
// kind order (weapon, equipment, spell, monster, quest), capped at the
// configured maximum. A blank query returns no results: global search of
// "everything" is defined as "nothing", unlike the per-kind contract,
// so an empty search box never dumps the whole catalog.
func (s *Service) SearchAll(query string) []domain.SearchResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return []domain.SearchResult{}
	}

	results := make([]domain.SearchResult, 0)
	for _, kind := range domain.SearchEntityTypes {
		results = append(results, s.searchKind(q, kind)...)
	}
	results = s.cap(results)

	metrics.SearchesPerformed.Inc()
	slog.Info("Unified search performed", "query", q, "results", len(results))
	return results
}

// SearchByEntityType restricts the search to exactly one kind. An
// unrecognized kind yields an empty result list, not an error.
func (s *Service) SearchByEntityType(query, entityType string) []domain.SearchResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return []domain.SearchResult{}
	}
	if !domain.ValidEntityType(entityType) {
		slog.Debug("Unknown entity type in search", "entity_type", entityType)
		return []domain.SearchResult{}
	}

	results := s.cap(s.searchKind(q, entityType))

	metrics.SearchesPerformed.Inc()
	slog.Info("Entity search performed", "query", q, "entity_type", entityType, "results", len(results))
	return results
}

func (s *Service) cap(results []domain.SearchResult) []domain.SearchResult {
	if len(results) > s.maxResults {
		return results[:s.maxResults]
	}
	return results
}

// searchKind runs one kind's search function and wraps its hits in the
// uniform envelope. The snippet is built over the kind's most relevant
// free-text field, falling back to the name for items without one.
func (s *Service) searchKind(query, kind string) []domain.SearchResult {
	var results []domain.SearchResult

	switch kind {
	case domain.EntityTypeWeapon:
		for _, w := range s.catalog.SearchWeapons(query) {
			results = append(results, s.envelope(kind, w.ID, w.Name, textOrName(w.Description, w.Name), query))
		}
	case domain.EntityTypeEquipment:
		for _, e := range s.catalog.SearchEquipment(query) {
			results = append(results, s.envelope(kind, e.ID, e.Name, textOrName(e.Description, e.Name), query))
		}
	case domain.EntityTypeSpell:
		for _, sp := range s.catalog.SearchSpells(query) {
			results = append(results, s.envelope(kind, sp.ID, sp.Name, sp.Effect, query))
		}
	case domain.EntityTypeMonster:
		for _, m := range s.catalog.SearchMonsters(query) {
			results = append(results, s.envelope(kind, m.ID, m.Name, m.Loot, query))
		}
	case domain.EntityTypeQuest:
		for _, q := range s.catalog.SearchQuests(query) {
			results = append(results, s.envelope(kind, q.ID, q.Name, q.ShortDescription, query))
		}
	}
	return results
}

func (s *Service) envelope(kind, id, name, text, query string) domain.SearchResult {
	return domain.SearchResult{
		EntityType: kind,
		EntityID:   id,
		Name:       name,
		Snippet:    MakeSnippet(text, query, s.snippetLen),
	}
}

func textOrName(text, name string) string {
	if text != "" {
		return text
	}
	return name
}
