package handler

import (
	"net/http"

	"github.com/fibulaproject/fibulopedia/internal/domain"
	"github.com/fibulaproject/fibulopedia/internal/logger"
	"github.com/fibulaproject/fibulopedia/internal/search"
)

// SearchQuery represents the validated query inputs of the search endpoint
type SearchQuery struct {
	Query      string `validate:"required,max=200"`
	EntityType string `validate:"omitempty,entitytype"`
}

// HandleSearch runs the unified search across every entity kind, or a
// single kind when ?type= is given
// @Summary Unified search
// @Description Searches all catalog kinds and returns a merged, capped result list
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param type query string false "Restrict to one entity kind"
// @Success 200 {object} ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /search [get]
func HandleSearch(svc *search.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}
		entityType := r.URL.Query().Get("type")

		input := SearchQuery{Query: query, EntityType: entityType}
		if err := GetValidator().ValidateStruct(input); err != nil {
			log.Debug("Search input rejected", "error", err)
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		var results []domain.SearchResult
		if entityType != "" {
			results = svc.SearchByEntityType(query, entityType)
		} else {
			results = svc.SearchAll(query)
		}

		log.Debug("Search handled", "query", query, "type", entityType, "results", len(results))
		respondList(w, len(results), results)
	}
}
