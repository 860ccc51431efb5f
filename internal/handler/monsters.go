package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/domain"
	"github.com/fibulaproject/fibulopedia/internal/logger"
)

// HandleListMonsters lists monsters, optionally narrowed by a search
// query or a location filter
// @Summary List monsters
// @Description Lists monsters; ?q= searches name/location/loot, ?location= filters
// @Tags monsters
// @Produce json
// @Param q query string false "Search query"
// @Param location query string false "Location filter"
// @Success 200 {object} ListResponse
// @Router /monsters [get]
func HandleListMonsters(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var monsters []domain.Monster
		switch {
		case r.URL.Query().Get("q") != "":
			monsters = svc.SearchMonsters(r.URL.Query().Get("q"))
		case r.URL.Query().Get("location") != "":
			monsters = svc.FilterMonstersByLocation(r.URL.Query().Get("location"))
		default:
			monsters = svc.Monsters()
		}

		log.Debug("Monsters listed", "count", len(monsters))
		respondList(w, len(monsters), monsters)
	}
}

// HandleGetMonster returns a single monster by id
// @Summary Get monster
// @Tags monsters
// @Produce json
// @Param id path string true "Monster id"
// @Success 200 {object} domain.Monster
// @Failure 404 {object} ErrorResponse
// @Router /monsters/{id} [get]
func HandleGetMonster(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monster, err := svc.MonsterByID(chi.URLParam(r, "id"))
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, monster)
	}
}

// HandleMonsterLocations returns the distinct monster location values
// @Summary List monster locations
// @Tags monsters
// @Produce json
// @Success 200 {object} ListResponse
// @Router /monsters/locations [get]
func HandleMonsterLocations(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations := svc.MonsterLocations()
		respondList(w, len(locations), locations)
	}
}
