package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/domain"
	"github.com/fibulaproject/fibulopedia/internal/logger"
)

// HandleListQuests lists quests, optionally narrowed by a search query or
// a location filter
// @Summary List quests
// @Description Lists quests; ?q= searches name/location/description/reward, ?location= filters
// @Tags quests
// @Produce json
// @Param q query string false "Search query"
// @Param location query string false "Location filter"
// @Success 200 {object} ListResponse
// @Router /quests [get]
func HandleListQuests(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var quests []domain.Quest
		switch {
		case r.URL.Query().Get("q") != "":
			quests = svc.SearchQuests(r.URL.Query().Get("q"))
		case r.URL.Query().Get("location") != "":
			quests = svc.FilterQuestsByLocation(r.URL.Query().Get("location"))
		default:
			quests = svc.Quests()
		}

		log.Debug("Quests listed", "count", len(quests))
		respondList(w, len(quests), quests)
	}
}

// HandleGetQuest returns a single quest by id
// @Summary Get quest
// @Tags quests
// @Produce json
// @Param id path string true "Quest id"
// @Success 200 {object} domain.Quest
// @Failure 404 {object} ErrorResponse
// @Router /quests/{id} [get]
func HandleGetQuest(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quest, err := svc.QuestByID(chi.URLParam(r, "id"))
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, quest)
	}
}

// HandleQuestLocations returns the distinct quest location values
// @Summary List quest locations
// @Tags quests
// @Produce json
// @Success 200 {object} ListResponse
// @Router /quests/locations [get]
func HandleQuestLocations(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations := svc.QuestLocations()
		respondList(w, len(locations), locations)
	}
}
