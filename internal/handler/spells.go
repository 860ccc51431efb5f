package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/domain"
	"github.com/fibulaproject/fibulopedia/internal/logger"
)

// HandleListSpells lists spells, optionally narrowed by a search query or
// a vocation filter
// @Summary List spells
// @Description Lists spells; ?q= searches name/incantation/effect/vocation, ?vocation= filters
// @Tags spells
// @Produce json
// @Param q query string false "Search query"
// @Param vocation query string false "Vocation filter"
// @Success 200 {object} ListResponse
// @Router /spells [get]
func HandleListSpells(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var spells []domain.Spell
		switch {
		case r.URL.Query().Get("q") != "":
			spells = svc.SearchSpells(r.URL.Query().Get("q"))
		case r.URL.Query().Get("vocation") != "":
			spells = svc.FilterSpellsByVocation(r.URL.Query().Get("vocation"))
		default:
			spells = svc.Spells()
		}

		log.Debug("Spells listed", "count", len(spells))
		respondList(w, len(spells), spells)
	}
}

// HandleGetSpell returns a single spell by id
// @Summary Get spell
// @Tags spells
// @Produce json
// @Param id path string true "Spell id"
// @Success 200 {object} domain.Spell
// @Failure 404 {object} ErrorResponse
// @Router /spells/{id} [get]
func HandleGetSpell(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spell, err := svc.SpellByID(chi.URLParam(r, "id"))
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, spell)
	}
}

// HandleSpellVocations returns the distinct vocation values
// @Summary List spell vocations
// @Tags spells
// @Produce json
// @Success 200 {object} ListResponse
// @Router /spells/vocations [get]
func HandleSpellVocations(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vocations := svc.SpellVocations()
		respondList(w, len(vocations), vocations)
	}
}
