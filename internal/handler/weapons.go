package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/domain"
	"github.com/fibulaproject/fibulopedia/internal/logger"
)

// HandleListWeapons lists weapons, optionally narrowed by a search query
// or a type filter
// @Summary List weapons
// @Description Lists weapons; ?q= searches name/type/dropped_by, ?type= filters the category
// @Tags weapons
// @Produce json
// @Param q query string false "Search query"
// @Param type query string false "Weapon type filter"
// @Success 200 {object} ListResponse
// @Router /weapons [get]
func HandleListWeapons(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var weapons []domain.Weapon
		switch {
		case r.URL.Query().Get("q") != "":
			weapons = svc.SearchWeapons(r.URL.Query().Get("q"))
		case r.URL.Query().Get("type") != "":
			weapons = svc.FilterWeaponsByType(r.URL.Query().Get("type"))
		default:
			weapons = svc.Weapons()
		}

		log.Debug("Weapons listed", "count", len(weapons))
		respondList(w, len(weapons), weapons)
	}
}

// HandleGetWeapon returns a single weapon by id
// @Summary Get weapon
// @Tags weapons
// @Produce json
// @Param id path string true "Weapon id"
// @Success 200 {object} domain.Weapon
// @Failure 404 {object} ErrorResponse
// @Router /weapons/{id} [get]
func HandleGetWeapon(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weapon, err := svc.WeaponByID(chi.URLParam(r, "id"))
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, weapon)
	}
}

// HandleWeaponTypes returns the distinct weapon type values
// @Summary List weapon types
// @Tags weapons
// @Produce json
// @Success 200 {object} ListResponse
// @Router /weapons/types [get]
func HandleWeaponTypes(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types := svc.WeaponTypes()
		respondList(w, len(types), types)
	}
}
