package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/domain"
	"github.com/fibulaproject/fibulopedia/internal/logger"
)

// HandleListEquipment lists equipment, optionally narrowed by a search
// query or a slot filter
// @Summary List equipment
// @Description Lists equipment; ?q= searches name/slot/dropped_by, ?slot= filters the slot
// @Tags equipment
// @Produce json
// @Param q query string false "Search query"
// @Param slot query string false "Equipment slot filter"
// @Success 200 {object} ListResponse
// @Router /equipment [get]
func HandleListEquipment(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var items []domain.EquipmentItem
		switch {
		case r.URL.Query().Get("q") != "":
			items = svc.SearchEquipment(r.URL.Query().Get("q"))
		case r.URL.Query().Get("slot") != "":
			items = svc.FilterEquipmentBySlot(r.URL.Query().Get("slot"))
		default:
			items = svc.Equipment()
		}

		log.Debug("Equipment listed", "count", len(items))
		respondList(w, len(items), items)
	}
}

// HandleGetEquipment returns a single equipment item by id
// @Summary Get equipment item
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment id"
// @Success 200 {object} domain.EquipmentItem
// @Failure 404 {object} ErrorResponse
// @Router /equipment/{id} [get]
func HandleGetEquipment(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.EquipmentByID(chi.URLParam(r, "id"))
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleEquipmentSlots returns the distinct equipment slot values
// @Summary List equipment slots
// @Tags equipment
// @Produce json
// @Success 200 {object} ListResponse
// @Router /equipment/slots [get]
func HandleEquipmentSlots(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slots := svc.EquipmentSlots()
		respondList(w, len(slots), slots)
	}
}
