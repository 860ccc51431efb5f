package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/logger"
)

// RateResponse carries one named server rate
type RateResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// HandleGetServerInfo returns the server information singleton
// @Summary Get server info
// @Tags server-info
// @Produce json
// @Success 200 {object} domain.ServerInfo
// @Failure 404 {object} ErrorResponse
// @Router /server-info [get]
func HandleGetServerInfo(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		info, ok := svc.ServerInfo()
		if !ok {
			log.Warn("Server info unavailable")
			respondError(w, http.StatusNotFound, ErrMsgNotFound)
			return
		}
		respondJSON(w, http.StatusOK, info)
	}
}

// HandleGetRate returns one server rate by name
// @Summary Get server rate
// @Tags server-info
// @Produce json
// @Param name path string true "Rate name (exp, loot, skill, magic)"
// @Success 200 {object} RateResponse
// @Failure 404 {object} ErrorResponse
// @Router /server-info/rates/{name} [get]
func HandleGetRate(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		rate, ok := svc.Rate(name)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgNotFound)
			return
		}
		respondJSON(w, http.StatusOK, RateResponse{Name: name, Value: rate})
	}
}
