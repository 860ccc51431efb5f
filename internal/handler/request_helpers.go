package handler

import (
	"fmt"
	"net/http"

	"github.com/fibulaproject/fibulopedia/internal/logger"
)

// GetQueryParam retrieves a required query parameter. When it is missing,
// an error response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}
