package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// account reports the identity of the token bearer, mirroring the account
// endpoint of a real cloud drive.
func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	acc, ok := accountFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no account in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, acc)
}
