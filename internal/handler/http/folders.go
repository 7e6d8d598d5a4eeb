package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// listChildren lists folders and files under a folder; an empty "parent"
// query parameter means the drive root.
func (h *Handler) listChildren(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	listing, err := h.drive.ListChildren(r.URL.Query().Get("parent"))
	if err != nil {
		log.Err(err).Msg("error listing drive folder")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}
