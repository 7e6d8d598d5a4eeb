package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/app"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/go-chi/chi/v5"
)

// createFile stores a new snapshot file. Name and path arrive as query
// parameters, the blob is the raw request body.
func (h *Handler) createFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, app.MsgFileNameRequired, http.StatusBadRequest)
		return
	}
	path := r.URL.Query().Get("path")

	blob, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading upload body")
		http.Error(w, app.MsgCannotReadBody, http.StatusBadRequest)
		return
	}

	ref, err := h.drive.CreateFile(name, path, blob)
	if err != nil {
		log.Err(err).Msg("error creating drive file")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, ref)
}

func (h *Handler) overwriteFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	fileID := chi.URLParam(r, "fileID")

	blob, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading upload body")
		http.Error(w, app.MsgCannotReadBody, http.StatusBadRequest)
		return
	}

	ref, err := h.drive.OverwriteFile(fileID, blob)
	if err != nil {
		if errors.Is(err, store.ErrDriveFileNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error overwriting drive file")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ref)
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	fileID := chi.URLParam(r, "fileID")

	blob, err := h.drive.ReadFile(fileID)
	if err != nil {
		if errors.Is(err, store.ErrDriveFileNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error reading drive file")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(blob)
}
