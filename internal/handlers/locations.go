package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"furnitrack/internal/httpx"
	"furnitrack/internal/models"
	"furnitrack/internal/storage"
	"furnitrack/internal/validation"
)

// LocationHandler serves /api/locations.
type LocationHandler struct {
	store storage.Store
}

func NewLocationHandler(store storage.Store) *LocationHandler {
	return &LocationHandler{store: store}
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.store.ListLocations(r.Context())
	if err != nil {
		slog.Error("Failed to list locations", "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var l models.Location
	if !decode(w, r, &l) {
		return
	}

	// name and address are NOT NULL columns; reject up front instead of
	// surfacing an engine error as a 500.
	v := validation.Violations{}
	validation.Required("id", l.ID, v)
	validation.Required("name", l.Name, v)
	validation.Required("address", l.Address, v)
	if !v.Empty() {
		httpx.Error(w, http.StatusBadRequest, v.String())
		return
	}

	stamp := now()
	l.CreatedAt = stamp
	l.UpdatedAt = stamp

	if err := h.store.CreateLocation(r.Context(), &l); err != nil {
		slog.Error("Failed to create location", "id", l.ID, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Location created", "id", l.ID)
	httpx.JSON(w, http.StatusCreated, l)
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var l models.Location
	if !decode(w, r, &l) {
		return
	}
	l.ID = r.PathValue("id")
	l.CreatedAt = ""
	l.UpdatedAt = now()

	v := validation.Violations{}
	validation.Required("name", l.Name, v)
	validation.Required("address", l.Address, v)
	if !v.Empty() {
		httpx.Error(w, http.StatusBadRequest, v.String())
		return
	}

	if err := h.store.UpdateLocation(r.Context(), &l); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "location not found")
			return
		}
		slog.Error("Failed to update location", "id", l.ID, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Location updated", "id", l.ID)
	httpx.JSON(w, http.StatusOK, l)
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.DeleteLocation(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "location not found")
			return
		}
		slog.Error("Failed to delete location", "id", id, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Location deleted", "id", id)
	httpx.Message(w, http.StatusOK, "location deleted")
}
