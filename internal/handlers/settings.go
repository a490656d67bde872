package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"furnitrack/internal/httpx"
	"furnitrack/internal/models"
	"furnitrack/internal/storage"
	"furnitrack/internal/validation"
)

// SettingsHandler serves the /api/settings singleton.
type SettingsHandler struct {
	store storage.Store
}

func NewSettingsHandler(store storage.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// Get returns the settings row.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		slog.Error("Failed to get settings", "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, settings)
}

// Update validates and overwrites the settings row, then reads it back
// so the response is the canonical stored state.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var s models.Settings
	if !decode(w, r, &s) {
		return
	}

	v := validation.Violations{}
	validation.Required("companyName", s.CompanyName, v)
	validation.FiniteRange("defaultPercentage", s.DefaultPercentage, 0, 100, v)
	if !v.Empty() {
		httpx.Error(w, http.StatusBadRequest, v.String())
		return
	}

	s.CompanyName = strings.TrimSpace(s.CompanyName)
	s.UpdatedAt = now()

	if err := h.store.UpdateSettings(r.Context(), &s); err != nil {
		slog.Error("Failed to update settings", "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	stored, err := h.store.GetSettings(r.Context())
	if err != nil {
		slog.Error("Failed to read settings back", "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Settings updated", "companyName", stored.CompanyName, "defaultPercentage", stored.DefaultPercentage)
	httpx.JSON(w, http.StatusOK, stored)
}
