package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"furnitrack/internal/httpx"
	"furnitrack/internal/models"
	"furnitrack/internal/pricing"
	"furnitrack/internal/storage"
	"furnitrack/internal/validation"
)

// RecordHandler serves /api/assembly-records, including the atomic
// batch endpoint.
type RecordHandler struct {
	store storage.Store
}

func NewRecordHandler(store storage.Store) *RecordHandler {
	return &RecordHandler{store: store}
}

// prepare derives the server-owned fields of a submitted record:
// quantity is always recomputed from the items (the client-sent value
// is never trusted), items are normalized to a non-nil list, and both
// timestamps are stamped. totalPrice is persisted as the client sent
// it; a mismatch against the recomputed sum is logged but preserved.
func prepare(r *models.AssemblyRecord, stamp string, isCreate bool) {
	if r.Items == nil {
		r.Items = []models.AssemblyItem{}
	}
	r.Quantity = pricing.RecordQuantity(r.Items)
	if recomputed := pricing.RecordTotal(r.Items); math.Abs(recomputed-r.TotalPrice) > 0.005 {
		slog.Debug("Client totalPrice disagrees with item totals",
			"id", r.ID, "client_total", r.TotalPrice, "recomputed", recomputed)
	}
	if isCreate {
		r.CreatedAt = stamp
	} else {
		r.CreatedAt = ""
	}
	r.UpdatedAt = stamp
}

func validateRecord(r *models.AssemblyRecord, requireID bool) validation.Violations {
	v := validation.Violations{}
	if requireID {
		validation.Required("id", r.ID, v)
	}
	validation.Required("employeeId", r.EmployeeID, v)
	validation.Required("date", r.Date, v)
	return v
}

// List returns all assembly records with their items deserialized.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if err != nil {
		slog.Error("Failed to list assembly records", "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

// Create inserts a single assembly record.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record models.AssemblyRecord
	if !decode(w, r, &record) {
		return
	}
	if v := validateRecord(&record, true); !v.Empty() {
		httpx.Error(w, http.StatusBadRequest, v.String())
		return
	}

	prepare(&record, now(), true)

	if err := h.store.CreateRecord(r.Context(), &record); err != nil {
		slog.Error("Failed to create assembly record", "id", record.ID, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Assembly record created", "id", record.ID, "quantity", record.Quantity)
	httpx.JSON(w, http.StatusCreated, record)
}

// CreateBatch inserts an ordered list of records in one transaction.
// On any failure the whole batch is rejected and nothing is persisted.
func (h *RecordHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var records []models.AssemblyRecord
	if !decode(w, r, &records) {
		return
	}
	if len(records) == 0 {
		httpx.Error(w, http.StatusBadRequest, "batch must contain at least one record")
		return
	}

	stamp := now()
	for i := range records {
		if v := validateRecord(&records[i], true); !v.Empty() {
			httpx.Error(w, http.StatusBadRequest, "record "+records[i].ID+": "+v.String())
			return
		}
		prepare(&records[i], stamp, true)
	}

	if err := h.store.CreateRecords(r.Context(), records); err != nil {
		slog.Error("Failed to insert batch", "count", len(records), "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Assembly record batch inserted", "count", len(records))
	httpx.JSON(w, http.StatusCreated, records)
}

// Update replaces the record with the id from the path.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var record models.AssemblyRecord
	if !decode(w, r, &record) {
		return
	}
	record.ID = r.PathValue("id")
	if v := validateRecord(&record, false); !v.Empty() {
		httpx.Error(w, http.StatusBadRequest, v.String())
		return
	}

	prepare(&record, now(), false)

	if err := h.store.UpdateRecord(r.Context(), &record); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "assembly record not found")
			return
		}
		slog.Error("Failed to update assembly record", "id", record.ID, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Assembly record updated", "id", record.ID, "quantity", record.Quantity)
	httpx.JSON(w, http.StatusOK, record)
}

// Delete removes the record by id.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.DeleteRecord(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "assembly record not found")
			return
		}
		slog.Error("Failed to delete assembly record", "id", id, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Assembly record deleted", "id", id)
	httpx.Message(w, http.StatusOK, "assembly record deleted")
}
