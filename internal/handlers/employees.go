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

// EmployeeHandler serves /api/employees.
type EmployeeHandler struct {
	store storage.Store
}

func NewEmployeeHandler(store storage.Store) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

// List returns all employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.store.ListEmployees(r.Context())
	if err != nil {
		slog.Error("Failed to list employees", "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, employees)
}

// Create inserts a new employee. The id comes from the client; the
// remaining fields are accepted leniently, except name which the
// schema marks NOT NULL.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e models.Employee
	if !decode(w, r, &e) {
		return
	}

	v := validation.Violations{}
	validation.Required("id", e.ID, v)
	validation.Required("name", e.Name, v)
	if !v.Empty() {
		httpx.Error(w, http.StatusBadRequest, v.String())
		return
	}

	stamp := now()
	e.CreatedAt = stamp
	e.UpdatedAt = stamp

	if err := h.store.CreateEmployee(r.Context(), &e); err != nil {
		slog.Error("Failed to create employee", "id", e.ID, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Employee created", "id", e.ID)
	httpx.JSON(w, http.StatusCreated, e)
}

// Update replaces the employee with the id from the path.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var e models.Employee
	if !decode(w, r, &e) {
		return
	}
	e.ID = r.PathValue("id")
	e.CreatedAt = "" // not re-read on update; omitted from the response
	e.UpdatedAt = now()

	v := validation.Violations{}
	validation.Required("name", e.Name, v)
	if !v.Empty() {
		httpx.Error(w, http.StatusBadRequest, v.String())
		return
	}

	if err := h.store.UpdateEmployee(r.Context(), &e); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "employee not found")
			return
		}
		slog.Error("Failed to update employee", "id", e.ID, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Employee updated", "id", e.ID)
	httpx.JSON(w, http.StatusOK, e)
}

// Delete removes the employee. Assembly records keep their employeeId
// reference.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.DeleteEmployee(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "employee not found")
			return
		}
		slog.Error("Failed to delete employee", "id", id, "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Employee deleted", "id", id)
	httpx.Message(w, http.StatusOK, "employee deleted")
}
