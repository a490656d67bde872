// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"furnitrack/internal/models"
)

// ErrNotFound is returned by update and delete operations when no row
// matched the given id. Handlers translate it into a 404.
var ErrNotFound = errors.New("not found")

// Store defines the interface for FurniTrack storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the handler layer.
type Store interface {
	// ListEmployees returns all employees.
	ListEmployees(ctx context.Context) ([]models.Employee, error)

	// CreateEmployee persists a new employee. The id must be set by the
	// caller; CreatedAt/UpdatedAt are stored as given.
	CreateEmployee(ctx context.Context, e *models.Employee) error

	// UpdateEmployee replaces all mutable fields of the employee with
	// the given id. Returns ErrNotFound if no row matched.
	UpdateEmployee(ctx context.Context, e *models.Employee) error

	// DeleteEmployee removes the employee by id. Dependent assembly
	// records are left untouched (dangling references are tolerated).
	DeleteEmployee(ctx context.Context, id string) error

	// ListLocations returns all locations.
	ListLocations(ctx context.Context) ([]models.Location, error)

	// CreateLocation persists a new location.
	CreateLocation(ctx context.Context, l *models.Location) error

	// UpdateLocation replaces all mutable fields of the location.
	// Returns ErrNotFound if no row matched.
	UpdateLocation(ctx context.Context, l *models.Location) error

	// DeleteLocation removes the location by id, with the same
	// no-cascade semantics as DeleteEmployee.
	DeleteLocation(ctx context.Context, id string) error

	// ListRecords returns all assembly records with their items
	// deserialized from the stored blob.
	ListRecords(ctx context.Context) ([]models.AssemblyRecord, error)

	// CreateRecord persists a new assembly record, serializing its
	// items into a single blob.
	CreateRecord(ctx context.Context, r *models.AssemblyRecord) error

	// CreateRecords inserts all records in one transaction. If any
	// insert fails the whole batch rolls back and no partial state is
	// visible.
	CreateRecords(ctx context.Context, records []models.AssemblyRecord) error

	// UpdateRecord replaces all mutable fields of the record.
	// Returns ErrNotFound if no row matched.
	UpdateRecord(ctx context.Context, r *models.AssemblyRecord) error

	// DeleteRecord removes the assembly record by id.
	DeleteRecord(ctx context.Context, id string) error

	// GetSettings returns the settings singleton. The row is seeded
	// with defaults on first boot and always exists.
	GetSettings(ctx context.Context) (*models.Settings, error)

	// UpdateSettings overwrites the settings singleton in place.
	UpdateSettings(ctx context.Context, s *models.Settings) error

	// Close releases any resources held by the store.
	Close() error
}
