package state

import (
	"context"

	"github.com/google/uuid"

	"furnitrack/internal/models"
	"furnitrack/internal/pricing"
)

// AddEmployee assigns an id when absent, creates the employee through
// the API, and appends the server-confirmed record to the mirror.
func (s *Store) AddEmployee(ctx context.Context, e models.Employee) (*models.Employee, error) {
	s.beginLoading()
	defer s.endLoading()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	created, err := s.api.CreateEmployee(ctx, e)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.employees = append(s.employees, *created)
	s.mu.Unlock()
	return created, nil
}

// UpdateEmployee replaces the employee through the API, then patches
// the mirror entry with the same id.
func (s *Store) UpdateEmployee(ctx context.Context, e models.Employee) (*models.Employee, error) {
	s.beginLoading()
	defer s.endLoading()

	updated, err := s.api.UpdateEmployee(ctx, e)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.employees {
		if s.employees[i].ID == updated.ID {
			s.employees[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteEmployee removes the employee through the API and filters it
// out of the mirror. Assembly records referencing it are untouched.
func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	s.beginLoading()
	defer s.endLoading()

	if err := s.api.DeleteEmployee(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.employees = deleteByID(s.employees, id, func(e models.Employee) string { return e.ID })
	s.mu.Unlock()
	return nil
}

// AddLocation mirrors AddEmployee for locations.
func (s *Store) AddLocation(ctx context.Context, l models.Location) (*models.Location, error) {
	s.beginLoading()
	defer s.endLoading()

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	created, err := s.api.CreateLocation(ctx, l)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.locations = append(s.locations, *created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateLocation(ctx context.Context, l models.Location) (*models.Location, error) {
	s.beginLoading()
	defer s.endLoading()

	updated, err := s.api.UpdateLocation(ctx, l)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.locations {
		if s.locations[i].ID == updated.ID {
			s.locations[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteLocation(ctx context.Context, id string) error {
	s.beginLoading()
	defer s.endLoading()

	if err := s.api.DeleteLocation(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.locations = deleteByID(s.locations, id, func(l models.Location) string { return l.ID })
	s.mu.Unlock()
	return nil
}

// ComposeRecord builds a submission-ready assembly record from raw form
// entries: items are priced with the mirrored deduction percentage in
// effect right now, the record total is derived from the priced items,
// and ids are assigned where absent.
func (s *Store) ComposeRecord(employeeID, locationID, date, notes string, entries []pricing.ItemEntry) models.AssemblyRecord {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
		}
	}
	items := pricing.PriceItems(entries, s.Settings().DefaultPercentage)
	return models.AssemblyRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		LocationID: locationID,
		Date:       date,
		Items:      items,
		Quantity:   pricing.RecordQuantity(items),
		TotalPrice: pricing.RecordTotal(items),
		Notes:      notes,
	}
}

// AddRecord creates one assembly record and appends the materialized
// response (with server-derived quantity and timestamps).
func (s *Store) AddRecord(ctx context.Context, r models.AssemblyRecord) (*models.AssemblyRecord, error) {
	s.beginLoading()
	defer s.endLoading()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	created, err := s.api.CreateRecord(ctx, r)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.records = append(s.records, *created)
	s.mu.Unlock()
	return created, nil
}

// AddRecords submits an atomic batch. On success all resulting records
// are appended; on failure the mirror is untouched and nothing was
// persisted server-side either.
func (s *Store) AddRecords(ctx context.Context, records []models.AssemblyRecord) ([]models.AssemblyRecord, error) {
	s.beginLoading()
	defer s.endLoading()

	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
	created, err := s.api.CreateRecords(ctx, records)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.records = append(s.records, created...)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateRecord(ctx context.Context, r models.AssemblyRecord) (*models.AssemblyRecord, error) {
	s.beginLoading()
	defer s.endLoading()

	updated, err := s.api.UpdateRecord(ctx, r)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.records {
		if s.records[i].ID == updated.ID {
			s.records[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	s.beginLoading()
	defer s.endLoading()

	if err := s.api.DeleteRecord(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.records = deleteByID(s.records, id, func(r models.AssemblyRecord) string { return r.ID })
	s.mu.Unlock()
	return nil
}

// SaveSettings pushes the settings through the API and mirrors the
// canonical row the server read back.
func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	s.beginLoading()
	defer s.endLoading()

	stored, err := s.api.UpdateSettings(ctx, settings)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.settings = *stored
	s.mu.Unlock()
	return stored, nil
}

// EmployeeTotals aggregates the mirrored records for one employee.
func (s *Store) EmployeeTotals(employeeID string) pricing.EmployeeTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pricing.AggregateByEmployee(s.records, employeeID)
}

// OverallTotals sums earnings and assembled units across all mirrored
// records, the dashboard headline numbers.
func (s *Store) OverallTotals() (earnings float64, units int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		earnings += r.TotalPrice
		units += pricing.RecordQuantity(r.Items)
	}
	return earnings, units
}

// deleteByID filters the element with the given id out of the slice.
func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
