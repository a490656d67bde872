// Package state implements the application state store: a single
// in-memory mirror of the server-side collections that every view reads
// from. All mutations funnel through named action methods that call the
// API first and patch the mirror only with server-confirmed state.
// There are no optimistic updates and no retries.
//
// Two in-flight updates to the same entity are not coordinated; the
// last response to arrive wins in the mirror, which may not match
// submission order.
package state

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"furnitrack/internal/client"
	"furnitrack/internal/models"
)

// Store mirrors the server-side collections.
type Store struct {
	api *client.Client

	mu        sync.RWMutex
	loading   int
	employees []models.Employee
	locations []models.Location
	records   []models.AssemblyRecord
	settings  models.Settings
}

// New creates an empty store bound to the given API client. Call
// Refresh to populate it.
func New(api *client.Client) *Store {
	return &Store{api: api}
}

// Loading reports whether any fetch or mutation is in flight. Views
// gate rendering on it.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

func (s *Store) beginLoading() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
}

func (s *Store) endLoading() {
	s.mu.Lock()
	s.loading--
	s.mu.Unlock()
}

// Refresh fetches employees, assembly records and locations in
// parallel and installs all three atomically: no reader observes a
// partially loaded set. On any failure the prior state is kept.
func (s *Store) Refresh(ctx context.Context) error {
	s.beginLoading()
	defer s.endLoading()

	var (
		employees []models.Employee
		records   []models.AssemblyRecord
		locations []models.Location
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.api.ListEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.api.ListRecords(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		locations, err = s.api.ListLocations(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	s.mu.Lock()
	s.employees = employees
	s.records = records
	s.locations = locations
	s.mu.Unlock()
	return nil
}

// LoadSettings fetches the settings singleton into the mirror.
func (s *Store) LoadSettings(ctx context.Context) error {
	s.beginLoading()
	defer s.endLoading()

	settings, err := s.api.GetSettings(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.settings = *settings
	s.mu.Unlock()
	return nil
}

// Employees returns a snapshot copy of the employees collection.
func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.employees)
}

// Locations returns a snapshot copy of the locations collection.
func (s *Store) Locations() []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.locations)
}

// Records returns a snapshot copy of the assembly records.
func (s *Store) Records() []models.AssemblyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Settings returns the mirrored settings singleton.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}
