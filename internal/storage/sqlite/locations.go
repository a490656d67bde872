package sqlite

import (
	"context"
	"fmt"

	"furnitrack/internal/models"
	"furnitrack/internal/storage"
)

// ListLocations returns all locations.
func (s *SQLiteStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, address, contactPerson, contactInfo, notes, createdAt, updatedAt FROM locations",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.ContactPerson, &l.ContactInfo, &l.Notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return locations, nil
}

// CreateLocation inserts a new location row.
func (s *SQLiteStore) CreateLocation(ctx context.Context, l *models.Location) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO locations (id, name, address, contactPerson, contactInfo, notes, createdAt, updatedAt) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		l.ID, l.Name, l.Address, l.ContactPerson, l.ContactInfo, l.Notes, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}
	return nil
}

// UpdateLocation replaces all mutable fields of the location.
func (s *SQLiteStore) UpdateLocation(ctx context.Context, l *models.Location) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE locations SET name = ?, address = ?, contactPerson = ?, contactInfo = ?, notes = ?, updatedAt = ? WHERE id = ?",
		l.Name, l.Address, l.ContactPerson, l.ContactInfo, l.Notes, l.UpdatedAt, l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteLocation removes the location by id.
func (s *SQLiteStore) DeleteLocation(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
