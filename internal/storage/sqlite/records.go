package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"furnitrack/internal/models"
	"furnitrack/internal/storage"
)

const insertRecordSQL = "INSERT INTO assembly_records (id, employeeId, locationId, date, items, notes, quantity, totalPrice, createdAt, updatedAt) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

// ListRecords returns all assembly records with their items
// deserialized from the stored blob.
func (s *SQLiteStore) ListRecords(ctx context.Context) ([]models.AssemblyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, employeeId, locationId, date, items, notes, quantity, totalPrice, createdAt, updatedAt FROM assembly_records",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query assembly records: %w", err)
	}
	defer rows.Close()

	records := []models.AssemblyRecord{}
	for rows.Next() {
		var r models.AssemblyRecord
		var itemsBlob sql.NullString
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.LocationID, &r.Date, &itemsBlob, &r.Notes, &r.Quantity, &r.TotalPrice, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assembly record: %w", err)
		}
		items, err := unmarshalItems(itemsBlob)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		r.Items = items
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assembly records: %w", err)
	}

	return records, nil
}

// CreateRecord inserts a single assembly record.
func (s *SQLiteStore) CreateRecord(ctx context.Context, r *models.AssemblyRecord) error {
	blob, err := marshalItems(r.Items)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, insertRecordSQL,
		r.ID, r.EmployeeID, r.LocationID, r.Date, blob, r.Notes, r.Quantity, r.TotalPrice, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assembly record: %w", err)
	}
	return nil
}

// CreateRecords inserts all records inside one transaction. If any
// insert fails the transaction rolls back and none of the records are
// persisted.
func (s *SQLiteStore) CreateRecords(ctx context.Context, records []models.AssemblyRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertRecordSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		blob, err := marshalItems(r.Items)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.EmployeeID, r.LocationID, r.Date, blob, r.Notes, r.Quantity, r.TotalPrice, r.CreatedAt, r.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert assembly record %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateRecord replaces all mutable fields of the assembly record.
func (s *SQLiteStore) UpdateRecord(ctx context.Context, r *models.AssemblyRecord) error {
	blob, err := marshalItems(r.Items)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE assembly_records SET employeeId = ?, locationId = ?, date = ?, items = ?, notes = ?, quantity = ?, totalPrice = ?, updatedAt = ? WHERE id = ?",
		r.EmployeeID, r.LocationID, r.Date, blob, r.Notes, r.Quantity, r.TotalPrice, r.UpdatedAt, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assembly record: %w", err)
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

// DeleteRecord removes the assembly record by id.
func (s *SQLiteStore) DeleteRecord(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM assembly_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete assembly record: %w", err)
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
