package sqlite

import (
	"context"
	"fmt"

	"furnitrack/internal/models"
	"furnitrack/internal/storage"
)

// ListEmployees returns all employees.
func (s *SQLiteStore) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, position, rate, hireDate, contactInfo, createdAt, updatedAt FROM employees",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Rate, &e.HireDate, &e.ContactInfo, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// CreateEmployee inserts a new employee row.
func (s *SQLiteStore) CreateEmployee(ctx context.Context, e *models.Employee) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO employees (id, name, position, rate, hireDate, contactInfo, createdAt, updatedAt) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.Name, e.Position, e.Rate, e.HireDate, e.ContactInfo, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// UpdateEmployee replaces all mutable fields of the employee.
func (s *SQLiteStore) UpdateEmployee(ctx context.Context, e *models.Employee) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE employees SET name = ?, position = ?, rate = ?, hireDate = ?, contactInfo = ?, updatedAt = ? WHERE id = ?",
		e.Name, e.Position, e.Rate, e.HireDate, e.ContactInfo, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
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

// DeleteEmployee removes the employee by id. Assembly records that
// reference it are left as-is.
func (s *SQLiteStore) DeleteEmployee(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
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
