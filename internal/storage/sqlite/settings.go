package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"furnitrack/internal/models"
)

// GetSettings returns the settings singleton. Migrations seed the row
// on first boot, so a missing row is a storage fault, not a 404.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	var updatedAt sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT companyName, defaultPercentage, updatedAt FROM app_settings WHERE id = 1",
	).Scan(&settings.CompanyName, &settings.DefaultPercentage, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	settings.UpdatedAt = updatedAt.String
	return &settings, nil
}

// UpdateSettings overwrites the settings singleton in place.
func (s *SQLiteStore) UpdateSettings(ctx context.Context, settings *models.Settings) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE app_settings SET companyName = ?, defaultPercentage = ?, updatedAt = ? WHERE id = 1",
		settings.CompanyName, settings.DefaultPercentage, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
