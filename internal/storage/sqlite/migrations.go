package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist. The layout mirrors the
// legacy schema: camelCase columns, ISO-8601 TEXT timestamps, and
// assembly_records.items held as one serialized JSON blob.
const schema = `
CREATE TABLE IF NOT EXISTS employees (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    position TEXT,
    rate REAL,
    hireDate TEXT,
    contactInfo TEXT,
    createdAt TEXT DEFAULT CURRENT_TIMESTAMP,
    updatedAt TEXT
);

CREATE TABLE IF NOT EXISTS locations (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL,
    contactPerson TEXT,
    contactInfo TEXT,
    notes TEXT,
    createdAt TEXT DEFAULT CURRENT_TIMESTAMP,
    updatedAt TEXT
);

CREATE TABLE IF NOT EXISTS assembly_records (
    id TEXT PRIMARY KEY,
    employeeId TEXT NOT NULL,
    locationId TEXT,
    date TEXT NOT NULL,
    items TEXT,
    notes TEXT,
    quantity INTEGER,
    totalPrice REAL,
    createdAt TEXT DEFAULT CURRENT_TIMESTAMP,
    updatedAt TEXT
);

CREATE TABLE IF NOT EXISTS app_settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    companyName TEXT NOT NULL,
    defaultPercentage REAL NOT NULL,
    updatedAt TEXT
);

CREATE INDEX IF NOT EXISTS idx_assembly_records_employeeId ON assembly_records(employeeId);
CREATE INDEX IF NOT EXISTS idx_assembly_records_locationId ON assembly_records(locationId);
`

// seedSettings creates the settings singleton on first boot. The row is
// never deleted afterwards, only updated in place.
const seedSettings = `
INSERT OR IGNORE INTO app_settings (id, companyName, defaultPercentage) VALUES (1, 'FurniTrack', 20);
`

// runMigrations executes the schema setup and seeds the settings row.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	_, err := db.Exec(seedSettings)
	return err
}
