package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var sqliteTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		contact TEXT,
		address TEXT,
		date_of_admission TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		specialization TEXT,
		contact TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER,
		doctor_id INTEGER,
		date TEXT,
		time TEXT,
		purpose TEXT,
		FOREIGN KEY(patient_id) REFERENCES patients(id),
		FOREIGN KEY(doctor_id) REFERENCES doctors(id)
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER,
		services TEXT,
		total REAL,
		date TEXT,
		FOREIGN KEY(patient_id) REFERENCES patients(id)
	)`,
}

var postgresTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		contact TEXT,
		address TEXT,
		date_of_admission TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		specialization TEXT,
		contact TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id SERIAL PRIMARY KEY,
		patient_id INTEGER REFERENCES patients(id),
		doctor_id INTEGER REFERENCES doctors(id),
		date TEXT,
		time TEXT,
		purpose TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id SERIAL PRIMARY KEY,
		patient_id INTEGER REFERENCES patients(id),
		services TEXT,
		total REAL,
		date TEXT
	)`,
}

// InitSchema creates the record store tables when absent and applies the
// additive column revisions. Safe to run on every startup.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	tables := sqliteTables
	if db.DriverName() == "postgres" {
		tables = postgresTables
	}

	for _, ddl := range tables {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// doctors.email arrived after the initial schema. Probe instead of
	// relying on driver-specific catalogs so both backends migrate the
	// same way.
	if _, err := db.ExecContext(ctx, `SELECT email FROM doctors LIMIT 1`); err != nil {
		if _, err := db.ExecContext(ctx, `ALTER TABLE doctors ADD COLUMN email TEXT`); err != nil {
			return fmt.Errorf("failed to add doctors.email: %w", err)
		}
	}

	return nil
}
