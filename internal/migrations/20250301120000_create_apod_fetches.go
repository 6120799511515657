package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateApodFetches, downCreateApodFetches)
}

func upCreateApodFetches(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE IF NOT EXISTS apod_fetches (
		id SERIAL PRIMARY KEY,
		fetch_date VARCHAR(10) NOT NULL,
		title TEXT NOT NULL,
		image_url TEXT NOT NULL,
		file_path TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_apod_fetches_fetch_date ON apod_fetches (fetch_date);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateApodFetches(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE IF EXISTS apod_fetches;
	`)
	if err != nil {
		return err
	}
	return nil
}
