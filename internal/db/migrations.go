package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'quote_status') THEN
			CREATE TYPE quote_status AS ENUM ('SUBMITTED', 'SENT', 'ACCEPTED', 'DECLINED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id UUID PRIMARY KEY,
		quote_number VARCHAR(64) NOT NULL,
		customer JSONB NOT NULL,
		project JSONB NOT NULL,
		estimate JSONB NOT NULL,
		recommendations JSONB NOT NULL DEFAULT '[]'::jsonb,
		status quote_status NOT NULL DEFAULT 'SUBMITTED',
		email_sent BOOLEAN NOT NULL DEFAULT FALSE,
		crm_contact_id TEXT,
		crm_opportunity_id TEXT,
		project_type VARCHAR(32) NOT NULL,
		customer_email TEXT NOT NULL DEFAULT '',
		total_price NUMERIC(14,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_quotes_quote_number ON quotes (quote_number);`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes (created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_status ON quotes (status);`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_customer_email ON quotes (lower(customer_email)) WHERE customer_email <> '';`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
