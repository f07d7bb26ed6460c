package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/avolkov/storefront-service/internal/config"
)

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "001_create_accounts",
		sql: `
			CREATE TABLE IF NOT EXISTS accounts (
				id VARCHAR(64) PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				is_manager BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "002_create_items",
		sql: `
			CREATE TABLE IF NOT EXISTS items (
				id VARCHAR(64) PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				item_type VARCHAR(100) NOT NULL DEFAULT '',
				family VARCHAR(100) NOT NULL DEFAULT '',
				price NUMERIC(12, 2) CHECK (price >= 0),
				image_url TEXT NOT NULL DEFAULT '',
				account_id VARCHAR(64) REFERENCES accounts(id),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "003_create_purchases",
		sql: `
			CREATE TABLE IF NOT EXISTS purchases (
				id VARCHAR(64) PRIMARY KEY,
				account_id VARCHAR(64) NOT NULL REFERENCES accounts(id),
				grand_total NUMERIC(14, 2) NOT NULL,
				item_count INT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "004_create_purchase_lines",
		sql: `
			CREATE TABLE IF NOT EXISTS purchase_lines (
				purchase_id VARCHAR(64) NOT NULL REFERENCES purchases(id),
				item_id VARCHAR(64) NOT NULL REFERENCES items(id),
				quantity INT NOT NULL CHECK (quantity > 0),
				unit_cost NUMERIC(12, 2) NOT NULL,
				PRIMARY KEY (purchase_id, item_id)
			)
		`,
	},
	{
		name: "005_index_items_type_family",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_items_item_type ON items(item_type);
			CREATE INDEX IF NOT EXISTS idx_items_family ON items(family)
		`,
	},
}

// RunMigrations applies pending migrations over a direct pgx connection,
// tracking applied names in a migrations table.
func RunMigrations(ctx context.Context, cfg config.DatabaseConfig) error {
	conn, err := pgx.Connect(ctx, cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[string]bool)
	rows, err := conn.Query(ctx, "SELECT name FROM migrations")
	if err != nil {
		return fmt.Errorf("failed to query migrations table: %w", err)
	}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan migration name: %w", err)
		}
		applied[name] = true
	}
	rows.Close()
	if rows.Err() != nil {
		return fmt.Errorf("failed to read migrations: %w", rows.Err())
	}

	for _, m := range migrations {
		if applied[m.name] {
			continue
		}

		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin migration %s: %w", m.name, err)
		}

		if _, err := tx.Exec(ctx, m.sql); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
		}
		if _, err := tx.Exec(ctx, "INSERT INTO migrations (name) VALUES ($1)", m.name); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to record migration %s: %w", m.name, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", m.name, err)
		}
	}

	return nil
}
