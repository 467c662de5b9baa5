package seed

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
)

const (
	defaultClientName      = "Cliente demo"
	defaultPropertyAddress = "123 Main St"
	defaultPropertyCity    = "Houston"
	defaultProjectName     = "Interior repaint"
)

// Config contains the values required by startup seed.
type Config struct {
	AdminEmail    string
	AdminPassword string
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way: the admin user, the
// rate_config singleton, and one demo client/property/project chain.
func Run(db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := seedAdmin(tx, cfg.AdminEmail, cfg.AdminPassword, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureRateConfig(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureDemoClient(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedAdmin(tx *sql.Tx, email, password string, stats *Stats) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = ? LIMIT 1)`, email).Scan(&exists); err != nil {
		return fmt.Errorf("check admin user existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`INSERT INTO users (email, password_hash) VALUES (?, ?)`, email, hashPassword(password)); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	stats.Inserts++
	return nil
}

// hashPassword must stay in sync with the login handler's hashing.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func ensureRateConfig(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM rate_config WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check rate config existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO rate_config (
			id,
			coverage_rate,
			wall_speed,
			ceiling_speed,
			trim_speed,
			efficiency,
			hours_per_day,
			default_hourly_rate,
			tax_percent,
			currency
		)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, 350, 150, 120, 50, 1, 8, 35, 8.25, "USD"); err != nil {
		return fmt.Errorf("insert rate config singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureDemoClient(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM clients WHERE name = ? LIMIT 1)`, defaultClientName).Scan(&exists); err != nil {
		return fmt.Errorf("check demo client existence: %w", err)
	}
	if exists {
		return nil
	}

	res, err := tx.Exec(`
		INSERT INTO clients (name, email, phone, notes, active)
		VALUES (?, ?, ?, ?, ?)
	`, defaultClientName, "", "", "Creado por el seed inicial", true)
	if err != nil {
		return fmt.Errorf("insert demo client: %w", err)
	}
	clientID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("demo client id: %w", err)
	}
	stats.Inserts++

	res, err = tx.Exec(`
		INSERT INTO properties (client_id, address, city, notes, active)
		VALUES (?, ?, ?, ?, ?)
	`, clientID, defaultPropertyAddress, defaultPropertyCity, "", true)
	if err != nil {
		return fmt.Errorf("insert demo property: %w", err)
	}
	propertyID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("demo property id: %w", err)
	}
	stats.Inserts++

	if _, err := tx.Exec(`
		INSERT INTO projects (property_id, name, status, notes, active)
		VALUES (?, ?, ?, ?, ?)
	`, propertyID, defaultProjectName, "lead", "", true); err != nil {
		return fmt.Errorf("insert demo project: %w", err)
	}
	stats.Inserts++

	return nil
}
