package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"cinelog/config"
)

// SeedAdminUser creates the admin account on first boot. Seeding is skipped
// unless an admin password is configured.
func SeedAdminUser(db *sql.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", cfg.AdminEmail).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO users (name, email, password_hash, is_admin) VALUES ($1, $2, $3, TRUE)",
		cfg.AdminName, cfg.AdminEmail, string(hashed),
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
