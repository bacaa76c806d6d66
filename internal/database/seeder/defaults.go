package seeder

import (
	"talent-match/internal/config"
	"talent-match/internal/domain/user"
)

// Defaults returns the seeders for cfg. Without an admin password nothing is
// seeded.
func Defaults(cfg config.SeedConfig) []Seeder {
	if cfg.AdminPassword == "" {
		return nil
	}
	return []Seeder{
		AccountsSeeder{Accounts: []Account{{
			Email:      cfg.AdminEmail,
			Password:   cfg.AdminPassword,
			FirstName:  "HR",
			LastName:   "Admin",
			Department: "Human Resources",
			Position:   "HR Manager",
			Role:       user.RoleHR,
		}}},
	}
}
