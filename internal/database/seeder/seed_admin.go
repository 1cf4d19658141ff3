package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"vaga-hub/internal/database"
	"vaga-hub/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder creates the bootstrap admin account from SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD. It is a no-op when the variables are unset, and never
// overwrites the password of an existing account.
type AdminSeeder struct{}

func (AdminSeeder) Name() string { return "admin" }

func (AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}
	if len(password) < 8 {
		return fmt.Errorf("admin password too short")
	}

	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "role", "created_at", "updated_at"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(
		ctx,
		`INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)
		 ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`,
		uuid.New(), email, string(hash), user.RoleAdmin, now,
	)
	return err
}
