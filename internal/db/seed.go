package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// SeedAccounts are the demo logins created by Seed.
var SeedAccounts = []struct {
	Email string
	Role  string
}{
	{Email: "admin@crowdoo.local", Role: "admin"},
	{Email: "founder@crowdoo.local", Role: "entrepreneur"},
	{Email: "investor@crowdoo.local", Role: "investor"},
}

// Seed inserts demo accounts sharing password and one active campaign owned
// by the entrepreneur. Existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make(map[string]uuid.UUID, len(SeedAccounts))
	for _, acc := range SeedAccounts {
		id := uuid.New()
		err = tx.QueryRow(ctx, `INSERT INTO users (id, email, password_hash, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id`, id, acc.Email, string(hash), acc.Role).Scan(&id)
		if err != nil {
			return err
		}
		ids[acc.Role] = id
	}

	deadline := time.Now().UTC().AddDate(0, 1, 0)
	_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, title, description, category, region, goal_amount, deadline, status)
SELECT $1, $2, 'Solar roof for the community centre', 'Demo campaign', 'energy', 'PL', 50000, $3, 'active'
WHERE NOT EXISTS (SELECT 1 FROM campaigns WHERE owner_id = $2)`,
		uuid.New(), ids["entrepreneur"], deadline)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
