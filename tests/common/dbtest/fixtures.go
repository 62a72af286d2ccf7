//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Precomputed bcrypt hash of "password123" (cost 12). Hashing once keeps
// per-test user creation cheap.
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

// Tables in FK-safe truncate order.
var allTables = []string{
	"info_requests",
	"purchases",
	"reviews",
	"cruise_destinations",
	"cruises",
	"destinations",
	"users",
}

var (
	truncateSQL     string
	truncateSQLOnce sync.Once
)

// ResetDB truncates every table. Call between test cases that share a database.
func ResetDB(ctx context.Context, db DBLike) error {
	truncateSQLOnce.Do(func() {
		truncateSQL = fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(allTables, ", "))
	})
	if _, err := db.Exec(ctx, truncateSQL); err != nil {
		return fmt.Errorf("reset db: %w", err)
	}
	return nil
}

func CreateTestUser(ctx context.Context, db DBLike, email, role string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role, is_active) VALUES ($1, $2, $3, true) RETURNING id`,
		email, TestPasswordHash, role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create test user: %w", err)
	}
	return id, nil
}

func CreateTestDestination(ctx context.Context, db DBLike, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO destinations (name, description) VALUES ($1, $2) RETURNING id`,
		name, "Test destination "+name,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create test destination: %w", err)
	}
	return id, nil
}

func CreateTestCruise(ctx context.Context, db DBLike, name string, destinationIDs ...uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO cruises (name, description, departure_date) VALUES ($1, $2, $3) RETURNING id`,
		name, "Test cruise "+name, time.Now().AddDate(0, 1, 0),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create test cruise: %w", err)
	}
	for i, destID := range destinationIDs {
		if _, err := db.Exec(ctx,
			`INSERT INTO cruise_destinations (cruise_id, destination_id, position) VALUES ($1, $2, $3)`,
			id, destID, i,
		); err != nil {
			return uuid.Nil, fmt.Errorf("attach cruise destination: %w", err)
		}
	}
	return id, nil
}

func CreateTestPurchase(ctx context.Context, db DBLike, userID, destinationID uuid.UUID) error {
	if _, err := db.Exec(ctx,
		`INSERT INTO purchases (user_id, destination_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, destinationID,
	); err != nil {
		return fmt.Errorf("create test purchase: %w", err)
	}
	return nil
}

func CreateTestReview(ctx context.Context, db DBLike, destinationID, authorID uuid.UUID, rating int, comment string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO reviews (destination_id, author_id, rating, comment) VALUES ($1, $2, $3, $4) RETURNING id`,
		destinationID, authorID, rating, comment,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create test review: %w", err)
	}
	return id, nil
}

// SeedReferenceData creates the baseline rows most e2e scenarios need: an
// admin, a member, and one destination.
type ReferenceData struct {
	AdminID       uuid.UUID
	AdminEmail    string
	MemberID      uuid.UUID
	MemberEmail   string
	DestinationID uuid.UUID
}

func SeedReferenceData(ctx context.Context, db DBLike) (*ReferenceData, error) {
	ref := &ReferenceData{
		AdminEmail:  "admin@example.com",
		MemberEmail: "member@example.com",
	}

	var err error
	if ref.AdminID, err = CreateTestUser(ctx, db, ref.AdminEmail, "admin"); err != nil {
		return nil, err
	}
	if ref.MemberID, err = CreateTestUser(ctx, db, ref.MemberEmail, "member"); err != nil {
		return nil, err
	}
	if ref.DestinationID, err = CreateTestDestination(ctx, db, "Seeded Harbor"); err != nil {
		return nil, err
	}
	return ref, nil
}
