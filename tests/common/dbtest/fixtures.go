//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"clinic-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultProviderEmail  = "provider@clinic.test"
	DefaultRequesterEmail = "requester@clinic.test"
	DefaultProviderFee    = int64(5000)
)

var (
	hashOnce     sync.Once
	passwordHash string
)

// bcrypt is slow on purpose; hash the shared test password once per process.
func testPasswordHash() string {
	hashOnce.Do(func() {
		h, err := password.HashPassword("password123")
		if err != nil {
			panic(err)
		}
		passwordHash = h
	})
	return passwordHash
}

func CreateTestProvider(t *testing.T, db DBLike, email string, feeCents int64) uuid.UUID {
	t.Helper()

	providerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO providers (id, email, name, fee_cents, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		providerID, email, "Dr. "+strings.Split(email, "@")[0], feeCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM providers WHERE email = $1", email).Scan(&providerID))
	}

	return providerID
}

func CreateTestRequester(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	requesterID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO requesters (id, email, name, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		requesterID, email, strings.Split(email, "@")[0], testPasswordHash())
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM requesters WHERE email = $1", email).Scan(&requesterID))
	}

	return requesterID
}

func CreateTestSlot(t *testing.T, db DBLike, start, end time.Time) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO slots (id, start_time, end_time) VALUES ($1, $2, $3) ON CONFLICT (start_time, end_time) DO NOTHING",
		slotID, start, end)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx,
			"SELECT id FROM slots WHERE start_time = $1 AND end_time = $2", start, end).Scan(&slotID))
	}

	return slotID
}

func OfferTestSlot(t *testing.T, db DBLike, providerID, slotID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO provider_slots (provider_id, slot_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		providerID, slotID)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO providers (id, email, name, fee_cents, is_active)
		VALUES (gen_random_uuid(), $1, 'Default Provider', $2, true)
		ON CONFLICT (email) DO NOTHING;
	`, DefaultProviderEmail, DefaultProviderFee)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO requesters (id, email, name, password_hash)
		VALUES (gen_random_uuid(), $1, 'Default Requester', $2)
		ON CONFLICT (email) DO NOTHING;
	`, DefaultRequesterEmail, testPasswordHash())
	if err != nil {
		return err
	}

	return nil
}

func DefaultProviderID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM providers WHERE email = $1", DefaultProviderEmail).Scan(&id)
	require.NoError(t, err)
	return id
}

func DefaultRequesterID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM requesters WHERE email = $1", DefaultRequesterEmail).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
