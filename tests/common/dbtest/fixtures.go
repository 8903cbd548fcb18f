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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestResource(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO resources (name, capacity) VALUES ($1, $2) RETURNING id",
		name, capacity).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a row directly, skipping the creation rules.
func CreateTestReservation(t *testing.T, db DBLike, resourceID uuid.UUID, day time.Time, start, end, status string) uuid.UUID {
	t.Helper()

	date := day.Format(time.DateOnly)
	startAt, err := time.Parse("2006-01-02 15:04", date+" "+start)
	require.NoError(t, err)
	endAt, err := time.Parse("2006-01-02 15:04", date+" "+end)
	require.NoError(t, err)

	var id uuid.UUID
	err = db.QueryRow(context.Background(), `
		INSERT INTO reservations
		    (resource_id, customer_name, customer_phone, start_date, end_date,
		     start_time, end_time, start_at, end_at, status)
		VALUES ($1, 'Fixture Customer', '9000000000', $2, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		resourceID, startAt, start, end, startAt, endAt, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func SevaIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM sevas WHERE name = $1", name).Scan(&id)
	require.NoError(t, err, "seva %q is not seeded", name)
	return id
}

func GotraIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM gotras WHERE name = $1", name).Scan(&id)
	require.NoError(t, err, "gotra %q is not seeded", name)
	return id
}

// CountNotificationJobs counts outbox rows for a topic.
func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the seva catalog and gotras every test relies on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO sevas (name, amount) VALUES
		    ('Abhishekam', 100.00),
		    ('Archana', 50.00),
		    ('Sahasranama Archana', 250.00),
		    ('Annadanam', NULL)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO gotras (name) VALUES
		    ('Bharadwaja'),
		    ('Kashyapa'),
		    ('Vasishta')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
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
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
