package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()

	// Start PostgreSQL container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "user",
			"POSTGRES_PASSWORD": "password",
			"POSTGRES_DB":       "marketing_kit",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer pgC.Terminate(ctx)

	host, err := pgC.Host(ctx)
	assert.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://user:password@%s:%s/marketing_kit?sslmode=disable", host, port.Port())
	db, err := sql.Open("pgx", dsn)
	assert.NoError(t, err)
	defer db.Close()
	assert.NoError(t, db.PingContext(ctx))

	tableCount := func() int {
		var count int
		err := db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM information_schema.tables
			 WHERE table_schema = 'public' AND table_name IN ('users', 'content_records')`,
		).Scan(&count)
		assert.NoError(t, err)
		return count
	}

	// First run creates the schema
	assert.NoError(t, Apply(ctx, db))
	assert.Equal(t, 2, tableCount())

	// Second run must be a no-op, not an error
	assert.NoError(t, Apply(ctx, db))
	assert.Equal(t, 2, tableCount())
}
