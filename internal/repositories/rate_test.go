package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cambiove/exchange-api/internal/models"
)

func setupRatePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS exchange_rates (
		currency VARCHAR(10) PRIMARY KEY,
		rate NUMERIC(20, 8) NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestRateRepository(t *testing.T) {
	db, teardown := setupRatePostgresContainer(t)
	defer teardown()

	readRepo := NewRateReadRepository(db)
	writeRepo := NewRateWriteRepository(db)
	ctx := context.Background()

	t.Run("upsert and get", func(t *testing.T) {
		err := writeRepo.Upsert(ctx, models.ExchangeRate{Currency: "VES", Rate: decimal.RequireFromString("45.5")})
		assert.NoError(t, err)

		rate, err := readRepo.GetRate(ctx, "VES")
		assert.NoError(t, err)
		assert.NotNil(t, rate)
		assert.True(t, rate.Rate.Equal(decimal.RequireFromString("45.5")))
	})

	t.Run("upsert overwrites in place", func(t *testing.T) {
		err := writeRepo.Upsert(ctx, models.ExchangeRate{Currency: "VES", Rate: decimal.RequireFromString("46.2")})
		assert.NoError(t, err)

		rate, err := readRepo.GetRate(ctx, "VES")
		assert.NoError(t, err)
		assert.NotNil(t, rate)
		assert.True(t, rate.Rate.Equal(decimal.RequireFromString("46.2")))

		var count int
		err = db.Get(&count, "SELECT COUNT(*) FROM exchange_rates WHERE currency = 'VES'")
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("missing currency returns nil", func(t *testing.T) {
		rate, err := readRepo.GetRate(ctx, "XYZ")
		assert.NoError(t, err)
		assert.Nil(t, rate)
	})

	t.Run("list sorted by currency", func(t *testing.T) {
		err := writeRepo.Upsert(ctx, models.ExchangeRate{Currency: "COP", Rate: decimal.RequireFromString("4100")})
		assert.NoError(t, err)

		rates, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, rates, 2)
		assert.Equal(t, "COP", rates[0].Currency)
		assert.Equal(t, "VES", rates[1].Currency)
	})
}
