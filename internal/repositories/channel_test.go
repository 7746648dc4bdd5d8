package repositories

import (
	"context"
	"database/sql"
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

func setupChannelPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS payment_channels (
		channel_id BIGSERIAL PRIMARY KEY,
		key VARCHAR(50) NOT NULL UNIQUE,
		label VARCHAR(100) NOT NULL DEFAULT '',
		commission_buy_percent NUMERIC(10, 4) NOT NULL DEFAULT 0,
		commission_sell_percent NUMERIC(10, 4) NOT NULL DEFAULT 0,
		enabled_buy BOOLEAN NOT NULL DEFAULT FALSE,
		enabled_sell BOOLEAN NOT NULL DEFAULT FALSE,
		visible BOOLEAN NOT NULL DEFAULT FALSE,
		status_text_buy VARCHAR(255) NOT NULL DEFAULT '',
		status_text_sell VARCHAR(255) NOT NULL DEFAULT '',
		sort_order INT NOT NULL DEFAULT 0,
		archived_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
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

func TestChannelRepository(t *testing.T) {
	db, teardown := setupChannelPostgresContainer(t)
	defer teardown()

	readRepo := NewChannelReadRepository(db)
	writeRepo := NewChannelWriteRepository(db)
	ctx := context.Background()

	t.Run("create and get by key", func(t *testing.T) {
		err := writeRepo.Create(ctx, models.PaymentChannel{
			Key:                  "paypal",
			Label:                "PayPal",
			CommissionBuyPercent: decimal.RequireFromString("11"),
			EnabledBuy:           true,
			Visible:              true,
			SortOrder:            1,
		})
		assert.NoError(t, err)

		channel, err := readRepo.GetByKey(ctx, "PAYPAL")
		assert.NoError(t, err)
		assert.NotNil(t, channel)
		assert.Equal(t, "PAYPAL", channel.Key)
		assert.True(t, channel.CommissionBuyPercent.Equal(decimal.RequireFromString("11")))
	})

	t.Run("duplicate key is a unique violation", func(t *testing.T) {
		err := writeRepo.Create(ctx, models.PaymentChannel{Key: "PAYPAL"})
		assert.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("missing key returns nil", func(t *testing.T) {
		channel, err := readRepo.GetByKey(ctx, "GHOST")
		assert.NoError(t, err)
		assert.Nil(t, channel)
	})

	t.Run("list visible respects sort order and hides invisible", func(t *testing.T) {
		err := writeRepo.Create(ctx, models.PaymentChannel{Key: "ZELLE", Label: "Zelle", Visible: true, SortOrder: 0})
		assert.NoError(t, err)
		err = writeRepo.Create(ctx, models.PaymentChannel{Key: "HIDDEN", Label: "Hidden", Visible: false})
		assert.NoError(t, err)

		channels, err := readRepo.ListVisible(ctx)
		assert.NoError(t, err)
		assert.Len(t, channels, 2)
		assert.Equal(t, "ZELLE", channels[0].Key)
		assert.Equal(t, "PAYPAL", channels[1].Key)
	})

	t.Run("update unknown key returns ErrNoRows", func(t *testing.T) {
		err := writeRepo.Update(ctx, models.PaymentChannel{Key: "GHOST"})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("update overwrites mutable fields", func(t *testing.T) {
		err := writeRepo.Update(ctx, models.PaymentChannel{
			Key:            "zelle",
			Label:          "Zelle",
			EnabledSell:    true,
			Visible:        true,
			StatusTextSell: "Disponible",
			SortOrder:      5,
		})
		assert.NoError(t, err)

		channel, err := readRepo.GetByKey(ctx, "ZELLE")
		assert.NoError(t, err)
		assert.NotNil(t, channel)
		assert.True(t, channel.EnabledSell)
		assert.Equal(t, "Disponible", channel.StatusTextSell)
		assert.Equal(t, 5, channel.SortOrder)
	})

	t.Run("archive hides channel from listing but not from get", func(t *testing.T) {
		err := writeRepo.Archive(ctx, "ZELLE")
		assert.NoError(t, err)

		channels, err := readRepo.ListVisible(ctx)
		assert.NoError(t, err)
		assert.Len(t, channels, 1)
		assert.Equal(t, "PAYPAL", channels[0].Key)

		channel, err := readRepo.GetByKey(ctx, "ZELLE")
		assert.NoError(t, err)
		assert.NotNil(t, channel)
		assert.NotNil(t, channel.ArchivedAt)
	})

	t.Run("archiving twice returns ErrNoRows", func(t *testing.T) {
		err := writeRepo.Archive(ctx, "ZELLE")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
