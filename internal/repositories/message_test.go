package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cambiove/exchange-api/internal/models"
)

func setupMessagePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS messages (
		message_id UUID PRIMARY KEY,
		order_id UUID NOT NULL,
		sender_id UUID NOT NULL,
		content TEXT,
		image_url TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
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

func TestMessageRepository(t *testing.T) {
	db, teardown := setupMessagePostgresContainer(t)
	defer teardown()

	readRepo := NewMessageReadRepository(db)
	writeRepo := NewMessageWriteRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	senderID := uuid.New()

	t.Run("save and list in creation order", func(t *testing.T) {
		first := "hola"
		saved, err := writeRepo.Save(ctx, models.MessageDB{
			MessageID: uuid.New(),
			OrderID:   orderID,
			SenderID:  senderID,
			Content:   &first,
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		require.NotNil(t, saved.Content)
		assert.Equal(t, "hola", *saved.Content)

		image := "https://cdn.example.com/receipt.jpg"
		second, err := writeRepo.Save(ctx, models.MessageDB{
			MessageID: uuid.New(),
			OrderID:   orderID,
			SenderID:  senderID,
			ImageURL:  &image,
		})
		require.NoError(t, err)
		// Push the second message ahead in creation time.
		_, err = db.Exec("UPDATE messages SET created_at = NOW() + INTERVAL '1 minute' WHERE message_id = $1", second.MessageID)
		require.NoError(t, err)

		messages, err := readRepo.ListByOrder(ctx, orderID)
		assert.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, saved.MessageID, messages[0].MessageID)
		assert.Nil(t, messages[1].Content)
		require.NotNil(t, messages[1].ImageURL)
		assert.Equal(t, image, *messages[1].ImageURL)
	})

	t.Run("other orders have empty logs", func(t *testing.T) {
		messages, err := readRepo.ListByOrder(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("exists with content", func(t *testing.T) {
		exists, err := readRepo.ExistsWithContent(ctx, orderID, "hola")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = readRepo.ExistsWithContent(ctx, orderID, "adios")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
