//go:build integration

package rabbitmq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"userapi/internal/config"
	"userapi/internal/metrics"
	"userapi/internal/service/users"
	"userapi/internal/sse"
	"userapi/internal/store/memory"
)

func TestConsumerIntegration(t *testing.T) {
	ctx := context.Background()
	amqpURL, cleanup := setupRabbitMQContainer(t, ctx)
	defer cleanup()

	cfg := &config.Config{
		RabbitMQURL:         amqpURL,
		RabbitExchange:      "users",
		RabbitQueue:         "users.import",
		RabbitRoutingKey:    "user.import",
		RabbitConsumerTag:   "user-import",
		RabbitPublishPrefix: "user",
	}

	store := memory.New(zap.NewNop())
	svc := users.NewService(cfg, store, sse.NewHub(), NewPublisher(cfg, zap.NewNop()), metrics.New(), zap.NewNop())
	consumer := NewConsumer(cfg, svc, zap.NewNop())

	consumeCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- consumer.Start(consumeCtx)
	}()

	require.NoError(t, waitForConsumer(ctx, amqpURL, cfg.RabbitQueue, 5*time.Second))

	publishJSON(t, amqpURL, cfg.RabbitExchange, cfg.RabbitRoutingKey, map[string]any{
		"name":  "Alice",
		"email": "a@x.com",
		"age":   30,
	})

	require.Eventually(t, func() bool {
		_, total, err := store.ListUsers(ctx, 10, 0)
		return err == nil && total == 1
	}, 5*time.Second, 50*time.Millisecond)

	got, err := store.GetUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)

	cancel()
	select {
	case <-time.After(3 * time.Second):
		t.Fatalf("consumer did not stop")
	case <-errCh:
	}
}
