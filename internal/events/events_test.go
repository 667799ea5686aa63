package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisPublisher_InvalidURL(t *testing.T) {
	_, err := NewRedisPublisher(context.Background(), "http://not-redis", "careercode:applications")
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Event{Type: TypeApplicationCreated}))
	assert.NoError(t, p.Close())
}

// TestRedisPublisher требует запущенный Redis: TEST_REDIS_URL=redis://localhost:6379/0
func TestRedisPublisher(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL is not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const channel = "careercode:test:applications"
	publisher, err := NewRedisPublisher(ctx, redisURL, channel)
	require.NoError(t, err)
	defer publisher.Close()

	opts, err := redis.ParseURL(redisURL)
	require.NoError(t, err)
	subscriber := redis.NewClient(opts)
	defer subscriber.Close()

	sub := subscriber.Subscribe(ctx, channel)
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	sent := Event{
		Type:   TypeApplicationStatusChanged,
		ID:     "7d1c9a56-3f3e-4d49-9a43-1f1f8f3d2b10",
		Status: "selected",
		At:     time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.Publish(ctx, sent))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, sent.Type, got.Type)
	assert.Equal(t, sent.ID, got.ID)
	assert.Equal(t, sent.Status, got.Status)
	assert.True(t, sent.At.Equal(got.At))
}
