package interfaces

import (
	"context"
	"time"
)

// IIdempotencyStore remembers processed webhook notification keys. The payment
// provider retries notifications aggressively, so the webhook use case marks
// each notification id before processing and skips replays.
type IIdempotencyStore interface {
	// MarkProcessed records the key with a TTL. It returns false when the key
	// was already present, i.e. the notification is a replay.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
