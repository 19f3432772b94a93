package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const auditTrailKey = "audit:events"

// AuditTrail stores serialized audit records.
type AuditTrail interface {
	Append(ctx context.Context, record []byte) error
}

type redisAuditTrail struct {
	client *redis.Client
	max    int64
}

// NewAuditTrail returns a Redis-backed trail capped at maxEntries records.
func NewAuditTrail(client *redis.Client, maxEntries int) AuditTrail {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &redisAuditTrail{client: client, max: int64(maxEntries)}
}

func (t *redisAuditTrail) Append(ctx context.Context, record []byte) error {
	pipe := t.client.TxPipeline()
	pipe.LPush(ctx, auditTrailKey, record)
	pipe.LTrim(ctx, auditTrailKey, 0, t.max-1)
	_, err := pipe.Exec(ctx)
	return err
}
