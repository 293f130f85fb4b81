package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/config"
	"github.com/campushq/advising-backend/internal/model"
)

// RedisEventSink fans committed enrollment mutations out to Redis: the
// audit queue drained by the background worker, and the per-offering
// PubSub channel feeding live faculty monitors.
type RedisEventSink struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewRedisEventSink creates a new RedisEventSink.
func NewRedisEventSink(rdb *redis.Client, log zerolog.Logger) *RedisEventSink {
	return &RedisEventSink{
		rdb: rdb,
		log: log.With().Str("component", "event_sink").Logger(),
	}
}

// Publish queues the event for audit persistence and broadcasts the new
// seat count. Failures are logged, never propagated: the enrollment has
// already committed and must not be reported as failed.
func (s *RedisEventSink) Publish(ctx context.Context, ev model.EnrollmentEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal enrollment event")
		return
	}

	if err := s.rdb.RPush(ctx, config.WorkerKey.EnrollmentAuditQueue, payload).Err(); err != nil {
		s.log.Error().Err(err).Msg("Queue enrollment event")
	}

	channel := config.CacheKey.SeatUpdateChannel(ev.OfferingID.String())
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		s.log.Error().Err(err).Msg("Broadcast seat update")
	}
}
