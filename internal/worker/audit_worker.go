package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/config"
	"github.com/campushq/advising-backend/internal/model"
)

const (
	AuditBatchSize    = 50
	AuditBatchTimeout = 2 * time.Second
	AuditPollTimeout  = 1 * time.Second
)

// AuditWorker drains the enrollment audit queue and persists events in
// batches. The queue is write-behind; a committed enroll or withdraw is
// never blocked on the audit trail.
type AuditWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

func NewAuditWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *AuditWorker {
	return &AuditWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "audit_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

func (w *AuditWorker) Start(ctx context.Context) {
	w.log.Info().Msg("AuditWorker started")

	batch := make([]*model.EnrollmentEvent, 0, AuditBatchSize)
	lastFlush := time.Now()

	for {
		// Should flush?
		if len(batch) > 0 &&
			(len(batch) >= AuditBatchSize || time.Since(lastFlush) >= AuditBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, AuditPollTimeout, config.WorkerKey.EnrollmentAuditQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var ev model.EnrollmentEvent
			if err := json.Unmarshal([]byte(item[1]), &ev); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &ev)
		}
	}
}

// ----------------------------------------------------------------
// Batch insert wrapper
// ----------------------------------------------------------------

func (w *AuditWorker) flushSafe(ctx context.Context, batch []*model.EnrollmentEvent) {
	if len(batch) == 0 {
		return
	}

	if err := w.bulkInsertEvents(ctx, batch); err != nil {
		w.log.Warn().Err(err).Msg("bulk event insert failed, using fallback")

		for _, ev := range batch {
			if err := w.persistSingle(ctx, ev); err != nil {
				w.log.Error().Err(err).Msg("persistSingle failed, requeueing")
				raw, _ := json.Marshal(ev)
				w.rdb.RPush(ctx, config.WorkerKey.EnrollmentAuditQueue, raw)
			}
		}
	}
}

// ----------------------------------------------------------------
// BULK PostgreSQL INSERT using UNNEST
// ----------------------------------------------------------------

func (w *AuditWorker) bulkInsertEvents(ctx context.Context, batch []*model.EnrollmentEvent) error {
	n := len(batch)

	offeringIDs := make([]string, 0, n)
	studentIDs := make([]int, 0, n)
	semesterIDs := make([]int, 0, n)
	actions := make([]string, 0, n)
	seats := make([]int, 0, n)
	occurredAts := make([]time.Time, 0, n)

	for _, ev := range batch {
		offeringIDs = append(offeringIDs, ev.OfferingID.String())
		studentIDs = append(studentIDs, ev.StudentID)
		semesterIDs = append(semesterIDs, ev.SemesterID)
		actions = append(actions, string(ev.Action))
		seats = append(seats, ev.SeatsRemaining)
		occurredAts = append(occurredAts, ev.OccurredAt)
	}

	query := `
		INSERT INTO enrollment_events
			(offering_id, student_id, semester_id, action, seats_remaining, occurred_at)
		SELECT u.offering_id, u.student_id, u.semester_id, u.action, u.seats_remaining, u.occurred_at
		FROM UNNEST(
			$1::uuid[],
			$2::int[],
			$3::int[],
			$4::text[],
			$5::int[],
			$6::timestamptz[]
		) AS u (offering_id, student_id, semester_id, action, seats_remaining, occurred_at)
	`

	_, err := w.pool.Exec(ctx, query, offeringIDs, studentIDs, semesterIDs, actions, seats, occurredAts)
	return err
}

// ----------------------------------------------------------------
// FALLBACK single insert
// ----------------------------------------------------------------

func (w *AuditWorker) persistSingle(ctx context.Context, ev *model.EnrollmentEvent) error {
	_, err := w.pool.Exec(ctx,
		`INSERT INTO enrollment_events
			(offering_id, student_id, semester_id, action, seats_remaining, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ev.OfferingID, ev.StudentID, ev.SemesterID, string(ev.Action), ev.SeatsRemaining, ev.OccurredAt,
	)
	return err
}
