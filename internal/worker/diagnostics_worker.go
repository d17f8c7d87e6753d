package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/config"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

const (
	DiagnosticsBatchSize    = 50
	DiagnosticsBatchTimeout = 2 * time.Second
	DiagnosticsPollTimeout  = 1 * time.Second
)

// DiagnosticsWorker drains queued data-quality events (join misses,
// ambiguous category labels) from Redis and persists them to Postgres in
// batches. Diagnostics are observability data only; losing one never
// affects an analysis response.
type DiagnosticsWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

func NewDiagnosticsWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *DiagnosticsWorker {
	return &DiagnosticsWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "diagnostics_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

func (w *DiagnosticsWorker) Start(ctx context.Context) {
	w.log.Info().Msg("DiagnosticsWorker started")

	batch := make([]*model.DiagnosticEvent, 0, DiagnosticsBatchSize)
	lastFlush := time.Now()

	for {
		// Should flush?
		if len(batch) > 0 &&
			(len(batch) >= DiagnosticsBatchSize || time.Since(lastFlush) >= DiagnosticsBatchTimeout) {

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
			item, err := w.rdb.BLPop(ctx, DiagnosticsPollTimeout, config.WorkerKey.DiagnosticsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var event model.DiagnosticEvent
			if err := json.Unmarshal([]byte(item[1]), &event); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &event)
		}
	}
}

// ----------------------------------------------------------------
// Batch insert with per-row fallback
// ----------------------------------------------------------------

func (w *DiagnosticsWorker) flushSafe(ctx context.Context, batch []*model.DiagnosticEvent) {
	if len(batch) == 0 {
		return
	}

	if err := w.bulkInsert(ctx, batch); err != nil {
		w.log.Warn().Err(err).Msg("bulk diagnostics insert failed, using fallback")

		for _, event := range batch {
			if err := w.insertSingle(ctx, event); err != nil {
				w.log.Error().Err(err).Msg("insertSingle failed — requeueing")
				raw, _ := json.Marshal(event)
				w.rdb.RPush(ctx, config.WorkerKey.DiagnosticsQueue, raw)
			}
		}
	}
}

// bulkInsert writes the whole batch through pgx's CopyFrom.
func (w *DiagnosticsWorker) bulkInsert(ctx context.Context, batch []*model.DiagnosticEvent) error {
	rows := make([][]interface{}, 0, len(batch))
	for _, event := range batch {
		rows = append(rows, []interface{}{
			event.StudentID, string(event.Kind), event.Year, event.Semester, event.Detail,
		})
	}

	_, err := w.pool.CopyFrom(ctx,
		pgx.Identifier{"analysis_diagnostics"},
		[]string{"student_id", "kind", "year", "semester", "detail"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (w *DiagnosticsWorker) insertSingle(ctx context.Context, event *model.DiagnosticEvent) error {
	_, err := w.pool.Exec(ctx,
		`INSERT INTO analysis_diagnostics (student_id, kind, year, semester, detail)
		 VALUES ($1, $2, $3, $4, $5)`,
		event.StudentID, string(event.Kind), event.Year, event.Semester, event.Detail,
	)
	return err
}
