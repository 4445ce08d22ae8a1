package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/gibugumi/cms/internal/mailer"
)

// Worker drains the confirmation queue. Send failures are logged and the job
// is dropped; retry policy beyond that is deliberately out of scope here.
type Worker struct {
	queue      *RedisQueue
	dispatcher mailer.Dispatcher

	popTimeout time.Duration
}

// NewWorker creates a Worker over the given queue and dispatcher.
func NewWorker(queue *RedisQueue, dispatcher mailer.Dispatcher) *Worker {
	return &Worker{queue: queue, dispatcher: dispatcher, popTimeout: 5 * time.Second}
}

// Run processes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := w.queue.Dequeue(ctx, w.popTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("confirmation worker: dequeue failed", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}

		if err := w.dispatcher.SendConfirmation(ctx, &job.Message, job.Locale); err != nil {
			slog.Error("confirmation worker: send failed",
				"job_id", job.ID,
				"to", job.Message.Email,
				"locale", job.Locale,
				"error", err,
			)
			continue
		}
		slog.Info("confirmation sent", "job_id", job.ID, "locale", job.Locale)
	}
}
