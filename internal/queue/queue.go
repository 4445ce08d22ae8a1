// Package queue defers confirmation-email delivery out of the request path.
// Jobs are JSON entries on a Redis list; a background worker pops and sends
// them. Enqueue failures are logged and swallowed — the submitter's request
// must never fail because the confirmation could not be queued.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gibugumi/cms/internal/model"
)

// DefaultKey is the Redis list holding pending confirmation jobs.
const DefaultKey = "mailer:confirmation_jobs"

// ConfirmationJob is one deferred confirmation send.
type ConfirmationJob struct {
	ID         string               `json:"id"`
	Message    model.ContactMessage `json:"message"`
	Locale     string               `json:"locale"`
	EnqueuedAt time.Time            `json:"enqueued_at"`
}

// ConfirmationQueue enqueues deferred confirmation sends.
type ConfirmationQueue interface {
	Enqueue(ctx context.Context, msg *model.ContactMessage, locale string) error
}

// RedisQueue is the production ConfirmationQueue.
type RedisQueue struct {
	rdb *redis.Client
	key string
}

// NewRedisQueue creates a queue over the given client using DefaultKey.
func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{rdb: rdb, key: DefaultKey}
}

var _ ConfirmationQueue = (*RedisQueue)(nil)

// Enqueue pushes a job onto the list.
func (q *RedisQueue) Enqueue(ctx context.Context, msg *model.ContactMessage, locale string) error {
	job := ConfirmationJob{
		ID:         uuid.NewString(),
		Message:    *msg,
		Locale:     locale,
		EnqueuedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.key, data).Err()
}

// Dequeue blocks up to timeout waiting for the next job. It returns
// (nil, nil) when the wait times out with no job available.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*ConfirmationJob, error) {
	res, err := q.rdb.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// BRPOP returns [key, value].
	if len(res) != 2 {
		return nil, errors.New("queue: unexpected BRPOP reply")
	}
	var job ConfirmationJob
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, err
	}
	return &job, nil
}
