package jobqueue_test

import (
	"runtime"
	"testing"
	"time"

	jq "github.com/Andrej220/go-utils/jobqueue"
)

var fastRetry = jq.RetryPolicy{Attempts: 2, Initial: time.Millisecond, Max: 2 * time.Millisecond}

func newTestQueue[T any](t *testing.T, workers int, policy jq.Policy) *jq.Queue[T] {
	t.Helper()

	q, err := jq.New[T](jq.Options{
		Workers: workers,
		Policy:  policy,
		Retry:   fastRetry,
	})
	if err != nil {
		t.Fatalf("new queue: %v", err)
	}
	return q
}

func drain[T any](t *testing.T, q *jq.Queue[T]) {
	t.Helper()

	q.Wait()
	if err := q.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}
