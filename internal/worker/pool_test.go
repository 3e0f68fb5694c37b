package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockResult implements Result
type mockResult struct {
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

// mockJob implements Job
type mockJob struct {
	duration  time.Duration
	shouldErr bool
	executed  *int32 // atomic counter
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &mockResult{err: errors.New("job error")}
	}
	return &mockResult{err: nil}
}

// closeAndCollect closes the pool and drains every remaining result
func closeAndCollect(p *Pool) []Result {
	p.Close()
	var results []Result
	for r := range p.Results() {
		results = append(results, r)
	}
	return results
}

func TestNewPool(t *testing.T) {
	ctx := context.Background()

	if p := NewPool(ctx, 5); p.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p.workers)
	}
	if p := NewPool(ctx, 0); p.workers != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", p.workers)
	}
	if p := NewPool(ctx, -1); p.workers != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", p.workers)
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	var executed int32
	count := 8

	for i := 0; i < count; i++ {
		pool.Submit(&mockJob{executed: &executed})
	}

	results := closeAndCollect(pool)

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
	if got := atomic.LoadInt32(&executed); got != int32(count) {
		t.Errorf("expected %d executed jobs, got %d", count, got)
	}
}

// concurrencyJob tracks max concurrent executions
type concurrencyJob struct {
	start    func()
	end      func()
	duration time.Duration
}

func (j *concurrencyJob) Execute(ctx context.Context) Result {
	if j.start != nil {
		j.start()
	}
	time.Sleep(j.duration)
	if j.end != nil {
		j.end()
	}
	return &mockResult{}
}

func TestPool_ConcurrencyWithDrainingReader(t *testing.T) {
	workers := 4
	pool := NewPool(context.Background(), workers)
	pool.Start()

	var current, maxConcurrent, completed int32
	var mu sync.Mutex

	// More jobs than the buffers hold: results must be drained while submitting
	totalJobs := 100

	go func() {
		defer pool.Close()
		for i := 0; i < totalJobs; i++ {
			pool.Submit(&concurrencyJob{
				start: func() {
					curr := atomic.AddInt32(&current, 1)
					mu.Lock()
					if curr > maxConcurrent {
						maxConcurrent = curr
					}
					mu.Unlock()
				},
				end: func() {
					atomic.AddInt32(&current, -1)
					atomic.AddInt32(&completed, 1)
				},
				duration: time.Millisecond,
			})
		}
	}()

	received := 0
	for range pool.Results() {
		received++
	}

	if received != totalJobs {
		t.Errorf("expected %d results, got %d", totalJobs, received)
	}
	if got := atomic.LoadInt32(&completed); got != int32(totalJobs) {
		t.Errorf("expected %d completed jobs, got %d", totalJobs, got)
	}

	mu.Lock()
	max := maxConcurrent
	mu.Unlock()
	if max > int32(workers) {
		t.Errorf("max concurrency %d exceeded workers %d", max, workers)
	}
}

func TestPool_ErrorHandling(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	pool.Submit(&mockJob{shouldErr: true})
	pool.Submit(&mockJob{shouldErr: false})

	results := closeAndCollect(pool)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	errs := 0
	for _, res := range results {
		if res.GetError() != nil {
			errs++
		}
	}
	if errs != 1 {
		t.Errorf("expected 1 error, got %d", errs)
	}
}

func TestPool_SubmitAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 2)
	pool.Start()
	cancel()

	done := make(chan bool)
	go func() {
		done <- pool.Submit(&mockJob{})
	}()

	select {
	case accepted := <-done:
		if accepted {
			t.Error("expected Submit to be rejected after cancel")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Submit after cancel blocked")
	}
}

func TestPool_ParentContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1)
	pool.Start()

	var executed int32
	pool.Submit(&mockJob{duration: time.Minute, executed: &executed})
	for atomic.LoadInt32(&executed) == 0 {
		time.Sleep(time.Millisecond)
	}

	cancel()

	done := make(chan []Result)
	go func() {
		done <- closeAndCollect(pool)
	}()

	select {
	case results := <-done:
		for _, r := range results {
			if r.GetError() == nil {
				t.Error("expected the interrupted job to report the context error")
			}
		}
	case <-time.After(1 * time.Second):
		t.Fatal("results were not closed after parent context was cancelled")
	}
}
