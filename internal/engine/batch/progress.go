package batch

import (
	"sync"
	"time"
)

// Snapshot is an immutable view of batch progress, safe to hand to UI code.
type Snapshot struct {
	Total     int
	Completed int
	Failed    int
	Elapsed   time.Duration
}

// PercentComplete returns completion as 0-100.
func (s Snapshot) PercentComplete() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// Done reports whether every job has finished.
func (s Snapshot) Done() bool {
	return s.Completed >= s.Total
}

// progress tracks completion across worker goroutines.
type progress struct {
	mu        sync.Mutex
	total     int
	completed int
	failures  int
	start     time.Time
}

func newProgress(total int) *progress {
	return &progress{total: total, start: time.Now()}
}

// complete records one finished job and returns the resulting snapshot.
func (p *progress) complete(ok bool) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	if !ok {
		p.failures++
	}

	return Snapshot{
		Total:     p.total,
		Completed: p.completed,
		Failed:    p.failures,
		Elapsed:   time.Since(p.start),
	}
}

func (p *progress) failed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures
}
