package pkg

import (
	"log"
	"sync/atomic"
	"time"
)

// AtomicDuration allows for atomic updates to a time.Duration value.
type AtomicDuration int64

func (a *AtomicDuration) Add(d time.Duration) {
	atomic.AddInt64((*int64)(a), int64(d))
}

func (a *AtomicDuration) Since(start time.Time) {
	stop := time.Now()
	a.Add(stop.Sub(start))
}

func (a *AtomicDuration) Duration() time.Duration {
	return time.Duration(atomic.LoadInt64((*int64)(a)))
}

type Timings struct {
	Start       time.Time
	Since_Setup time.Duration

	Workers         int
	Claims          atomic.Int64
	Since_Parse     AtomicDuration
	Since_Aggregate time.Duration

	Since_Merge time.Duration
	Since_Sort  time.Duration
	Since_Print time.Duration
}

func (t *Timings) Report() {
	var perWorker time.Duration
	if t.Workers > 0 {
		perWorker = t.Since_Parse.Duration() / time.Duration(t.Workers)
	}
	log.Printf(`
? Setup: %v
[ Aggregate: %v
  > Workers: %d
  > Claims: %d
  > Parse/worker: %v
! Merge: %v
! Sort: %v
! Print: %v
= Total: %v
	 `,
		t.Since_Setup,

		t.Since_Aggregate,
		t.Workers,
		t.Claims.Load(),
		perWorker,

		t.Since_Merge,
		t.Since_Sort,
		t.Since_Print,
		time.Since(t.Start),
	)
}
