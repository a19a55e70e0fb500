// Package scheduler runs the recurring broadcast job on a fixed hourly
// cadence, independent of the inbound event stream.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

// Job is a scheduled task body. Failures inside a job never stop the schedule.
type Job func(now time.Time)

// Scheduler fires a job at the top of every hour
type Scheduler struct {
	job      Job
	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates a Scheduler for the given job
func New(job Job) *Scheduler {
	return &Scheduler{
		job:      job,
		stopChan: make(chan struct{}),
	}
}

// NextTick returns the next top-of-hour after now
func NextTick(now time.Time) time.Time {
	return now.Truncate(time.Hour).Add(time.Hour)
}

// Start begins the schedule in a background goroutine
func (s *Scheduler) Start() {
	go func() {
		for {
			now := time.Now()
			timer := time.NewTimer(NextTick(now).Sub(now))

			select {
			case tick := <-timer.C:
				s.fire(tick)
			case <-s.stopChan:
				timer.Stop()
				return
			}
		}
	}()

	logger.System("Hourly broadcast scheduled", "Scheduler")
}

// fire runs the job, isolating panics so the next tick is unaffected
func (s *Scheduler) fire(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn(fmt.Sprintf("Scheduled job panicked: %v", r), "Scheduler")
		}
	}()

	s.job(now)
}

// Stop halts the schedule
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}
