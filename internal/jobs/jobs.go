// Package jobs runs periodic housekeeping on the database.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger removes expired sessions and OTPs.
type Purger interface {
	Purge(now time.Time) (sessions, otps int64, err error)
}

// Scheduler wraps a cron runner with the app's jobs registered.
type Scheduler struct {
	cron *cron.Cron
}

// New registers the purge job on schedule (standard cron expression or
// descriptor such as "@every 1h").
func New(p Purger, schedule string) (*Scheduler, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { PurgeExpired(p, time.Now()) }); err != nil {
		return nil, fmt.Errorf("schedule purge %q: %w", schedule, err)
	}
	return &Scheduler{cron: c}, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("housekeeping scheduled", "jobs", len(s.cron.Entries()))
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// PurgeExpired runs one purge pass and logs the outcome.
func PurgeExpired(p Purger, now time.Time) {
	sessions, otps, err := p.Purge(now)
	if err != nil {
		slog.Error("purge failed", "error", err)
		return
	}
	if sessions > 0 || otps > 0 {
		slog.Info("purged expired credentials", "sessions", sessions, "otps", otps)
	}
}
