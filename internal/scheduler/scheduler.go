package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/avelez-dev/airquality-dashboard/internal/dashboard"
)

// Scheduler periodically rotates the demo dataset seed so a long-running
// instance keeps showing fresh data.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *dashboard.Service
	interval  time.Duration
}

// New creates a new Scheduler. A non-positive interval disables rotation.
func New(service *dashboard.Service, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
	}
}

// Start schedules the rotation job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: rotation disabled; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		_, seed := s.service.Params()
		if err := s.service.Rotate(seed + 1); err != nil {
			log.Printf("scheduler: seed rotation failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
