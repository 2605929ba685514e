package eox

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler submits periodic runs. Whether a periodic run does any work is
// decided by the orchestrator from the periodic-sync flag.
type Scheduler struct {
	service  *Service
	interval time.Duration
	logger   *zap.Logger

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// NewScheduler creates a scheduler firing every interval.
func NewScheduler(service *Service, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the schedule in a background goroutine.
func (s *Scheduler) Start() {
	s.logger.Info("Starting EoX scheduler", zap.Duration("interval", s.interval))
	go s.loop()
}

func (s *Scheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.service.Trigger(Trigger{Source: TriggerPeriodic})
		case <-s.stop:
			return
		}
	}
}

// Stop ends the schedule and waits for the loop to exit. Runs already
// submitted keep going.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
	<-s.done
}
