// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"time"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
	"github.com/canonical/renovation-service/internal/tracing"
)

const defaultSweepInterval = 10 * time.Second

// Sweeper periodically expires pending invitations that are past their
// expiry date.
type Sweeper struct {
	service  ExpirerInterface
	interval time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Sweep runs a single expiry pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "invitation.Sweeper.Sweep")
	defer span.End()

	expired, err := s.service.ExpireInvitations(ctx)
	if err != nil {
		s.logger.Errorf("invitation expiry sweep failed: %v", err)
		return
	}

	if expired > 0 {
		s.logger.Infof("expired %d invitations", expired)
	}
}

// Run sweeps on the configured interval until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Start launches the sweeper in the background and returns a cancel function
// together with a channel closed once the loop has exited.
func (s *Sweeper) Start(ctx context.Context) (func(), chan struct{}) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.logger.Infof("starting invitation expiry sweeper, interval %s", s.interval)
		s.Run(ctx)
		s.logger.Info("invitation expiry sweeper stopped")
	}()

	return cancel, done
}

func NewSweeper(service ExpirerInterface, interval time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Sweeper {
	s := new(Sweeper)

	s.service = service
	s.interval = interval
	if s.interval <= 0 {
		s.interval = defaultSweepInterval
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
