package session

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Poller refreshes alerts and insights on a fixed interval while the
// session is authenticated. It never requests a product analysis.
type Poller struct {
	session  *Session
	interval time.Duration
	logger   *slog.Logger
}

func NewPoller(s *Session, interval time.Duration, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{session: s, interval: interval, logger: logger}
}

// Run polls until ctx is done. A zero or negative interval returns at once.
func (p *Poller) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("dashboard poller started", "interval", p.interval)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("dashboard poller stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if p.session.State() != Authenticated {
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := p.session.RefreshAlerts(ctx, p.session.AlertThreshold())
		return err
	})
	g.Go(func() error {
		_, err := p.session.RefreshInsights(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		p.logger.Debug("poll incomplete", "error", err)
	}
}
