package console

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultBadgeInterval is how often the unassigned-order badge refreshes
// unless configured otherwise.
const DefaultBadgeInterval = 10 * time.Second

// BadgePoller keeps the console's unassigned-order badge current. It polls
// the coordinator on a fixed interval; a failed poll keeps the last known
// count instead of flashing the badge to zero.
type BadgePoller struct {
	client   *Client
	cron     *cron.Cron
	interval time.Duration
	count    atomic.Int64
	logger   *slog.Logger
}

// NewBadgePoller creates a poller refreshing every interval. A non-positive
// interval falls back to DefaultBadgeInterval.
func NewBadgePoller(client *Client, interval time.Duration, logger *slog.Logger) *BadgePoller {
	if interval <= 0 {
		interval = DefaultBadgeInterval
	}
	return &BadgePoller{
		client:   client,
		cron:     cron.New(cron.WithSeconds()),
		interval: interval,
		logger:   logger.With("component", "badge_poller"),
	}
}

// Start begins polling. The first poll runs immediately so the badge is
// populated before the first tick.
func (p *BadgePoller) Start() error {
	p.poll()

	_, err := p.cron.AddFunc(fmt.Sprintf("@every %s", p.interval), p.poll)
	if err != nil {
		return err
	}

	p.cron.Start()
	p.logger.InfoContext(context.Background(), "Badge poller started", "interval", p.interval.String())
	return nil
}

// Stop stops polling. The last count stays readable.
func (p *BadgePoller) Stop() {
	p.cron.Stop()
	p.logger.InfoContext(context.Background(), "Badge poller stopped")
}

// Count returns the last successfully fetched unassigned-order count.
func (p *BadgePoller) Count() int64 {
	return p.count.Load()
}

func (p *BadgePoller) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	count, err := p.client.UnassignedOrderCount(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "Badge poll failed, keeping previous count", "error", err)
		return
	}

	p.count.Store(count)
}
