package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Poller runs a fetch on a fixed interval for as long as the dashboard is
// mounted. A tick that fires while the previous fetch is still outstanding is
// skipped, so a slow response can never be replaced by an older one.
type Poller struct {
	interval time.Duration
	fetch    func(ctx context.Context)
	log      *logrus.Entry

	inFlight atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(interval time.Duration, fetch func(ctx context.Context)) *Poller {
	return &Poller{
		interval: interval,
		fetch:    fetch,
		log:      logrus.StandardLogger().WithField("component", "poller"),
	}
}

// Start begins polling with an immediate first fetch. Calling Start on a
// running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx, p.done)
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	p.tick(ctx)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.log.Debug("previous poll still in flight, skipping tick")
		return
	}
	go func() {
		defer p.inFlight.Store(false)
		p.fetch(ctx)
	}()
}

// Stop cancels the poll loop and waits for it to exit. Safe to call twice.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
