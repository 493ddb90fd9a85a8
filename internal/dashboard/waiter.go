package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"javabite-client/internal/domain"
)

// WaiterPollInterval is deliberately short; ready orders go cold.
const WaiterPollInterval = 5 * time.Second

type WaiterAPI interface {
	WaiterPreparingOrders(ctx context.Context) ([]domain.Order, error)
	WaiterReadyOrders(ctx context.Context) ([]domain.Order, error)
	MarkServed(ctx context.Context, orderID int64) (*domain.Order, error)
}

type WaiterDashboard struct {
	notices
	api     WaiterAPI
	log     *logrus.Entry
	poller  *Poller
	Confirm ConfirmFunc

	mu        sync.Mutex
	preparing []domain.Order
	ready     []domain.Order
}

func NewWaiter(waiterAPI WaiterAPI) *WaiterDashboard {
	d := &WaiterDashboard{
		api: waiterAPI,
		log: logrus.StandardLogger().WithField("component", "waiter-dashboard"),
	}
	d.poller = NewPoller(WaiterPollInterval, d.Refresh)
	return d
}

func (d *WaiterDashboard) Mount(ctx context.Context) { d.poller.Start(ctx) }
func (d *WaiterDashboard) Unmount()                  { d.poller.Stop() }

func (d *WaiterDashboard) Preparing() []domain.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.preparing
}

func (d *WaiterDashboard) Ready() []domain.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ready
}

func (d *WaiterDashboard) Refresh(ctx context.Context) {
	preparing, errPrep := d.api.WaiterPreparingOrders(ctx)
	ready, errReady := d.api.WaiterReadyOrders(ctx)

	if errPrep != nil || errReady != nil {
		d.log.WithFields(logrus.Fields{
			"preparing": errPrep, "ready": errReady,
		}).Warn("failed to fetch orders")
		d.setError("Failed to load orders. Please refresh.")
	} else {
		d.clearError()
	}
	if errPrep != nil {
		preparing = nil
	}
	if errReady != nil {
		ready = nil
	}

	d.mu.Lock()
	d.preparing = preparing
	d.ready = ready
	d.mu.Unlock()
}

// MarkServed moves a READY order toward completion and refetches both lists.
func (d *WaiterDashboard) MarkServed(ctx context.Context, orderID int64) error {
	if !confirm(d.Confirm, "Mark this order as served?") {
		return nil
	}
	if _, err := d.api.MarkServed(ctx, orderID); err != nil {
		d.setError(err.Error())
		return err
	}
	d.flashSuccess(fmt.Sprintf("Order #%d served", orderID))
	d.Refresh(ctx)
	return nil
}
