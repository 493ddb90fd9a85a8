package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"javabite-client/internal/domain"
)

// ChefPollInterval is how often the kitchen view refetches its lists.
const ChefPollInterval = 30 * time.Second

type ChefTab string

const (
	ChefTabNew       ChefTab = "new"
	ChefTabProgress  ChefTab = "progress"
	ChefTabCompleted ChefTab = "completed"
)

type ChefAPI interface {
	ChefNewOrders(ctx context.Context) ([]domain.Order, error)
	ChefActiveOrders(ctx context.Context) ([]domain.Order, error)
	ChefCompletedToday(ctx context.Context) ([]domain.Order, error)
	StartPreparation(ctx context.Context, orderID int64) (*domain.Order, error)
	MarkOrderReady(ctx context.Context, orderID int64) (*domain.Order, error)
}

type ChefDashboard struct {
	notices
	api     ChefAPI
	log     *logrus.Entry
	poller  *Poller
	Confirm ConfirmFunc

	mu     sync.Mutex
	tab    ChefTab
	orders []domain.Order
}

func NewChef(chefAPI ChefAPI) *ChefDashboard {
	d := &ChefDashboard{
		api: chefAPI,
		log: logrus.StandardLogger().WithField("component", "chef-dashboard"),
		tab: ChefTabNew,
	}
	d.poller = NewPoller(ChefPollInterval, d.Refresh)
	return d
}

// Mount starts background polling; Unmount cancels it.
func (d *ChefDashboard) Mount(ctx context.Context) { d.poller.Start(ctx) }
func (d *ChefDashboard) Unmount()                  { d.poller.Stop() }

func (d *ChefDashboard) SetTab(ctx context.Context, tab ChefTab) {
	d.mu.Lock()
	d.tab = tab
	d.mu.Unlock()
	d.Refresh(ctx)
}

func (d *ChefDashboard) Tab() ChefTab {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tab
}

// Orders returns the last successful fetch for the active tab.
func (d *ChefDashboard) Orders() []domain.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.orders
}

// Refresh replaces the list wholesale; a failed fetch shows an empty list
// rather than stale orders.
func (d *ChefDashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	tab := d.tab
	d.mu.Unlock()

	var orders []domain.Order
	var err error
	switch tab {
	case ChefTabProgress:
		orders, err = d.api.ChefActiveOrders(ctx)
	case ChefTabCompleted:
		orders, err = d.api.ChefCompletedToday(ctx)
	default:
		orders, err = d.api.ChefNewOrders(ctx)
	}
	if err != nil {
		d.log.WithError(err).Warn("failed to fetch orders")
		d.setError("Failed to load orders")
		orders = nil
	} else {
		d.clearError()
	}

	d.mu.Lock()
	d.orders = orders
	d.mu.Unlock()
}

// StartPreparation moves a PENDING order to PREPARING and refetches.
func (d *ChefDashboard) StartPreparation(ctx context.Context, orderID int64) error {
	if !confirm(d.Confirm, "Start preparing this order?") {
		return nil
	}
	if _, err := d.api.StartPreparation(ctx, orderID); err != nil {
		d.setError(err.Error())
		return err
	}
	d.flashSuccess(fmt.Sprintf("Preparation started for order #%d", orderID))
	d.Refresh(ctx)
	return nil
}

// MarkReady moves a PREPARING order to READY and refetches.
func (d *ChefDashboard) MarkReady(ctx context.Context, orderID int64) error {
	if !confirm(d.Confirm, "Mark this order as ready?") {
		return nil
	}
	if _, err := d.api.MarkOrderReady(ctx, orderID); err != nil {
		d.setError(err.Error())
		return err
	}
	d.flashSuccess(fmt.Sprintf("Order #%d marked as ready", orderID))
	d.Refresh(ctx)
	return nil
}
