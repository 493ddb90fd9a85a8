package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"javabite-client/internal/api"
	"javabite-client/internal/domain"
)

const AdminPollInterval = 30 * time.Second

type AdminAPI interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	PendingOrders(ctx context.Context) ([]domain.Order, error)
	AllOrders(ctx context.Context) ([]domain.Order, error)
	AssignStaff(ctx context.Context, orderID int64, req api.AssignStaffRequest) (*domain.Order, error)
	ReassignStaff(ctx context.Context, orderID int64, req api.AssignStaffRequest) (*domain.Order, error)
	CancelOrderAdmin(ctx context.Context, orderID int64) (*domain.Order, error)
	RefundOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	UpdateOrderNotes(ctx context.Context, orderID int64, notes string) error
	Chefs(ctx context.Context) ([]domain.User, error)
	Waiters(ctx context.Context) ([]domain.User, error)
	CreateChef(ctx context.Context, req api.CreateStaffRequest) (*domain.User, error)
	CreateWaiter(ctx context.Context, req api.CreateStaffRequest) (*domain.User, error)
	ToggleStaffStatus(ctx context.Context, userID int64) (*domain.User, error)
	DeleteStaff(ctx context.Context, userID int64) error
	AdminMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, req api.MenuItemRequest) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, req api.MenuItemRequest) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
	AllBookings(ctx context.Context) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*domain.Booking, error)
}

// AssignForm is the staff-assignment selection for one pending order. It
// survives a failed submission so the admin can retry without re-picking.
type AssignForm struct {
	OrderID  int64
	ChefID   int64
	WaiterID int64
}

type AdminDashboard struct {
	notices
	api     AdminAPI
	log     *logrus.Entry
	poller  *Poller
	Confirm ConfirmFunc

	mu            sync.Mutex
	stats         domain.DashboardStats
	pendingOrders []domain.Order
	allOrders     []domain.Order
	bookings      []domain.Booking
	chefs         []domain.User
	waiters       []domain.User
	menuItems     []domain.MenuItem
	assignForm    AssignForm
}

func NewAdmin(adminAPI AdminAPI) *AdminDashboard {
	d := &AdminDashboard{
		api: adminAPI,
		log: logrus.StandardLogger().WithField("component", "admin-dashboard"),
	}
	d.poller = NewPoller(AdminPollInterval, d.Refresh)
	return d
}

func (d *AdminDashboard) Mount(ctx context.Context) { d.poller.Start(ctx) }
func (d *AdminDashboard) Unmount()                  { d.poller.Stop() }

// Refresh refetches every list the admin views render. Stats are non-critical
// and keep their last known value on failure; lists fall back to empty.
func (d *AdminDashboard) Refresh(ctx context.Context) {
	if stats, err := d.api.DashboardStats(ctx); err != nil {
		d.log.WithError(err).Debug("stats fetch failed, keeping last value")
	} else if stats != nil {
		d.mu.Lock()
		d.stats = *stats
		d.mu.Unlock()
	}

	d.refreshPending(ctx)
	d.refreshStaff(ctx)
	d.refreshBookings(ctx)
	d.refreshMenu(ctx)
}

func (d *AdminDashboard) refreshPending(ctx context.Context) {
	orders, err := d.api.PendingOrders(ctx)
	if err != nil {
		d.log.WithError(err).Warn("failed to fetch pending orders")
		d.setError("Failed to load pending orders")
		orders = nil
	}
	d.mu.Lock()
	d.pendingOrders = orders
	d.mu.Unlock()
}

func (d *AdminDashboard) refreshStaff(ctx context.Context) {
	chefs, errChefs := d.api.Chefs(ctx)
	waiters, errWaiters := d.api.Waiters(ctx)
	if errChefs != nil {
		d.log.WithError(errChefs).Warn("failed to fetch chefs")
		chefs = nil
	}
	if errWaiters != nil {
		d.log.WithError(errWaiters).Warn("failed to fetch waiters")
		waiters = nil
	}
	d.mu.Lock()
	d.chefs = chefs
	d.waiters = waiters
	d.mu.Unlock()
}

func (d *AdminDashboard) refreshBookings(ctx context.Context) {
	bookings, err := d.api.AllBookings(ctx)
	if err != nil {
		d.log.WithError(err).Warn("failed to fetch bookings")
		bookings = nil
	}
	d.mu.Lock()
	d.bookings = bookings
	d.mu.Unlock()
}

func (d *AdminDashboard) refreshMenu(ctx context.Context) {
	items, err := d.api.AdminMenuItems(ctx)
	if err != nil {
		d.log.WithError(err).Warn("failed to fetch menu items")
		items = nil
	}
	d.mu.Lock()
	d.menuItems = items
	d.mu.Unlock()
}

// RefreshOrderHistory loads the full order list for the history/reports views.
func (d *AdminDashboard) RefreshOrderHistory(ctx context.Context) error {
	orders, err := d.api.AllOrders(ctx)
	if err != nil {
		d.setError(fmt.Sprintf("Failed to load orders: %v", err))
		orders = nil
	} else {
		d.clearError()
	}
	d.mu.Lock()
	d.allOrders = orders
	d.mu.Unlock()
	return err
}

func (d *AdminDashboard) Stats() domain.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *AdminDashboard) PendingOrders() []domain.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pendingOrders
}

func (d *AdminDashboard) OrderHistory() []domain.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.allOrders
}

func (d *AdminDashboard) Bookings() []domain.Booking {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bookings
}

func (d *AdminDashboard) Chefs() []domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.chefs
}

func (d *AdminDashboard) Waiters() []domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.waiters
}

func (d *AdminDashboard) MenuItems() []domain.MenuItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.menuItems
}

func (d *AdminDashboard) SetAssignForm(form AssignForm) {
	d.mu.Lock()
	d.assignForm = form
	d.mu.Unlock()
}

func (d *AdminDashboard) AssignFormState() AssignForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.assignForm
}

// AssignStaff submits the current assignment form. The waiter is optional. On
// failure the form stays populated and the order stays in the pending list.
func (d *AdminDashboard) AssignStaff(ctx context.Context) error {
	d.mu.Lock()
	form := d.assignForm
	d.mu.Unlock()

	if form.OrderID == 0 || form.ChefID == 0 {
		err := api.Precondition("select an order and a chef before assigning")
		d.setError(err.Message)
		return err
	}

	_, err := d.api.AssignStaff(ctx, form.OrderID, api.AssignStaffRequest{
		ChefID:   form.ChefID,
		WaiterID: form.WaiterID,
	})
	if err != nil {
		d.setError(fmt.Sprintf("Failed to assign staff: %v", err))
		return err
	}

	d.mu.Lock()
	d.assignForm = AssignForm{}
	d.mu.Unlock()
	d.flashSuccess(fmt.Sprintf("Staff assigned to order #%d", form.OrderID))
	d.refreshPending(ctx)
	return nil
}

func (d *AdminDashboard) ReassignStaff(ctx context.Context, orderID, chefID, waiterID int64) error {
	_, err := d.api.ReassignStaff(ctx, orderID, api.AssignStaffRequest{ChefID: chefID, WaiterID: waiterID})
	if err != nil {
		d.setError(fmt.Sprintf("Failed to reassign staff: %v", err))
		return err
	}
	d.flashSuccess(fmt.Sprintf("Order #%d reassigned", orderID))
	d.RefreshOrderHistory(ctx)
	return nil
}

func (d *AdminDashboard) CancelOrder(ctx context.Context, orderID int64) error {
	if !confirm(d.Confirm, "Are you sure you want to cancel this order?") {
		return nil
	}
	if _, err := d.api.CancelOrderAdmin(ctx, orderID); err != nil {
		d.setError(fmt.Sprintf("Failed to cancel order: %v", err))
		return err
	}
	d.flashSuccess(fmt.Sprintf("Order #%d cancelled", orderID))
	d.refreshPending(ctx)
	d.RefreshOrderHistory(ctx)
	return nil
}

// RefundOrder refunds a completed order; irreversible, so always confirmed.
func (d *AdminDashboard) RefundOrder(ctx context.Context, orderID int64) error {
	if !confirm(d.Confirm, "Refund this order? This cannot be undone.") {
		return nil
	}
	if _, err := d.api.RefundOrder(ctx, orderID); err != nil {
		d.setError(fmt.Sprintf("Failed to refund order: %v", err))
		return err
	}
	d.flashSuccess(fmt.Sprintf("Refund issued for order #%d", orderID))
	d.RefreshOrderHistory(ctx)
	return nil
}

func (d *AdminDashboard) UpdateOrderNotes(ctx context.Context, orderID int64, notes string) error {
	if err := d.api.UpdateOrderNotes(ctx, orderID, notes); err != nil {
		d.setError(fmt.Sprintf("Failed to update notes: %v", err))
		return err
	}
	d.flashSuccess("Notes updated")
	return nil
}

// Staff management.

func (d *AdminDashboard) CreateChef(ctx context.Context, req api.CreateStaffRequest) error {
	if _, err := d.api.CreateChef(ctx, req); err != nil {
		d.setError(fmt.Sprintf("Failed to create chef: %v", err))
		return err
	}
	d.flashSuccess("Chef account created")
	d.refreshStaff(ctx)
	return nil
}

func (d *AdminDashboard) CreateWaiter(ctx context.Context, req api.CreateStaffRequest) error {
	if _, err := d.api.CreateWaiter(ctx, req); err != nil {
		d.setError(fmt.Sprintf("Failed to create waiter: %v", err))
		return err
	}
	d.flashSuccess("Waiter account created")
	d.refreshStaff(ctx)
	return nil
}

func (d *AdminDashboard) ToggleStaff(ctx context.Context, userID int64) error {
	if _, err := d.api.ToggleStaffStatus(ctx, userID); err != nil {
		d.setError(fmt.Sprintf("Failed to toggle staff status: %v", err))
		return err
	}
	d.flashSuccess("Staff status updated")
	d.refreshStaff(ctx)
	return nil
}

func (d *AdminDashboard) DeleteStaff(ctx context.Context, userID int64) error {
	if !confirm(d.Confirm, "Delete this staff member?") {
		return nil
	}
	if err := d.api.DeleteStaff(ctx, userID); err != nil {
		d.setError(fmt.Sprintf("Failed to delete staff: %v", err))
		return err
	}
	d.flashSuccess("Staff member deleted")
	d.refreshStaff(ctx)
	return nil
}

// Menu management.

func (d *AdminDashboard) CreateMenuItem(ctx context.Context, req api.MenuItemRequest) error {
	if _, err := d.api.CreateMenuItem(ctx, req); err != nil {
		d.setError(fmt.Sprintf("Failed to create menu item: %v", err))
		return err
	}
	d.flashSuccess(fmt.Sprintf("%q added to the menu", req.Name))
	d.refreshMenu(ctx)
	return nil
}

func (d *AdminDashboard) UpdateMenuItem(ctx context.Context, id int64, req api.MenuItemRequest) error {
	if _, err := d.api.UpdateMenuItem(ctx, id, req); err != nil {
		d.setError(fmt.Sprintf("Failed to update menu item: %v", err))
		return err
	}
	d.flashSuccess(fmt.Sprintf("%q updated", req.Name))
	d.refreshMenu(ctx)
	return nil
}

func (d *AdminDashboard) DeleteMenuItem(ctx context.Context, id int64) error {
	if !confirm(d.Confirm, "Delete this menu item?") {
		return nil
	}
	if err := d.api.DeleteMenuItem(ctx, id); err != nil {
		d.setError(fmt.Sprintf("Failed to delete menu item: %v", err))
		return err
	}
	d.flashSuccess("Menu item deleted")
	d.refreshMenu(ctx)
	return nil
}

// Booking management.

func (d *AdminDashboard) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if _, err := d.api.UpdateBookingStatus(ctx, id, status); err != nil {
		d.setError(fmt.Sprintf("Failed to update booking: %v", err))
		return err
	}
	d.flashSuccess(fmt.Sprintf("Booking #%d set to %s", id, status))
	d.refreshBookings(ctx)
	return nil
}

func (d *AdminDashboard) CancelBooking(ctx context.Context, id int64) error {
	if !confirm(d.Confirm, "Cancel this booking?") {
		return nil
	}
	if _, err := d.api.CancelBooking(ctx, id); err != nil {
		d.setError(fmt.Sprintf("Failed to cancel booking: %v", err))
		return err
	}
	d.flashSuccess(fmt.Sprintf("Booking #%d cancelled", id))
	d.refreshBookings(ctx)
	return nil
}
