package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"javabite-client/internal/api"
	"javabite-client/internal/domain"
)

// fakeAdminAPI answers every AdminAPI call from its fields; individual tests
// override only what they exercise.
type fakeAdminAPI struct {
	stats       *domain.DashboardStats
	statsErr    error
	pending     []domain.Order
	pendingErr  error
	all         []domain.Order
	allErr      error
	chefs       []domain.User
	waiters     []domain.User
	bookings    []domain.Booking
	menu        []domain.MenuItem
	assignErr   error
	assignCalls int
	lastAssign  api.AssignStaffRequest
}

func (f *fakeAdminAPI) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAdminAPI) PendingOrders(ctx context.Context) ([]domain.Order, error) {
	return f.pending, f.pendingErr
}

func (f *fakeAdminAPI) AllOrders(ctx context.Context) ([]domain.Order, error) {
	return f.all, f.allErr
}

func (f *fakeAdminAPI) AssignStaff(ctx context.Context, orderID int64, req api.AssignStaffRequest) (*domain.Order, error) {
	f.assignCalls++
	f.lastAssign = req
	if f.assignErr != nil {
		return nil, f.assignErr
	}
	return &domain.Order{ID: orderID, Status: domain.OrderPreparing}, nil
}

func (f *fakeAdminAPI) ReassignStaff(ctx context.Context, orderID int64, req api.AssignStaffRequest) (*domain.Order, error) {
	return &domain.Order{ID: orderID}, nil
}

func (f *fakeAdminAPI) CancelOrderAdmin(ctx context.Context, orderID int64) (*domain.Order, error) {
	return &domain.Order{ID: orderID, Status: domain.OrderCancelled}, nil
}

func (f *fakeAdminAPI) RefundOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	return &domain.Order{ID: orderID}, nil
}

func (f *fakeAdminAPI) UpdateOrderNotes(ctx context.Context, orderID int64, notes string) error {
	return nil
}

func (f *fakeAdminAPI) Chefs(ctx context.Context) ([]domain.User, error) {
	return f.chefs, nil
}

func (f *fakeAdminAPI) Waiters(ctx context.Context) ([]domain.User, error) {
	return f.waiters, nil
}

func (f *fakeAdminAPI) CreateChef(ctx context.Context, req api.CreateStaffRequest) (*domain.User, error) {
	f.chefs = append(f.chefs, domain.User{Name: req.Name, Role: domain.RoleChef})
	return &f.chefs[len(f.chefs)-1], nil
}

func (f *fakeAdminAPI) CreateWaiter(ctx context.Context, req api.CreateStaffRequest) (*domain.User, error) {
	f.waiters = append(f.waiters, domain.User{Name: req.Name, Role: domain.RoleWaiter})
	return &f.waiters[len(f.waiters)-1], nil
}

func (f *fakeAdminAPI) ToggleStaffStatus(ctx context.Context, userID int64) (*domain.User, error) {
	return &domain.User{ID: userID}, nil
}

func (f *fakeAdminAPI) DeleteStaff(ctx context.Context, userID int64) error {
	return nil
}

func (f *fakeAdminAPI) AdminMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	return f.menu, nil
}

func (f *fakeAdminAPI) CreateMenuItem(ctx context.Context, req api.MenuItemRequest) (*domain.MenuItem, error) {
	f.menu = append(f.menu, domain.MenuItem{Name: req.Name, Price: req.Price})
	return &f.menu[len(f.menu)-1], nil
}

func (f *fakeAdminAPI) UpdateMenuItem(ctx context.Context, id int64, req api.MenuItemRequest) (*domain.MenuItem, error) {
	return &domain.MenuItem{ID: id, Name: req.Name}, nil
}

func (f *fakeAdminAPI) DeleteMenuItem(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeAdminAPI) AllBookings(ctx context.Context) ([]domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeAdminAPI) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	return &domain.Booking{ID: id, Status: status}, nil
}

func (f *fakeAdminAPI) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return &domain.Booking{ID: id, Status: domain.BookingCancelled}, nil
}

func TestAdminDashboard_RefreshPopulatesAllViews(t *testing.T) {
	fake := &fakeAdminAPI{
		stats:    &domain.DashboardStats{PendingOrders: 2, ActiveBookings: 1},
		pending:  []domain.Order{{ID: 1}, {ID: 2}},
		chefs:    []domain.User{{ID: 10, Role: domain.RoleChef}},
		waiters:  []domain.User{{ID: 20, Role: domain.RoleWaiter}},
		bookings: []domain.Booking{{ID: 30}},
		menu:     []domain.MenuItem{{ID: 40, Name: "Latte"}},
	}
	d := NewAdmin(fake)

	d.Refresh(context.Background())

	assert.Equal(t, 2, d.Stats().PendingOrders)
	assert.Len(t, d.PendingOrders(), 2)
	assert.Len(t, d.Chefs(), 1)
	assert.Len(t, d.Waiters(), 1)
	assert.Len(t, d.Bookings(), 1)
	assert.Len(t, d.MenuItems(), 1)
}

func TestAdminDashboard_StatsKeepLastValueOnFailure(t *testing.T) {
	fake := &fakeAdminAPI{
		stats:   &domain.DashboardStats{PendingOrders: 5},
		pending: []domain.Order{{ID: 1}},
	}
	d := NewAdmin(fake)
	ctx := context.Background()

	d.Refresh(ctx)
	assert.Equal(t, 5, d.Stats().PendingOrders)

	fake.statsErr = &api.Error{Kind: api.KindTransient, Message: "timeout"}
	fake.pendingErr = &api.Error{Kind: api.KindTransient, Message: "timeout"}
	d.Refresh(ctx)

	// Stats survive a failed fetch, the pending list does not.
	assert.Equal(t, 5, d.Stats().PendingOrders)
	assert.Empty(t, d.PendingOrders())
	assert.Equal(t, "Failed to load pending orders", d.Error())
}

func TestAdminDashboard_AssignStaff(t *testing.T) {
	fake := &fakeAdminAPI{pending: []domain.Order{{ID: 1}}}
	d := NewAdmin(fake)

	d.SetAssignForm(AssignForm{OrderID: 1, ChefID: 10, WaiterID: 20})
	err := d.AssignStaff(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, api.AssignStaffRequest{ChefID: 10, WaiterID: 20}, fake.lastAssign)
	// Form resets only after a successful submission.
	assert.Equal(t, AssignForm{}, d.AssignFormState())
	assert.Contains(t, d.Success(), "order #1")
}

func TestAdminDashboard_AssignStaffWaiterOptional(t *testing.T) {
	fake := &fakeAdminAPI{}
	d := NewAdmin(fake)

	d.SetAssignForm(AssignForm{OrderID: 1, ChefID: 10})
	err := d.AssignStaff(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), fake.lastAssign.WaiterID)
}

func TestAdminDashboard_AssignStaffRequiresChef(t *testing.T) {
	fake := &fakeAdminAPI{}
	d := NewAdmin(fake)

	d.SetAssignForm(AssignForm{OrderID: 1})
	err := d.AssignStaff(context.Background())

	assert.True(t, api.IsPrecondition(err))
	assert.Equal(t, 0, fake.assignCalls)
}

func TestAdminDashboard_AssignStaffFailureKeepsForm(t *testing.T) {
	fake := &fakeAdminAPI{
		pending:   []domain.Order{{ID: 1, Status: domain.OrderPending}},
		assignErr: &api.Error{Kind: api.KindBusiness, Status: 400, Message: "chef unavailable"},
	}
	d := NewAdmin(fake)
	ctx := context.Background()
	d.Refresh(ctx)

	form := AssignForm{OrderID: 1, ChefID: 10, WaiterID: 20}
	d.SetAssignForm(form)
	err := d.AssignStaff(ctx)

	assert.Error(t, err)
	assert.Equal(t, form, d.AssignFormState())
	assert.Len(t, d.PendingOrders(), 1)
	assert.Contains(t, d.Error(), "chef unavailable")
}

func TestAdminDashboard_OrderHistory(t *testing.T) {
	fake := &fakeAdminAPI{all: []domain.Order{{ID: 1}, {ID: 2}, {ID: 3}}}
	d := NewAdmin(fake)

	err := d.RefreshOrderHistory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, d.OrderHistory(), 3)
}

func TestAdminDashboard_OrderHistoryFailure(t *testing.T) {
	fake := &fakeAdminAPI{allErr: &api.Error{Kind: api.KindTransient, Message: "timeout"}}
	d := NewAdmin(fake)

	err := d.RefreshOrderHistory(context.Background())

	assert.Error(t, err)
	assert.Empty(t, d.OrderHistory())
	assert.Contains(t, d.Error(), "Failed to load orders")
}

func TestAdminDashboard_CancelOrderDeclined(t *testing.T) {
	fake := &fakeAdminAPI{}
	d := NewAdmin(fake)
	prompts := []string{}
	d.Confirm = func(prompt string) bool {
		prompts = append(prompts, prompt)
		return false
	}

	err := d.CancelOrder(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "cancel this order")
}

func TestAdminDashboard_CreateChefRefreshesStaff(t *testing.T) {
	fake := &fakeAdminAPI{}
	d := NewAdmin(fake)

	err := d.CreateChef(context.Background(), api.CreateStaffRequest{Name: "Marco"})

	assert.NoError(t, err)
	assert.Len(t, d.Chefs(), 1)
	assert.Contains(t, d.Success(), "Chef account created")
}

func TestAdminDashboard_MenuCRUD(t *testing.T) {
	fake := &fakeAdminAPI{}
	d := NewAdmin(fake)
	ctx := context.Background()

	err := d.CreateMenuItem(ctx, api.MenuItemRequest{Name: "Flat White", Price: 4.75})
	assert.NoError(t, err)
	assert.Len(t, d.MenuItems(), 1)
	assert.Contains(t, d.Success(), `"Flat White" added`)

	err = d.UpdateMenuItem(ctx, 1, api.MenuItemRequest{Name: "Flat White", Price: 5.00})
	assert.NoError(t, err)

	err = d.DeleteMenuItem(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Menu item deleted", d.Success())
}

func TestAdminDashboard_UpdateBookingStatus(t *testing.T) {
	fake := &fakeAdminAPI{bookings: []domain.Booking{{ID: 3, Status: domain.BookingConfirmed}}}
	d := NewAdmin(fake)

	err := d.UpdateBookingStatus(context.Background(), 3, domain.BookingActive)

	assert.NoError(t, err)
	assert.Contains(t, d.Success(), "Booking #3 set to ACTIVE")
}
