package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"javabite-client/internal/api"
	"javabite-client/internal/domain"
)

type fakeChefAPI struct {
	newOrders       []domain.Order
	activeOrders    []domain.Order
	completedOrders []domain.Order
	fetchErr        error
	startErr        error
	readyErr        error
	startCalls      int
	readyCalls      int
}

func (f *fakeChefAPI) ChefNewOrders(ctx context.Context) ([]domain.Order, error) {
	return f.newOrders, f.fetchErr
}

func (f *fakeChefAPI) ChefActiveOrders(ctx context.Context) ([]domain.Order, error) {
	return f.activeOrders, f.fetchErr
}

func (f *fakeChefAPI) ChefCompletedToday(ctx context.Context) ([]domain.Order, error) {
	return f.completedOrders, f.fetchErr
}

func (f *fakeChefAPI) StartPreparation(ctx context.Context, orderID int64) (*domain.Order, error) {
	f.startCalls++
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &domain.Order{ID: orderID, Status: domain.OrderPreparing}, nil
}

func (f *fakeChefAPI) MarkOrderReady(ctx context.Context, orderID int64) (*domain.Order, error) {
	f.readyCalls++
	if f.readyErr != nil {
		return nil, f.readyErr
	}
	return &domain.Order{ID: orderID, Status: domain.OrderReady}, nil
}

func TestChefDashboard_RefreshPerTab(t *testing.T) {
	fake := &fakeChefAPI{
		newOrders:       []domain.Order{{ID: 1, Status: domain.OrderPending}},
		activeOrders:    []domain.Order{{ID: 2, Status: domain.OrderPreparing}, {ID: 3, Status: domain.OrderPreparing}},
		completedOrders: []domain.Order{{ID: 4, Status: domain.OrderCompleted}},
	}
	d := NewChef(fake)
	ctx := context.Background()

	d.Refresh(ctx)
	assert.Equal(t, ChefTabNew, d.Tab())
	assert.Len(t, d.Orders(), 1)

	d.SetTab(ctx, ChefTabProgress)
	assert.Len(t, d.Orders(), 2)

	d.SetTab(ctx, ChefTabCompleted)
	assert.Len(t, d.Orders(), 1)
	assert.Equal(t, int64(4), d.Orders()[0].ID)
}

func TestChefDashboard_RefreshFailureShowsEmptyList(t *testing.T) {
	fake := &fakeChefAPI{
		newOrders: []domain.Order{{ID: 1}},
	}
	d := NewChef(fake)
	ctx := context.Background()

	d.Refresh(ctx)
	assert.Len(t, d.Orders(), 1)

	fake.fetchErr = &api.Error{Kind: api.KindTransient, Message: "timeout"}
	d.Refresh(ctx)

	assert.Empty(t, d.Orders())
	assert.Equal(t, "Failed to load orders", d.Error())

	fake.fetchErr = nil
	d.Refresh(ctx)
	assert.Len(t, d.Orders(), 1)
	assert.Equal(t, "", d.Error())
}

func TestChefDashboard_StartPreparation(t *testing.T) {
	fake := &fakeChefAPI{}
	d := NewChef(fake)

	err := d.StartPreparation(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 1, fake.startCalls)
	assert.Contains(t, d.Success(), "order #7")
	assert.Equal(t, "", d.Error())
}

func TestChefDashboard_StartPreparationDeclined(t *testing.T) {
	fake := &fakeChefAPI{}
	d := NewChef(fake)
	d.Confirm = func(prompt string) bool { return false }

	err := d.StartPreparation(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 0, fake.startCalls)
}

func TestChefDashboard_MarkReadyFailure(t *testing.T) {
	fake := &fakeChefAPI{
		readyErr: &api.Error{Kind: api.KindBusiness, Status: 409, Message: "order is not preparing"},
	}
	d := NewChef(fake)

	err := d.MarkReady(context.Background(), 7)

	assert.Error(t, err)
	assert.Equal(t, 1, fake.readyCalls)
	assert.Contains(t, d.Error(), "order is not preparing")
	assert.Equal(t, "", d.Success())
}

func TestChefDashboard_SuccessNoticeExpires(t *testing.T) {
	fake := &fakeChefAPI{}
	d := NewChef(fake)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	err := d.StartPreparation(context.Background(), 3)
	assert.NoError(t, err)
	assert.NotEmpty(t, d.Success())

	now = now.Add(successTTL + time.Second)
	assert.Equal(t, "", d.Success())
}
