package orderflow

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"javabite-client/internal/api"
	"javabite-client/internal/cart"
	"javabite-client/internal/domain"
)

// State is the client-side gate only; the backend remains authoritative for
// every real transition.
type State string

const (
	StateChecking       State = "checking-booking"
	StateBookingMissing State = "booking-missing"
	StateBookingReady   State = "booking-ready"
	StatePlacing        State = "placing"
	StatePlaced         State = "placed"
	StateFailed         State = "failed"
)

// NavigateDelay is how long the confirmation stays up before the flow asks to
// move on to order history.
const NavigateDelay = 3 * time.Second

type OrderAPI interface {
	MyBookings(ctx context.Context) ([]domain.Booking, error)
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*domain.Order, error)
}

// Flow gates order placement on an active table booking.
type Flow struct {
	api  OrderAPI
	cart *cart.Cart
	log  *logrus.Entry

	// Called NavigateDelay after a successful placement; nil is fine.
	OnNavigate func()

	mu      sync.Mutex
	state   State
	booking *domain.Booking
	placed  *domain.Order
	lastErr error
}

func New(orderAPI OrderAPI, c *cart.Cart) *Flow {
	return &Flow{
		api:   orderAPI,
		cart:  c,
		log:   logrus.StandardLogger().WithField("component", "orderflow"),
		state: StateChecking,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) ActiveBooking() *domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.booking
}

func (f *Flow) PlacedOrder() *domain.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.placed
}

func (f *Flow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// QualifyingBooking picks the booking that satisfies the order precondition:
// status CONFIRMED or ACTIVE and date today or later.
func QualifyingBooking(bookings []domain.Booking, today domain.Date) *domain.Booking {
	for i := range bookings {
		b := &bookings[i]
		validStatus := b.Status == domain.BookingConfirmed || b.Status == domain.BookingActive
		if validStatus && b.BookingDate.OnOrAfter(today) {
			return b
		}
	}
	return nil
}

// CheckBooking resolves the gate. Missing booking is terminal until the user
// books a table and checks again.
func (f *Flow) CheckBooking(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.state == StatePlacing {
		f.mu.Unlock()
		return StatePlacing, api.Precondition("order submission in progress")
	}
	f.state = StateChecking
	f.mu.Unlock()

	bookings, err := f.api.MyBookings(ctx)
	if err != nil {
		f.log.WithError(err).Warn("booking check failed")
		f.setState(StateBookingMissing, nil, err)
		return StateBookingMissing, err
	}

	booking := QualifyingBooking(bookings, domain.Today())
	if booking == nil {
		f.setState(StateBookingMissing, nil, nil)
		return StateBookingMissing, nil
	}
	f.setState(StateBookingReady, booking, nil)
	return StateBookingReady, nil
}

// PlaceOrder submits the cart against the qualifying booking. It refuses to
// issue any network call when the gate is not satisfied, never clears the cart
// on failure, and disallows re-entry while a submission is in flight.
func (f *Flow) PlaceOrder(ctx context.Context, specialInstructions string) (*domain.Order, error) {
	f.mu.Lock()
	switch {
	case f.state == StatePlacing:
		f.mu.Unlock()
		return nil, api.Precondition("order submission already in progress")
	case f.cart.IsEmpty():
		f.mu.Unlock()
		return nil, api.Precondition("your cart is empty")
	case f.booking == nil || (f.state != StateBookingReady && f.state != StateFailed):
		f.mu.Unlock()
		return nil, api.Precondition("you must have an active table booking to place an order")
	}
	booking := f.booking
	f.state = StatePlacing
	f.mu.Unlock()

	items := make([]api.OrderItemRequest, 0, f.cart.Len())
	for _, line := range f.cart.Grouped() {
		items = append(items, api.OrderItemRequest{
			MenuItemID: line.Item.ID,
			Quantity:   line.Quantity,
		})
	}

	order, err := f.api.CreateOrder(ctx, api.CreateOrderRequest{
		Items:               items,
		SpecialInstructions: specialInstructions,
		CouponCode:          f.cart.AppliedCoupon(),
		TableBookingID:      booking.ID,
	})
	if err != nil {
		f.log.WithError(err).Error("order placement failed")
		f.mu.Lock()
		f.state = StateFailed
		f.lastErr = err
		f.mu.Unlock()
		return nil, err
	}

	f.cart.Clear()
	f.mu.Lock()
	f.state = StatePlaced
	f.placed = order
	f.lastErr = nil
	f.mu.Unlock()
	f.log.WithField("order", order.ID).Info("order placed")

	if f.OnNavigate != nil {
		time.AfterFunc(NavigateDelay, f.OnNavigate)
	}
	return order, nil
}

func (f *Flow) setState(state State, booking *domain.Booking, err error) {
	f.mu.Lock()
	f.state = state
	f.booking = booking
	f.lastErr = err
	f.mu.Unlock()
}
