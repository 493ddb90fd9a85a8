package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	"javabite-client/internal/api"
	"javabite-client/internal/domain"
)

// DefaultTableCount matches the café floor plan the backend seeds.
const DefaultTableCount = 6

// TimeSlots are the half-hourly bookable slots, 11:00 through 21:00.
var TimeSlots = []string{
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30",
	"20:00", "20:30", "21:00",
}

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableBooked    TableStatus = "BOOKED"
)

type Table struct {
	Number int
	Status TableStatus
}

// BookingAPI is the slice of the backend client the prober needs.
type BookingAPI interface {
	CheckAvailability(ctx context.Context, date, timeSlot string) ([]int, error)
	CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*domain.Booking, error)
}

// Prober keeps the latest availability snapshot for one date+time slot and
// guards booking submission against stale table picks.
type Prober struct {
	api        BookingAPI
	tableCount int
	log        *logrus.Entry

	date   string
	slot   string
	tables []Table
}

func NewProber(bookingAPI BookingAPI, tableCount int) *Prober {
	if tableCount <= 0 {
		tableCount = DefaultTableCount
	}
	p := &Prober{
		api:        bookingAPI,
		tableCount: tableCount,
		log:        logrus.StandardLogger().WithField("component", "booking"),
	}
	p.tables = p.allAvailable()
	return p
}

// Until both date and time are chosen there is nothing to probe, so every
// table reads as available.
func (p *Prober) allAvailable() []Table {
	tables := make([]Table, 0, p.tableCount)
	for n := 1; n <= p.tableCount; n++ {
		tables = append(tables, Table{Number: n, Status: TableAvailable})
	}
	return tables
}

// SetSlot records the chosen date and time and refreshes availability. Must be
// called whenever either changes.
func (p *Prober) SetSlot(ctx context.Context, date, slot string) ([]Table, error) {
	p.date = date
	p.slot = slot
	return p.Refresh(ctx)
}

func (p *Prober) Refresh(ctx context.Context) ([]Table, error) {
	if p.date == "" || p.slot == "" {
		p.tables = p.allAvailable()
		return p.tables, nil
	}

	available, err := p.api.CheckAvailability(ctx, p.date, p.slot)
	if err != nil {
		p.log.WithError(err).Warn("availability check failed")
		return nil, err
	}

	free := make(map[int]bool, len(available))
	for _, n := range available {
		free[n] = true
	}
	tables := make([]Table, 0, p.tableCount)
	for n := 1; n <= p.tableCount; n++ {
		status := TableBooked
		if free[n] {
			status = TableAvailable
		}
		tables = append(tables, Table{Number: n, Status: status})
	}
	p.tables = tables
	return tables, nil
}

func (p *Prober) Tables() []Table {
	return p.tables
}

// Select re-checks the snapshot locally before anything touches the network,
// in case the table went stale between probe and click.
func (p *Prober) Select(tableNumber int) error {
	for _, t := range p.tables {
		if t.Number == tableNumber {
			if t.Status == TableBooked {
				return api.Precondition("this table is already booked for the selected time slot")
			}
			return nil
		}
	}
	return api.Precondition("no such table")
}

// Book submits the reservation for an available table. Server errors come back
// verbatim and the snapshot is left intact so the user can retry.
func (p *Prober) Book(ctx context.Context, tableNumber, guests int) (*domain.Booking, error) {
	if p.date == "" || p.slot == "" {
		return nil, api.Precondition("please select date and time")
	}
	if err := p.Select(tableNumber); err != nil {
		return nil, err
	}
	if guests < 1 {
		guests = 1
	}

	booking, err := p.api.CreateBooking(ctx, api.CreateBookingRequest{
		TableNumber:    tableNumber,
		BookingDate:    p.date,
		BookingTime:    p.slot,
		NumberOfGuests: guests,
	})
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"table": tableNumber, "date": p.date, "time": p.slot,
	}).Info("table booked")
	return booking, nil
}
