package reports

import (
	"sort"
	"strconv"
	"strings"

	"javabite-client/internal/domain"
)

// Everything in this package is a pure function of (orders, filter state);
// views never keep derived copies that could drift.

type SortOrder string

const (
	SortDateDesc  SortOrder = "date-desc"
	SortDateAsc   SortOrder = "date-asc"
	SortTotalDesc SortOrder = "total-desc"
	SortTotalAsc  SortOrder = "total-asc"
	SortStatus    SortOrder = "status"
)

// Filter is the admin order-history filter state. Zero values mean "no
// constraint".
type Filter struct {
	Status        domain.OrderStatus
	Query         string
	DateStart     domain.Date
	DateEnd       domain.Date // inclusive through end of day
	TableNumber   int
	ChefID        int64
	WaiterID      int64
	PaymentStatus string
	SortBy        SortOrder
}

// Apply filters and sorts a copy of orders; the input slice is untouched.
func Apply(orders []domain.Order, f Filter) []domain.Order {
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, f) {
			filtered = append(filtered, o)
		}
	}
	sortOrders(filtered, f.SortBy)
	return filtered
}

func matches(o domain.Order, f Filter) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Query != "" && !matchesQuery(o, f.Query) {
		return false
	}
	if !f.DateStart.IsZero() && o.CreatedAt.Before(f.DateStart.Time) {
		return false
	}
	if !f.DateEnd.IsZero() {
		endOfDay := f.DateEnd.AddDate(0, 0, 1)
		if !o.CreatedAt.Before(endOfDay) {
			return false
		}
	}
	if f.TableNumber != 0 && o.TableNumber != f.TableNumber {
		return false
	}
	if f.ChefID != 0 && o.ChefID != f.ChefID {
		return false
	}
	if f.WaiterID != 0 && o.WaiterID != f.WaiterID {
		return false
	}
	if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
		return false
	}
	return true
}

// matchesQuery free-text matches customer name, email, or the order id.
func matchesQuery(o domain.Order, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(o.CustomerName), q) ||
		strings.Contains(strings.ToLower(o.CustomerEmail), q) ||
		strings.Contains(strconv.FormatInt(o.ID, 10), q)
}

func sortOrders(orders []domain.Order, by SortOrder) {
	switch by {
	case SortDateAsc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt.Time)
		})
	case SortTotalDesc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].Total > orders[j].Total
		})
	case SortTotalAsc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].Total < orders[j].Total
		})
	case SortStatus:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].Status < orders[j].Status
		})
	default: // SortDateDesc
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[j].CreatedAt.Before(orders[i].CreatedAt.Time)
		})
	}
}

// CurrentOrders keeps orders still moving through the kitchen.
func CurrentOrders(orders []domain.Order) []domain.Order {
	return byStatuses(orders, domain.OrderPending, domain.OrderPreparing, domain.OrderReady)
}

// PastOrders keeps finished orders.
func PastOrders(orders []domain.Order) []domain.Order {
	return byStatuses(orders, domain.OrderCompleted, domain.OrderCancelled)
}

func byStatuses(orders []domain.Order, statuses ...domain.OrderStatus) []domain.Order {
	keep := make(map[domain.OrderStatus]bool, len(statuses))
	for _, s := range statuses {
		keep[s] = true
	}
	var out []domain.Order
	for _, o := range orders {
		if keep[o.Status] {
			out = append(out, o)
		}
	}
	return out
}

// WithinDays keeps orders created in the trailing window, for the customer
// view's 7/30-day filters. days <= 0 means no constraint.
func WithinDays(orders []domain.Order, days int, now domain.DateTime) []domain.Order {
	if days <= 0 {
		return orders
	}
	cutoff := now.AddDate(0, 0, -days)
	var out []domain.Order
	for _, o := range orders {
		if !o.CreatedAt.Before(cutoff) {
			out = append(out, o)
		}
	}
	return out
}
