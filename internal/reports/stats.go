package reports

import (
	"sort"
	"time"

	"javabite-client/internal/domain"
)

// Stats are the order-history header numbers, derived client-side from the
// full fetched list.
type Stats struct {
	Pending       int
	Preparing     int
	Ready         int
	Completed     int
	Cancelled     int
	Total         int
	TodaySales    float64
	AvgOrderValue float64
}

func ComputeStats(orders []domain.Order, now time.Time) Stats {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats Stats
	var revenue float64
	for _, o := range orders {
		switch o.Status {
		case domain.OrderPending:
			stats.Pending++
		case domain.OrderPreparing:
			stats.Preparing++
		case domain.OrderReady:
			stats.Ready++
		case domain.OrderCompleted:
			stats.Completed++
		case domain.OrderCancelled:
			stats.Cancelled++
		}
		revenue += o.Total
		if o.CreatedAt.Midnight().Equal(today) {
			stats.TodaySales += o.Total
		}
	}
	stats.Total = len(orders)
	if stats.Total > 0 {
		stats.AvgOrderValue = revenue / float64(stats.Total)
	}
	return stats
}

// Report aggregates a date-range slice of order history for the reports view.
type Report struct {
	TotalRevenue   float64
	TotalOrders    int
	AvgOrderValue  float64
	OrdersByStatus map[domain.OrderStatus]int
	TopItems       []ItemCount
	TopCustomers   []CustomerRevenue
}

type ItemCount struct {
	Name  string
	Count int
}

type CustomerRevenue struct {
	Name    string
	Email   string
	Revenue float64
	Orders  int
}

const topN = 5

// BuildReport computes the metrics over orders already filtered to the
// requested date range.
func BuildReport(orders []domain.Order) Report {
	report := Report{
		TotalOrders: len(orders),
		OrdersByStatus: map[domain.OrderStatus]int{
			domain.OrderPending:   0,
			domain.OrderPreparing: 0,
			domain.OrderReady:     0,
			domain.OrderCompleted: 0,
			domain.OrderCancelled: 0,
		},
	}

	itemCounts := make(map[string]int)
	customers := make(map[int64]*CustomerRevenue)
	for _, o := range orders {
		report.TotalRevenue += o.Total
		report.OrdersByStatus[o.Status]++
		for _, item := range o.Items {
			name := item.Name
			if name == "" {
				name = "Unknown Item"
			}
			itemCounts[name] += item.Quantity
		}
		if o.CustomerID != 0 {
			c, ok := customers[o.CustomerID]
			if !ok {
				c = &CustomerRevenue{Name: o.CustomerName, Email: o.CustomerEmail}
				customers[o.CustomerID] = c
			}
			c.Revenue += o.Total
			c.Orders++
		}
	}
	if report.TotalOrders > 0 {
		report.AvgOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	for name, count := range itemCounts {
		report.TopItems = append(report.TopItems, ItemCount{Name: name, Count: count})
	}
	sort.Slice(report.TopItems, func(i, j int) bool {
		if report.TopItems[i].Count != report.TopItems[j].Count {
			return report.TopItems[i].Count > report.TopItems[j].Count
		}
		return report.TopItems[i].Name < report.TopItems[j].Name
	})
	if len(report.TopItems) > topN {
		report.TopItems = report.TopItems[:topN]
	}

	for _, c := range customers {
		report.TopCustomers = append(report.TopCustomers, *c)
	}
	sort.Slice(report.TopCustomers, func(i, j int) bool {
		if report.TopCustomers[i].Revenue != report.TopCustomers[j].Revenue {
			return report.TopCustomers[i].Revenue > report.TopCustomers[j].Revenue
		}
		return report.TopCustomers[i].Name < report.TopCustomers[j].Name
	})
	if len(report.TopCustomers) > topN {
		report.TopCustomers = report.TopCustomers[:topN]
	}

	return report
}
