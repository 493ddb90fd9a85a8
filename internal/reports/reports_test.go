package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"javabite-client/internal/domain"
)

func orderAt(id int64, status domain.OrderStatus, total float64, created time.Time) domain.Order {
	return domain.Order{
		ID:        id,
		Status:    status,
		Total:     total,
		CreatedAt: domain.DateTime{Time: created},
	}
}

func TestApply_FiltersAndSorts(t *testing.T) {
	base := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: 1, Status: domain.OrderCompleted, CustomerName: "Alice", Total: 30, CreatedAt: domain.DateTime{Time: base}},
		{ID: 2, Status: domain.OrderPending, CustomerName: "Bob", Total: 10, CreatedAt: domain.DateTime{Time: base.Add(time.Hour)}},
		{ID: 3, Status: domain.OrderCompleted, CustomerName: "Carol", Total: 20, CreatedAt: domain.DateTime{Time: base.Add(2 * time.Hour)}},
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int64
	}{
		{
			name:    "no constraints sorts date desc",
			filter:  Filter{},
			wantIDs: []int64{3, 2, 1},
		},
		{
			name:    "status filter",
			filter:  Filter{Status: domain.OrderCompleted},
			wantIDs: []int64{3, 1},
		},
		{
			name:    "query matches customer name",
			filter:  Filter{Query: "ali"},
			wantIDs: []int64{1},
		},
		{
			name:    "query matches order id",
			filter:  Filter{Query: "2"},
			wantIDs: []int64{2},
		},
		{
			name:    "total ascending",
			filter:  Filter{SortBy: SortTotalAsc},
			wantIDs: []int64{2, 3, 1},
		},
		{
			name:    "date ascending",
			filter:  Filter{SortBy: SortDateAsc},
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(orders, tt.filter)
			ids := make([]int64, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	// Input order is never mutated.
	assert.Equal(t, int64(1), orders[0].ID)
}

func TestApply_DateRangeInclusive(t *testing.T) {
	orders := []domain.Order{
		orderAt(1, domain.OrderCompleted, 10, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)),
		orderAt(2, domain.OrderCompleted, 10, time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)),
		orderAt(3, domain.OrderCompleted, 10, time.Date(2026, 9, 1, 0, 1, 0, 0, time.UTC)),
	}

	got := Apply(orders, Filter{
		DateStart: domain.NewDate(2026, time.August, 31),
		DateEnd:   domain.NewDate(2026, time.August, 31),
		SortBy:    SortDateAsc,
	})

	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestCurrentAndPastOrders(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Status: domain.OrderPending},
		{ID: 2, Status: domain.OrderPreparing},
		{ID: 3, Status: domain.OrderReady},
		{ID: 4, Status: domain.OrderCompleted},
		{ID: 5, Status: domain.OrderCancelled},
	}

	current := CurrentOrders(orders)
	past := PastOrders(orders)

	assert.Len(t, current, 3)
	assert.Len(t, past, 2)
	assert.Equal(t, len(orders), len(current)+len(past))
}

func TestWithinDays(t *testing.T) {
	now := domain.DateTime{Time: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	orders := []domain.Order{
		orderAt(1, domain.OrderCompleted, 10, now.AddDate(0, 0, -2)),
		orderAt(2, domain.OrderCompleted, 10, now.AddDate(0, 0, -20)),
	}

	assert.Len(t, WithinDays(orders, 7, now), 1)
	assert.Len(t, WithinDays(orders, 30, now), 2)
	assert.Len(t, WithinDays(orders, 0, now), 2)
}

func TestGroupByDate_ExactPartition(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC)
	orders := []domain.Order{
		orderAt(1, domain.OrderCompleted, 10, time.Date(2026, 9, 1, 0, 0, 1, 0, time.UTC)),
		orderAt(2, domain.OrderCompleted, 10, time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)),
		orderAt(3, domain.OrderCompleted, 10, time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)),
		orderAt(4, domain.OrderCompleted, 10, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)),
		orderAt(5, domain.OrderCompleted, 10, time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)),
	}

	groups := GroupByDate(orders, now)

	assert.Len(t, groups.Today, 1)
	assert.Equal(t, int64(1), groups.Today[0].ID)
	assert.Len(t, groups.Yesterday, 1)
	assert.Equal(t, int64(2), groups.Yesterday[0].ID)
	assert.Len(t, groups.LastWeek, 1)
	assert.Equal(t, int64(3), groups.LastWeek[0].ID)
	assert.Len(t, groups.Older, 2)

	// Every order lands in exactly one bucket.
	assert.Equal(t, len(orders), groups.Count())
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, time.September, 1, 18, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		orderAt(1, domain.OrderCompleted, 30, now.Add(-time.Hour)),
		orderAt(2, domain.OrderPending, 10, now.Add(-2*time.Hour)),
		orderAt(3, domain.OrderCompleted, 20, now.AddDate(0, 0, -3)),
	}

	stats := ComputeStats(orders, now)

	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 40, stats.TodaySales, 0.001)
	assert.InDelta(t, 20, stats.AvgOrderValue, 0.001)
}

func TestBuildReport(t *testing.T) {
	orders := []domain.Order{
		{
			ID: 1, Status: domain.OrderCompleted, Total: 30,
			CustomerID: 1, CustomerName: "Alice", CustomerEmail: "alice@example.com",
			Items: []domain.OrderItem{
				{Name: "Latte", Quantity: 2},
				{Name: "Croissant", Quantity: 1},
			},
		},
		{
			ID: 2, Status: domain.OrderCompleted, Total: 20,
			CustomerID: 2, CustomerName: "Bob", CustomerEmail: "bob@example.com",
			Items: []domain.OrderItem{{Name: "Latte", Quantity: 1}},
		},
		{
			ID: 3, Status: domain.OrderCancelled, Total: 15,
			CustomerID: 1, CustomerName: "Alice", CustomerEmail: "alice@example.com",
		},
	}

	report := BuildReport(orders)

	assert.Equal(t, 3, report.TotalOrders)
	assert.InDelta(t, 65, report.TotalRevenue, 0.001)
	assert.Equal(t, 2, report.OrdersByStatus[domain.OrderCompleted])
	assert.Equal(t, 1, report.OrdersByStatus[domain.OrderCancelled])
	assert.Equal(t, 0, report.OrdersByStatus[domain.OrderPending])

	assert.Equal(t, "Latte", report.TopItems[0].Name)
	assert.Equal(t, 3, report.TopItems[0].Count)

	assert.Equal(t, "Alice", report.TopCustomers[0].Name)
	assert.InDelta(t, 45, report.TopCustomers[0].Revenue, 0.001)
	assert.Equal(t, 2, report.TopCustomers[0].Orders)
}

func TestBuildReport_EmptyInput(t *testing.T) {
	report := BuildReport(nil)

	assert.Equal(t, 0, report.TotalOrders)
	assert.InDelta(t, 0, report.AvgOrderValue, 0.001)
	assert.Len(t, report.OrdersByStatus, 5)
}

func TestOrdersCSV(t *testing.T) {
	orders := []domain.Order{
		{
			ID: 101, CustomerName: "Alice", CustomerEmail: "alice@example.com",
			TableNumber: 3, Status: domain.OrderCompleted, Total: 21.60,
			PaymentStatus: "PAID", ChefName: "Marco", WaiterName: "Dana",
			CreatedAt: domain.DateTime{Time: time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)},
		},
		{
			ID: 102, CustomerName: "Bob, Jr.", Status: domain.OrderPending, Total: 9.5,
		},
	}

	out, err := OrdersCSV(orders)

	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, len(orders)+1)

	assert.Equal(t, "Order ID,Customer Name,Customer Email,Table,Status,Total,Payment Status,Created At,Chef,Waiter", lines[0])
	assert.Contains(t, lines[1], "101,Alice,alice@example.com,3,COMPLETED,21.60,PAID,2026-09-01 12:30:00,Marco,Dana")
	// Embedded comma gets quoted, empty payment status defaults to UNPAID.
	assert.Contains(t, lines[2], `"Bob, Jr."`)
	assert.Contains(t, lines[2], "UNPAID")

	for _, line := range lines {
		assert.Equal(t, strings.Count(lines[0], ","), countUnquotedCommas(line), line)
	}
}

func countUnquotedCommas(line string) int {
	count := 0
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			count++
		}
	}
	return count
}

func TestReportCSV(t *testing.T) {
	report := Report{
		TotalRevenue:  123.456,
		TotalOrders:   7,
		AvgOrderValue: 17.64,
		OrdersByStatus: map[domain.OrderStatus]int{
			domain.OrderPending:   2,
			domain.OrderCompleted: 4,
			domain.OrderCancelled: 1,
		},
	}

	out, err := ReportCSV(report)

	assert.NoError(t, err)
	assert.Contains(t, out, "Metric,Value")
	assert.Contains(t, out, "Total Revenue,$123.46")
	assert.Contains(t, out, "Total Orders,7")
	assert.Contains(t, out, "Completed Orders,4")
}
