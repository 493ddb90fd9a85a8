package reports

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"javabite-client/internal/domain"
)

// CSV export is pure string construction over already-fetched data; no
// network calls happen here.

var ordersCSVHeader = []string{
	"Order ID", "Customer Name", "Customer Email", "Table",
	"Status", "Total", "Payment Status", "Created At",
	"Chef", "Waiter",
}

// OrdersCSV renders the filtered order list: one header line plus one row per
// order, every row with the header's column count.
func OrdersCSV(orders []domain.Order) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(ordersCSVHeader); err != nil {
		return "", err
	}
	for _, o := range orders {
		table := ""
		if o.TableNumber != 0 {
			table = strconv.Itoa(o.TableNumber)
		}
		row := []string{
			strconv.FormatInt(o.ID, 10),
			o.CustomerName,
			o.CustomerEmail,
			table,
			string(o.Status),
			formatAmount(o.Total),
			paymentStatusOrDefault(o.PaymentStatus),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
			o.ChefName,
			o.WaiterName,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return sb.String(), w.Error()
}

// ReportCSV renders the summary metrics as Metric,Value pairs.
func ReportCSV(report Report) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	rows := [][]string{
		{"Metric", "Value"},
		{"Total Revenue", "$" + formatAmount(report.TotalRevenue)},
		{"Total Orders", strconv.Itoa(report.TotalOrders)},
		{"Average Order Value", "$" + formatAmount(report.AvgOrderValue)},
		{"Pending Orders", strconv.Itoa(report.OrdersByStatus[domain.OrderPending])},
		{"Completed Orders", strconv.Itoa(report.OrdersByStatus[domain.OrderCompleted])},
		{"Cancelled Orders", strconv.Itoa(report.OrdersByStatus[domain.OrderCancelled])},
	}
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func paymentStatusOrDefault(status string) string {
	if status == "" {
		return "UNPAID"
	}
	return status
}
