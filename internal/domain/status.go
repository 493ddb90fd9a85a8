package domain

// StatusMeta is the single presentation mapping shared by every dashboard;
// per-view copies of this table tend to drift apart.
type StatusMeta struct {
	Color string
	Icon  string
	Label string
}

var orderStatusMeta = map[OrderStatus]StatusMeta{
	OrderPending:   {Color: "#ff9800", Icon: "⏳", Label: "Pending"},
	OrderPreparing: {Color: "#2196f3", Icon: "👨‍🍳", Label: "Preparing"},
	OrderReady:     {Color: "#4caf50", Icon: "✅", Label: "Ready"},
	OrderCompleted: {Color: "#4caf50", Icon: "🎉", Label: "Completed"},
	OrderCancelled: {Color: "#f44336", Icon: "❌", Label: "Cancelled"},
}

var bookingStatusMeta = map[BookingStatus]StatusMeta{
	BookingConfirmed: {Color: "#2196f3", Icon: "📅", Label: "Confirmed"},
	BookingActive:    {Color: "#4caf50", Icon: "🍽️", Label: "Active"},
	BookingCompleted: {Color: "#757575", Icon: "✔️", Label: "Completed"},
	BookingCancelled: {Color: "#f44336", Icon: "❌", Label: "Cancelled"},
}

var unknownStatusMeta = StatusMeta{Color: "#757575", Icon: "❔", Label: "Unknown"}

func (s OrderStatus) Meta() StatusMeta {
	if m, ok := orderStatusMeta[s]; ok {
		return m
	}
	return unknownStatusMeta
}

func (s BookingStatus) Meta() StatusMeta {
	if m, ok := bookingStatusMeta[s]; ok {
		return m
	}
	return unknownStatusMeta
}
