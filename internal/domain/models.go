package domain

// Wire models for the JavaBite backend API. Field names follow the JSON the
// backend emits; everything here is server-owned except where noted.

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleChef     Role = "CHEF"
	RoleWaiter   Role = "WAITER"
	RoleCustomer Role = "CUSTOMER"
)

type User struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	Enabled   bool     `json:"enabled"`
	Available bool     `json:"isAvailable"`
	Token     string   `json:"token,omitempty"`
	CreatedAt DateTime `json:"createdAt"`
}

type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Available   bool    `json:"available"`
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingActive    BookingStatus = "ACTIVE"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type RefundStatus string

const (
	RefundNone      RefundStatus = "NONE"
	RefundPending   RefundStatus = "PENDING"
	RefundCompleted RefundStatus = "COMPLETED"
)

type Booking struct {
	ID                 int64         `json:"id"`
	CustomerID         int64         `json:"customerId"`
	CustomerName       string        `json:"customerName"`
	TableNumber        int           `json:"tableNumber"`
	BookingDate        Date          `json:"bookingDate"`
	BookingTime        string        `json:"bookingTime"`
	NumberOfGuests     int           `json:"numberOfGuests"`
	Status             BookingStatus `json:"status"`
	SpecialRequests    string        `json:"specialRequests,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	RefundStatus       RefundStatus  `json:"refundStatus,omitempty"`
	RefundAmount       float64       `json:"refundAmount,omitempty"`
	CreatedAt          DateTime      `json:"createdAt"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type OrderItem struct {
	MenuItemID int64   `json:"menuItemId"`
	Name       string  `json:"menuItemName"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Notes      string  `json:"notes,omitempty"`
}

type Order struct {
	ID                  int64       `json:"id"`
	CustomerID          int64       `json:"customerId"`
	CustomerName        string      `json:"customerName"`
	CustomerEmail       string      `json:"customerEmail,omitempty"`
	ChefID              int64       `json:"chefId,omitempty"`
	ChefName            string      `json:"chefName,omitempty"`
	WaiterID            int64       `json:"waiterId,omitempty"`
	WaiterName          string      `json:"waiterName,omitempty"`
	TableNumber         int         `json:"tableNumber,omitempty"`
	TableBookingID      int64       `json:"tableBookingId,omitempty"`
	Items               []OrderItem `json:"items"`
	Status              OrderStatus `json:"status"`
	PaymentStatus       string      `json:"paymentStatus"`
	Subtotal            float64     `json:"subtotal"`
	Tax                 float64     `json:"tax"`
	Discount            float64     `json:"discount"`
	Total               float64     `json:"total"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	// Set by a backend scheduler; the client only displays it.
	AutoAssigned bool     `json:"autoAssigned"`
	CreatedAt    DateTime `json:"createdAt"`
	UpdatedAt    DateTime `json:"updatedAt,omitempty"`
	ReadyAt      DateTime `json:"readyAt,omitempty"`
	ServedAt     DateTime `json:"servedAt,omitempty"`
	CompletedAt  DateTime `json:"completedAt,omitempty"`
}

type Feedback struct {
	ID        int64    `json:"id"`
	OrderID   int64    `json:"orderId"`
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment,omitempty"`
	CreatedAt DateTime `json:"createdAt"`
}

type DashboardStats struct {
	PendingOrders   int `json:"pendingOrders"`
	PreparingOrders int `json:"preparingOrders"`
	ReadyOrders     int `json:"readyOrders"`
	CompletedToday  int `json:"completedToday"`
	ActiveChefs     int `json:"activeChefs"`
	ActiveWaiters   int `json:"activeWaiters"`
	ActiveBookings  int `json:"activeBookings"`
}
