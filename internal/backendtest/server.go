// Package backendtest provides an in-process stand-in for the JavaBite
// backend, faithful enough for client tests: same routes, same JSON shapes,
// cookie-session auth, and browser-style CORS with credentials.
package backendtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"javabite-client/internal/domain"
)

const sessionCookie = "JAVABITE_SESSION"

type Server struct {
	mu sync.Mutex

	users     map[string]domain.User // by email
	passwords map[string]string
	bookings  []domain.Booking
	orders    []domain.Order
	menu      []domain.MenuItem
	booked    map[string][]int // "date time" -> booked table numbers
	nextID    int64

	// failures maps "METHOD /path" to a forced response, for fault injection.
	failures map[string]Failure

	TableCount int
}

type Failure struct {
	Status  int
	Message string
}

func NewServer() *Server {
	return &Server{
		users:      make(map[string]domain.User),
		passwords:  make(map[string]string),
		booked:     make(map[string][]int),
		failures:   make(map[string]Failure),
		nextID:     100,
		TableCount: 6,
	}
}

// Handler wires the same route surface the real backend exposes, wrapped in
// CORS with credentials the way a browser client sees it.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/signup", s.signup).Methods("POST")
	r.HandleFunc("/api/auth/login", s.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", s.logout).Methods("POST")
	r.HandleFunc("/api/auth/me", s.me).Methods("GET")

	r.HandleFunc("/api/menu", s.menuItems).Methods("GET")

	r.HandleFunc("/api/bookings/create", s.createBooking).Methods("POST")
	r.HandleFunc("/api/bookings/my-bookings", s.myBookings).Methods("GET")
	r.HandleFunc("/api/bookings/check-availability", s.checkAvailability).Methods("GET")
	r.HandleFunc("/api/bookings/{id}/cancel", s.cancelBooking).Methods("PUT")
	r.HandleFunc("/api/bookings/admin/all", s.allBookings).Methods("GET")
	r.HandleFunc("/api/bookings/admin/{id}/status", s.updateBookingStatus).Methods("PUT")

	r.HandleFunc("/api/orders", s.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/my-orders", s.myOrders).Methods("GET")

	r.HandleFunc("/api/chef/orders/new", s.ordersByStatus(domain.OrderPending)).Methods("GET")
	r.HandleFunc("/api/chef/orders/active", s.ordersByStatus(domain.OrderPreparing)).Methods("GET")
	r.HandleFunc("/api/chef/orders/completed-today", s.ordersByStatus(domain.OrderCompleted)).Methods("GET")
	r.HandleFunc("/api/chef/orders/{id}/start", s.transitionOrder(domain.OrderPending, domain.OrderPreparing)).Methods("POST")
	r.HandleFunc("/api/chef/orders/{id}/ready", s.transitionOrder(domain.OrderPreparing, domain.OrderReady)).Methods("PUT")

	r.HandleFunc("/api/waiter/orders/preparing", s.ordersByStatus(domain.OrderPreparing)).Methods("GET")
	r.HandleFunc("/api/waiter/orders/ready", s.ordersByStatus(domain.OrderReady)).Methods("GET")
	r.HandleFunc("/api/waiter/orders/{id}/serve", s.transitionOrder(domain.OrderReady, domain.OrderCompleted)).Methods("PUT")

	r.HandleFunc("/api/admin/orders/pending", s.ordersByStatus(domain.OrderPending)).Methods("GET")
	r.HandleFunc("/api/admin/orders/all", s.adminAllOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}/assign", s.assignStaff).Methods("POST")
	r.HandleFunc("/api/admin/dashboard/stats", s.dashboardStats).Methods("GET")
	r.HandleFunc("/api/admin/staff/chefs", s.staffByRole(domain.RoleChef)).Methods("GET")
	r.HandleFunc("/api/admin/staff/waiters", s.staffByRole(domain.RoleWaiter)).Methods("GET")

	return cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowCredentials: true,
	}).Handler(s.failureMiddleware(r))
}

// Fail forces the given route to answer with an error until cleared, e.g.
// s.Fail("POST", "/api/orders", 500, "boom").
func (s *Server) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	s.failures[method+" "+path] = Failure{Status: status, Message: message}
	s.mu.Unlock()
}

func (s *Server) ClearFailures() {
	s.mu.Lock()
	s.failures = make(map[string]Failure)
	s.mu.Unlock()
}

func (s *Server) failureMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		failure, ok := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if ok {
			writeError(w, failure.Status, failure.Message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Fixture seeding.

func (s *Server) AddUser(user domain.User, password string) {
	s.mu.Lock()
	s.users[user.Email] = user
	s.passwords[user.Email] = password
	s.mu.Unlock()
}

func (s *Server) AddBooking(b domain.Booking) {
	s.mu.Lock()
	s.bookings = append(s.bookings, b)
	s.mu.Unlock()
}

func (s *Server) AddOrder(o domain.Order) {
	s.mu.Lock()
	s.orders = append(s.orders, o)
	s.mu.Unlock()
}

func (s *Server) AddMenuItem(m domain.MenuItem) {
	s.mu.Lock()
	s.menu = append(s.menu, m)
	s.mu.Unlock()
}

// BookTable marks a table occupied for the slot, e.g. ("2026-03-01", "12:00", 3).
func (s *Server) BookTable(date, slot string, table int) {
	s.mu.Lock()
	key := date + " " + slot
	s.booked[key] = append(s.booked[key], table)
	s.mu.Unlock()
}

func (s *Server) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Server) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Handlers.

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	if _, exists := s.users[req.Email]; exists {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	s.nextID++
	user := domain.User{ID: s.nextID, Name: req.Name, Email: req.Email, Role: domain.RoleCustomer, Enabled: true}
	s.users[req.Email] = user
	s.passwords[req.Email] = req.Password
	s.mu.Unlock()
	writeData(w, http.StatusOK, user)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	user, ok := s.users[req.Email]
	password := s.passwords[req.Email]
	s.mu.Unlock()
	if !ok || password != req.Password {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: user.Email, Path: "/"})
	writeData(w, http.StatusOK, user)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusOK)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	writeData(w, http.StatusOK, user)
}

func (s *Server) currentUser(r *http.Request) (domain.User, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return domain.User{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[cookie.Value]
	return user, ok
}

func (s *Server) menuItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := make([]domain.MenuItem, len(s.menu))
	copy(items, s.menu)
	s.mu.Unlock()
	writeData(w, http.StatusOK, items)
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	var req struct {
		TableNumber    int    `json:"tableNumber"`
		BookingDate    string `json:"bookingDate"`
		BookingTime    string `json:"bookingTime"`
		NumberOfGuests int    `json:"numberOfGuests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	key := req.BookingDate + " " + req.BookingTime
	for _, t := range s.booked[key] {
		if t == req.TableNumber {
			s.mu.Unlock()
			writeError(w, http.StatusConflict, "table already booked for this slot")
			return
		}
	}
	s.booked[key] = append(s.booked[key], req.TableNumber)
	s.nextID++
	date, _ := domain.ParseDate(req.BookingDate)
	booking := domain.Booking{
		ID:             s.nextID,
		CustomerID:     user.ID,
		CustomerName:   user.Name,
		TableNumber:    req.TableNumber,
		BookingDate:    date,
		BookingTime:    req.BookingTime,
		NumberOfGuests: req.NumberOfGuests,
		Status:         domain.BookingConfirmed,
		CreatedAt:      domain.DateTime{Time: time.Now()},
	}
	s.bookings = append(s.bookings, booking)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) myBookings(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	s.mu.Lock()
	mine := []domain.Booking{}
	for _, b := range s.bookings {
		if b.CustomerID == user.ID {
			mine = append(mine, b)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, mine)
}

func (s *Server) checkAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	slot := r.URL.Query().Get("time")
	if date == "" || slot == "" {
		writeError(w, http.StatusBadRequest, "date and time are required")
		return
	}
	s.mu.Lock()
	taken := make(map[int]bool)
	for _, t := range s.booked[date+" "+slot] {
		taken[t] = true
	}
	available := []int{}
	for n := 1; n <= s.TableCount; n++ {
		if !taken[n] {
			available = append(available, n)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, available)
}

func (s *Server) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = domain.BookingCancelled
			writeJSON(w, http.StatusOK, s.bookings[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "booking not found")
}

func (s *Server) allBookings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var req struct {
		Status domain.BookingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = req.Status
			writeJSON(w, http.StatusOK, s.bookings[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "booking not found")
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	var req struct {
		Items []struct {
			MenuItemID int64 `json:"menuItemId"`
			Quantity   int   `json:"quantity"`
		} `json:"items"`
		SpecialInstructions string `json:"specialInstructions"`
		CouponCode          string `json:"couponCode"`
		TableBookingID      int64  `json:"tableBookingId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TableBookingID == 0 {
		writeError(w, http.StatusBadRequest, "an active table booking is required")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "order must contain at least one item")
		return
	}

	s.mu.Lock()
	prices := make(map[int64]float64, len(s.menu))
	for _, m := range s.menu {
		prices[m.ID] = m.Price
	}
	var subtotal float64
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		price := prices[it.MenuItemID]
		subtotal += price * float64(it.Quantity)
		items = append(items, domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      price,
		})
	}
	s.nextID++
	order := domain.Order{
		ID:                  s.nextID,
		CustomerID:          user.ID,
		CustomerName:        user.Name,
		CustomerEmail:       user.Email,
		TableBookingID:      req.TableBookingID,
		Items:               items,
		Status:              domain.OrderPending,
		PaymentStatus:       "PENDING",
		Subtotal:            subtotal,
		Tax:                 subtotal * 0.08,
		Total:               subtotal * 1.08,
		SpecialInstructions: req.SpecialInstructions,
		CreatedAt:           domain.DateTime{Time: time.Now()},
	}
	s.orders = append(s.orders, order)
	s.mu.Unlock()
	writeData(w, http.StatusOK, order)
}

func (s *Server) myOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	s.mu.Lock()
	mine := []domain.Order{}
	for _, o := range s.orders {
		if o.CustomerID == user.ID {
			mine = append(mine, o)
		}
	}
	s.mu.Unlock()
	writeData(w, http.StatusOK, mine)
}

func (s *Server) adminAllOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) ordersByStatus(status domain.OrderStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		matched := []domain.Order{}
		for _, o := range s.orders {
			if o.Status == status {
				matched = append(matched, o)
			}
		}
		s.mu.Unlock()
		writeData(w, http.StatusOK, matched)
	}
}

func (s *Server) transitionOrder(from, to domain.OrderStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.orders {
			if s.orders[i].ID != id {
				continue
			}
			if s.orders[i].Status != from {
				writeError(w, http.StatusConflict,
					fmt.Sprintf("order is %s, expected %s", s.orders[i].Status, from))
				return
			}
			s.orders[i].Status = to
			writeData(w, http.StatusOK, s.orders[i])
			return
		}
		writeError(w, http.StatusNotFound, "order not found")
	}
}

func (s *Server) assignStaff(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var req struct {
		ChefID   int64 `json:"chefId"`
		WaiterID int64 `json:"waiterId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ChefID == 0 {
		writeError(w, http.StatusBadRequest, "chefId is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].ChefID = req.ChefID
			s.orders[i].WaiterID = req.WaiterID
			writeData(w, http.StatusOK, s.orders[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "order not found")
}

func (s *Server) dashboardStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats := domain.DashboardStats{}
	for _, o := range s.orders {
		switch o.Status {
		case domain.OrderPending:
			stats.PendingOrders++
		case domain.OrderPreparing:
			stats.PreparingOrders++
		case domain.OrderReady:
			stats.ReadyOrders++
		}
	}
	for _, b := range s.bookings {
		if b.Status == domain.BookingConfirmed || b.Status == domain.BookingActive {
			stats.ActiveBookings++
		}
	}
	s.mu.Unlock()
	writeData(w, http.StatusOK, stats)
}

func (s *Server) staffByRole(role domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		staff := []domain.User{}
		for _, u := range s.users {
			if u.Role == role {
				staff = append(staff, u)
			}
		}
		s.mu.Unlock()
		writeData(w, http.StatusOK, staff)
	}
}

// Response helpers.

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, body interface{}) {
	writeJSON(w, status, map[string]interface{}{"data": body})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
