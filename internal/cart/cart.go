package cart

import (
	"strings"
	"sync"

	"javabite-client/internal/api"
	"javabite-client/internal/domain"
)

// TaxRate is the flat rate applied to the pre-order quote. The server's tax
// field on a placed order is authoritative; this only prices the cart view.
const TaxRate = 0.08

// Coupons is the static client-known discount table, keyed by canonical code.
var Coupons = map[string]int{
	"COFFEE10":  10,
	"WELCOME20": 20,
	"SAVE15":    15,
}

// Line is one entry of the grouped view.
type Line struct {
	Item     domain.MenuItem
	Quantity int
}

// Cart is an ordered sequence of unit references; a quantity of three is three
// entries with the same id. Guarded by a mutex so callers need not serialize
// access themselves.
type Cart struct {
	mu              sync.Mutex
	units           []domain.MenuItem
	discountPercent int
	appliedCoupon   string
}

func New() *Cart {
	return &Cart{}
}

// Add appends one unit. Duplicate ids are expected; they are the quantity.
func (c *Cart) Add(item domain.MenuItem) {
	c.mu.Lock()
	c.units = append(c.units, item)
	c.mu.Unlock()
}

// Remove drops every unit of the item, not just one.
func (c *Cart) Remove(itemID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(itemID, -1)
}

// ChangeQuantity adds one unit for a positive delta and removes one for a
// negative delta; a resulting quantity of zero or less clears the item.
func (c *Cart) ChangeQuantity(itemID int64, delta int) {
	if delta == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	count := 0
	for i, unit := range c.units {
		if unit.ID == itemID {
			count++
			if idx == -1 {
				idx = i
			}
		}
	}
	if idx == -1 {
		return
	}

	if delta > 0 {
		c.units = append(c.units, c.units[idx])
		return
	}
	if count-1 <= 0 {
		c.removeLocked(itemID, -1)
		return
	}
	c.removeLocked(itemID, 1)
}

// removeLocked removes up to n units of the item; n < 0 removes all.
func (c *Cart) removeLocked(itemID int64, n int) {
	kept := c.units[:0]
	removed := 0
	for _, unit := range c.units {
		if unit.ID == itemID && (n < 0 || removed < n) {
			removed++
			continue
		}
		kept = append(kept, unit)
	}
	c.units = kept
}

// Grouped collapses repeated ids into (item, quantity) pairs, preserving first
// appearance order.
func (c *Cart) Grouped() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	var lines []Line
	index := make(map[int64]int)
	for _, unit := range c.units {
		if i, ok := index[unit.ID]; ok {
			lines[i].Quantity++
			continue
		}
		index[unit.ID] = len(lines)
		lines = append(lines, Line{Item: unit, Quantity: 1})
	}
	return lines
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.units)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.units = nil
	c.mu.Unlock()
}

// Subtotal sums unit prices across the raw sequence, not the grouped view.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, unit := range c.units {
		total += unit.Price
	}
	return total
}

func (c *Cart) Tax() float64 {
	return c.Subtotal() * TaxRate
}

// ApplyCoupon looks the code up case-insensitively. A hit returns the
// canonical code; a miss resets any active discount and reports the bad code.
// Applying a second coupon replaces the first, never stacks.
func (c *Cart) ApplyCoupon(code string) (string, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	percent, ok := Coupons[canonical]

	c.mu.Lock()
	defer c.mu.Unlock()
	if !ok {
		c.discountPercent = 0
		c.appliedCoupon = ""
		return "", api.Precondition("invalid coupon code")
	}
	c.discountPercent = percent
	c.appliedCoupon = canonical
	return canonical, nil
}

func (c *Cart) RemoveCoupon() {
	c.mu.Lock()
	c.discountPercent = 0
	c.appliedCoupon = ""
	c.mu.Unlock()
}

func (c *Cart) AppliedCoupon() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appliedCoupon
}

func (c *Cart) DiscountPercent() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.discountPercent
}

func (c *Cart) DiscountAmount() float64 {
	return c.Subtotal() * float64(c.DiscountPercent()) / 100
}

func (c *Cart) Total() float64 {
	return c.Subtotal() + c.Tax() - c.DiscountAmount()
}
