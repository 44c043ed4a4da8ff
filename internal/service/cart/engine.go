// Package cart implements the per-session shopping cart: one line per
// product, wholesale subtotal and discount derivations, and the checkout
// serialization guard.
package cart

import (
	"errors"
	"sync"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

var (
	// ErrOutOfStock is returned when the stock policy rejects a quantity.
	ErrOutOfStock = errors.New("quantity exceeds available stock")
	// ErrBelowMinimum is returned at checkout when the minimum-quantity
	// policy rejects a line.
	ErrBelowMinimum = errors.New("line below minimum order quantity")
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutPending is returned when a checkout is already in flight.
	ErrCheckoutPending = errors.New("checkout already in progress")
)

// Policy controls whether stock and minimum-quantity limits are enforced or
// merely surfaced. Both default to advisory.
type Policy struct {
	EnforceStock       bool
	EnforceMinQuantity bool
}

// Line associates a product snapshot with the requested quantity. Quantity
// is always at least 1; a line drops out of the cart instead of reaching 0.
type Line struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// TotalCents is the wholesale total of the line.
func (l Line) TotalCents() int64 {
	return l.Product.WholesalePriceCents * int64(l.Quantity)
}

// DiscountCents is how much the line saves versus public pricing.
func (l Line) DiscountCents() int64 {
	return (l.Product.PriceCents - l.Product.WholesalePriceCents) * int64(l.Quantity)
}

// BelowMinimum reports whether the line is under the product's minimum
// order quantity.
func (l Line) BelowMinimum() bool {
	return l.Quantity < l.Product.MinQuantity
}

// Engine holds one session's cart. Lines keep first-add order. All methods
// are safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	policy   Policy
	lines    []Line
	checking bool
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// AddItem adds one unit of the product, creating the line on first add and
// incrementing the quantity afterwards.
func (e *Engine) AddItem(p domain.Product) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.lines {
		if l.Product.ID == p.ID {
			if e.policy.EnforceStock && l.Quantity+1 > p.Stock {
				return ErrOutOfStock
			}
			e.lines[i].Quantity++
			return nil
		}
	}
	if e.policy.EnforceStock && p.Stock < 1 {
		return ErrOutOfStock
	}
	e.lines = append(e.lines, Line{Product: p, Quantity: 1})
	return nil
}

// SetQuantity sets the line for productID to quantity; a quantity of 0 or
// less removes the line entirely.
func (e *Engine) SetQuantity(productID int64, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.lines {
		if l.Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return nil
		}
		if e.policy.EnforceStock && quantity > l.Product.Stock {
			return ErrOutOfStock
		}
		e.lines[i].Quantity = quantity
		return nil
	}
	return domain.ErrNotFound
}

// Lines returns a copy of the cart lines in first-add order.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Line(nil), e.lines...)
}

// SubtotalCents is the wholesale total across all lines.
func (e *Engine) SubtotalCents() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sum int64
	for _, l := range e.lines {
		sum += l.TotalCents()
	}
	return sum
}

// TotalDiscountCents is the saving versus public pricing across all lines.
func (e *Engine) TotalDiscountCents() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sum int64
	for _, l := range e.lines {
		sum += l.DiscountCents()
	}
	return sum
}

// LineCount is the number of distinct products, shown in the summary.
func (e *Engine) LineCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines)
}

// TotalUnits is the quantity-summed count, shown on the header badge.
func (e *Engine) TotalUnits() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	var n int
	for _, l := range e.lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (e *Engine) IsEmpty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines) == 0
}

// Clear removes every line. Pending checkout state is left untouched.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
}

// BeginCheckout validates the cart and marks a checkout in flight. It fails
// when the cart is empty, when another checkout is pending, or when the
// minimum-quantity policy rejects a line. EndCheckout must be called once
// the submission settles, whatever the outcome.
func (e *Engine) BeginCheckout() ([]Line, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.checking {
		return nil, ErrCheckoutPending
	}
	if len(e.lines) == 0 {
		return nil, ErrEmptyCart
	}
	if e.policy.EnforceMinQuantity {
		for _, l := range e.lines {
			if l.BelowMinimum() {
				return nil, ErrBelowMinimum
			}
		}
	}
	e.checking = true
	return append([]Line(nil), e.lines...), nil
}

// EndCheckout releases the checkout guard.
func (e *Engine) EndCheckout() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.checking = false
}
