// Package checkout drives the two-step order placement process: Shipping
// collects the delivery form, Payment picks a payment method, and placing
// the order snapshots the cart into an immutable Order before clearing it.
package checkout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alisha-attire/storefront/internal/cart"
)

type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepPlaced   Step = "placed"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentCard           PaymentMethod = "card"
	PaymentBkash          PaymentMethod = "bkash"
)

var (
	ErrValidation  = errors.New("validation")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrInvalidStep = errors.New("invalid step")
	ErrOrderPlaced = errors.New("order already placed")
)

const deliveryLeadTime = 7 * 24 * time.Hour

// ShippingInfo is the delivery form. Postal code is the only optional field.
type ShippingInfo struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code,omitempty"`
}

func (f ShippingInfo) validate() error {
	required := []struct{ name, value string }{
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"district", f.District},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s required", ErrValidation, field.name)
		}
	}
	return nil
}

type OrderLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Order is the confirmation snapshot taken at placement time. It is built
// before the cart is cleared, so clearing never changes what the
// confirmation shows.
type Order struct {
	Number            string          `json:"order_number"`
	PlacedAt          time.Time       `json:"placed_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	Shipping          ShippingInfo    `json:"shipping"`
	Lines             []OrderLine     `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	ShippingFee       decimal.Decimal `json:"shipping_fee"`
	Total             decimal.Decimal `json:"total"`
}

// Flow is the per-session checkout state machine. It borrows the live cart:
// totals are computed fresh from it until the moment of placement.
type Flow struct {
	mu     sync.Mutex
	cart   *cart.Store
	step   Step
	method PaymentMethod
	info   ShippingInfo
	order  *Order
	now    func() time.Time
}

func NewFlow(c *cart.Store) *Flow {
	return &Flow{
		cart:   c,
		step:   StepShipping,
		method: PaymentCashOnDelivery,
		now:    time.Now,
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) Method() PaymentMethod {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.method
}

func (f *Flow) Shipping() ShippingInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.info
}

// Order returns a copy of the placed order, or nil before placement.
func (f *Flow) Order() *Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.order == nil {
		return nil
	}
	o := *f.order
	o.Lines = append([]OrderLine(nil), f.order.Lines...)
	return &o
}

// Totals quotes the live cart through the shipping rule.
func (f *Flow) Totals() (subtotal, fee, total decimal.Decimal) {
	subtotal = f.cart.TotalPrice()
	fee, total = Quote(subtotal)
	return subtotal, fee, total
}

// SubmitShipping validates the form and advances Shipping to Payment. The
// flow stays in Shipping when a required field is missing or the cart is
// empty.
func (f *Flow) SubmitShipping(info ShippingInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.step {
	case StepPlaced:
		return ErrOrderPlaced
	case StepPayment:
		return fmt.Errorf("%w: already at payment", ErrInvalidStep)
	}
	if f.cart.TotalItems() == 0 {
		return ErrEmptyCart
	}
	if err := info.validate(); err != nil {
		return err
	}
	f.info = info
	f.step = StepPayment
	return nil
}

// ReturnToShipping steps back from Payment, keeping entered form data.
func (f *Flow) ReturnToShipping() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step == StepPlaced {
		return ErrOrderPlaced
	}
	f.step = StepShipping
	return nil
}

func (f *Flow) SelectPaymentMethod(m PaymentMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.step {
	case StepPlaced:
		return ErrOrderPlaced
	case StepShipping:
		return fmt.Errorf("%w: shipping not submitted", ErrInvalidStep)
	}
	switch m {
	case PaymentCashOnDelivery, PaymentCard, PaymentBkash:
		f.method = m
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, m)
	}
}

// PlaceOrder is the terminal action. It snapshots lines and totals from the
// live cart, clears the cart and moves to Placed. Only valid from Payment
// with a non-empty cart.
func (f *Flow) PlaceOrder() (*Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.step {
	case StepPlaced:
		return nil, ErrOrderPlaced
	case StepShipping:
		return nil, fmt.Errorf("%w: shipping not submitted", ErrInvalidStep)
	}

	items := f.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	placedAt := f.now()
	subtotal := decimal.Zero
	lines := make([]OrderLine, 0, len(items))
	for _, it := range items {
		lineTotal := it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, OrderLine{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			UnitPrice: it.Product.Price,
			Quantity:  it.Quantity,
			Size:      it.Size,
			LineTotal: lineTotal,
		})
	}
	fee, total := Quote(subtotal)

	f.order = &Order{
		Number:            orderNumber(placedAt),
		PlacedAt:          placedAt,
		EstimatedDelivery: placedAt.Add(deliveryLeadTime),
		PaymentMethod:     f.method,
		Shipping:          f.info,
		Lines:             lines,
		Subtotal:          subtotal,
		ShippingFee:       fee,
		Total:             total,
	}
	f.step = StepPlaced
	f.cart.Clear()

	o := *f.order
	o.Lines = append([]OrderLine(nil), f.order.Lines...)
	return &o, nil
}

// orderNumber derives the confirmation number from the placement timestamp:
// "AL" plus the last eight digits of the unix-millisecond clock.
func orderNumber(t time.Time) string {
	return fmt.Sprintf("AL%08d", t.UnixMilli()%100_000_000)
}
