package domain

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cjaradhye/quirkventory/internal/core/worker"
	"github.com/govalues/decimal"
)

// DefaultPriceTolerance is the allowed relative drift between the price
// captured on a line item and the current ledger price.
var DefaultPriceTolerance = decimal.MustParse("0.05")

// Stock is the surface order processing needs from the inventory ledger.
// Reserve and Release are the only mutations an order ever performs.
type Stock interface {
	View(productID string) (Product, error)
	Reserve(productID string, quantity int) error
	Release(productID string, quantity int) error
}

type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// TotalPrice is unit price * quantity.
func (i OrderItem) TotalPrice() (decimal.Decimal, error) {
	qty, err := decimal.New(int64(i.Quantity), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	total, err := i.UnitPrice.Mul(qty)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	return total, nil
}

// Order is a mutable list of line items plus a status state machine.
// Line items may only change while the order is PENDING; once processing
// starts they are frozen. The processing flag guarantees a single in-flight
// processing attempt per order.
type Order struct {
	id         string
	customerID string

	mu          sync.Mutex
	items       []OrderItem
	status      OrderStatus
	createdAt   time.Time
	processedAt time.Time
	total       decimal.Decimal
	errMsg      string
	notes       string
	priceTol    decimal.Decimal

	processing atomic.Bool
}

func NewOrder(id, customerID string) (*Order, error) {
	if id == "" {
		return nil, ErrEmptyOrderID
	}
	if customerID == "" {
		return nil, ErrEmptyCustomerID
	}

	return &Order{
		id:         id,
		customerID: customerID,
		status:     OrderStatusPending,
		createdAt:  time.Now(),
		total:      decimal.Zero,
		priceTol:   DefaultPriceTolerance,
	}, nil
}

func (o *Order) ID() string         { return o.id }
func (o *Order) CustomerID() string { return o.customerID }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) Status() OrderStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *Order) TotalAmount() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.total
}

func (o *Order) ErrorMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

func (o *Order) Notes() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.notes
}

func (o *Order) SetNotes(notes string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notes = notes
}

// SetPriceTolerance overrides the relative price drift allowed during
// validation. The tolerance is a fraction, e.g. 0.05 for 5%.
func (o *Order) SetPriceTolerance(tol decimal.Decimal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !tol.IsNeg() {
		o.priceTol = tol
	}
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []OrderItem {
	o.mu.Lock()
	defer o.mu.Unlock()
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Item(productID string) (OrderItem, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, item := range o.items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return OrderItem{}, false
}

// AddItem appends a line item, or merges the quantity into an existing line
// for the same product. Allowed only while the order is PENDING.
func (o *Order) AddItem(productID string, quantity int, unitPrice decimal.Decimal) bool {
	if productID == "" || quantity <= 0 || unitPrice.IsNeg() {
		return false
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.canModifyLocked() {
		return false
	}

	for i := range o.items {
		if o.items[i].ProductID == productID {
			o.items[i].Quantity += quantity
			o.updateTotalLocked()
			return true
		}
	}

	o.items = append(o.items, OrderItem{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice})
	o.updateTotalLocked()
	return true
}

func (o *Order) RemoveItem(productID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.canModifyLocked() {
		return false
	}

	for i := range o.items {
		if o.items[i].ProductID == productID {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.updateTotalLocked()
			return true
		}
	}
	return false
}

// UpdateItemQuantity sets the quantity for an existing line item.
// A non-positive quantity removes the line.
func (o *Order) UpdateItemQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return o.RemoveItem(productID)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.canModifyLocked() {
		return false
	}

	for i := range o.items {
		if o.items[i].ProductID == productID {
			o.items[i].Quantity = quantity
			o.updateTotalLocked()
			return true
		}
	}
	return false
}

// Validate checks every line item against the ledger and returns the full
// list of problems rather than stopping at the first one.
func (o *Order) Validate(stock Stock) []string {
	items := o.Items()

	o.mu.Lock()
	tol := o.priceTol
	o.mu.Unlock()

	if len(items) == 0 {
		return []string{"Order contains no items"}
	}

	var errs []string
	for _, item := range items {
		product, err := stock.View(item.ProductID)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Product not found: %s", item.ProductID))
			continue
		}

		if product.Quantity < item.Quantity {
			errs = append(errs, fmt.Sprintf("Insufficient stock for product %s: requested %d, available %d",
				item.ProductID, item.Quantity, product.Quantity))
		}

		if product.IsExpired() {
			errs = append(errs, fmt.Sprintf("Product is expired: %s", item.ProductID))
		}

		if !priceWithinTolerance(product.Price, item.UnitPrice, tol) {
			errs = append(errs, fmt.Sprintf("Price mismatch for product %s: order price $%s, current price $%s",
				item.ProductID, item.UnitPrice, product.Price))
		}
	}

	return errs
}

// Process runs the transactional processing algorithm: transition to
// PROCESSING, validate, then reserve every line item against the ledger.
// If any reservation fails, every prior reservation from this attempt is
// released before the call returns, so a failed call leaves ledger
// quantities exactly as they were. Only one attempt may run at a time; a
// concurrent call is rejected immediately with ErrOrderBusy.
func (o *Order) Process(stock Stock) error {
	if !o.processing.CompareAndSwap(false, true) {
		return ErrOrderBusy
	}
	defer o.processing.Store(false)

	return o.process(stock)
}

// ProcessAsync schedules Process on the pool and returns an awaitable handle.
func (o *Order) ProcessAsync(stock Stock, pool *worker.Pool) *worker.Result {
	return pool.Submit(func() error {
		return o.Process(stock)
	})
}

func (o *Order) process(stock Stock) error {
	if !o.UpdateStatus(OrderStatusProcessing) {
		o.setError("cannot process order in current status")
		return fmt.Errorf("%w: %s", ErrOrderNotPending, o.Status())
	}

	if errs := o.Validate(stock); len(errs) > 0 {
		msg := "Validation failed: " + strings.Join(errs, "; ")
		o.fail(msg)
		return fmt.Errorf("%w: %s", ErrOrderValidation, strings.Join(errs, "; "))
	}

	items := o.Items()

	// Unwind every successful reservation on any exit path, including a
	// panic mid-loop. Releases commute, so order does not matter.
	reserved := make([]OrderItem, 0, len(items))
	committed := false
	defer func() {
		if committed {
			return
		}
		for _, item := range reserved {
			_ = stock.Release(item.ProductID, item.Quantity)
		}
	}()

	for _, item := range items {
		if err := stock.Reserve(item.ProductID, item.Quantity); err != nil {
			o.fail(fmt.Sprintf("Failed to reserve stock for product %s: %s", item.ProductID, err))
			return fmt.Errorf("reserve product %s: %w", item.ProductID, err)
		}
		reserved = append(reserved, item)
	}
	committed = true

	o.UpdateStatus(OrderStatusConfirmed)
	return nil
}

// Cancel sets the order to CANCELLED unless it has already shipped.
// Cancellation does not touch ledger reservations.
func (o *Order) Cancel(reason string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status == OrderStatusShipped || o.status == OrderStatusDelivered {
		return false
	}

	o.status = OrderStatusCancelled
	if reason != "" {
		o.notes = reason
	}
	return true
}

// UpdateStatus transitions the order to the requested status if the
// transition table allows it. Disallowed requests return false and leave
// the order untouched.
func (o *Order) UpdateStatus(next OrderStatus) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.updateStatusLocked(next)
}

func (o *Order) updateStatusLocked(next OrderStatus) bool {
	if !CanTransition(o.status, next) {
		return false
	}

	o.status = next
	if next == OrderStatusConfirmed || next == OrderStatusFailed {
		o.processedAt = time.Now()
	}
	return true
}

// ProcessingDuration returns the time between creation and processing.
// The second return is false until the order has been processed.
func (o *Order) ProcessingDuration() (time.Duration, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.processedAt.IsZero() {
		return 0, false
	}
	return o.processedAt.Sub(o.createdAt), true
}

func (o *Order) Summary() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %s\n", o.id)
	fmt.Fprintf(&b, "Customer: %s\n", o.customerID)
	fmt.Fprintf(&b, "Status: %s\n", o.status)
	fmt.Fprintf(&b, "Items: %d\n", len(o.items))
	fmt.Fprintf(&b, "Total: $%s\n", o.total)
	fmt.Fprintf(&b, "Order Date: %s", o.createdAt.Format("2006-01-02 15:04:05"))
	if o.errMsg != "" {
		fmt.Fprintf(&b, "\nError: %s", o.errMsg)
	}
	return b.String()
}

func (o *Order) DetailedInfo() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	var b strings.Builder
	b.WriteString("=== ORDER DETAILS ===\n")
	fmt.Fprintf(&b, "Order ID: %s\n", o.id)
	fmt.Fprintf(&b, "Customer ID: %s\n", o.customerID)
	fmt.Fprintf(&b, "Status: %s\n", o.status)
	fmt.Fprintf(&b, "Order Date: %s\n", o.createdAt.Format("2006-01-02 15:04:05"))
	if !o.processedAt.IsZero() {
		fmt.Fprintf(&b, "Processed Date: %s\n", o.processedAt.Format("2006-01-02 15:04:05"))
	}
	if o.notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", o.notes)
	}

	b.WriteString("\nITEMS:\n")
	for _, item := range o.items {
		lineTotal, _ := item.TotalPrice()
		fmt.Fprintf(&b, "- Product: %s, Qty: %d, Unit Price: $%s, Total: $%s\n",
			item.ProductID, item.Quantity, item.UnitPrice, lineTotal)
	}

	fmt.Fprintf(&b, "\nOrder Total: $%s\n", o.total)
	if o.errMsg != "" {
		fmt.Fprintf(&b, "\nERROR: %s\n", o.errMsg)
	}
	return b.String()
}

func (o *Order) canModifyLocked() bool {
	return o.status == OrderStatusPending
}

func (o *Order) updateTotalLocked() {
	total := decimal.Zero
	for _, item := range o.items {
		lineTotal, err := item.TotalPrice()
		if err != nil {
			return
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return
		}
	}
	o.total = total
}

func (o *Order) setError(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errMsg = msg
}

func (o *Order) fail(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errMsg = msg
	o.updateStatusLocked(OrderStatusFailed)
}

func priceWithinTolerance(current, captured, tol decimal.Decimal) bool {
	diff, err := current.Sub(captured)
	if err != nil {
		return false
	}
	limit, err := current.Mul(tol)
	if err != nil {
		return false
	}
	return diff.Abs().Cmp(limit) <= 0
}
