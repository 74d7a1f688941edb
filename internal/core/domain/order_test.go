package domain_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cjaradhye/quirkventory/internal/core/domain"
	"github.com/cjaradhye/quirkventory/internal/core/inventory"
	"github.com/cjaradhye/quirkventory/internal/core/worker"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStock(t *testing.T, products ...*domain.Product) *inventory.Inventory {
	t.Helper()
	inv := inventory.New(0, nil, zap.NewNop())
	for _, p := range products {
		require.NoError(t, inv.AddProduct(p))
	}
	return inv
}

func mustProduct(t *testing.T, id string, price string, quantity int) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(id, "Product "+id, "general", decimal.MustParse(price), quantity)
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		customer string
		expError error
	}{
		{name: "good order", id: "O1", customer: "C1", expError: nil},
		{name: "empty id", id: "", customer: "C1", expError: domain.ErrEmptyOrderID},
		{name: "empty customer", id: "O1", customer: "", expError: domain.ErrEmptyCustomerID},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order, err := domain.NewOrder(test.id, test.customer)
			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, domain.OrderStatusPending, order.Status())
			}
		})
	}
}

func TestOrder_AddItem(t *testing.T) {
	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)

	price := decimal.MustParse("5.00")

	assert.True(t, order.AddItem("P1", 3, price))
	assert.True(t, order.AddItem("P2", 1, price))

	// same product merges into the existing line
	assert.True(t, order.AddItem("P1", 2, price))

	items := order.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "P1", items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "P2", items[1].ProductID)

	assert.Equal(t, decimal.MustParse("30.00").String(), order.TotalAmount().String())
}

func TestOrder_AddItemRejectsBadArguments(t *testing.T) {
	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)

	price := decimal.MustParse("5.00")

	assert.False(t, order.AddItem("", 1, price))
	assert.False(t, order.AddItem("P1", 0, price))
	assert.False(t, order.AddItem("P1", -1, price))
	assert.Empty(t, order.Items())
}

func TestOrder_ModifyOnlyWhilePending(t *testing.T) {
	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)

	price := decimal.MustParse("5.00")
	require.True(t, order.AddItem("P1", 1, price))

	require.True(t, order.Cancel("changed mind"))

	assert.False(t, order.AddItem("P2", 1, price))
	assert.False(t, order.RemoveItem("P1"))
	assert.False(t, order.UpdateItemQuantity("P1", 2))
	assert.Len(t, order.Items(), 1)
}

func TestOrder_UpdateItemQuantity(t *testing.T) {
	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)

	price := decimal.MustParse("2.50")
	require.True(t, order.AddItem("P1", 3, price))

	assert.True(t, order.UpdateItemQuantity("P1", 4))
	item, ok := order.Item("P1")
	require.True(t, ok)
	assert.Equal(t, 4, item.Quantity)

	// non-positive quantity removes the line
	assert.True(t, order.UpdateItemQuantity("P1", 0))
	assert.Empty(t, order.Items())

	assert.False(t, order.UpdateItemQuantity("missing", 2))
}

func TestOrder_StatusTransitions(t *testing.T) {
	tests := []struct {
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusProcessing, true},
		{domain.OrderStatusPending, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPending, domain.OrderStatusFailed, true},
		{domain.OrderStatusPending, domain.OrderStatusConfirmed, false},
		{domain.OrderStatusPending, domain.OrderStatusDelivered, false},
		{domain.OrderStatusProcessing, domain.OrderStatusConfirmed, true},
		{domain.OrderStatusProcessing, domain.OrderStatusFailed, true},
		{domain.OrderStatusProcessing, domain.OrderStatusCancelled, true},
		{domain.OrderStatusProcessing, domain.OrderStatusShipped, false},
		{domain.OrderStatusConfirmed, domain.OrderStatusShipped, true},
		{domain.OrderStatusConfirmed, domain.OrderStatusCancelled, true},
		{domain.OrderStatusConfirmed, domain.OrderStatusDelivered, false},
		{domain.OrderStatusShipped, domain.OrderStatusDelivered, true},
		{domain.OrderStatusShipped, domain.OrderStatusCancelled, false},
		{domain.OrderStatusDelivered, domain.OrderStatusPending, false},
		{domain.OrderStatusCancelled, domain.OrderStatusPending, false},
		{domain.OrderStatusFailed, domain.OrderStatusProcessing, false},
	}

	for _, test := range tests {
		t.Run(string(test.from)+"->"+string(test.to), func(t *testing.T) {
			assert.Equal(t, test.allowed, domain.CanTransition(test.from, test.to))
		})
	}
}

func TestOrder_UpdateStatusFromTerminal(t *testing.T) {
	for _, terminal := range []domain.OrderStatus{
		domain.OrderStatusDelivered, domain.OrderStatusCancelled, domain.OrderStatusFailed,
	} {
		assert.True(t, terminal.Terminal())
		for _, next := range []domain.OrderStatus{
			domain.OrderStatusPending, domain.OrderStatusProcessing, domain.OrderStatusConfirmed,
			domain.OrderStatusShipped, domain.OrderStatusDelivered, domain.OrderStatusCancelled,
			domain.OrderStatusFailed,
		} {
			assert.False(t, domain.CanTransition(terminal, next),
				"%s -> %s must be rejected", terminal, next)
		}
	}
}

func TestOrder_Validate(t *testing.T) {
	expiry := time.Now().Add(-24 * time.Hour)
	expired, err := domain.NewPerishableProduct("PX", "Old milk", "dairy",
		decimal.MustParse("3.00"), 10, expiry, "cold")
	require.NoError(t, err)

	type validateTest struct {
		name      string
		buildFn   func(t *testing.T) (*domain.Order, domain.Stock)
		expErrors []string
	}

	tests := []validateTest{
		{
			name: "valid order",
			buildFn: func(t *testing.T) (*domain.Order, domain.Stock) {
				stock := newStock(t, mustProduct(t, "P1", "5.00", 10))
				order, _ := domain.NewOrder("O1", "C1")
				order.AddItem("P1", 3, decimal.MustParse("5.00"))
				return order, stock
			},
			expErrors: nil,
		},
		{
			name: "empty order",
			buildFn: func(t *testing.T) (*domain.Order, domain.Stock) {
				stock := newStock(t)
				order, _ := domain.NewOrder("O1", "C1")
				return order, stock
			},
			expErrors: []string{"Order contains no items"},
		},
		{
			name: "product not found",
			buildFn: func(t *testing.T) (*domain.Order, domain.Stock) {
				stock := newStock(t)
				order, _ := domain.NewOrder("O1", "C1")
				order.AddItem("ghost", 1, decimal.MustParse("1.00"))
				return order, stock
			},
			expErrors: []string{"Product not found: ghost"},
		},
		{
			name: "insufficient stock",
			buildFn: func(t *testing.T) (*domain.Order, domain.Stock) {
				stock := newStock(t, mustProduct(t, "P1", "5.00", 2))
				order, _ := domain.NewOrder("O1", "C1")
				order.AddItem("P1", 5, decimal.MustParse("5.00"))
				return order, stock
			},
			expErrors: []string{"Insufficient stock for product P1: requested 5, available 2"},
		},
		{
			name: "expired product",
			buildFn: func(t *testing.T) (*domain.Order, domain.Stock) {
				stock := newStock(t, expired)
				order, _ := domain.NewOrder("O1", "C1")
				order.AddItem("PX", 1, decimal.MustParse("3.00"))
				return order, stock
			},
			expErrors: []string{"Product is expired: PX"},
		},
		{
			name: "price mismatch",
			buildFn: func(t *testing.T) (*domain.Order, domain.Stock) {
				stock := newStock(t, mustProduct(t, "P1", "5.00", 10))
				order, _ := domain.NewOrder("O1", "C1")
				order.AddItem("P1", 1, decimal.MustParse("6.00"))
				return order, stock
			},
			expErrors: []string{"Price mismatch for product P1: order price $6.00, current price $5.00"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order, stock := test.buildFn(t)
			assert.Equal(t, test.expErrors, order.Validate(stock))
		})
	}
}

func TestOrder_ValidatePriceWithinTolerance(t *testing.T) {
	stock := newStock(t, mustProduct(t, "P1", "100.00", 10))

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)

	// 4% drift is inside the default 5% tolerance
	require.True(t, order.AddItem("P1", 1, decimal.MustParse("96.00")))
	assert.Empty(t, order.Validate(stock))
}

func TestOrder_ValidateCollectsAllErrors(t *testing.T) {
	stock := newStock(t, mustProduct(t, "P1", "5.00", 2))

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 5, decimal.MustParse("9.00")))
	require.True(t, order.AddItem("ghost", 1, decimal.MustParse("1.00")))

	errs := order.Validate(stock)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], "Insufficient stock")
	assert.Contains(t, errs[1], "Price mismatch")
	assert.Contains(t, errs[2], "Product not found")
}

func TestOrder_ProcessSuccess(t *testing.T) {
	stock := newStock(t, mustProduct(t, "P1", "5.00", 10))

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 3, decimal.MustParse("5.00")))

	assert.Empty(t, order.Validate(stock))
	require.NoError(t, order.Process(stock))

	assert.Equal(t, domain.OrderStatusConfirmed, order.Status())

	qty, err := stock.QuantityOf("P1")
	require.NoError(t, err)
	assert.Equal(t, 7, qty)

	_, processed := order.ProcessingDuration()
	assert.True(t, processed)
}

func TestOrder_ProcessValidationFailure(t *testing.T) {
	stock := newStock(t, mustProduct(t, "P1", "5.00", 2))

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 5, decimal.MustParse("5.00")))

	errs := order.Validate(stock)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Insufficient stock")
	assert.Contains(t, errs[0], "5")
	assert.Contains(t, errs[0], "2")

	err = order.Process(stock)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOrderValidation)
	assert.Equal(t, domain.OrderStatusFailed, order.Status())
	assert.Contains(t, order.ErrorMessage(), "Insufficient stock")

	qty, err := stock.QuantityOf("P1")
	require.NoError(t, err)
	assert.Equal(t, 2, qty)
}

func TestOrder_ProcessNotPending(t *testing.T) {
	stock := newStock(t, mustProduct(t, "P1", "5.00", 10))

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 1, decimal.MustParse("5.00")))
	require.True(t, order.Cancel(""))

	err = order.Process(stock)
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
	assert.Equal(t, domain.OrderStatusCancelled, order.Status())
}

// raceStock lets the validation pass against a healthy snapshot and then
// starves a chosen product right before its reservation, forcing the
// rollback path that validation alone cannot reach.
type raceStock struct {
	inner   *inventory.Inventory
	starve  string
	starved bool
}

func (s *raceStock) View(productID string) (domain.Product, error) {
	return s.inner.View(productID)
}

func (s *raceStock) Reserve(productID string, quantity int) error {
	if productID == s.starve && !s.starved {
		s.starved = true
		qty, err := s.inner.QuantityOf(productID)
		if err != nil {
			return err
		}
		if err := s.inner.Reserve(productID, qty); err != nil {
			return err
		}
	}
	return s.inner.Reserve(productID, quantity)
}

func (s *raceStock) Release(productID string, quantity int) error {
	return s.inner.Release(productID, quantity)
}

func TestOrder_ProcessRollsBackPartialReservation(t *testing.T) {
	inner := newStock(t,
		mustProduct(t, "P1", "5.00", 5),
		mustProduct(t, "P2", "2.00", 1))
	stock := &raceStock{inner: inner, starve: "P2"}

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 1, decimal.MustParse("5.00")))
	require.True(t, order.AddItem("P2", 1, decimal.MustParse("2.00")))

	err = order.Process(stock)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, domain.OrderStatusFailed, order.Status())
	assert.Contains(t, order.ErrorMessage(), "P2")

	// the reservation for P1 succeeded first and must have been released
	qty, err := inner.QuantityOf("P1")
	require.NoError(t, err)
	assert.Equal(t, 5, qty)
}

// panicStock panics on a chosen product's reservation.
type panicStock struct {
	inner   *inventory.Inventory
	panicOn string
}

func (s *panicStock) View(productID string) (domain.Product, error) {
	return s.inner.View(productID)
}

func (s *panicStock) Reserve(productID string, quantity int) error {
	if productID == s.panicOn {
		panic("ledger fault")
	}
	return s.inner.Reserve(productID, quantity)
}

func (s *panicStock) Release(productID string, quantity int) error {
	return s.inner.Release(productID, quantity)
}

func TestOrder_ProcessRollsBackOnPanic(t *testing.T) {
	inner := newStock(t,
		mustProduct(t, "P1", "5.00", 5),
		mustProduct(t, "P2", "2.00", 5))
	stock := &panicStock{inner: inner, panicOn: "P2"}

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 2, decimal.MustParse("5.00")))
	require.True(t, order.AddItem("P2", 1, decimal.MustParse("2.00")))

	require.Panics(t, func() { _ = order.Process(stock) })

	qty, err := inner.QuantityOf("P1")
	require.NoError(t, err)
	assert.Equal(t, 5, qty)
}

// blockingStock parks the first reservation until released, so a second
// processing attempt can be made while the first is in flight.
type blockingStock struct {
	inner   *inventory.Inventory
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *blockingStock) View(productID string) (domain.Product, error) {
	return s.inner.View(productID)
}

func (s *blockingStock) Reserve(productID string, quantity int) error {
	s.once.Do(func() {
		close(s.entered)
		<-s.release
	})
	return s.inner.Reserve(productID, quantity)
}

func (s *blockingStock) Release(productID string, quantity int) error {
	return s.inner.Release(productID, quantity)
}

func TestOrder_ProcessExclusivity(t *testing.T) {
	inner := newStock(t, mustProduct(t, "P1", "5.00", 10))
	stock := &blockingStock{
		inner:   inner,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 3, decimal.MustParse("5.00")))

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- order.Process(stock)
	}()

	<-stock.entered

	// second attempt must be rejected immediately, without blocking
	err = order.Process(inner)
	assert.ErrorIs(t, err, domain.ErrOrderBusy)

	close(stock.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status())

	qty, err := inner.QuantityOf("P1")
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestOrder_ProcessAsync(t *testing.T) {
	stock := newStock(t, mustProduct(t, "P1", "5.00", 10))
	pool := worker.NewPool(2, 4, zap.NewNop())
	defer pool.Stop()

	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 4, decimal.MustParse("5.00")))

	result := order.ProcessAsync(stock, pool)
	require.NoError(t, result.Wait())
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status())

	qty, err := stock.QuantityOf("P1")
	require.NoError(t, err)
	assert.Equal(t, 6, qty)
}

func TestOrder_ConcurrentProcessingConservesStock(t *testing.T) {
	const initial = 100
	const perOrder = 7
	const orderCount = 20

	stock := newStock(t, mustProduct(t, "P1", "5.00", initial))

	ordersList := make([]*domain.Order, 0, orderCount)
	for i := 0; i < orderCount; i++ {
		order, err := domain.NewOrder("O"+string(rune('A'+i)), "C1")
		require.NoError(t, err)
		require.True(t, order.AddItem("P1", perOrder, decimal.MustParse("5.00")))
		ordersList = append(ordersList, order)
	}

	var wg sync.WaitGroup
	results := make([]error, orderCount)
	for i, order := range ordersList {
		wg.Add(1)
		go func(i int, o *domain.Order) {
			defer wg.Done()
			results[i] = o.Process(stock)
		}(i, order)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.True(t, errors.Is(err, domain.ErrOrderValidation) ||
				errors.Is(err, domain.ErrInsufficientStock))
		}
	}

	qty, err := stock.QuantityOf("P1")
	require.NoError(t, err)
	assert.Equal(t, initial, qty+successes*perOrder,
		"no stock may be lost or double-reserved")
}

func TestOrder_Cancel(t *testing.T) {
	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)

	require.True(t, order.UpdateStatus(domain.OrderStatusProcessing))
	require.True(t, order.UpdateStatus(domain.OrderStatusConfirmed))
	require.True(t, order.UpdateStatus(domain.OrderStatusShipped))

	assert.False(t, order.Cancel("too late"))
	assert.Equal(t, domain.OrderStatusShipped, order.Status())

	other, err := domain.NewOrder("O2", "C1")
	require.NoError(t, err)
	assert.True(t, other.Cancel("changed mind"))
	assert.Equal(t, domain.OrderStatusCancelled, other.Status())
	assert.Equal(t, "changed mind", other.Notes())
}

func TestOrder_SummaryAndDetailedInfo(t *testing.T) {
	order, err := domain.NewOrder("O1", "C1")
	require.NoError(t, err)
	require.True(t, order.AddItem("P1", 2, decimal.MustParse("5.00")))

	summary := order.Summary()
	assert.Contains(t, summary, "Order ID: O1")
	assert.Contains(t, summary, "Customer: C1")
	assert.Contains(t, summary, "Status: PENDING")
	assert.Contains(t, summary, "Total: $10.00")

	info := order.DetailedInfo()
	assert.Contains(t, info, "ORDER DETAILS")
	assert.Contains(t, info, "Product: P1, Qty: 2")
}
