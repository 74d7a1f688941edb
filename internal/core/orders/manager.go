package orders

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cjaradhye/quirkventory/internal/core/domain"
	"github.com/cjaradhye/quirkventory/internal/core/worker"
	"go.uber.org/zap"
)

// Manager is the order registry. It owns every order created through it and
// hands out pointers valid for the order's lifetime, never detached copies.
type Manager struct {
	logger *zap.Logger
	pool   *worker.Pool

	mu     sync.Mutex
	orders map[string]*domain.Order

	processed int64
	succeeded int64
	failed    int64
}

func NewManager(pool *worker.Pool, logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger,
		pool:   pool,
		orders: make(map[string]*domain.Order),
	}
}

// Create constructs and stores a new order. Fails if the id is taken.
func (m *Manager) Create(orderID, customerID string) (*domain.Order, error) {
	order, err := domain.NewOrder(orderID, customerID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[orderID]; ok {
		return nil, domain.ErrConflictingData
	}

	m.orders[orderID] = order
	return order, nil
}

func (m *Manager) Order(orderID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (m *Manager) Orders() []*domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Order, 0, len(m.orders))
	for _, order := range m.orders {
		result = append(result, order)
	}
	return result
}

func (m *Manager) ByStatus(status domain.OrderStatus) []*domain.Order {
	var result []*domain.Order
	for _, order := range m.Orders() {
		if order.Status() == status {
			result = append(result, order)
		}
	}
	return result
}

func (m *Manager) ByCustomer(customerID string) []*domain.Order {
	var result []*domain.Order
	for _, order := range m.Orders() {
		if order.CustomerID() == customerID {
			result = append(result, order)
		}
	}
	return result
}

// ProcessAllPending processes every pending order in batches of at most
// maxConcurrent, waiting for each batch before starting the next. Outcomes
// are folded into the registry statistics. Returns the success count.
func (m *Manager) ProcessAllPending(stock domain.Stock, maxConcurrent int) int {
	pending := m.ByStatus(domain.OrderStatusPending)
	if len(pending) == 0 {
		return 0
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	m.logger.Info("processing pending orders",
		zap.Int("count", len(pending)), zap.Int("max_concurrent", maxConcurrent))

	successful := 0
	for start := 0; start < len(pending); start += maxConcurrent {
		end := min(start+maxConcurrent, len(pending))

		batch := pending[start:end]
		results := make([]*worker.Result, 0, len(batch))
		for _, order := range batch {
			results = append(results, order.ProcessAsync(stock, m.pool))
		}

		for i, result := range results {
			err := result.Wait()
			if err == nil {
				successful++
				m.record(true)
				continue
			}
			m.record(false)
			m.logger.Info("order processing failed",
				zap.String("order", batch[i].ID()), zap.Error(err))
		}
	}

	return successful
}

// Remove deletes an order from the registry regardless of its status.
func (m *Manager) Remove(orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[orderID]; !ok {
		return domain.ErrOrderNotFound
	}

	delete(m.orders, orderID)
	return nil
}

// ClearCompleted removes every delivered or cancelled order and returns the
// number removed.
func (m *Manager) ClearCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleared := 0
	for id, order := range m.orders {
		status := order.Status()
		if status == domain.OrderStatusDelivered || status == domain.OrderStatusCancelled {
			delete(m.orders, id)
			cleared++
		}
	}
	return cleared
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *Manager) Processed() int64 { return atomic.LoadInt64(&m.processed) }
func (m *Manager) Succeeded() int64 { return atomic.LoadInt64(&m.succeeded) }
func (m *Manager) Failed() int64    { return atomic.LoadInt64(&m.failed) }

// Statistics renders the registry counters and a per-status breakdown.
func (m *Manager) Statistics() string {
	all := m.Orders()
	processed := m.Processed()
	succeeded := m.Succeeded()
	failed := m.Failed()

	var b strings.Builder
	b.WriteString("=== ORDER STATISTICS ===\n")
	fmt.Fprintf(&b, "Total Orders: %d\n", len(all))
	fmt.Fprintf(&b, "Orders Processed: %d\n", processed)
	fmt.Fprintf(&b, "Successful Orders: %d\n", succeeded)
	fmt.Fprintf(&b, "Failed Orders: %d\n", failed)
	if processed > 0 {
		rate := float64(succeeded) / float64(processed) * 100
		fmt.Fprintf(&b, "Success Rate: %.1f%%\n", rate)
	}

	counts := make(map[domain.OrderStatus]int)
	for _, order := range all {
		counts[order.Status()]++
	}

	b.WriteString("\nOrders by Status:\n")
	for status, count := range counts {
		fmt.Fprintf(&b, "- %s: %d\n", status, count)
	}
	return b.String()
}

func (m *Manager) record(success bool) {
	atomic.AddInt64(&m.processed, 1)
	if success {
		atomic.AddInt64(&m.succeeded, 1)
	} else {
		atomic.AddInt64(&m.failed, 1)
	}
}
