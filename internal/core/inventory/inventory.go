package inventory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cjaradhye/quirkventory/internal/core/domain"
	"github.com/cjaradhye/quirkventory/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const DefaultLowStockThreshold = 10

// Inventory is the stock ledger: the single owner of all product records.
// Every method acquires the one mutex for its whole body and no method calls
// another public method while holding it. Reads hand out value copies only;
// products never escape as mutable references.
type Inventory struct {
	logger   *zap.Logger
	notifier port.Notifier

	mu               sync.Mutex
	products         map[string]*domain.Product
	thresholds       map[string]int
	defaultThreshold int
}

func New(defaultThreshold int, notifier port.Notifier, logger *zap.Logger) *Inventory {
	if defaultThreshold <= 0 {
		defaultThreshold = DefaultLowStockThreshold
	}

	return &Inventory{
		logger:           logger,
		notifier:         notifier,
		products:         make(map[string]*domain.Product),
		thresholds:       make(map[string]int),
		defaultThreshold: defaultThreshold,
	}
}

func (inv *Inventory) AddProduct(product *domain.Product) error {
	if product == nil {
		return domain.ErrBadRequest
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := inv.products[product.ID]; ok {
		return domain.ErrConflictingData
	}

	clone := *product
	inv.products[product.ID] = &clone
	return nil
}

func (inv *Inventory) RemoveProduct(productID string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := inv.products[productID]; !ok {
		return domain.ErrProductNotFound
	}

	delete(inv.products, productID)
	delete(inv.thresholds, productID)
	return nil
}

func (inv *Inventory) UpdateQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return domain.ErrNegativeAmount
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	product, ok := inv.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}

	product.Quantity = quantity
	return nil
}

// Reserve atomically decrements stock for a product. It fails without side
// effects when the product is missing or the amount exceeds current stock.
func (inv *Inventory) Reserve(productID string, amount int) error {
	if amount < 0 {
		return domain.ErrNegativeAmount
	}

	inv.mu.Lock()
	product, ok := inv.products[productID]
	if !ok {
		inv.mu.Unlock()
		return domain.ErrProductNotFound
	}
	if product.Quantity < amount {
		available := product.Quantity
		inv.mu.Unlock()
		return fmt.Errorf("%w: product %s, requested %d, available %d",
			domain.ErrInsufficientStock, productID, amount, available)
	}

	product.Quantity -= amount
	threshold := inv.thresholdLocked(productID)
	low := product.Quantity < threshold
	snapshot := *product
	inv.mu.Unlock()

	if low {
		inv.alertLowStock(snapshot, threshold)
	}
	return nil
}

// Release atomically increments stock, undoing a prior Reserve. The
// increment has no upper bound, mirroring an unbounded restock.
func (inv *Inventory) Release(productID string, amount int) error {
	if amount < 0 {
		return domain.ErrNegativeAmount
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	product, ok := inv.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}

	product.Quantity += amount
	return nil
}

// View returns a read-only snapshot of a product.
func (inv *Inventory) View(productID string) (domain.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	product, ok := inv.products[productID]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return *product, nil
}

func (inv *Inventory) QuantityOf(productID string) (int, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	product, ok := inv.products[productID]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return product.Quantity, nil
}

func (inv *Inventory) PriceOf(productID string) (decimal.Decimal, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	product, ok := inv.products[productID]
	if !ok {
		return decimal.Decimal{}, domain.ErrProductNotFound
	}
	return product.Price, nil
}

// SetThreshold overrides the low-stock threshold for one product.
func (inv *Inventory) SetThreshold(productID string, threshold int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.thresholds[productID] = threshold
}

// Products returns value copies of every product.
func (inv *Inventory) Products() []domain.Product {
	return inv.filter(func(*domain.Product) bool { return true })
}

func (inv *Inventory) ProductsByCategory(category string) []domain.Product {
	return inv.filter(func(p *domain.Product) bool {
		return p.Category == category
	})
}

func (inv *Inventory) SearchByName(pattern string) []domain.Product {
	lower := strings.ToLower(pattern)
	return inv.filter(func(p *domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), lower)
	})
}

func (inv *Inventory) LowStock() []domain.Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	var result []domain.Product
	for id, p := range inv.products {
		if p.Quantity < inv.thresholdLocked(id) {
			result = append(result, *p)
		}
	}
	return result
}

func (inv *Inventory) Expired() []domain.Product {
	return inv.filter(func(p *domain.Product) bool {
		return p.IsExpired()
	})
}

func (inv *Inventory) ExpiringSoon(days int) []domain.Product {
	return inv.filter(func(p *domain.Product) bool {
		return !p.IsExpired() && p.ExpiresSoon(days)
	})
}

func (inv *Inventory) ProductCount() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.products)
}

func (inv *Inventory) TotalQuantity() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	total := 0
	for _, p := range inv.products {
		total += p.Quantity
	}
	return total
}

func (inv *Inventory) TotalValue() decimal.Decimal {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	total := decimal.Zero
	for _, p := range inv.products {
		value, err := total.Add(p.TotalValue())
		if err != nil {
			continue
		}
		total = value
	}
	return total
}

func (inv *Inventory) ValueByCategory() map[string]decimal.Decimal {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	result := make(map[string]decimal.Decimal)
	for _, p := range inv.products {
		current, ok := result[p.Category]
		if !ok {
			current = decimal.Zero
		}
		value, err := current.Add(p.TotalValue())
		if err != nil {
			continue
		}
		result[p.Category] = value
	}
	return result
}

// Report renders a human-readable inventory summary.
func (inv *Inventory) Report() string {
	products := inv.Products()
	lowStock := inv.LowStock()
	expired := inv.Expired()

	var b strings.Builder
	b.WriteString("=== INVENTORY REPORT ===\n")
	fmt.Fprintf(&b, "Products: %d\n", len(products))
	fmt.Fprintf(&b, "Total Quantity: %d\n", inv.TotalQuantity())
	fmt.Fprintf(&b, "Total Value: $%s\n", inv.TotalValue())
	fmt.Fprintf(&b, "Low Stock Items: %d\n", len(lowStock))
	fmt.Fprintf(&b, "Expired Items: %d\n", len(expired))

	if len(lowStock) > 0 {
		b.WriteString("\nLOW STOCK:\n")
		for _, p := range lowStock {
			fmt.Fprintf(&b, "- %s (ID: %s): %d units\n", p.Name, p.ID, p.Quantity)
		}
	}
	return b.String()
}

func (inv *Inventory) filter(keep func(*domain.Product) bool) []domain.Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	var result []domain.Product
	for _, p := range inv.products {
		if keep(p) {
			result = append(result, *p)
		}
	}
	return result
}

func (inv *Inventory) thresholdLocked(productID string) int {
	if t, ok := inv.thresholds[productID]; ok {
		return t
	}
	return inv.defaultThreshold
}

func (inv *Inventory) alertLowStock(product domain.Product, threshold int) {
	inv.logger.Warn("low stock",
		zap.String("product", product.ID),
		zap.Int("quantity", product.Quantity),
		zap.Int("threshold", threshold))

	if inv.notifier == nil {
		return
	}
	inv.notifier.Notify(port.Alert{
		Message: fmt.Sprintf("LOW STOCK ALERT: Product '%s' (ID: %s) is now at %d units (threshold: %d)",
			product.Name, product.ID, product.Quantity, threshold),
		Priority:  port.AlertPriorityHigh,
		Source:    "inventory",
		CreatedAt: time.Now(),
	})
}
