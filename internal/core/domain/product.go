package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/govalues/decimal"
)

// Product is a stock item held by the inventory ledger. The ledger owns all
// products exclusively; callers only ever see value copies.
type Product struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal
	Quantity  int
	CreatedAt time.Time

	// Expiry is nil for non-perishable products.
	Expiry  *time.Time
	Storage string
}

func NewProduct(id, name, category string, price decimal.Decimal, quantity int) (*Product, error) {
	if id == "" {
		return nil, ErrEmptyProductID
	}
	if price.IsNeg() {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeAmount
	}

	return &Product{
		ID:        id,
		Name:      name,
		Category:  category,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}, nil
}

func NewPerishableProduct(id, name, category string, price decimal.Decimal, quantity int,
	expiry time.Time, storage string) (*Product, error) {
	p, err := NewProduct(id, name, category, price, quantity)
	if err != nil {
		return nil, err
	}
	p.Expiry = &expiry
	p.Storage = storage
	return p, nil
}

func (p *Product) IsExpired() bool {
	if p.Expiry == nil {
		return false
	}
	return p.Expiry.Before(time.Now())
}

// ExpiresSoon reports whether a perishable product expires within the given
// number of days. Non-perishable products never expire soon.
func (p *Product) ExpiresSoon(days int) bool {
	if p.Expiry == nil {
		return false
	}
	deadline := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	return p.Expiry.Before(deadline)
}

func (p *Product) LowStock(threshold int) bool {
	return p.Quantity < threshold
}

// TotalValue is price * quantity.
func (p *Product) TotalValue() decimal.Decimal {
	qty, err := decimal.New(int64(p.Quantity), 0)
	if err != nil {
		return decimal.Zero
	}
	value, err := p.Price.Mul(qty)
	if err != nil {
		return decimal.Zero
	}
	return value
}

func (p *Product) ExpiryInfo() string {
	if p.Expiry == nil {
		return "Non-perishable"
	}
	if p.IsExpired() {
		return fmt.Sprintf("Expired on %s", p.Expiry.Format("2006-01-02"))
	}
	return fmt.Sprintf("Expires on %s", p.Expiry.Format("2006-01-02"))
}

func (p *Product) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product: %s (ID: %s)\n", p.Name, p.ID)
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	fmt.Fprintf(&b, "Price: $%s\n", p.Price)
	fmt.Fprintf(&b, "Quantity: %d\n", p.Quantity)
	fmt.Fprintf(&b, "Expiry: %s", p.ExpiryInfo())
	return b.String()
}
