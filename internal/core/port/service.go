package port

import (
	"context"

	"github.com/cjaradhye/quirkventory/internal/core/domain"
	"github.com/cjaradhye/quirkventory/internal/core/worker"
	"github.com/govalues/decimal"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	// Catalog
	AddProduct(ctx context.Context, product *domain.Product) error
	RemoveProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	ListProducts(ctx context.Context) []domain.Product
	ListProductsByCategory(ctx context.Context, category string) []domain.Product
	SearchProducts(ctx context.Context, namePattern string) []domain.Product
	ListLowStock(ctx context.Context) []domain.Product
	ListExpired(ctx context.Context) []domain.Product
	Restock(ctx context.Context, productID string, amount int) error
	InventoryReport(ctx context.Context) string

	// Orders
	CreateOrder(ctx context.Context, orderID, customerID string) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context) []*domain.Order
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) []*domain.Order
	ListOrdersByCustomer(ctx context.Context, customerID string) []*domain.Order
	AddOrderItem(ctx context.Context, orderID, productID string, quantity int, unitPrice decimal.Decimal) error
	RemoveOrderItem(ctx context.Context, orderID, productID string) error
	ValidateOrder(ctx context.Context, orderID string) ([]string, error)
	ProcessOrder(ctx context.Context, orderID string) error
	ProcessOrderAsync(ctx context.Context, orderID string) (*worker.Result, error)
	ProcessAllPending(ctx context.Context, maxConcurrent int) (int, error)
	CancelOrder(ctx context.Context, orderID, reason string) error
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	RemoveOrder(ctx context.Context, orderID string) error
	ClearCompleted(ctx context.Context) int
	OrderStatistics(ctx context.Context) string
}
