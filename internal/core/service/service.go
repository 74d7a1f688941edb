package service

import (
	"context"
	"errors"

	"github.com/cjaradhye/quirkventory/internal/core/domain"
	"github.com/cjaradhye/quirkventory/internal/core/inventory"
	"github.com/cjaradhye/quirkventory/internal/core/orders"
	"github.com/cjaradhye/quirkventory/internal/core/worker"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Service glues the stock ledger, the order registry and the worker pool
// together behind the port.Service contract the HTTP layer depends on.
type Service struct {
	inventory *inventory.Inventory
	orders    *orders.Manager
	pool      *worker.Pool
	logger    *zap.Logger
	priceTol  decimal.Decimal
}

func NewService(inv *inventory.Inventory, mgr *orders.Manager, pool *worker.Pool,
	priceTolerancePercent int, logger *zap.Logger) (*Service, error) {
	if priceTolerancePercent < 0 {
		return nil, domain.ErrNegativeAmount
	}

	tol, err := decimal.New(int64(priceTolerancePercent), 2)
	if err != nil {
		return nil, err
	}

	return &Service{
		inventory: inv,
		orders:    mgr,
		pool:      pool,
		logger:    logger,
		priceTol:  tol,
	}, nil
}

func (s *Service) AddProduct(ctx context.Context, product *domain.Product) error {
	err := s.inventory.AddProduct(product)
	if err != nil && !errors.Is(err, domain.ErrConflictingData) {
		s.logger.Error("Add product", zap.Error(err))
	}
	return err
}

func (s *Service) RemoveProduct(ctx context.Context, productID string) error {
	return s.inventory.RemoveProduct(productID)
}

func (s *Service) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	return s.inventory.View(productID)
}

func (s *Service) ListProducts(ctx context.Context) []domain.Product {
	return s.inventory.Products()
}

func (s *Service) ListProductsByCategory(ctx context.Context, category string) []domain.Product {
	return s.inventory.ProductsByCategory(category)
}

func (s *Service) SearchProducts(ctx context.Context, namePattern string) []domain.Product {
	return s.inventory.SearchByName(namePattern)
}

func (s *Service) ListLowStock(ctx context.Context) []domain.Product {
	return s.inventory.LowStock()
}

func (s *Service) ListExpired(ctx context.Context) []domain.Product {
	return s.inventory.Expired()
}

func (s *Service) Restock(ctx context.Context, productID string, amount int) error {
	if amount <= 0 {
		return domain.ErrNegativeAmount
	}
	return s.inventory.Release(productID, amount)
}

func (s *Service) InventoryReport(ctx context.Context) string {
	return s.inventory.Report()
}

func (s *Service) CreateOrder(ctx context.Context, orderID, customerID string) (*domain.Order, error) {
	order, err := s.orders.Create(orderID, customerID)
	if err != nil {
		return nil, err
	}
	order.SetPriceTolerance(s.priceTol)
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.Order(orderID)
}

func (s *Service) ListOrders(ctx context.Context) []*domain.Order {
	return s.orders.Orders()
}

func (s *Service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) []*domain.Order {
	return s.orders.ByStatus(status)
}

func (s *Service) ListOrdersByCustomer(ctx context.Context, customerID string) []*domain.Order {
	return s.orders.ByCustomer(customerID)
}

func (s *Service) AddOrderItem(ctx context.Context, orderID, productID string,
	quantity int, unitPrice decimal.Decimal) error {
	order, err := s.orders.Order(orderID)
	if err != nil {
		return err
	}
	if !order.AddItem(productID, quantity, unitPrice) {
		return domain.ErrOrderNotModifiable
	}
	return nil
}

func (s *Service) RemoveOrderItem(ctx context.Context, orderID, productID string) error {
	order, err := s.orders.Order(orderID)
	if err != nil {
		return err
	}
	if !order.RemoveItem(productID) {
		return domain.ErrOrderNotModifiable
	}
	return nil
}

func (s *Service) ValidateOrder(ctx context.Context, orderID string) ([]string, error) {
	order, err := s.orders.Order(orderID)
	if err != nil {
		return nil, err
	}
	return order.Validate(s.inventory), nil
}

func (s *Service) ProcessOrder(ctx context.Context, orderID string) error {
	order, err := s.orders.Order(orderID)
	if err != nil {
		return err
	}

	err = order.Process(s.inventory)
	if err != nil {
		s.logger.Info("order processing failed",
			zap.String("order", orderID), zap.Error(err))
	}
	return err
}

func (s *Service) ProcessOrderAsync(ctx context.Context, orderID string) (*worker.Result, error) {
	order, err := s.orders.Order(orderID)
	if err != nil {
		return nil, err
	}
	return order.ProcessAsync(s.inventory, s.pool), nil
}

func (s *Service) ProcessAllPending(ctx context.Context, maxConcurrent int) (int, error) {
	return s.orders.ProcessAllPending(s.inventory, maxConcurrent), nil
}

func (s *Service) CancelOrder(ctx context.Context, orderID, reason string) error {
	order, err := s.orders.Order(orderID)
	if err != nil {
		return err
	}
	if !order.Cancel(reason) {
		return domain.ErrOrderNotModifiable
	}
	return nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	order, err := s.orders.Order(orderID)
	if err != nil {
		return err
	}
	if !order.UpdateStatus(status) {
		return domain.ErrOrderNotModifiable
	}
	return nil
}

func (s *Service) RemoveOrder(ctx context.Context, orderID string) error {
	return s.orders.Remove(orderID)
}

func (s *Service) ClearCompleted(ctx context.Context) int {
	return s.orders.ClearCompleted()
}

func (s *Service) OrderStatistics(ctx context.Context) string {
	return s.orders.Statistics()
}
