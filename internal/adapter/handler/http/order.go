package http

import (
	"net/http"
	"time"

	"github.com/cjaradhye/quirkventory/internal/core/domain"
	"github.com/cjaradhye/quirkventory/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createOrderReq struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id" binding:"required"`
}

type orderItemResp struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type orderResp struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Status     string          `json:"status"`
	Items      []orderItemResp `json:"items"`
	Total      string          `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	Error      string          `json:"error,omitempty"`
}

func newOrderResp(o *domain.Order) orderResp {
	items := o.Items()
	respItems := make([]orderItemResp, 0, len(items))
	for _, item := range items {
		respItems = append(respItems, orderItemResp{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		})
	}

	return orderResp{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Status:     string(o.Status()),
		Items:      respItems,
		Total:      o.TotalAmount().String(),
		CreatedAt:  o.CreatedAt(),
		Error:      o.ErrorMessage(),
	}
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	order, err := oh.service.CreateOrder(ctx, req.ID, req.CustomerID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResp(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	var orders []*domain.Order

	switch {
	case ctx.Query("status") != "":
		orders = oh.service.ListOrdersByStatus(ctx, domain.OrderStatus(ctx.Query("status")))
	case ctx.Query("customer") != "":
		orders = oh.service.ListOrdersByCustomer(ctx, ctx.Query("customer"))
	default:
		orders = oh.service.ListOrders(ctx)
	}

	result := make([]orderResp, 0, len(orders))
	for _, o := range orders {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

type addItemReq struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

func (oh *OrderHandler) AddItem(ctx *gin.Context) {
	var req addItemReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	price, err := decimal.NewFromFloat64(req.UnitPrice)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrNegativePrice)
		return
	}

	err = oh.service.AddOrderItem(ctx, ctx.Param("id"), req.ProductID, req.Quantity, price)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) RemoveItem(ctx *gin.Context) {
	err := oh.service.RemoveOrderItem(ctx, ctx.Param("id"), ctx.Param("product"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) ValidateOrder(ctx *gin.Context) {
	problems, err := oh.service.ValidateOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	if problems == nil {
		problems = []string{}
	}
	oh.handleSuccess(ctx, gin.H{"valid": len(problems) == 0, "errors": problems})
}

// ProcessOrder runs the order synchronously, or schedules it on the worker
// pool when async=true and returns immediately.
func (oh *OrderHandler) ProcessOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")

	if ctx.Query("async") == "true" {
		if _, err := oh.service.ProcessOrderAsync(ctx, orderID); err != nil {
			oh.handleError(ctx, err)
			return
		}
		oh.handleSuccessWithStatus(ctx, nil, http.StatusAccepted)
		return
	}

	if err := oh.service.ProcessOrder(ctx, orderID); err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, newOrderResp(order))
}

type processPendingReq struct {
	MaxConcurrent int `json:"max_concurrent"`
}

func (oh *OrderHandler) ProcessAllPending(ctx *gin.Context) {
	var req processPendingReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	successful, err := oh.service.ProcessAllPending(ctx, req.MaxConcurrent)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{"successful": successful})
}

type cancelOrderReq struct {
	Reason string `json:"reason"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	var req cancelOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := oh.service.CancelOrder(ctx, ctx.Param("id"), req.Reason); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (oh *OrderHandler) UpdateStatus(ctx *gin.Context) {
	var req updateStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err := oh.service.UpdateOrderStatus(ctx, ctx.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	if err := oh.service.RemoveOrder(ctx, ctx.Param("id")); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) ClearCompleted(ctx *gin.Context) {
	cleared := oh.service.ClearCompleted(ctx)
	oh.handleSuccess(ctx, gin.H{"cleared": cleared})
}
