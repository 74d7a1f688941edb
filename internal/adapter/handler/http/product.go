package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cjaradhye/quirkventory/internal/core/domain"
	"github.com/cjaradhye/quirkventory/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.Service
}

func NewProductHandler(service port.Service, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createProductReq struct {
	ID       string     `json:"id" binding:"required"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Price    float64    `json:"price"`
	Quantity int        `json:"quantity"`
	Expiry   *time.Time `json:"expiry,omitempty"`
	Storage  string     `json:"storage,omitempty"`
}

type productResp struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Price    string     `json:"price"`
	Quantity int        `json:"quantity"`
	Expired  bool       `json:"expired"`
	Expiry   *time.Time `json:"expiry,omitempty"`
}

func newProductResp(p domain.Product) productResp {
	return productResp{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price.String(),
		Quantity: p.Quantity,
		Expired:  p.IsExpired(),
		Expiry:   p.Expiry,
	}
}

func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	var req createProductReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrNegativePrice)
		return
	}

	var product *domain.Product
	if req.Expiry != nil {
		product, err = domain.NewPerishableProduct(req.ID, req.Name, req.Category,
			price, req.Quantity, *req.Expiry, req.Storage)
	} else {
		product, err = domain.NewProduct(req.ID, req.Name, req.Category, price, req.Quantity)
	}
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	if err := ph.service.AddProduct(ctx, product); err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newProductResp(*product), http.StatusCreated)
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	product, err := ph.service.GetProduct(ctx, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResp(product))
}

func (ph *ProductHandler) DeleteProduct(ctx *gin.Context) {
	if err := ph.service.RemoveProduct(ctx, ctx.Param("id")); err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

// ListProducts supports filtering by category, name search, and the
// low_stock / expired views.
func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	var products []domain.Product

	switch {
	case ctx.Query("category") != "":
		products = ph.service.ListProductsByCategory(ctx, ctx.Query("category"))
	case ctx.Query("search") != "":
		products = ph.service.SearchProducts(ctx, ctx.Query("search"))
	case ctx.Query("low_stock") == "true":
		products = ph.service.ListLowStock(ctx)
	case ctx.Query("expired") == "true":
		products = ph.service.ListExpired(ctx)
	default:
		products = ph.service.ListProducts(ctx)
	}

	result := make([]productResp, 0, len(products))
	for _, p := range products {
		result = append(result, newProductResp(p))
	}

	ph.handleSuccess(ctx, result)
}

type restockReq struct {
	Amount int `json:"amount" binding:"required"`
}

func (ph *ProductHandler) RestockProduct(ctx *gin.Context) {
	var req restockReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := ph.service.Restock(ctx, ctx.Param("id"), req.Amount); err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusAccepted)
}

func parseIntQuery(ctx *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return fallback
	}
	return value
}
