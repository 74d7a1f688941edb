package http

import (
	"errors"
	"net/http"

	"github.com/cjaradhye/quirkventory/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrProductNotFound: http.StatusNotFound,
	domain.ErrOrderNotFound:   http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest:     http.StatusBadRequest,
	domain.ErrNegativeAmount: http.StatusBadRequest,
	domain.ErrNegativePrice:  http.StatusBadRequest,

	domain.ErrInsufficientStock: http.StatusConflict,

	domain.ErrOrderBusy:          http.StatusConflict,
	domain.ErrOrderNotPending:    http.StatusUnprocessableEntity,
	domain.ErrOrderNotModifiable: http.StatusUnprocessableEntity,
	domain.ErrOrderValidation:    http.StatusUnprocessableEntity,

	domain.ErrEmptyOrderID:    http.StatusBadRequest,
	domain.ErrEmptyCustomerID: http.StatusBadRequest,
	domain.ErrEmptyProductID:  http.StatusBadRequest,
}

func statusForError(err error) (int, bool) {
	for sentinel, code := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return code, true
		}
	}
	return http.StatusInternalServerError, false
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, known := statusForError(err)
	if !known {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, gin.H{"error": err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
