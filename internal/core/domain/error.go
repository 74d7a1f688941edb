package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Ledger errors.
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNegativeAmount    = errors.New("amount cannot be negative")

	// * Order state errors.
	ErrOrderBusy          = errors.New("order is already being processed")
	ErrOrderNotPending    = errors.New("order cannot be processed in its current status")
	ErrOrderNotModifiable = errors.New("order cannot be modified in its current status")
	ErrOrderValidation    = errors.New("order validation failed")

	// * Argument errors.
	ErrEmptyOrderID    = errors.New("order id cannot be empty")
	ErrEmptyCustomerID = errors.New("customer id cannot be empty")
	ErrEmptyProductID  = errors.New("product id cannot be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
)
