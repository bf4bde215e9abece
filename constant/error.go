package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrNegativeQuantity
	ErrInsufficientStock
	ErrInvalidOrderStatus
	ErrMissingCredential
	ErrMarketplace
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrNegativeQuantity:   "quantity must not be negative",
	ErrInsufficientStock:  "insufficient stock",
	ErrInvalidOrderStatus: "invalid order status transition",
	ErrMissingCredential:  "marketplace credential not found",
	ErrMarketplace:        "marketplace request failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusBadRequest,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrNegativeQuantity:   http.StatusBadRequest,
	ErrInsufficientStock:  http.StatusBadRequest,
	ErrInvalidOrderStatus: http.StatusBadRequest,
	ErrMissingCredential:  http.StatusBadRequest,
	ErrMarketplace:        http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrNegativeQuantity:   "0005",
	ErrInsufficientStock:  "0006",
	ErrInvalidOrderStatus: "0007",
	ErrMissingCredential:  "0008",
	ErrMarketplace:        "0009",
}
