package oanda

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// APIError is a non-2xx response from the v20 REST API with the error
// payload the server attached to it.
type APIError struct {
	StatusCode   int
	ErrorCode    string
	ErrorMessage string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oanda API error (HTTP %d): %s (%s)", e.StatusCode, e.ErrorMessage, e.ErrorCode)
}

// OrderRejectError means the server processed an order request and
// refused it, returning a reject transaction explaining why.
type OrderRejectError struct {
	Instrument   string
	Units        decimal.Decimal
	RejectReason string
	ErrorCode    string
	ErrorMessage string
}

func (e *OrderRejectError) Error() string {
	return fmt.Sprintf("oanda rejected order for %s %s units: %s (%s): %s",
		e.Instrument, e.Units, e.RejectReason, e.ErrorCode, e.ErrorMessage)
}

// ValidationError is a request that is missing a required parameter.
// It is returned before any network I/O happens.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required but was not provided", e.Param)
}

var (
	errMissingAccountID      = &ValidationError{Param: "account id"}
	errMissingInstrument     = &ValidationError{Param: "instrument"}
	errMissingOrderSpecifier = &ValidationError{Param: "order specifier"}
	errMissingTradeSpecifier = &ValidationError{Param: "trade specifier"}
	errMissingTransactionID  = &ValidationError{Param: "transaction id"}
)
