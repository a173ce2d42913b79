package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/go-oanda/codec"
)

// OrderType is the v20 order type identifier.
type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeStop   OrderType = "STOP"
)

// TimeInForce controls how long an order stays working.
type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceGTD TimeInForce = "GTD"
	TimeInForceGFD TimeInForce = "GFD"
	TimeInForceFOK TimeInForce = "FOK"
	TimeInForceIOC TimeInForce = "IOC"
)

// OrderState is the lifecycle state of an order.
type OrderState string

const (
	OrderStatePending   OrderState = "PENDING"
	OrderStateFilled    OrderState = "FILLED"
	OrderStateTriggered OrderState = "TRIGGERED"
	OrderStateCancelled OrderState = "CANCELLED"
)

// ClientExtensions let the client attach its own identifiers to orders
// and trades.
type ClientExtensions struct {
	ID      string `json:"id,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// NewClientExtensions builds extensions with a generated unique ID, so
// fills can be correlated back to the request that caused them.
func NewClientExtensions(tag, comment string) *ClientExtensions {
	return &ClientExtensions{
		ID:      uuid.NewString(),
		Tag:     tag,
		Comment: comment,
	}
}

// MarketOrderRequest creates an order that fills immediately at the
// current market price.
type MarketOrderRequest struct {
	Type             OrderType         `json:"type"`
	Instrument       string            `json:"instrument"`
	Units            decimal.Decimal   `json:"units"`
	TimeInForce      TimeInForce       `json:"timeInForce,omitempty"`
	PriceBound       *decimal.Decimal  `json:"priceBound,omitempty"`
	ClientExtensions *ClientExtensions `json:"clientExtensions,omitempty"`
}

// NewMarketOrderRequest fills in the fields the API requires for a
// market order; positive units buy, negative units sell.
func NewMarketOrderRequest(instrument string, units decimal.Decimal) MarketOrderRequest {
	return MarketOrderRequest{
		Type:        OrderTypeMarket,
		Instrument:  instrument,
		Units:       units,
		TimeInForce: TimeInForceFOK,
	}
}

// LimitOrderRequest creates an order that fills at the given price or
// better.
type LimitOrderRequest struct {
	Type             OrderType         `json:"type"`
	Instrument       string            `json:"instrument"`
	Units            decimal.Decimal   `json:"units"`
	Price            decimal.Decimal   `json:"price"`
	TimeInForce      TimeInForce       `json:"timeInForce,omitempty"`
	GTDTime          codec.Timestamp   `json:"gtdTime"`
	ClientExtensions *ClientExtensions `json:"clientExtensions,omitempty"`
}

// NewLimitOrderRequest builds a GTC limit order.
func NewLimitOrderRequest(instrument string, units, price decimal.Decimal) LimitOrderRequest {
	return LimitOrderRequest{
		Type:        OrderTypeLimit,
		Instrument:  instrument,
		Units:       units,
		Price:       price,
		TimeInForce: TimeInForceGTC,
	}
}

// StopOrderRequest creates an order that fills at the given price or
// worse.
type StopOrderRequest struct {
	Type             OrderType         `json:"type"`
	Instrument       string            `json:"instrument"`
	Units            decimal.Decimal   `json:"units"`
	Price            decimal.Decimal   `json:"price"`
	PriceBound       *decimal.Decimal  `json:"priceBound,omitempty"`
	TimeInForce      TimeInForce       `json:"timeInForce,omitempty"`
	GTDTime          codec.Timestamp   `json:"gtdTime"`
	ClientExtensions *ClientExtensions `json:"clientExtensions,omitempty"`
}

// NewStopOrderRequest builds a GTC stop order.
func NewStopOrderRequest(instrument string, units, price decimal.Decimal) StopOrderRequest {
	return StopOrderRequest{
		Type:        OrderTypeStop,
		Instrument:  instrument,
		Units:       units,
		Price:       price,
		TimeInForce: TimeInForceGTC,
	}
}

// Order is an order as the server reports it.
type Order struct {
	ID                   codec.IntString   `json:"id"`
	Type                 OrderType         `json:"type"`
	State                OrderState        `json:"state"`
	Instrument           string            `json:"instrument,omitempty"`
	Units                decimal.Decimal   `json:"units"`
	Price                decimal.Decimal   `json:"price"`
	TimeInForce          TimeInForce       `json:"timeInForce,omitempty"`
	CreateTime           codec.Timestamp   `json:"createTime"`
	GTDTime              codec.Timestamp   `json:"gtdTime"`
	FilledTime           codec.Timestamp   `json:"filledTime"`
	CancelledTime        codec.Timestamp   `json:"cancelledTime"`
	FillingTransactionID codec.IntString   `json:"fillingTransactionID"`
	ClientExtensions     *ClientExtensions `json:"clientExtensions,omitempty"`
}
