package entity

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/go-oanda/codec"
)

// TradeState is the lifecycle state of a trade.
type TradeState string

const (
	TradeStateOpen   TradeState = "OPEN"
	TradeStateClosed TradeState = "CLOSED"
)

// Trade is an open or historical trade. CloseTime stays unset while the
// trade is open; the API reports that as null or the "0" sentinel
// depending on the endpoint.
type Trade struct {
	ID                    codec.IntString   `json:"id"`
	Instrument            string            `json:"instrument"`
	State                 TradeState        `json:"state"`
	Price                 decimal.Decimal   `json:"price"`
	OpenTime              codec.Timestamp   `json:"openTime"`
	CloseTime             codec.Timestamp   `json:"closeTime"`
	InitialUnits          decimal.Decimal   `json:"initialUnits"`
	CurrentUnits          decimal.Decimal   `json:"currentUnits"`
	RealizedPL            decimal.Decimal   `json:"realizedPL"`
	UnrealizedPL          decimal.Decimal   `json:"unrealizedPL"`
	AverageClosePrice     decimal.Decimal   `json:"averageClosePrice"`
	ClosingTransactionIDs []codec.IntString `json:"closingTransactionIDs,omitempty"`
	Financing             decimal.Decimal   `json:"financing"`
	ClientExtensions      *ClientExtensions `json:"clientExtensions,omitempty"`
}
