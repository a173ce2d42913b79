package entity

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/go-oanda/codec"
)

// AccountProperties is the short account record returned by the
// account list endpoint.
type AccountProperties struct {
	ID           string          `json:"id"`
	MT4AccountID codec.IntString `json:"mt4AccountID"`
	Tags         []string        `json:"tags,omitempty"`
}

// AccountSummary is the account state without the open order/trade/position
// collections. The full account endpoint embeds it.
type AccountSummary struct {
	ID                string          `json:"id"`
	Alias             string          `json:"alias,omitempty"`
	Currency          string          `json:"currency"`
	Balance           decimal.Decimal `json:"balance"`
	NAV               decimal.Decimal `json:"NAV"`
	PL                decimal.Decimal `json:"pl"`
	UnrealizedPL      decimal.Decimal `json:"unrealizedPL"`
	ResettablePL      decimal.Decimal `json:"resettablePL"`
	ResettablePLTime  codec.Timestamp `json:"resettablePLTime"`
	MarginRate        decimal.Decimal `json:"marginRate"`
	MarginUsed        decimal.Decimal `json:"marginUsed"`
	MarginAvailable   decimal.Decimal `json:"marginAvailable"`
	OpenTradeCount    int             `json:"openTradeCount"`
	OpenPositionCount int             `json:"openPositionCount"`
	PendingOrderCount int             `json:"pendingOrderCount"`
	HedgingEnabled    bool            `json:"hedgingEnabled"`
	CreatedTime       codec.Timestamp `json:"createdTime"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}

// Account is the full account state, open collections included.
type Account struct {
	AccountSummary
	Trades    []Trade    `json:"trades,omitempty"`
	Positions []Position `json:"positions,omitempty"`
	Orders    []Order    `json:"orders,omitempty"`
}

// AccountChanges lists everything that happened to the account since a
// given transaction ID.
type AccountChanges struct {
	OrdersCreated   []Order       `json:"ordersCreated,omitempty"`
	OrdersCancelled []Order       `json:"ordersCancelled,omitempty"`
	OrdersFilled    []Order       `json:"ordersFilled,omitempty"`
	TradesOpened    []Trade       `json:"tradesOpened,omitempty"`
	TradesReduced   []Trade       `json:"tradesReduced,omitempty"`
	TradesClosed    []Trade       `json:"tradesClosed,omitempty"`
	Positions       []Position    `json:"positions,omitempty"`
	Transactions    []Transaction `json:"transactions,omitempty"`
}

// AccountChangesState is the price-dependent part of the account state.
type AccountChangesState struct {
	UnrealizedPL    decimal.Decimal `json:"unrealizedPL"`
	NAV             decimal.Decimal `json:"NAV"`
	MarginUsed      decimal.Decimal `json:"marginUsed"`
	MarginAvailable decimal.Decimal `json:"marginAvailable"`
}
