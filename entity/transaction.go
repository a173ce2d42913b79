package entity

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/go-oanda/codec"
)

// TransactionType identifies what a transaction did. The v20 API has
// several dozen; these are the ones this client inspects.
type TransactionType string

const (
	TransactionTypeMarketOrder       TransactionType = "MARKET_ORDER"
	TransactionTypeLimitOrder        TransactionType = "LIMIT_ORDER"
	TransactionTypeStopOrder         TransactionType = "STOP_ORDER"
	TransactionTypeOrderFill         TransactionType = "ORDER_FILL"
	TransactionTypeOrderCancel       TransactionType = "ORDER_CANCEL"
	TransactionTypeMarketOrderReject TransactionType = "MARKET_ORDER_REJECT"
)

// Transaction is a single entry from the account's transaction log.
// The v20 schema is polymorphic on type; this struct is the union of
// the fields the client reads, so fields irrelevant to a given type
// simply stay at their zero values.
type Transaction struct {
	ID               codec.IntString   `json:"id"`
	Type             TransactionType   `json:"type"`
	Time             codec.Timestamp   `json:"time"`
	AccountID        string            `json:"accountID,omitempty"`
	BatchID          codec.IntString   `json:"batchID"`
	RequestID        string            `json:"requestID,omitempty"`
	UserID           int               `json:"userID,omitempty"`
	Instrument       string            `json:"instrument,omitempty"`
	Units            decimal.Decimal   `json:"units"`
	Price            decimal.Decimal   `json:"price"`
	Reason           string            `json:"reason,omitempty"`
	RejectReason     string            `json:"rejectReason,omitempty"`
	PL               decimal.Decimal   `json:"pl"`
	Financing        decimal.Decimal   `json:"financing"`
	AccountBalance   decimal.Decimal   `json:"accountBalance"`
	OrderID          codec.IntString   `json:"orderID"`
	TradeID          codec.IntString   `json:"tradeID"`
	ClientExtensions *ClientExtensions `json:"clientExtensions,omitempty"`
}

// TransactionHeartbeat keeps a transaction stream alive between events.
type TransactionHeartbeat struct {
	Type              string          `json:"type"`
	Time              codec.Timestamp `json:"time"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}
