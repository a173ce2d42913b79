package entity

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/go-oanda/codec"
)

// PriceBucket is one level of the pricing ladder.
type PriceBucket struct {
	Price     decimal.Decimal `json:"price"`
	Liquidity int64           `json:"liquidity"`
}

// Price is a client price snapshot for a single instrument.
type Price struct {
	Type        string          `json:"type,omitempty"`
	Instrument  string          `json:"instrument"`
	Time        codec.Timestamp `json:"time"`
	Tradeable   bool            `json:"tradeable"`
	Bids        []PriceBucket   `json:"bids,omitempty"`
	Asks        []PriceBucket   `json:"asks,omitempty"`
	CloseoutBid decimal.Decimal `json:"closeoutBid"`
	CloseoutAsk decimal.Decimal `json:"closeoutAsk"`
}

// BestBid returns the top-of-book bid, or zero when the ladder is empty.
func (p *Price) BestBid() decimal.Decimal {
	if len(p.Bids) == 0 {
		return decimal.Zero
	}
	return p.Bids[0].Price
}

// BestAsk returns the top-of-book ask, or zero when the ladder is empty.
func (p *Price) BestAsk() decimal.Decimal {
	if len(p.Asks) == 0 {
		return decimal.Zero
	}
	return p.Asks[0].Price
}
