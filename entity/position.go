package entity

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/go-oanda/codec"
)

// PositionSide aggregates one direction of a position.
type PositionSide struct {
	Units        decimal.Decimal   `json:"units"`
	AveragePrice decimal.Decimal   `json:"averagePrice"`
	TradeIDs     []codec.IntString `json:"tradeIDs,omitempty"`
	PL           decimal.Decimal   `json:"pl"`
	UnrealizedPL decimal.Decimal   `json:"unrealizedPL"`
	ResettablePL decimal.Decimal   `json:"resettablePL"`
}

// Position is the net exposure in one instrument, split by direction.
type Position struct {
	Instrument   string          `json:"instrument"`
	PL           decimal.Decimal `json:"pl"`
	UnrealizedPL decimal.Decimal `json:"unrealizedPL"`
	ResettablePL decimal.Decimal `json:"resettablePL"`
	Long         PositionSide    `json:"long"`
	Short        PositionSide    `json:"short"`
}

// NetUnits returns long units minus short units magnitude. Short side
// units are already negative in the v20 representation, so this is a
// plain sum.
func (p *Position) NetUnits() decimal.Decimal {
	return p.Long.Units.Add(p.Short.Units)
}
