package entity

import "github.com/shopspring/decimal"

// Instrument describes a tradeable instrument as the account sees it.
type Instrument struct {
	Name                        string          `json:"name"`
	Type                        string          `json:"type"`
	DisplayName                 string          `json:"displayName"`
	PipLocation                 int             `json:"pipLocation"`
	DisplayPrecision            int             `json:"displayPrecision"`
	TradeUnitsPrecision         int             `json:"tradeUnitsPrecision"`
	MinimumTradeSize            decimal.Decimal `json:"minimumTradeSize"`
	MaximumTrailingStopDistance decimal.Decimal `json:"maximumTrailingStopDistance"`
	MinimumTrailingStopDistance decimal.Decimal `json:"minimumTrailingStopDistance"`
	MaximumPositionSize         decimal.Decimal `json:"maximumPositionSize"`
	MaximumOrderUnits           decimal.Decimal `json:"maximumOrderUnits"`
	MarginRate                  decimal.Decimal `json:"marginRate"`
}
