package entity

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/go-oanda/codec"
)

// Granularity is a candlestick interval accepted by the candles endpoint.
type Granularity string

const (
	GranularityS5  Granularity = "S5"
	GranularityS10 Granularity = "S10"
	GranularityS15 Granularity = "S15"
	GranularityS30 Granularity = "S30"
	GranularityM1  Granularity = "M1"
	GranularityM2  Granularity = "M2"
	GranularityM4  Granularity = "M4"
	GranularityM5  Granularity = "M5"
	GranularityM10 Granularity = "M10"
	GranularityM15 Granularity = "M15"
	GranularityM30 Granularity = "M30"
	GranularityH1  Granularity = "H1"
	GranularityH2  Granularity = "H2"
	GranularityH3  Granularity = "H3"
	GranularityH4  Granularity = "H4"
	GranularityH6  Granularity = "H6"
	GranularityH8  Granularity = "H8"
	GranularityH12 Granularity = "H12"
	GranularityD   Granularity = "D"
	GranularityW   Granularity = "W"
	GranularityMon Granularity = "M"
)

// CandlestickData is one OHLC bar for a single price component.
type CandlestickData struct {
	Open  decimal.Decimal `json:"o"`
	High  decimal.Decimal `json:"h"`
	Low   decimal.Decimal `json:"l"`
	Close decimal.Decimal `json:"c"`
}

// Candlestick carries the bid/mid/ask components the request asked for;
// components that were not requested stay nil.
type Candlestick struct {
	Time     codec.Timestamp  `json:"time"`
	Bid      *CandlestickData `json:"bid,omitempty"`
	Mid      *CandlestickData `json:"mid,omitempty"`
	Ask      *CandlestickData `json:"ask,omitempty"`
	Volume   int64            `json:"volume"`
	Complete bool             `json:"complete"`
}
