package entity

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/go-oanda/codec"
)

// BookBucket is one price band of an order or position book.
type BookBucket struct {
	Price             decimal.Decimal `json:"price"`
	LongCountPercent  decimal.Decimal `json:"longCountPercent"`
	ShortCountPercent decimal.Decimal `json:"shortCountPercent"`
}

// Book is a snapshot of open orders or positions bucketed by price.
type Book struct {
	Instrument  string          `json:"instrument"`
	Time        codec.Timestamp `json:"time"`
	Price       decimal.Decimal `json:"price"`
	BucketWidth decimal.Decimal `json:"bucketWidth"`
	Buckets     []BookBucket    `json:"buckets,omitempty"`
}
