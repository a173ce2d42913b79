package oanda

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/vadiminshakov/go-oanda/entity"
)

// CandlesRequest selects candlestick data for one instrument. Zero
// fields are left to server defaults. Count must not be combined with
// both From and To; the server rejects that combination.
type CandlesRequest struct {
	Instrument string
	// Price is any combination of "M" (mid), "B" (bid) and "A" (ask).
	Price             string
	Granularity       entity.Granularity
	Count             int
	From              time.Time
	To                time.Time
	Smooth            *bool
	IncludeFirst      *bool
	DailyAlignment    *int
	AlignmentTimezone string
	WeeklyAlignment   string
}

func (r CandlesRequest) query() url.Values {
	q := url.Values{}
	if r.Price != "" {
		q.Set("price", r.Price)
	}
	if r.Granularity != "" {
		q.Set("granularity", string(r.Granularity))
	}
	if r.Count > 0 {
		q.Set("count", strconv.Itoa(r.Count))
	}
	if !r.From.IsZero() {
		q.Set("from", queryTime(r.From))
	}
	if !r.To.IsZero() {
		q.Set("to", queryTime(r.To))
	}
	if r.Smooth != nil {
		q.Set("smooth", strconv.FormatBool(*r.Smooth))
	}
	if r.IncludeFirst != nil {
		q.Set("includeFirst", strconv.FormatBool(*r.IncludeFirst))
	}
	if r.DailyAlignment != nil {
		q.Set("dailyAlignment", strconv.Itoa(*r.DailyAlignment))
	}
	if r.AlignmentTimezone != "" {
		q.Set("alignmentTimezone", r.AlignmentTimezone)
	}
	if r.WeeklyAlignment != "" {
		q.Set("weeklyAlignment", r.WeeklyAlignment)
	}
	return q
}

// CandlesResponse carries the candlesticks that satisfied the request.
type CandlesResponse struct {
	Instrument  string               `json:"instrument"`
	Granularity entity.Granularity   `json:"granularity"`
	Candles     []entity.Candlestick `json:"candles"`
}

// GetCandles fetches candlestick data for an instrument.
func (c *Client) GetCandles(ctx context.Context, req CandlesRequest) (*CandlesResponse, error) {
	if req.Instrument == "" {
		return nil, errMissingInstrument
	}

	var out CandlesResponse
	if err := c.get(ctx, instrumentPath(req.Instrument)+"/candles", req.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrderBookResponse wraps the order book snapshot.
type GetOrderBookResponse struct {
	OrderBook entity.Book `json:"orderBook"`
}

// GetOrderBook fetches the order book for an instrument. A zero time
// requests the most recent snapshot.
func (c *Client) GetOrderBook(ctx context.Context, instrument string, at time.Time) (*GetOrderBookResponse, error) {
	if instrument == "" {
		return nil, errMissingInstrument
	}

	query := url.Values{}
	if !at.IsZero() {
		query.Set("time", queryTime(at))
	}

	var out GetOrderBookResponse
	if err := c.get(ctx, instrumentPath(instrument)+"/orderBook", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPositionBookResponse wraps the position book snapshot.
type GetPositionBookResponse struct {
	PositionBook entity.Book `json:"positionBook"`
}

// GetPositionBook fetches the position book for an instrument. A zero
// time requests the most recent snapshot.
func (c *Client) GetPositionBook(ctx context.Context, instrument string, at time.Time) (*GetPositionBookResponse, error) {
	if instrument == "" {
		return nil, errMissingInstrument
	}

	query := url.Values{}
	if !at.IsZero() {
		query.Set("time", queryTime(at))
	}

	var out GetPositionBookResponse
	if err := c.get(ctx, instrumentPath(instrument)+"/positionBook", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func instrumentPath(instrument string) string {
	return "/v3/instruments/" + url.PathEscape(instrument)
}
