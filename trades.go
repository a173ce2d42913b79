package oanda

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/go-oanda/codec"
	"github.com/vadiminshakov/go-oanda/entity"
)

// ListTradesRequest filters the trade list. Zero fields are left to
// server defaults.
type ListTradesRequest struct {
	Instrument string
	State      entity.TradeState
	Count      int
	BeforeID   int32
}

func (r ListTradesRequest) query() url.Values {
	q := url.Values{}
	if r.Instrument != "" {
		q.Set("instrument", r.Instrument)
	}
	if r.State != "" {
		q.Set("state", string(r.State))
	}
	if r.Count > 0 {
		q.Set("count", strconv.Itoa(r.Count))
	}
	if r.BeforeID > 0 {
		q.Set("beforeID", strconv.FormatInt(int64(r.BeforeID), 10))
	}
	return q
}

// ListTradesResponse holds a page of trades.
type ListTradesResponse struct {
	Trades            []entity.Trade  `json:"trades"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}

// ListTrades lists trades in the account, filtered by req.
func (c *Client) ListTrades(ctx context.Context, accountID string, req ListTradesRequest) (*ListTradesResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out ListTradesResponse
	if err := c.get(ctx, accountPath(accountID)+"/trades", req.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOpenTrades lists every open trade in the account.
func (c *Client) ListOpenTrades(ctx context.Context, accountID string) (*ListTradesResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out ListTradesResponse
	if err := c.get(ctx, accountPath(accountID)+"/openTrades", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTradeResponse wraps a single trade.
type GetTradeResponse struct {
	Trade             entity.Trade    `json:"trade"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}

// GetTrade fetches one trade. The specifier is either the trade ID or
// "@" followed by the client-provided extension ID.
func (c *Client) GetTrade(ctx context.Context, accountID, tradeSpecifier string) (*GetTradeResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if tradeSpecifier == "" {
		return nil, errMissingTradeSpecifier
	}

	var out GetTradeResponse
	if err := c.get(ctx, tradePath(accountID, tradeSpecifier), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseTradeResponse describes the market order that closed the trade.
type CloseTradeResponse struct {
	OrderCreateTransaction *entity.Transaction `json:"orderCreateTransaction,omitempty"`
	OrderFillTransaction   *entity.Transaction `json:"orderFillTransaction,omitempty"`
	RelatedTransactionIDs  []codec.IntString   `json:"relatedTransactionIDs,omitempty"`
	LastTransactionID      codec.IntString     `json:"lastTransactionID"`
}

// CloseTrade fully closes a trade.
func (c *Client) CloseTrade(ctx context.Context, accountID, tradeSpecifier string) (*CloseTradeResponse, error) {
	return c.closeTrade(ctx, accountID, tradeSpecifier, "ALL")
}

// CloseTradePartial closes part of a trade.
func (c *Client) CloseTradePartial(ctx context.Context, accountID, tradeSpecifier string, units decimal.Decimal) (*CloseTradeResponse, error) {
	return c.closeTrade(ctx, accountID, tradeSpecifier, units.String())
}

func (c *Client) closeTrade(ctx context.Context, accountID, tradeSpecifier, units string) (*CloseTradeResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if tradeSpecifier == "" {
		return nil, errMissingTradeSpecifier
	}

	body := struct {
		Units string `json:"units"`
	}{Units: units}

	var out CloseTradeResponse
	if err := c.put(ctx, tradePath(accountID, tradeSpecifier)+"/close", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func tradePath(accountID, tradeSpecifier string) string {
	return accountPath(accountID) + "/trades/" + url.PathEscape(tradeSpecifier)
}
