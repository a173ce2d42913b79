package oanda

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vadiminshakov/go-oanda/codec"
	"github.com/vadiminshakov/go-oanda/entity"
)

// CreateOrderResponse describes what creating an order did: the
// transactions written to the account log, in order.
type CreateOrderResponse struct {
	OrderCreateTransaction *entity.Transaction `json:"orderCreateTransaction,omitempty"`
	OrderFillTransaction   *entity.Transaction `json:"orderFillTransaction,omitempty"`
	OrderCancelTransaction *entity.Transaction `json:"orderCancelTransaction,omitempty"`
	RelatedTransactionIDs  []codec.IntString   `json:"relatedTransactionIDs,omitempty"`
	LastTransactionID      codec.IntString     `json:"lastTransactionID"`
}

type orderBody struct {
	Order any `json:"order"`
}

// CreateMarketOrder submits a market order. Rejections come back as
// *OrderRejectError.
func (c *Client) CreateMarketOrder(ctx context.Context, accountID string, order entity.MarketOrderRequest) (*CreateOrderResponse, error) {
	return c.createOrder(ctx, accountID, order)
}

// CreateLimitOrder submits a limit order.
func (c *Client) CreateLimitOrder(ctx context.Context, accountID string, order entity.LimitOrderRequest) (*CreateOrderResponse, error) {
	return c.createOrder(ctx, accountID, order)
}

// CreateStopOrder submits a stop order.
func (c *Client) CreateStopOrder(ctx context.Context, accountID string, order entity.StopOrderRequest) (*CreateOrderResponse, error) {
	return c.createOrder(ctx, accountID, order)
}

func (c *Client) createOrder(ctx context.Context, accountID string, order any) (*CreateOrderResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out CreateOrderResponse
	if err := c.post(ctx, accountPath(accountID)+"/orders", orderBody{Order: order}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrdersRequest filters the order list. Zero fields are left to
// server defaults.
type ListOrdersRequest struct {
	Instrument string
	State      entity.OrderState
	Count      int
	BeforeID   int32
}

func (r ListOrdersRequest) query() url.Values {
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

// ListOrdersResponse holds a page of orders.
type ListOrdersResponse struct {
	Orders            []entity.Order  `json:"orders"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}

// ListOrders lists orders in the account, filtered by req.
func (c *Client) ListOrders(ctx context.Context, accountID string, req ListOrdersRequest) (*ListOrdersResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out ListOrdersResponse
	if err := c.get(ctx, accountPath(accountID)+"/orders", req.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPendingOrders lists every pending order in the account.
func (c *Client) ListPendingOrders(ctx context.Context, accountID string) (*ListOrdersResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out ListOrdersResponse
	if err := c.get(ctx, accountPath(accountID)+"/pendingOrders", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrderResponse wraps a single order.
type GetOrderResponse struct {
	Order             entity.Order    `json:"order"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}

// GetOrder fetches one order. The specifier is either the order ID or
// "@" followed by the client-provided extension ID.
func (c *Client) GetOrder(ctx context.Context, accountID, orderSpecifier string) (*GetOrderResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if orderSpecifier == "" {
		return nil, errMissingOrderSpecifier
	}

	var out GetOrderResponse
	if err := c.get(ctx, orderPath(accountID, orderSpecifier), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplaceOrder cancels an order and creates a replacement in a single
// atomic step.
func (c *Client) ReplaceOrder(ctx context.Context, accountID, orderSpecifier string, order any) (*CreateOrderResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if orderSpecifier == "" {
		return nil, errMissingOrderSpecifier
	}

	var out CreateOrderResponse
	if err := c.put(ctx, orderPath(accountID, orderSpecifier), orderBody{Order: order}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrderResponse describes an order cancellation.
type CancelOrderResponse struct {
	OrderCancelTransaction *entity.Transaction `json:"orderCancelTransaction,omitempty"`
	RelatedTransactionIDs  []codec.IntString   `json:"relatedTransactionIDs,omitempty"`
	LastTransactionID      codec.IntString     `json:"lastTransactionID"`
}

// CancelOrder cancels a pending order.
func (c *Client) CancelOrder(ctx context.Context, accountID, orderSpecifier string) (*CancelOrderResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if orderSpecifier == "" {
		return nil, errMissingOrderSpecifier
	}

	var out CancelOrderResponse
	if err := c.put(ctx, orderPath(accountID, orderSpecifier)+"/cancel", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func orderPath(accountID, orderSpecifier string) string {
	return accountPath(accountID) + "/orders/" + url.PathEscape(orderSpecifier)
}
