package oanda

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/go-oanda/entity"
)

func TestCreateMarketOrder(t *testing.T) {
	var gotBody []byte
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/accounts/101-004-1234567-001/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotBody, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"orderCreateTransaction": {"id": "6358", "type": "MARKET_ORDER", "time": "2024-01-15T09:45:30Z", "instrument": "EUR_USD", "units": "100"},
			"orderFillTransaction": {"id": "6359", "type": "ORDER_FILL", "time": "2024-01-15T09:45:30Z", "instrument": "EUR_USD", "units": "100", "price": "1.09432"},
			"relatedTransactionIDs": ["6358", "6359"],
			"lastTransactionID": "6359"
		}`))
	}))

	order := entity.NewMarketOrderRequest("EUR_USD", decimal.NewFromInt(100))
	resp, err := c.CreateMarketOrder(context.Background(), "101-004-1234567-001", order)
	require.NoError(t, err)

	var sent struct {
		Order struct {
			Type       string `json:"type"`
			Instrument string `json:"instrument"`
			Units      string `json:"units"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	assert.Equal(t, "MARKET", sent.Order.Type)
	assert.Equal(t, "EUR_USD", sent.Order.Instrument)
	assert.Equal(t, "100", sent.Order.Units)

	require.NotNil(t, resp.OrderFillTransaction)
	assert.Equal(t, "1.09432", resp.OrderFillTransaction.Price.String())
	require.Len(t, resp.RelatedTransactionIDs, 2)
	assert.Equal(t, int32(6358), resp.RelatedTransactionIDs[0].Value)
}

func TestCreateMarketOrder_Rejected(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{
			"orderRejectTransaction": {
				"id": "6360", "type": "MARKET_ORDER_REJECT", "time": "2024-01-15T09:45:30Z",
				"instrument": "EUR_USD", "units": "10000000", "rejectReason": "INSUFFICIENT_MARGIN"
			},
			"errorCode": "MARKET_ORDER_REJECT",
			"errorMessage": "The market order was rejected"
		}`))
	}))

	order := entity.NewMarketOrderRequest("EUR_USD", decimal.NewFromInt(10000000))
	_, err := c.CreateMarketOrder(context.Background(), "101-004-1234567-001", order)
	require.Error(t, err)

	var rejErr *OrderRejectError
	require.ErrorAs(t, err, &rejErr)
	assert.Equal(t, "EUR_USD", rejErr.Instrument)
	assert.Equal(t, "INSUFFICIENT_MARGIN", rejErr.RejectReason)
	assert.Equal(t, "MARKET_ORDER_REJECT", rejErr.ErrorCode)
	assert.True(t, rejErr.Units.Equal(decimal.NewFromInt(10000000)))
}

func TestCancelOrder(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v3/accounts/101-004-1234567-001/orders/6358/cancel", r.URL.Path)
		w.Write([]byte(`{
			"orderCancelTransaction": {"id": "6361", "type": "ORDER_CANCEL", "time": "2024-01-15T09:50:00Z", "orderID": "6358"},
			"lastTransactionID": "6361"
		}`))
	}))

	resp, err := c.CancelOrder(context.Background(), "101-004-1234567-001", "6358")
	require.NoError(t, err)

	require.NotNil(t, resp.OrderCancelTransaction)
	assert.Equal(t, int32(6358), resp.OrderCancelTransaction.OrderID.Value)
}

func TestListOrders_Query(t *testing.T) {
	var gotQuery string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"orders": [], "lastTransactionID": "6361"}`))
	}))

	_, err := c.ListOrders(context.Background(), "101-004-1234567-001", ListOrdersRequest{
		Instrument: "EUR_USD",
		State:      entity.OrderStatePending,
		Count:      50,
	})
	require.NoError(t, err)
	assert.Equal(t, "count=50&instrument=EUR_USD&state=PENDING", gotQuery)
}

func TestCloseTrade(t *testing.T) {
	var gotBody []byte
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/accounts/101-004-1234567-001/trades/6395/close", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{
			"orderFillTransaction": {"id": "6362", "type": "ORDER_FILL", "time": "2024-01-15T10:00:00Z", "pl": "12.50"},
			"lastTransactionID": "6362"
		}`))
	}))

	resp, err := c.CloseTrade(context.Background(), "101-004-1234567-001", "6395")
	require.NoError(t, err)

	assert.JSONEq(t, `{"units": "ALL"}`, string(gotBody))
	require.NotNil(t, resp.OrderFillTransaction)
	assert.True(t, resp.OrderFillTransaction.PL.Equal(decimal.RequireFromString("12.50")))
}

func TestCreateOrder_MissingAccountID(t *testing.T) {
	c := NewClient(PracticeHost, "test-token")

	_, err := c.CreateMarketOrder(context.Background(), "", entity.NewMarketOrderRequest("EUR_USD", decimal.NewFromInt(1)))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "account id", verr.Param)
}
