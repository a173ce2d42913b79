package oanda

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/go-oanda/entity"
)

func TestStreamPricing(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/accounts/101-004-1234567-001/pricing/stream", r.URL.Path)
		assert.Equal(t, "EUR_USD,USD_JPY", r.URL.Query().Get("instruments"))

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		lines := []string{
			`{"type": "PRICE", "instrument": "EUR_USD", "time": "2024-01-15T09:45:30.123456789Z", "tradeable": true, "bids": [{"price": "1.09430", "liquidity": 1000000}], "asks": [{"price": "1.09434", "liquidity": 1000000}]}`,
			`{"type": "HEARTBEAT", "time": "2024-01-15T09:45:35Z"}`,
			`{"type": "PRICE", "instrument": "USD_JPY", "time": "2024-01-15T09:45:36Z", "tradeable": true, "bids": [{"price": "147.012", "liquidity": 500000}], "asks": [{"price": "147.018", "liquidity": 500000}]}`,
		}
		for _, line := range lines {
			_, _ = w.Write([]byte(line + "\n"))
			flusher.Flush()
		}
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prices, errs := c.StreamPricing(ctx, "101-004-1234567-001", []string{"EUR_USD", "USD_JPY"})

	var got []entity.Price
	for p := range prices {
		got = append(got, p)
	}

	// Heartbeats are filtered out, only the two prices arrive.
	require.Len(t, got, 2)
	assert.Equal(t, "EUR_USD", got[0].Instrument)
	assert.Equal(t, 123456789, got[0].Time.Nanosecond())
	assert.True(t, got[0].BestBid().Equal(decimal.RequireFromString("1.09430")))
	assert.Equal(t, "USD_JPY", got[1].Instrument)

	require.NoError(t, <-errs)
}

func TestStreamPricing_AuthFailure(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errorCode": "UNAUTHORIZED", "errorMessage": "Insufficient authorization to perform request"}`))
	}))

	prices, errs := c.StreamPricing(context.Background(), "101-004-1234567-001", []string{"EUR_USD"})

	for range prices {
		t.Fatal("no prices expected from an unauthorized stream")
	}

	err := <-errs
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", apiErr.ErrorCode)
}

func TestStreamPricing_MissingInstruments(t *testing.T) {
	c := NewClient(PracticeHost, "test-token")

	prices, errs := c.StreamPricing(context.Background(), "101-004-1234567-001", nil)

	for range prices {
		t.Fatal("no prices expected")
	}

	var verr *ValidationError
	require.ErrorAs(t, <-errs, &verr)
	assert.Equal(t, "instrument", verr.Param)
}

func TestStreamTransactions(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/accounts/101-004-1234567-001/transactions/stream", r.URL.Path)

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		lines := []string{
			`{"type": "HEARTBEAT", "time": "2024-01-15T09:45:30Z", "lastTransactionID": "6362"}`,
			`{"type": "ORDER_FILL", "id": "6363", "time": "2024-01-15T09:45:31Z", "instrument": "EUR_USD", "units": "100", "price": "1.09432"}`,
		}
		for _, line := range lines {
			_, _ = w.Write([]byte(line + "\n"))
			flusher.Flush()
		}
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	txs, errs := c.StreamTransactions(ctx, "101-004-1234567-001")

	var got []entity.Transaction
	for tx := range txs {
		got = append(got, tx)
	}

	require.Len(t, got, 1)
	assert.Equal(t, entity.TransactionTypeOrderFill, got[0].Type)
	assert.Equal(t, int32(6363), got[0].ID.Value)

	require.NoError(t, <-errs)
}
