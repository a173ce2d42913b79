package oanda

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTransactionRange(t *testing.T) {
	var gotPath, gotQuery string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"transactions": [
				{"id": "6357", "type": "MARKET_ORDER", "time": "2024-01-15T09:45:30Z", "instrument": "EUR_USD", "units": "100"},
				{"id": "6358", "type": "ORDER_FILL", "time": "2024-01-15T09:45:30Z", "instrument": "EUR_USD", "units": "100", "price": "1.09432"}
			],
			"lastTransactionID": "6358"
		}`))
	}))

	resp, err := c.GetTransactionRange(context.Background(), "101-004-1234567-001", 6357, 6358)
	require.NoError(t, err)

	assert.Equal(t, "/v3/accounts/101-004-1234567-001/transactions/idrange", gotPath)
	assert.Equal(t, "from=6357&to=6358", gotQuery)
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, int32(6357), resp.Transactions[0].ID.Value)
	assert.Equal(t, int32(6358), resp.LastTransactionID.Value)
}

func TestGetTransactionRange_InvalidBounds(t *testing.T) {
	c := NewClient(PracticeHost, "test-token")

	_, err := c.GetTransactionRange(context.Background(), "101-004-1234567-001", 0, 6358)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "transaction id", verr.Param)
}

func TestGetTransactionsSinceID(t *testing.T) {
	var gotQuery string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"transactions": [], "lastTransactionID": "6358"}`))
	}))

	resp, err := c.GetTransactionsSinceID(context.Background(), "101-004-1234567-001", 6357)
	require.NoError(t, err)

	assert.Equal(t, "id=6357", gotQuery)
	assert.Equal(t, int32(6358), resp.LastTransactionID.Value)
}
