package oanda

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vadiminshakov/go-oanda/codec"
	"github.com/vadiminshakov/go-oanda/entity"
)

// ListTransactionsRequest selects a window of the transaction log.
type ListTransactionsRequest struct {
	From     time.Time
	To       time.Time
	PageSize int
	Types    []entity.TransactionType
}

func (r ListTransactionsRequest) query() url.Values {
	q := url.Values{}
	if !r.From.IsZero() {
		q.Set("from", queryTime(r.From))
	}
	if !r.To.IsZero() {
		q.Set("to", queryTime(r.To))
	}
	if r.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(r.PageSize))
	}
	if len(r.Types) > 0 {
		types := make([]string, len(r.Types))
		for i, t := range r.Types {
			types[i] = string(t)
		}
		q.Set("type", strings.Join(types, ","))
	}
	return q
}

// ListTransactionsResponse describes the pages covering the requested
// window; the pages themselves are fetched separately.
type ListTransactionsResponse struct {
	From              codec.Timestamp `json:"from"`
	To                codec.Timestamp `json:"to"`
	PageSize          int             `json:"pageSize"`
	Count             int             `json:"count"`
	Pages             []string        `json:"pages,omitempty"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}

// ListTransactions lists the pages of transactions in a time window.
func (c *Client) ListTransactions(ctx context.Context, accountID string, req ListTransactionsRequest) (*ListTransactionsResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out ListTransactionsResponse
	if err := c.get(ctx, accountPath(accountID)+"/transactions", req.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransactionResponse wraps a single transaction.
type GetTransactionResponse struct {
	Transaction       entity.Transaction `json:"transaction"`
	LastTransactionID codec.IntString    `json:"lastTransactionID"`
}

// GetTransaction fetches one transaction by ID.
func (c *Client) GetTransaction(ctx context.Context, accountID string, transactionID int32) (*GetTransactionResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if transactionID <= 0 {
		return nil, errMissingTransactionID
	}

	path := accountPath(accountID) + "/transactions/" + strconv.FormatInt(int64(transactionID), 10)

	var out GetTransactionResponse
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransactionsResponse holds a contiguous run of transactions.
type GetTransactionsResponse struct {
	Transactions      []entity.Transaction `json:"transactions"`
	LastTransactionID codec.IntString      `json:"lastTransactionID"`
}

// GetTransactionRange fetches every transaction with an ID between
// from and to, inclusive.
func (c *Client) GetTransactionRange(ctx context.Context, accountID string, from, to int32) (*GetTransactionsResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if from <= 0 || to <= 0 {
		return nil, errMissingTransactionID
	}

	query := url.Values{}
	query.Set("from", strconv.FormatInt(int64(from), 10))
	query.Set("to", strconv.FormatInt(int64(to), 10))

	var out GetTransactionsResponse
	if err := c.get(ctx, accountPath(accountID)+"/transactions/idrange", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransactionsSinceID fetches all transactions after the given ID.
func (c *Client) GetTransactionsSinceID(ctx context.Context, accountID string, sinceID int32) (*GetTransactionsResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	query := url.Values{}
	query.Set("id", strconv.FormatInt(int64(sinceID), 10))

	var out GetTransactionsResponse
	if err := c.get(ctx, accountPath(accountID)+"/transactions/sinceid", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
