package oanda

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vadiminshakov/go-oanda/codec"
	"github.com/vadiminshakov/go-oanda/entity"
)

// ListAccountsResponse holds the accounts the token is authorized for.
type ListAccountsResponse struct {
	Accounts []entity.AccountProperties `json:"accounts"`
}

// ListAccounts lists the accounts accessible with the client's token.
func (c *Client) ListAccounts(ctx context.Context) (*ListAccountsResponse, error) {
	var out ListAccountsResponse
	if err := c.get(ctx, "/v3/accounts", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAccountResponse is the full account state.
type GetAccountResponse struct {
	Account           entity.Account  `json:"account"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}

// GetAccount fetches the full state of one account, open trades,
// orders and positions included.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*GetAccountResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out GetAccountResponse
	if err := c.get(ctx, accountPath(accountID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAccountSummaryResponse is the account state without the open
// collections.
type GetAccountSummaryResponse struct {
	Account           entity.AccountSummary `json:"account"`
	LastTransactionID codec.IntString       `json:"lastTransactionID"`
}

// GetAccountSummary fetches the account summary.
func (c *Client) GetAccountSummary(ctx context.Context, accountID string) (*GetAccountSummaryResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out GetAccountSummaryResponse
	if err := c.get(ctx, accountPath(accountID)+"/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAccountInstrumentsResponse lists the instruments the account may trade.
type GetAccountInstrumentsResponse struct {
	Instruments       []entity.Instrument `json:"instruments"`
	LastTransactionID codec.IntString     `json:"lastTransactionID"`
}

// GetAccountInstruments fetches instrument definitions; with no names
// given it returns every instrument the account can trade.
func (c *Client) GetAccountInstruments(ctx context.Context, accountID string, instruments ...string) (*GetAccountInstrumentsResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	query := url.Values{}
	if len(instruments) > 0 {
		query.Set("instruments", strings.Join(instruments, ","))
	}

	var out GetAccountInstrumentsResponse
	if err := c.get(ctx, accountPath(accountID)+"/instruments", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAccountChangesResponse describes everything that happened since
// the requested transaction ID.
type GetAccountChangesResponse struct {
	Changes           entity.AccountChanges      `json:"changes"`
	State             entity.AccountChangesState `json:"state"`
	LastTransactionID codec.IntString            `json:"lastTransactionID"`
}

// GetAccountChanges polls the account for changes since a transaction
// ID, the cheap way to keep local state in sync.
func (c *Client) GetAccountChanges(ctx context.Context, accountID string, sinceTransactionID int32) (*GetAccountChangesResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	query := url.Values{}
	query.Set("sinceTransactionID", fmt.Sprintf("%d", sinceTransactionID))

	var out GetAccountChangesResponse
	if err := c.get(ctx, accountPath(accountID)+"/changes", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func accountPath(accountID string) string {
	return "/v3/accounts/" + url.PathEscape(accountID)
}
