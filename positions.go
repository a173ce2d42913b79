package oanda

import (
	"context"
	"net/url"

	"github.com/vadiminshakov/go-oanda/codec"
	"github.com/vadiminshakov/go-oanda/entity"
)

// ListPositionsResponse holds positions for the account.
type ListPositionsResponse struct {
	Positions         []entity.Position `json:"positions"`
	LastTransactionID codec.IntString   `json:"lastTransactionID"`
}

// ListPositions lists every position the account has ever had in each
// instrument it has traded.
func (c *Client) ListPositions(ctx context.Context, accountID string) (*ListPositionsResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out ListPositionsResponse
	if err := c.get(ctx, accountPath(accountID)+"/positions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOpenPositions lists only positions with open trades.
func (c *Client) ListOpenPositions(ctx context.Context, accountID string) (*ListPositionsResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}

	var out ListPositionsResponse
	if err := c.get(ctx, accountPath(accountID)+"/openPositions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPositionResponse wraps the position for one instrument.
type GetPositionResponse struct {
	Position          entity.Position `json:"position"`
	LastTransactionID codec.IntString `json:"lastTransactionID"`
}

// GetPosition fetches the position for one instrument.
func (c *Client) GetPosition(ctx context.Context, accountID, instrument string) (*GetPositionResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if instrument == "" {
		return nil, errMissingInstrument
	}

	var out GetPositionResponse
	if err := c.get(ctx, positionPath(accountID, instrument), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClosePositionRequest says how much of each side to close. Values are
// "ALL", "NONE" or a decimal number of units; empty means "NONE".
type ClosePositionRequest struct {
	LongUnits  string `json:"longUnits,omitempty"`
	ShortUnits string `json:"shortUnits,omitempty"`
}

// ClosePositionResponse describes the closing fills.
type ClosePositionResponse struct {
	LongOrderCreateTransaction  *entity.Transaction `json:"longOrderCreateTransaction,omitempty"`
	LongOrderFillTransaction    *entity.Transaction `json:"longOrderFillTransaction,omitempty"`
	ShortOrderCreateTransaction *entity.Transaction `json:"shortOrderCreateTransaction,omitempty"`
	ShortOrderFillTransaction   *entity.Transaction `json:"shortOrderFillTransaction,omitempty"`
	RelatedTransactionIDs       []codec.IntString   `json:"relatedTransactionIDs,omitempty"`
	LastTransactionID           codec.IntString     `json:"lastTransactionID"`
}

// ClosePosition closes out the open position for an instrument, either
// side or both.
func (c *Client) ClosePosition(ctx context.Context, accountID, instrument string, req ClosePositionRequest) (*ClosePositionResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if instrument == "" {
		return nil, errMissingInstrument
	}

	var out ClosePositionResponse
	if err := c.put(ctx, positionPath(accountID, instrument)+"/close", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func positionPath(accountID, instrument string) string {
	return accountPath(accountID) + "/positions/" + url.PathEscape(instrument)
}
