package oanda

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/vadiminshakov/go-oanda/codec"
	"github.com/vadiminshakov/go-oanda/entity"
)

// GetPricingResponse holds current prices for the requested instruments.
type GetPricingResponse struct {
	Time   codec.Timestamp `json:"time"`
	Prices []entity.Price  `json:"prices"`
}

// GetPricing fetches current prices for the given instruments. A
// non-zero since restricts the response to prices newer than it.
func (c *Client) GetPricing(ctx context.Context, accountID string, instruments []string, since time.Time) (*GetPricingResponse, error) {
	if accountID == "" {
		return nil, errMissingAccountID
	}
	if len(instruments) == 0 {
		return nil, errMissingInstrument
	}

	query := url.Values{}
	query.Set("instruments", strings.Join(instruments, ","))
	if !since.IsZero() {
		query.Set("since", queryTime(since))
	}

	var out GetPricingResponse
	if err := c.get(ctx, accountPath(accountID)+"/pricing", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
