package oanda

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/go-oanda/entity"
)

// Streams are newline-delimited JSON over a long-lived HTTP response.
// A stream ends when its context is cancelled or the connection drops;
// the terminal error is delivered on the error channel, then both
// channels are closed. Heartbeat lines only prove liveness and are not
// forwarded.

const streamScanBuffer = 256 * 1024

// StreamPricing streams price updates for the given instruments until
// ctx is cancelled.
func (c *Client) StreamPricing(ctx context.Context, accountID string, instruments []string) (<-chan entity.Price, <-chan error) {
	prices := make(chan entity.Price)
	errs := make(chan error, 1)

	if accountID == "" {
		errs <- errMissingAccountID
		close(prices)
		close(errs)
		return prices, errs
	}
	if len(instruments) == 0 {
		errs <- errMissingInstrument
		close(prices)
		close(errs)
		return prices, errs
	}

	query := url.Values{}
	query.Set("instruments", strings.Join(instruments, ","))

	go c.runStream(ctx, accountPath(accountID)+"/pricing/stream", query, errs, func(line []byte) error {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(line, &head); err != nil {
			return errors.Wrap(err, "failed to decode pricing stream line")
		}
		if head.Type == "HEARTBEAT" {
			return nil
		}

		var price entity.Price
		if err := json.Unmarshal(line, &price); err != nil {
			return errors.Wrap(err, "failed to decode pricing stream line")
		}

		select {
		case prices <- price:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}, func() { close(prices) })

	return prices, errs
}

// StreamTransactions streams the account's transaction log until ctx
// is cancelled.
func (c *Client) StreamTransactions(ctx context.Context, accountID string) (<-chan entity.Transaction, <-chan error) {
	txs := make(chan entity.Transaction)
	errs := make(chan error, 1)

	if accountID == "" {
		errs <- errMissingAccountID
		close(txs)
		close(errs)
		return txs, errs
	}

	go c.runStream(ctx, accountPath(accountID)+"/transactions/stream", nil, errs, func(line []byte) error {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(line, &head); err != nil {
			return errors.Wrap(err, "failed to decode transaction stream line")
		}
		if head.Type == "HEARTBEAT" {
			return nil
		}

		var tx entity.Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return errors.Wrap(err, "failed to decode transaction stream line")
		}

		select {
		case txs <- tx:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}, func() { close(txs) })

	return txs, errs
}

func (c *Client) runStream(ctx context.Context, path string, query url.Values, errs chan<- error, handle func([]byte) error, closeOut func()) {
	defer closeOut()
	defer close(errs)

	u := c.streamURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		errs <- errors.Wrap(err, "failed to build stream request")
		return
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept-Datetime-Format", datetimeFormat)

	resp, err := c.streamHTTP.Do(req)
	if err != nil {
		errs <- errors.Wrapf(err, "stream %s failed", path)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errs <- decodeAPIError(resp)
		return
	}

	c.logger.Debug("stream opened", zap.String("path", path))

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, streamScanBuffer), streamScanBuffer)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := handle(line); err != nil {
			errs <- err
			return
		}
	}

	if err := scanner.Err(); err != nil {
		// Context cancellation surfaces as a read error on the body.
		if ctx.Err() != nil {
			errs <- ctx.Err()
			return
		}
		errs <- errors.Wrapf(err, "stream %s closed", path)
		return
	}

	c.logger.Debug("stream ended", zap.String("path", path))
}
