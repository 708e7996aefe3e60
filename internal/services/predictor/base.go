// Package predictor holds price-oracle clients implementing the
// domain PricePredictor port.
package predictor

import (
	"context"
	"fmt"
	"time"

	"TradeScope/pkg/config"
	xhttp "TradeScope/pkg/http"
)

// httpBase centralizes client construction and JSON request handling for
// the HTTP oracle transport.
type httpBase struct {
	baseURL string
	client  *xhttp.Client
}

func newHTTPBase(cfg *config.Config) *httpBase {
	timeout := cfg.Oracle.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpBase{
		baseURL: cfg.Oracle.URL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// postJSON posts the payload to path under baseURL and decodes JSON into dest.
func (b *httpBase) postJSON(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("oracle http client not initialized")
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    b.baseURL + path,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return nil
}

// postJSONWithRetry posts JSON with up to attempts tries for transient errors.
func (b *httpBase) postJSONWithRetry(ctx context.Context, path string, payload interface{}, dest interface{}, attempts int) error {
	if attempts <= 1 {
		return b.postJSON(ctx, path, payload, dest)
	}
	var err error
	for i := 1; i <= attempts; i++ {
		err = b.postJSON(ctx, path, payload, dest)
		if err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		// simple backoff
		select {
		case <-time.After(time.Duration(i) * 50 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// getJSON issues a body-less GET; a nil dest discards the response.
func (b *httpBase) getJSON(ctx context.Context, path string, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("oracle http client not initialized")
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    b.baseURL + path,
	}, dest)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}
