package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Transport executes HTTP calls on behalf of the endpoint modules. It owns
// the credential and base URL so endpoint code only deals in paths and
// payloads. Implementations must be safe for concurrent use.
//
// The concrete net/http implementation is used by default; swap it out with
// WithTransport for testing or alternative HTTP stacks.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Put(ctx context.Context, path string, body any) ([]byte, error)
	Delete(ctx context.Context, path string, body any) ([]byte, error)
}

type httpTransport struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  zerolog.Logger
}

func newHTTPTransport(baseURL, apiKey string, client *http.Client, logger zerolog.Logger) *httpTransport {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		logger:  logger,
	}
}

func (t *httpTransport) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := t.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return t.do(ctx, http.MethodGet, path, target, nil)
}

func (t *httpTransport) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return t.send(ctx, http.MethodPost, path, body)
}

func (t *httpTransport) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return t.send(ctx, http.MethodPut, path, body)
}

func (t *httpTransport) Delete(ctx context.Context, path string, body any) ([]byte, error) {
	return t.send(ctx, http.MethodDelete, path, body)
}

func (t *httpTransport) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s body: %w", path, err)
		}
		buf = bytes.NewReader(b)
	}
	return t.do(ctx, method, path, t.baseURL+path, buf)
}

func (t *httpTransport) do(ctx context.Context, method, path, target string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Debug().
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("request failed")
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read " + path, Err: err}
	}

	t.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}
