package paystack

import (
	"context"
	"encoding/json"
	"net/url"
)

// Response is the envelope every Paystack endpoint replies with. Data carries
// the resource-specific payload. Unknown fields sent by the API are ignored so
// new API attributes never break decoding.
type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta is the pagination block returned by list endpoints. Fields are
// pointers because Paystack omits the ones that do not apply.
type Meta struct {
	Total     *int `json:"total,omitempty"`
	Skipped   *int `json:"skipped,omitempty"`
	PerPage   *int `json:"perPage,omitempty"`
	Page      *int `json:"page,omitempty"`
	PageCount *int `json:"pageCount,omitempty"`
}

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for optional request fields.
func String(s string) *string { return &s }

// Int returns a pointer to i, for optional request fields.
func Int(i int) *int { return &i }

func decode[T any](path string, body []byte) (*Response[T], error) {
	var out Response[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &out, nil
}

func get[T any](ctx context.Context, t Transport, path string, query url.Values) (*Response[T], error) {
	body, err := t.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return decode[T](path, body)
}

func post[T any](ctx context.Context, t Transport, path string, payload any) (*Response[T], error) {
	body, err := t.Post(ctx, path, payload)
	if err != nil {
		return nil, err
	}
	return decode[T](path, body)
}

func put[T any](ctx context.Context, t Transport, path string, payload any) (*Response[T], error) {
	body, err := t.Put(ctx, path, payload)
	if err != nil {
		return nil, err
	}
	return decode[T](path, body)
}

func del[T any](ctx context.Context, t Transport, path string, payload any) (*Response[T], error) {
	body, err := t.Delete(ctx, path, payload)
	if err != nil {
		return nil, err
	}
	return decode[T](path, body)
}
