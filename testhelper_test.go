package paystack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hextechpay/paystack-go/paystacktest"
)

const testKey = "sk_test_1a2b3c4d5e6f"

// newTestClient starts a fake Paystack API and returns a client pointed at
// it. The server is torn down with the test.
func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	srv := paystacktest.New(testKey)
	baseURL := srv.Start()
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(baseURL)}, opts...)
	client, err := New(testKey, opts...)
	require.NoError(t, err)
	return client
}
