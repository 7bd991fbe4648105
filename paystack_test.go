package paystack

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("empty key is rejected", func(t *testing.T) {
		client, err := New("")
		assert.Nil(t, client)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("whitespace key is rejected", func(t *testing.T) {
		client, err := New("   ")
		assert.Nil(t, client)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("no network call at construction", func(t *testing.T) {
		// Unroutable base URL; New must still succeed.
		client, err := New("sk_test_key", WithBaseURL("http://127.0.0.1:1"))
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("every resource accessor is wired", func(t *testing.T) {
		client, err := New("sk_test_key")
		require.NoError(t, err)

		assert.NotNil(t, client.Transactions)
		assert.NotNil(t, client.TransactionSplits)
		assert.NotNil(t, client.Subaccounts)
		assert.NotNil(t, client.Customers)
		assert.NotNil(t, client.Plans)
		assert.NotNil(t, client.Charges)
		assert.NotNil(t, client.Terminals)
		assert.NotNil(t, client.ApplePay)
		assert.NotNil(t, client.DedicatedVirtualAccounts)
		assert.NotNil(t, client.VirtualTerminals)
	})
}

func TestClient_ConcurrentCalls(t *testing.T) {
	client := newTestClient(t)

	// The client holds no mutable state; concurrent calls through one handle
	// must be safe without external locking.
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Transactions.Verify(context.Background(), "ref-concurrent")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
