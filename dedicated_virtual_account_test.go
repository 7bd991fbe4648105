package paystack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDedicatedVirtualAccountRequestBuilder(t *testing.T) {
	t.Run("customer is required", func(t *testing.T) {
		_, err := NewCreateDedicatedVirtualAccountRequestBuilder().
			PreferredBank("wema-bank").
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "customer", verr.Field)
	})

	t.Run("customer alone is enough", func(t *testing.T) {
		req, err := NewCreateDedicatedVirtualAccountRequestBuilder().
			Customer("CUS_xr58yrr2ujlft9k").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "CUS_xr58yrr2ujlft9k", req.Customer)
	})
}

func TestDedicatedVirtualAccountService(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	req, err := NewCreateDedicatedVirtualAccountRequestBuilder().
		Customer("CUS_xr58yrr2ujlft9k").
		PreferredBank("wema-bank").
		Build()
	require.NoError(t, err)

	resp, err := client.DedicatedVirtualAccounts.Create(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.Status)
	assert.Equal(t, "Wema Bank", resp.Data.Bank.Name)
	assert.Equal(t, "9930000737", resp.Data.AccountNumber)
	assert.True(t, resp.Data.Assigned)
	assert.Equal(t, NGN, resp.Data.Currency)
	require.NotNil(t, resp.Data.Assignment)
	assert.Equal(t, "Customer", resp.Data.Assignment.AssigneeType)
	require.NotNil(t, resp.Data.Customer)
}
