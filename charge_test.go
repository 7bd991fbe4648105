package paystack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeAuthorizationRequestBuilder(t *testing.T) {
	t.Run("missing authorization code fails", func(t *testing.T) {
		_, err := NewChargeAuthorizationRequestBuilder().
			Email("email@example.com").
			Amount("10000").
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "authorization_code", verr.Field)
	})

	t.Run("optional fields serialize only when set", func(t *testing.T) {
		req, err := NewChargeAuthorizationRequestBuilder().
			Email("email@example.com").
			Amount("10000").
			AuthorizationCode("AUTH_72btv547").
			Queue(true).
			Build()
		require.NoError(t, err)
		assert.True(t, req.Queue)
		assert.Empty(t, req.Reference)
	})
}

func TestPartialDebitRequestBuilder(t *testing.T) {
	t.Run("currency outside NGN and GHS fails", func(t *testing.T) {
		_, err := NewPartialDebitRequestBuilder().
			AuthorizationCode("AUTH_72btv547").
			Currency(USD).
			Amount("5000").
			Email("email@example.com").
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "currency", verr.Field)
	})

	t.Run("at_least is validated as an amount", func(t *testing.T) {
		_, err := NewPartialDebitRequestBuilder().
			AuthorizationCode("AUTH_72btv547").
			Currency(NGN).
			Amount("5000").
			Email("email@example.com").
			AtLeast("-100").
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "at_least", verr.Field)
	})
}

func TestChargeService(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		req, err := NewChargeRequestBuilder().
			Email("email@example.com").
			Amount("10000").
			Currency(NGN).
			Build()
		require.NoError(t, err)

		resp, err := client.Charges.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "success", resp.Data.Status)
		assert.NotEmpty(t, resp.Data.Reference)
	})

	t.Run("check pending", func(t *testing.T) {
		resp, err := client.Charges.CheckPending(ctx, "ref-pending-1")
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Data.Status)
		assert.Equal(t, "ref-pending-1", resp.Data.Reference)
	})

	t.Run("check pending requires a reference", func(t *testing.T) {
		_, err := client.Charges.CheckPending(ctx, "")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
