package paystack

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRequestBuilder(t *testing.T) {
	t.Run("required fields and channels produce exactly the fields set", func(t *testing.T) {
		req, err := NewTransactionRequestBuilder().
			Amount("10000").
			Email("email@example.com").
			Currency(NGN).
			Channels(ChannelCard, ChannelBankTransfer).
			Build()
		require.NoError(t, err)

		body, err := json.Marshal(req)
		require.NoError(t, err)

		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body, &fields))
		assert.Len(t, fields, 4)
		assert.Contains(t, fields, "amount")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "currency")
		assert.Contains(t, fields, "channels")
	})

	t.Run("missing email fails naming the field", func(t *testing.T) {
		_, err := NewTransactionRequestBuilder().
			Amount("10000").
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Field)
	})

	t.Run("missing amount fails naming the field", func(t *testing.T) {
		_, err := NewTransactionRequestBuilder().
			Email("email@example.com").
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "amount", verr.Field)
	})

	t.Run("malformed email fails", func(t *testing.T) {
		_, err := NewTransactionRequestBuilder().
			Amount("10000").
			Email("not-an-email").
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Field)
	})

	t.Run("non-positive amount fails", func(t *testing.T) {
		for _, amount := range []string{"0", "-500", "12.50", "ten"} {
			_, err := NewTransactionRequestBuilder().
				Amount(amount).
				Email("email@example.com").
				Build()

			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "amount %q", amount)
			assert.Equal(t, "amount", verr.Field)
		}
	})

	t.Run("setter called twice keeps the later value", func(t *testing.T) {
		req, err := NewTransactionRequestBuilder().
			Amount("10000").
			Amount("20000").
			Email("email@example.com").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "20000", req.Amount)
	})

	t.Run("builder can branch into similar requests", func(t *testing.T) {
		base := NewTransactionRequestBuilder().
			Amount("10000").
			Email("email@example.com")

		ngn, err := base.Currency(NGN).Build()
		require.NoError(t, err)
		usd, err := base.Currency(USD).Build()
		require.NoError(t, err)

		assert.Equal(t, NGN, ngn.Currency)
		assert.Equal(t, USD, usd.Currency)
	})

	t.Run("build does not consume the builder", func(t *testing.T) {
		b := NewTransactionRequestBuilder().
			Amount("10000").
			Email("email@example.com")

		first, err := b.Build()
		require.NoError(t, err)
		second, err := b.Build()
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotSame(t, first, second)
	})

	t.Run("unset optional fields never serialize", func(t *testing.T) {
		req, err := NewTransactionRequestBuilder().
			Amount("10000").
			Email("email@example.com").
			Build()
		require.NoError(t, err)

		var fields map[string]json.RawMessage
		body, _ := json.Marshal(req)
		require.NoError(t, json.Unmarshal(body, &fields))
		assert.Equal(t, []string{"amount", "email"}, sortedKeys(fields))
	})
}

func TestTransactionService(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("initialize", func(t *testing.T) {
		req, err := NewTransactionRequestBuilder().
			Amount("10000").
			Email("email@example.com").
			Reference("order-42").
			Build()
		require.NoError(t, err)

		resp, err := client.Transactions.Initialize(ctx, req)
		require.NoError(t, err)
		assert.True(t, resp.Status)
		assert.Equal(t, "order-42", resp.Data.Reference)
		assert.NotEmpty(t, resp.Data.AuthorizationURL)
		assert.NotEmpty(t, resp.Data.AccessCode)
	})

	t.Run("verify", func(t *testing.T) {
		resp, err := client.Transactions.Verify(ctx, "order-42")
		require.NoError(t, err)
		assert.Equal(t, "order-42", resp.Data.Reference)
		assert.Equal(t, "success", resp.Data.Status)
		assert.Equal(t, int64(10000), resp.Data.Amount)
		require.NotNil(t, resp.Data.Customer)
		assert.Equal(t, "CUS_xnxdt6s1zg1f4nx", resp.Data.Customer.CustomerCode)
	})

	t.Run("list carries pagination meta", func(t *testing.T) {
		resp, err := client.Transactions.List(ctx, &ListTransactionsOptions{PerPage: 2, Status: StatusSuccess})
		require.NoError(t, err)
		assert.Len(t, resp.Data, 2)
		require.NotNil(t, resp.Meta)
		require.NotNil(t, resp.Meta.PerPage)
		assert.Equal(t, 2, *resp.Meta.PerPage)
	})

	t.Run("fetch", func(t *testing.T) {
		resp, err := client.Transactions.Fetch(ctx, 1234567890)
		require.NoError(t, err)
		assert.Equal(t, int64(1234567890), resp.Data.ID)
	})

	t.Run("charge authorization", func(t *testing.T) {
		req, err := NewChargeAuthorizationRequestBuilder().
			Email("email@example.com").
			Amount("10000").
			AuthorizationCode("AUTH_72btv547").
			Build()
		require.NoError(t, err)

		resp, err := client.Transactions.ChargeAuthorization(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "success", resp.Data.Status)
	})

	t.Run("timeline", func(t *testing.T) {
		resp, err := client.Transactions.Timeline(ctx, "order-42")
		require.NoError(t, err)
		require.NotNil(t, resp.Data.Success)
		assert.True(t, *resp.Data.Success)
		assert.Len(t, resp.Data.History, 2)
	})

	t.Run("timeline requires an identifier", func(t *testing.T) {
		_, err := client.Transactions.Timeline(ctx, "")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("totals", func(t *testing.T) {
		resp, err := client.Transactions.Totals(ctx)
		require.NoError(t, err)
		require.NotNil(t, resp.Data.TotalVolume)
		assert.Equal(t, int64(420000), *resp.Data.TotalVolume)
		require.Len(t, resp.Data.TotalVolumeByCurrency, 1)
		assert.Equal(t, NGN, resp.Data.TotalVolumeByCurrency[0].Currency)
	})

	t.Run("export", func(t *testing.T) {
		settled := true
		resp, err := client.Transactions.Export(ctx, &ExportTransactionsOptions{
			Status:   StatusSuccess,
			Currency: NGN,
			Settled:  &settled,
		})
		require.NoError(t, err)
		assert.Contains(t, resp.Data.Path, ".csv")
	})

	t.Run("partial debit", func(t *testing.T) {
		req, err := NewPartialDebitRequestBuilder().
			AuthorizationCode("AUTH_72btv547").
			Currency(NGN).
			Amount("5000").
			Email("email@example.com").
			Build()
		require.NoError(t, err)

		resp, err := client.Transactions.PartialDebit(ctx, req)
		require.NoError(t, err)
		assert.True(t, resp.Status)
	})
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
