package paystack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubaccountRequestBuilder(t *testing.T) {
	t.Run("valid request builds", func(t *testing.T) {
		req, err := NewSubaccountRequestBuilder().
			BusinessName("Sunshine Studios").
			SettlementBank("044").
			AccountNumber("0193274682").
			PercentageCharge(18.2).
			Description("Sunshine Studios").
			Build()
		require.NoError(t, err)
		assert.Equal(t, 18.2, req.PercentageCharge)
	})

	t.Run("missing settlement bank fails", func(t *testing.T) {
		_, err := NewSubaccountRequestBuilder().
			BusinessName("Sunshine Studios").
			AccountNumber("0193274682").
			PercentageCharge(18.2).
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "settlement_bank", verr.Field)
	})

	t.Run("percentage over 100 fails", func(t *testing.T) {
		_, err := NewSubaccountRequestBuilder().
			BusinessName("Sunshine Studios").
			SettlementBank("044").
			AccountNumber("0193274682").
			PercentageCharge(140).
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "percentage_charge", verr.Field)
	})

	t.Run("bad contact email fails", func(t *testing.T) {
		_, err := NewSubaccountRequestBuilder().
			BusinessName("Sunshine Studios").
			SettlementBank("044").
			AccountNumber("0193274682").
			PercentageCharge(18.2).
			PrimaryContactEmail("nope").
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "primary_contact_email", verr.Field)
	})
}

func TestSubaccountService(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	req, err := NewSubaccountRequestBuilder().
		BusinessName("Sunshine Studios").
		SettlementBank("044").
		AccountNumber("0193274682").
		PercentageCharge(18.2).
		Build()
	require.NoError(t, err)

	t.Run("create returns 201 and decodes", func(t *testing.T) {
		resp, err := client.Subaccounts.Create(ctx, req)
		require.NoError(t, err)
		assert.True(t, resp.Status)
		assert.NotEmpty(t, resp.Data.SubaccountCode)
	})

	t.Run("list", func(t *testing.T) {
		resp, err := client.Subaccounts.List(ctx, &ListSubaccountsOptions{PerPage: 10})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Data)
	})

	t.Run("fetch by code", func(t *testing.T) {
		resp, err := client.Subaccounts.Fetch(ctx, "ACCT_hdl8abxl8drhrl3")
		require.NoError(t, err)
		assert.Equal(t, "ACCT_hdl8abxl8drhrl3", resp.Data.SubaccountCode)
	})

	t.Run("update", func(t *testing.T) {
		resp, err := client.Subaccounts.Update(ctx, "ACCT_hdl8abxl8drhrl3", req)
		require.NoError(t, err)
		assert.True(t, resp.Status)
	})

	t.Run("fetch without identifier fails locally", func(t *testing.T) {
		_, err := client.Subaccounts.Fetch(ctx, "")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
