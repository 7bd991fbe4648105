package paystack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRequestBuilder(t *testing.T) {
	t.Run("valid plan builds", func(t *testing.T) {
		req, err := NewPlanRequestBuilder().
			Name("Monthly Retainer").
			Amount(50000).
			Interval(IntervalMonthly).
			Build()
		require.NoError(t, err)
		assert.Equal(t, int64(50000), req.Amount)
	})

	t.Run("missing interval fails", func(t *testing.T) {
		_, err := NewPlanRequestBuilder().
			Name("Monthly Retainer").
			Amount(50000).
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "interval", verr.Field)
	})

	t.Run("made-up interval fails", func(t *testing.T) {
		_, err := NewPlanRequestBuilder().
			Name("Monthly Retainer").
			Amount(50000).
			Interval(PlanInterval("fortnightly")).
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "interval", verr.Field)
	})

	t.Run("zero amount fails", func(t *testing.T) {
		_, err := NewPlanRequestBuilder().
			Name("Monthly Retainer").
			Interval(IntervalMonthly).
			Build()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "amount", verr.Field)
	})
}

func TestPlanService(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	req, err := NewPlanRequestBuilder().
		Name("Monthly Retainer").
		Amount(50000).
		Interval(IntervalMonthly).
		SendInvoices(true).
		Build()
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		resp, err := client.Plans.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Monthly Retainer", resp.Data.Name)
		assert.NotEmpty(t, resp.Data.PlanCode)
	})

	t.Run("list", func(t *testing.T) {
		resp, err := client.Plans.List(ctx, &ListPlansOptions{Interval: IntervalMonthly})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Data)
	})

	t.Run("fetch", func(t *testing.T) {
		resp, err := client.Plans.Fetch(ctx, "PLN_gx2wn530m0i3w3m")
		require.NoError(t, err)
		assert.Equal(t, int64(28), resp.Data.ID)
		assert.Nil(t, resp.Data.Description, "null description stays absent")
	})

	t.Run("update", func(t *testing.T) {
		resp, err := client.Plans.Update(ctx, "PLN_gx2wn530m0i3w3m", req)
		require.NoError(t, err)
		assert.True(t, resp.Status)
	})
}
