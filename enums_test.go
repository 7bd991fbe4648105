package paystack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	t.Run("supported codes decode", func(t *testing.T) {
		for _, code := range []string{"NGN", "GHS", "USD", "ZAR"} {
			var c Currency
			require.NoError(t, json.Unmarshal([]byte(`"`+code+`"`), &c))
			assert.Equal(t, code, c.String())
		}
	})

	t.Run("unknown code is rejected", func(t *testing.T) {
		var c Currency
		err := json.Unmarshal([]byte(`"EUR"`), &c)
		assert.ErrorContains(t, err, "EUR")
	})

	t.Run("encode and decode are inverses", func(t *testing.T) {
		out, err := json.Marshal(GHS)
		require.NoError(t, err)

		var back Currency
		require.NoError(t, json.Unmarshal(out, &back))
		assert.Equal(t, GHS, back)
	})
}

func TestChannel(t *testing.T) {
	t.Run("known channels decode", func(t *testing.T) {
		for _, raw := range []string{"card", "bank", "ussd", "qr", "mobile_money", "bank_transfer", "apple_pay", "eft"} {
			var ch Channel
			require.NoError(t, json.Unmarshal([]byte(`"`+raw+`"`), &ch))
			assert.Equal(t, raw, ch.String())
		}
	})

	t.Run("unknown channel is rejected", func(t *testing.T) {
		var ch Channel
		err := json.Unmarshal([]byte(`"carrier_pigeon"`), &ch)
		assert.ErrorContains(t, err, "carrier_pigeon")
	})
}

func TestTransactionStatus(t *testing.T) {
	t.Run("known statuses decode", func(t *testing.T) {
		for _, raw := range []string{"success", "abandoned", "failed"} {
			var s TransactionStatus
			require.NoError(t, json.Unmarshal([]byte(`"`+raw+`"`), &s))
			assert.Equal(t, raw, s.String())
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		var s TransactionStatus
		err := json.Unmarshal([]byte(`"reversed"`), &s)
		assert.Error(t, err)
	})
}
