package paystack

import (
	"encoding/json"
	"fmt"
)

// Currency is a settlement currency supported by Paystack.
type Currency string

const (
	NGN Currency = "NGN" // Nigerian Naira
	GHS Currency = "GHS" // Ghanaian Cedi
	USD Currency = "USD" // US Dollar
	ZAR Currency = "ZAR" // South African Rand
)

var currencies = map[Currency]bool{NGN: true, GHS: true, USD: true, ZAR: true}

func (c Currency) String() string { return string(c) }

func (c Currency) valid() bool { return currencies[c] }

// UnmarshalJSON rejects currency codes outside the supported set.
func (c *Currency) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if !currencies[Currency(s)] {
		return fmt.Errorf("unsupported currency %q", s)
	}
	*c = Currency(s)
	return nil
}

// Channel is a payment channel that can be offered to a paying customer.
type Channel string

const (
	ChannelCard         Channel = "card"
	ChannelBank         Channel = "bank"
	ChannelUSSD         Channel = "ussd"
	ChannelQR           Channel = "qr"
	ChannelMobileMoney  Channel = "mobile_money"
	ChannelBankTransfer Channel = "bank_transfer"
	ChannelApplePay     Channel = "apple_pay"
	ChannelEFT          Channel = "eft"
)

var channels = map[Channel]bool{
	ChannelCard:         true,
	ChannelBank:         true,
	ChannelUSSD:         true,
	ChannelQR:           true,
	ChannelMobileMoney:  true,
	ChannelBankTransfer: true,
	ChannelApplePay:     true,
	ChannelEFT:          true,
}

func (c Channel) String() string { return string(c) }

func (c Channel) valid() bool { return channels[c] }

func (c *Channel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if !channels[Channel(s)] {
		return fmt.Errorf("unknown payment channel %q", s)
	}
	*c = Channel(s)
	return nil
}

// TransactionStatus is the terminal state Paystack reports for a transaction.
type TransactionStatus string

const (
	StatusSuccess   TransactionStatus = "success"
	StatusAbandoned TransactionStatus = "abandoned"
	StatusFailed    TransactionStatus = "failed"
)

var transactionStatuses = map[TransactionStatus]bool{
	StatusSuccess:   true,
	StatusAbandoned: true,
	StatusFailed:    true,
}

func (s TransactionStatus) String() string { return string(s) }

func (s *TransactionStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if !transactionStatuses[TransactionStatus(raw)] {
		return fmt.Errorf("unknown transaction status %q", raw)
	}
	*s = TransactionStatus(raw)
	return nil
}

// SplitType controls how a transaction split divides settlement.
type SplitType string

const (
	SplitPercentage SplitType = "percentage"
	SplitFlat       SplitType = "flat"
)

func (t SplitType) valid() bool { return t == SplitPercentage || t == SplitFlat }

// Bearer indicates who carries the Paystack fees on a split or charge.
type Bearer string

const (
	BearerAll             Bearer = "all"
	BearerAccount         Bearer = "account"
	BearerSubaccount      Bearer = "subaccount"
	BearerAllProportional Bearer = "all-proportional"
)

var bearers = map[Bearer]bool{
	BearerAll:             true,
	BearerAccount:         true,
	BearerSubaccount:      true,
	BearerAllProportional: true,
}

func (b Bearer) valid() bool { return bearers[b] }
