package paystack

import "encoding/json"

// Customer is the customer object embedded in transaction and charge
// responses. Everything Paystack may omit is a pointer so callers can tell
// "absent" from "empty".
type Customer struct {
	ID                       int64           `json:"id"`
	FirstName                *string         `json:"first_name"`
	LastName                 *string         `json:"last_name"`
	Email                    *string         `json:"email"`
	CustomerCode             string          `json:"customer_code"`
	Phone                    *string         `json:"phone"`
	Metadata                 json.RawMessage `json:"metadata,omitempty"`
	RiskAction               *string         `json:"risk_action"`
	InternationalFormatPhone *string         `json:"international_format_phone"`
}

// Authorization is the reusable card authorization attached to successful
// card transactions.
type Authorization struct {
	AuthorizationCode *string `json:"authorization_code"`
	Bin               *string `json:"bin"`
	Last4             *string `json:"last4"`
	ExpMonth          *string `json:"exp_month"`
	ExpYear           *string `json:"exp_year"`
	Channel           *string `json:"channel"`
	CardType          *string `json:"card_type"`
	Bank              *string `json:"bank"`
	CountryCode       *string `json:"country_code"`
	Brand             *string `json:"brand"`
	Reusable          *bool   `json:"reusable"`
	Signature         *string `json:"signature"`
	AccountName       *string `json:"account_name"`
}
