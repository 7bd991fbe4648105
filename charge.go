package paystack

import (
	"context"
	"encoding/json"
	"net/url"
)

// ChargeService groups the operations of the Charge API, which creates
// charges directly against an authorization or account details.
type ChargeService struct {
	transport Transport
}

// ChargeAuthorizationRequest charges a previously stored authorization.
// Construct it with NewChargeAuthorizationRequestBuilder.
type ChargeAuthorizationRequest struct {
	Email             string    `json:"email" validate:"required,email"`
	Amount            string    `json:"amount" validate:"required"`
	AuthorizationCode string    `json:"authorization_code" validate:"required"`
	Reference         string    `json:"reference,omitempty"`
	Currency          Currency  `json:"currency,omitempty"`
	Metadata          string    `json:"metadata,omitempty"`
	Channels          []Channel `json:"channels,omitempty"`
	Subaccount        string    `json:"subaccount,omitempty"`
	TransactionCharge int64     `json:"transaction_charge,omitempty"`
	Bearer            Bearer    `json:"bearer,omitempty"`
	Queue             bool      `json:"queue,omitempty"`
}

// ChargeAuthorizationRequestBuilder assembles a ChargeAuthorizationRequest.
type ChargeAuthorizationRequestBuilder struct {
	req ChargeAuthorizationRequest
}

func NewChargeAuthorizationRequestBuilder() ChargeAuthorizationRequestBuilder {
	return ChargeAuthorizationRequestBuilder{}
}

func (b ChargeAuthorizationRequestBuilder) Email(email string) ChargeAuthorizationRequestBuilder {
	b.req.Email = email
	return b
}

// Amount is in the subunit of the currency.
func (b ChargeAuthorizationRequestBuilder) Amount(amount string) ChargeAuthorizationRequestBuilder {
	b.req.Amount = amount
	return b
}

// AuthorizationCode is a valid, reusable authorization to charge.
func (b ChargeAuthorizationRequestBuilder) AuthorizationCode(code string) ChargeAuthorizationRequestBuilder {
	b.req.AuthorizationCode = code
	return b
}

func (b ChargeAuthorizationRequestBuilder) Reference(ref string) ChargeAuthorizationRequestBuilder {
	b.req.Reference = ref
	return b
}

func (b ChargeAuthorizationRequestBuilder) Currency(c Currency) ChargeAuthorizationRequestBuilder {
	b.req.Currency = c
	return b
}

func (b ChargeAuthorizationRequestBuilder) Metadata(meta string) ChargeAuthorizationRequestBuilder {
	b.req.Metadata = meta
	return b
}

func (b ChargeAuthorizationRequestBuilder) Channels(channels ...Channel) ChargeAuthorizationRequestBuilder {
	b.req.Channels = channels
	return b
}

func (b ChargeAuthorizationRequestBuilder) Subaccount(code string) ChargeAuthorizationRequestBuilder {
	b.req.Subaccount = code
	return b
}

// TransactionCharge is a flat fee, in subunits, charged to the subaccount;
// it overrides the percentage split configured at subaccount creation.
func (b ChargeAuthorizationRequestBuilder) TransactionCharge(amount int64) ChargeAuthorizationRequestBuilder {
	b.req.TransactionCharge = amount
	return b
}

func (b ChargeAuthorizationRequestBuilder) Bearer(bearer Bearer) ChargeAuthorizationRequestBuilder {
	b.req.Bearer = bearer
	return b
}

// Queue marks the charge for queued processing, useful for scheduled charges.
func (b ChargeAuthorizationRequestBuilder) Queue(queue bool) ChargeAuthorizationRequestBuilder {
	b.req.Queue = queue
	return b
}

func (b ChargeAuthorizationRequestBuilder) Build() (*ChargeAuthorizationRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	if err := checkAmount("amount", b.req.Amount); err != nil {
		return nil, err
	}
	if b.req.Currency != "" && !b.req.Currency.valid() {
		return nil, &ValidationError{Field: "currency", Message: "is not a supported currency"}
	}
	for _, ch := range b.req.Channels {
		if !ch.valid() {
			return nil, &ValidationError{Field: "channels", Message: "contains an unknown channel"}
		}
	}
	req := b.req
	return &req, nil
}

// PartialDebitRequest debits part of an amount from a stored authorization.
type PartialDebitRequest struct {
	AuthorizationCode string   `json:"authorization_code" validate:"required"`
	Currency          Currency `json:"currency" validate:"required"`
	Amount            string   `json:"amount" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Reference         string   `json:"reference,omitempty"`
	AtLeast           string   `json:"at_least,omitempty"`
}

// PartialDebitRequestBuilder assembles a PartialDebitRequest.
type PartialDebitRequestBuilder struct {
	req PartialDebitRequest
}

func NewPartialDebitRequestBuilder() PartialDebitRequestBuilder {
	return PartialDebitRequestBuilder{}
}

func (b PartialDebitRequestBuilder) AuthorizationCode(code string) PartialDebitRequestBuilder {
	b.req.AuthorizationCode = code
	return b
}

// Currency must be NGN or GHS for partial debits.
func (b PartialDebitRequestBuilder) Currency(c Currency) PartialDebitRequestBuilder {
	b.req.Currency = c
	return b
}

func (b PartialDebitRequestBuilder) Amount(amount string) PartialDebitRequestBuilder {
	b.req.Amount = amount
	return b
}

func (b PartialDebitRequestBuilder) Email(email string) PartialDebitRequestBuilder {
	b.req.Email = email
	return b
}

func (b PartialDebitRequestBuilder) Reference(ref string) PartialDebitRequestBuilder {
	b.req.Reference = ref
	return b
}

// AtLeast is the minimum acceptable amount, in subunits.
func (b PartialDebitRequestBuilder) AtLeast(amount string) PartialDebitRequestBuilder {
	b.req.AtLeast = amount
	return b
}

func (b PartialDebitRequestBuilder) Build() (*PartialDebitRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	if err := checkAmount("amount", b.req.Amount); err != nil {
		return nil, err
	}
	if b.req.Currency != NGN && b.req.Currency != GHS {
		return nil, &ValidationError{Field: "currency", Message: "must be NGN or GHS"}
	}
	if err := checkAmount("at_least", b.req.AtLeast); err != nil {
		return nil, err
	}
	req := b.req
	return &req, nil
}

// ChargeRequest submits a new charge outside the redirect flow.
type ChargeRequest struct {
	Email             string   `json:"email" validate:"required,email"`
	Amount            string   `json:"amount" validate:"required"`
	Currency          Currency `json:"currency,omitempty"`
	AuthorizationCode string   `json:"authorization_code,omitempty"`
	Reference         string   `json:"reference,omitempty"`
	Metadata          string   `json:"metadata,omitempty"`
}

// ChargeRequestBuilder assembles a ChargeRequest.
type ChargeRequestBuilder struct {
	req ChargeRequest
}

func NewChargeRequestBuilder() ChargeRequestBuilder {
	return ChargeRequestBuilder{}
}

func (b ChargeRequestBuilder) Email(email string) ChargeRequestBuilder {
	b.req.Email = email
	return b
}

func (b ChargeRequestBuilder) Amount(amount string) ChargeRequestBuilder {
	b.req.Amount = amount
	return b
}

func (b ChargeRequestBuilder) Currency(c Currency) ChargeRequestBuilder {
	b.req.Currency = c
	return b
}

func (b ChargeRequestBuilder) AuthorizationCode(code string) ChargeRequestBuilder {
	b.req.AuthorizationCode = code
	return b
}

func (b ChargeRequestBuilder) Reference(ref string) ChargeRequestBuilder {
	b.req.Reference = ref
	return b
}

func (b ChargeRequestBuilder) Metadata(meta string) ChargeRequestBuilder {
	b.req.Metadata = meta
	return b
}

func (b ChargeRequestBuilder) Build() (*ChargeRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	if err := checkAmount("amount", b.req.Amount); err != nil {
		return nil, err
	}
	if b.req.Currency != "" && !b.req.Currency.valid() {
		return nil, &ValidationError{Field: "currency", Message: "is not a supported currency"}
	}
	req := b.req
	return &req, nil
}

// ChargeData is the charge object returned by the Charge API.
type ChargeData struct {
	ID              *int64          `json:"id"`
	Amount          int64           `json:"amount"`
	Currency        *string         `json:"currency"`
	TransactionDate *string         `json:"transaction_date"`
	Status          string          `json:"status"`
	Reference       string          `json:"reference"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	GatewayResponse *string         `json:"gateway_response"`
	Message         *string         `json:"message"`
	Channel         *string         `json:"channel"`
	IPAddress       *string         `json:"ip_address"`
	Fees            *int64          `json:"fees"`
	Authorization   *Authorization  `json:"authorization"`
	Customer        *Customer       `json:"customer"`
	Plan            *string         `json:"plan"`
}

// Create submits a charge.
func (s *ChargeService) Create(ctx context.Context, req *ChargeRequest) (*Response[ChargeData], error) {
	return post[ChargeData](ctx, s.transport, "/charge", req)
}

// CheckPending polls the status of a pending charge by its reference.
func (s *ChargeService) CheckPending(ctx context.Context, reference string) (*Response[ChargeData], error) {
	if reference == "" {
		return nil, &ValidationError{Field: "reference", Message: "is required"}
	}
	return get[ChargeData](ctx, s.transport, "/charge/"+url.PathEscape(reference), nil)
}
