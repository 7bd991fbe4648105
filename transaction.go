package paystack

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// TransactionService groups the operations of the Transactions API, which
// creates and manages payments on an integration.
type TransactionService struct {
	transport Transport
}

// TransactionRequest is the finalized payload for initializing a
// transaction. Construct it with NewTransactionRequestBuilder; only the
// fields that were set end up in the request body.
type TransactionRequest struct {
	Amount            string    `json:"amount" validate:"required"`
	Email             string    `json:"email" validate:"required,email"`
	Currency          Currency  `json:"currency,omitempty"`
	Reference         string    `json:"reference,omitempty"`
	CallbackURL       string    `json:"callback_url,omitempty"`
	Plan              string    `json:"plan,omitempty"`
	InvoiceLimit      int       `json:"invoice_limit,omitempty"`
	Metadata          string    `json:"metadata,omitempty"`
	Channels          []Channel `json:"channels,omitempty"`
	SplitCode         string    `json:"split_code,omitempty"`
	Subaccount        string    `json:"subaccount,omitempty"`
	TransactionCharge string    `json:"transaction_charge,omitempty"`
	Bearer            Bearer    `json:"bearer,omitempty"`
}

// TransactionRequestBuilder assembles a TransactionRequest. The builder is a
// value: copying it branches request construction, and Build does not consume
// it. Setting a field twice keeps the later value.
type TransactionRequestBuilder struct {
	req TransactionRequest
}

func NewTransactionRequestBuilder() TransactionRequestBuilder {
	return TransactionRequestBuilder{}
}

// Amount sets the charge amount in the subunit of the currency, e.g. kobo
// for NGN, cents for USD.
func (b TransactionRequestBuilder) Amount(amount string) TransactionRequestBuilder {
	b.req.Amount = amount
	return b
}

// Email sets the customer's email address.
func (b TransactionRequestBuilder) Email(email string) TransactionRequestBuilder {
	b.req.Email = email
	return b
}

// Currency overrides the integration's default currency.
func (b TransactionRequestBuilder) Currency(c Currency) TransactionRequestBuilder {
	b.req.Currency = c
	return b
}

// Reference sets a unique transaction reference. Only -, ., = and
// alphanumeric characters are allowed.
func (b TransactionRequestBuilder) Reference(ref string) TransactionRequestBuilder {
	b.req.Reference = ref
	return b
}

// CallbackURL overrides the dashboard callback URL for this transaction.
func (b TransactionRequestBuilder) CallbackURL(u string) TransactionRequestBuilder {
	b.req.CallbackURL = u
	return b
}

// Plan subscribes the customer to a predefined plan; the plan amount
// overrides Amount.
func (b TransactionRequestBuilder) Plan(code string) TransactionRequestBuilder {
	b.req.Plan = code
	return b
}

// InvoiceLimit caps how many times the customer is charged on the plan.
func (b TransactionRequestBuilder) InvoiceLimit(n int) TransactionRequestBuilder {
	b.req.InvoiceLimit = n
	return b
}

// Metadata attaches a stringified JSON object of custom data.
func (b TransactionRequestBuilder) Metadata(meta string) TransactionRequestBuilder {
	b.req.Metadata = meta
	return b
}

// Channels restricts which payment channels the customer may pay with.
func (b TransactionRequestBuilder) Channels(channels ...Channel) TransactionRequestBuilder {
	b.req.Channels = channels
	return b
}

// SplitCode routes settlement through a transaction split, e.g. SPL_98WF13Eb3w.
func (b TransactionRequestBuilder) SplitCode(code string) TransactionRequestBuilder {
	b.req.SplitCode = code
	return b
}

// Subaccount sets the code of the subaccount that owns the payment.
func (b TransactionRequestBuilder) Subaccount(code string) TransactionRequestBuilder {
	b.req.Subaccount = code
	return b
}

// TransactionCharge overrides the split configuration with a flat fee, in
// subunits.
func (b TransactionRequestBuilder) TransactionCharge(amount string) TransactionRequestBuilder {
	b.req.TransactionCharge = amount
	return b
}

// Bearer indicates who pays the Paystack fees.
func (b TransactionRequestBuilder) Bearer(bearer Bearer) TransactionRequestBuilder {
	b.req.Bearer = bearer
	return b
}

// Build validates the builder state and returns an immutable request value.
// It fails with a *ValidationError naming the field when a required field is
// missing or a constraint is violated.
func (b TransactionRequestBuilder) Build() (*TransactionRequest, error) {
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
	if b.req.Bearer != "" && !b.req.Bearer.valid() {
		return nil, &ValidationError{Field: "bearer", Message: "must be account or subaccount"}
	}
	req := b.req
	return &req, nil
}

// InitializeTransactionData is the payload returned when a transaction is
// initialized.
type InitializeTransactionData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Transaction is the full transaction object returned by verify, fetch and
// list operations.
type Transaction struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	Reference       string          `json:"reference"`
	Amount          int64           `json:"amount"`
	Message         *string         `json:"message"`
	GatewayResponse *string         `json:"gateway_response"`
	PaidAt          *string         `json:"paid_at"`
	CreatedAt       *string         `json:"created_at"`
	Channel         *string         `json:"channel"`
	Currency        *string         `json:"currency"`
	IPAddress       *string         `json:"ip_address"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	Fees            *int64          `json:"fees"`
	Customer        *Customer       `json:"customer"`
	Authorization   *Authorization  `json:"authorization"`
}

// TransactionTimeline describes the steps a transaction went through.
type TransactionTimeline struct {
	TimeSpent      *int                `json:"time_spent"`
	Attempts       *int                `json:"attempts"`
	Authentication *string             `json:"authentication"`
	Errors         *int                `json:"errors"`
	Success        *bool               `json:"success"`
	Mobile         *bool               `json:"mobile"`
	Channel        *string             `json:"channel"`
	History        []TimelineHistoryEntry `json:"history"`
}

// TimelineHistoryEntry is one step in a transaction timeline.
type TimelineHistoryEntry struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    int64  `json:"time"`
}

// TransactionTotals summarises the volume received on an integration.
type TransactionTotals struct {
	TotalTransactions     *int               `json:"total_transactions"`
	UniqueCustomers       *int               `json:"unique_customers"`
	TotalVolume           *int64             `json:"total_volume"`
	TotalVolumeByCurrency []VolumeByCurrency `json:"total_volume_by_currency"`
	PendingTransfers      *int64             `json:"pending_transfers"`
}

// VolumeByCurrency is a per-currency slice of the transaction totals.
type VolumeByCurrency struct {
	Currency Currency `json:"currency"`
	Amount   int64    `json:"amount"`
}

// ExportTransactionsData carries the download link for an export.
type ExportTransactionsData struct {
	Path      string  `json:"path"`
	ExpiresAt *string `json:"expiresAt"`
}

// ListTransactionsOptions are the query filters accepted by List. Zero-value
// fields are left off the query string.
type ListTransactionsOptions struct {
	PerPage int
	Page    int
	Status  TransactionStatus
	From    string
	To      string
}

func (o *ListTransactionsOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(o.PerPage))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Status != "" {
		q.Set("status", o.Status.String())
	}
	if o.From != "" {
		q.Set("from", o.From)
	}
	if o.To != "" {
		q.Set("to", o.To)
	}
	return q
}

// ExportTransactionsOptions filter which transactions get exported.
type ExportTransactionsOptions struct {
	Status   TransactionStatus
	Currency Currency
	Settled  *bool
}

func (o *ExportTransactionsOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Status != "" {
		q.Set("status", o.Status.String())
	}
	if o.Currency != "" {
		q.Set("currency", o.Currency.String())
	}
	if o.Settled != nil {
		q.Set("settled", strconv.FormatBool(*o.Settled))
	}
	return q
}

// Initialize creates a transaction from your backend and returns the
// authorization URL the customer completes payment on.
func (s *TransactionService) Initialize(ctx context.Context, req *TransactionRequest) (*Response[InitializeTransactionData], error) {
	return post[InitializeTransactionData](ctx, s.transport, "/transaction/initialize", req)
}

// Verify confirms the status of a transaction by its reference.
func (s *TransactionService) Verify(ctx context.Context, reference string) (*Response[Transaction], error) {
	return get[Transaction](ctx, s.transport, "/transaction/verify/"+url.PathEscape(reference), nil)
}

// List returns transactions carried out on the integration.
func (s *TransactionService) List(ctx context.Context, opts *ListTransactionsOptions) (*Response[[]Transaction], error) {
	return get[[]Transaction](ctx, s.transport, "/transaction", opts.query())
}

// Fetch returns the details of a single transaction by id.
func (s *TransactionService) Fetch(ctx context.Context, id int64) (*Response[Transaction], error) {
	return get[Transaction](ctx, s.transport, "/transaction/"+strconv.FormatInt(id, 10), nil)
}

// ChargeAuthorization charges a reusable authorization without customer
// interaction.
func (s *TransactionService) ChargeAuthorization(ctx context.Context, req *ChargeAuthorizationRequest) (*Response[Transaction], error) {
	return post[Transaction](ctx, s.transport, "/transaction/charge_authorization", req)
}

// Timeline returns the processing timeline of a transaction, addressed by id
// or reference.
func (s *TransactionService) Timeline(ctx context.Context, idOrReference string) (*Response[TransactionTimeline], error) {
	if idOrReference == "" {
		return nil, &ValidationError{Field: "id_or_reference", Message: "is required"}
	}
	return get[TransactionTimeline](ctx, s.transport, "/transaction/timeline/"+url.PathEscape(idOrReference), nil)
}

// Totals returns the total amount received on the integration.
func (s *TransactionService) Totals(ctx context.Context) (*Response[TransactionTotals], error) {
	return get[TransactionTotals](ctx, s.transport, "/transaction/totals", nil)
}

// Export requests a CSV export of transactions and returns its download path.
func (s *TransactionService) Export(ctx context.Context, opts *ExportTransactionsOptions) (*Response[ExportTransactionsData], error) {
	return get[ExportTransactionsData](ctx, s.transport, "/transaction/export", opts.query())
}

// PartialDebit retrieves part of a payment from a customer using a reusable
// authorization.
func (s *TransactionService) PartialDebit(ctx context.Context, req *PartialDebitRequest) (*Response[Transaction], error) {
	return post[Transaction](ctx, s.transport, "/transaction/partial_debit", req)
}
