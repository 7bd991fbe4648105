package paystack

import (
	"context"
	"net/url"
	"strconv"
)

// SubaccountService groups the Subaccounts API, which creates and manages
// the accounts settlement can be split into.
type SubaccountService struct {
	transport Transport
}

// SubaccountRequest is the finalized payload for creating or updating a
// subaccount. Construct it with NewSubaccountRequestBuilder.
type SubaccountRequest struct {
	BusinessName        string  `json:"business_name" validate:"required"`
	SettlementBank      string  `json:"settlement_bank" validate:"required"`
	AccountNumber       string  `json:"account_number" validate:"required"`
	PercentageCharge    float64 `json:"percentage_charge" validate:"required,gt=0"`
	Description         string  `json:"description,omitempty"`
	PrimaryContactEmail string  `json:"primary_contact_email,omitempty" validate:"omitempty,email"`
	PrimaryContactName  string  `json:"primary_contact_name,omitempty"`
	PrimaryContactPhone string  `json:"primary_contact_phone,omitempty"`
	Metadata            string  `json:"metadata,omitempty"`
}

// SubaccountRequestBuilder assembles a SubaccountRequest.
type SubaccountRequestBuilder struct {
	req SubaccountRequest
}

func NewSubaccountRequestBuilder() SubaccountRequestBuilder {
	return SubaccountRequestBuilder{}
}

func (b SubaccountRequestBuilder) BusinessName(name string) SubaccountRequestBuilder {
	b.req.BusinessName = name
	return b
}

// SettlementBank is the bank code; codes come from the List Banks endpoint.
func (b SubaccountRequestBuilder) SettlementBank(bankCode string) SubaccountRequestBuilder {
	b.req.SettlementBank = bankCode
	return b
}

func (b SubaccountRequestBuilder) AccountNumber(number string) SubaccountRequestBuilder {
	b.req.AccountNumber = number
	return b
}

// PercentageCharge is the default percentage taken when receiving on behalf
// of the subaccount. It is a rate, not a monetary amount.
func (b SubaccountRequestBuilder) PercentageCharge(pct float64) SubaccountRequestBuilder {
	b.req.PercentageCharge = pct
	return b
}

func (b SubaccountRequestBuilder) Description(desc string) SubaccountRequestBuilder {
	b.req.Description = desc
	return b
}

func (b SubaccountRequestBuilder) PrimaryContactEmail(email string) SubaccountRequestBuilder {
	b.req.PrimaryContactEmail = email
	return b
}

func (b SubaccountRequestBuilder) PrimaryContactName(name string) SubaccountRequestBuilder {
	b.req.PrimaryContactName = name
	return b
}

func (b SubaccountRequestBuilder) PrimaryContactPhone(phone string) SubaccountRequestBuilder {
	b.req.PrimaryContactPhone = phone
	return b
}

func (b SubaccountRequestBuilder) Metadata(meta string) SubaccountRequestBuilder {
	b.req.Metadata = meta
	return b
}

func (b SubaccountRequestBuilder) Build() (*SubaccountRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	if b.req.PercentageCharge > 100 {
		return nil, &ValidationError{Field: "percentage_charge", Message: "must not exceed 100"}
	}
	req := b.req
	return &req, nil
}

// SubaccountData is the subaccount object returned by the API.
type SubaccountData struct {
	ID                  int64    `json:"id"`
	SubaccountCode      string   `json:"subaccount_code"`
	BusinessName        string   `json:"business_name"`
	Description         *string  `json:"description"`
	PrimaryContactEmail *string  `json:"primary_contact_email"`
	PrimaryContactName  *string  `json:"primary_contact_name"`
	PrimaryContactPhone *string  `json:"primary_contact_phone"`
	PercentageCharge    float64  `json:"percentage_charge"`
	SettlementBank      string   `json:"settlement_bank"`
	AccountNumber       string   `json:"account_number"`
	Currency            *string  `json:"currency"`
	Active              *bool    `json:"active"`
	Integration         *int64   `json:"integration"`
	Domain              *string  `json:"domain"`
	SettlementSchedule  *string  `json:"settlement_schedule"`
	CreatedAt           *string  `json:"createdAt"`
	UpdatedAt           *string  `json:"updatedAt"`
}

// ListSubaccountsOptions are the query filters accepted by List.
type ListSubaccountsOptions struct {
	PerPage int
	Page    int
	From    string
	To      string
}

func (o *ListSubaccountsOptions) query() url.Values {
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
	if o.From != "" {
		q.Set("from", o.From)
	}
	if o.To != "" {
		q.Set("to", o.To)
	}
	return q
}

// Create registers a subaccount on the integration.
func (s *SubaccountService) Create(ctx context.Context, req *SubaccountRequest) (*Response[SubaccountData], error) {
	return post[SubaccountData](ctx, s.transport, "/subaccount", req)
}

// List returns the subaccounts on the integration.
func (s *SubaccountService) List(ctx context.Context, opts *ListSubaccountsOptions) (*Response[[]SubaccountData], error) {
	return get[[]SubaccountData](ctx, s.transport, "/subaccount", opts.query())
}

// Fetch returns a subaccount by numeric id or subaccount code.
func (s *SubaccountService) Fetch(ctx context.Context, idOrCode string) (*Response[SubaccountData], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "is required"}
	}
	return get[SubaccountData](ctx, s.transport, "/subaccount/"+url.PathEscape(idOrCode), nil)
}

// Update modifies a subaccount by numeric id or subaccount code.
func (s *SubaccountService) Update(ctx context.Context, idOrCode string, req *SubaccountRequest) (*Response[SubaccountData], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "is required"}
	}
	return put[SubaccountData](ctx, s.transport, "/subaccount/"+url.PathEscape(idOrCode), req)
}
