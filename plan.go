package paystack

import (
	"context"
	"net/url"
	"strconv"
)

// PlanService groups the Plans API, which manages recurring billing plans.
type PlanService struct {
	transport Transport
}

// PlanInterval is the billing cadence of a plan.
type PlanInterval string

const (
	IntervalDaily      PlanInterval = "daily"
	IntervalWeekly     PlanInterval = "weekly"
	IntervalMonthly    PlanInterval = "monthly"
	IntervalQuarterly  PlanInterval = "quarterly"
	IntervalBiannually PlanInterval = "biannually"
	IntervalAnnually   PlanInterval = "annually"
)

var planIntervals = map[PlanInterval]bool{
	IntervalDaily:      true,
	IntervalWeekly:     true,
	IntervalMonthly:    true,
	IntervalQuarterly:  true,
	IntervalBiannually: true,
	IntervalAnnually:   true,
}

func (i PlanInterval) valid() bool { return planIntervals[i] }

// PlanRequest is the finalized payload for creating or updating a plan.
// Construct it with NewPlanRequestBuilder. Amount is in subunits.
type PlanRequest struct {
	Name         string       `json:"name" validate:"required"`
	Amount       int64        `json:"amount" validate:"required,gt=0"`
	Interval     PlanInterval `json:"interval" validate:"required"`
	Description  string       `json:"description,omitempty"`
	Currency     Currency     `json:"currency,omitempty"`
	InvoiceLimit int          `json:"invoice_limit,omitempty"`
	SendInvoices *bool        `json:"send_invoices,omitempty"`
	SendSMS      *bool        `json:"send_sms,omitempty"`
}

// PlanRequestBuilder assembles a PlanRequest.
type PlanRequestBuilder struct {
	req PlanRequest
}

func NewPlanRequestBuilder() PlanRequestBuilder {
	return PlanRequestBuilder{}
}

func (b PlanRequestBuilder) Name(name string) PlanRequestBuilder {
	b.req.Name = name
	return b
}

// Amount is the plan price in the subunit of the currency.
func (b PlanRequestBuilder) Amount(amount int64) PlanRequestBuilder {
	b.req.Amount = amount
	return b
}

func (b PlanRequestBuilder) Interval(interval PlanInterval) PlanRequestBuilder {
	b.req.Interval = interval
	return b
}

func (b PlanRequestBuilder) Description(desc string) PlanRequestBuilder {
	b.req.Description = desc
	return b
}

func (b PlanRequestBuilder) Currency(c Currency) PlanRequestBuilder {
	b.req.Currency = c
	return b
}

func (b PlanRequestBuilder) InvoiceLimit(n int) PlanRequestBuilder {
	b.req.InvoiceLimit = n
	return b
}

func (b PlanRequestBuilder) SendInvoices(send bool) PlanRequestBuilder {
	b.req.SendInvoices = &send
	return b
}

func (b PlanRequestBuilder) SendSMS(send bool) PlanRequestBuilder {
	b.req.SendSMS = &send
	return b
}

func (b PlanRequestBuilder) Build() (*PlanRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	if !b.req.Interval.valid() {
		return nil, &ValidationError{Field: "interval", Message: "is not a recognised billing interval"}
	}
	if b.req.Currency != "" && !b.req.Currency.valid() {
		return nil, &ValidationError{Field: "currency", Message: "is not a supported currency"}
	}
	req := b.req
	return &req, nil
}

// PlanData is the plan object returned by the API.
type PlanData struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	PlanCode     string   `json:"plan_code"`
	Description  *string  `json:"description"`
	Amount       int64    `json:"amount"`
	Interval     string   `json:"interval"`
	Currency     *string  `json:"currency"`
	InvoiceLimit *int     `json:"invoice_limit"`
	SendInvoices *bool    `json:"send_invoices"`
	SendSMS      *bool    `json:"send_sms"`
	Integration  *int64   `json:"integration"`
	Domain       *string  `json:"domain"`
	CreatedAt    *string  `json:"createdAt"`
	UpdatedAt    *string  `json:"updatedAt"`
}

// ListPlansOptions are the query filters accepted by List.
type ListPlansOptions struct {
	PerPage  int
	Page     int
	Status   string
	Interval PlanInterval
	Amount   int64
}

func (o *ListPlansOptions) query() url.Values {
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
		q.Set("status", o.Status)
	}
	if o.Interval != "" {
		q.Set("interval", string(o.Interval))
	}
	if o.Amount > 0 {
		q.Set("amount", strconv.FormatInt(o.Amount, 10))
	}
	return q
}

// Create registers a plan on the integration.
func (s *PlanService) Create(ctx context.Context, req *PlanRequest) (*Response[PlanData], error) {
	return post[PlanData](ctx, s.transport, "/plan", req)
}

// List returns the plans on the integration.
func (s *PlanService) List(ctx context.Context, opts *ListPlansOptions) (*Response[[]PlanData], error) {
	return get[[]PlanData](ctx, s.transport, "/plan", opts.query())
}

// Fetch returns a plan by numeric id or plan code.
func (s *PlanService) Fetch(ctx context.Context, idOrCode string) (*Response[PlanData], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "is required"}
	}
	return get[PlanData](ctx, s.transport, "/plan/"+url.PathEscape(idOrCode), nil)
}

// Update modifies a plan by numeric id or plan code. Existing subscriptions
// keep their old terms; only new ones pick up the change.
func (s *PlanService) Update(ctx context.Context, idOrCode string, req *PlanRequest) (*Response[struct{}], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "is required"}
	}
	return put[struct{}](ctx, s.transport, "/plan/"+url.PathEscape(idOrCode), req)
}
