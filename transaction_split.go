package paystack

import (
	"context"
	"net/url"
	"strconv"
)

// TransactionSplitService groups the Transaction Splits API, which divides
// settlement for a transaction between the main account and subaccounts.
type TransactionSplitService struct {
	transport Transport
}

// SplitSubaccount pairs a subaccount code with its share of a split.
type SplitSubaccount struct {
	Subaccount string `json:"subaccount" validate:"required"`
	Share      int    `json:"share" validate:"required,gt=0"`
}

// CreateSplitRequest is the finalized payload for creating a transaction
// split. Construct it with NewCreateSplitRequestBuilder.
type CreateSplitRequest struct {
	Name             string            `json:"name" validate:"required"`
	Type             SplitType         `json:"type" validate:"required"`
	Currency         Currency          `json:"currency" validate:"required"`
	Subaccounts      []SplitSubaccount `json:"subaccounts" validate:"required,min=1,dive"`
	BearerType       Bearer            `json:"bearer_type,omitempty"`
	BearerSubaccount string            `json:"bearer_subaccount,omitempty"`
}

// CreateSplitRequestBuilder assembles a CreateSplitRequest.
type CreateSplitRequestBuilder struct {
	req CreateSplitRequest
}

func NewCreateSplitRequestBuilder() CreateSplitRequestBuilder {
	return CreateSplitRequestBuilder{}
}

func (b CreateSplitRequestBuilder) Name(name string) CreateSplitRequestBuilder {
	b.req.Name = name
	return b
}

func (b CreateSplitRequestBuilder) Type(t SplitType) CreateSplitRequestBuilder {
	b.req.Type = t
	return b
}

func (b CreateSplitRequestBuilder) Currency(c Currency) CreateSplitRequestBuilder {
	b.req.Currency = c
	return b
}

// Subaccounts sets the full list of split participants, replacing any prior
// list.
func (b CreateSplitRequestBuilder) Subaccounts(subs ...SplitSubaccount) CreateSplitRequestBuilder {
	b.req.Subaccounts = subs
	return b
}

func (b CreateSplitRequestBuilder) BearerType(bearer Bearer) CreateSplitRequestBuilder {
	b.req.BearerType = bearer
	return b
}

func (b CreateSplitRequestBuilder) BearerSubaccount(code string) CreateSplitRequestBuilder {
	b.req.BearerSubaccount = code
	return b
}

func (b CreateSplitRequestBuilder) Build() (*CreateSplitRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	if !b.req.Type.valid() {
		return nil, &ValidationError{Field: "type", Message: "must be percentage or flat"}
	}
	if !b.req.Currency.valid() {
		return nil, &ValidationError{Field: "currency", Message: "is not a supported currency"}
	}
	if b.req.BearerType != "" && !b.req.BearerType.valid() {
		return nil, &ValidationError{Field: "bearer_type", Message: "is not a recognised bearer"}
	}
	req := b.req
	return &req, nil
}

// UpdateSplitRequest modifies an existing split. Construct it with
// NewUpdateSplitRequestBuilder.
type UpdateSplitRequest struct {
	Name             string `json:"name" validate:"required"`
	Active           bool   `json:"active"`
	BearerType       Bearer `json:"bearer_type,omitempty"`
	BearerSubaccount string `json:"bearer_subaccount,omitempty"`
}

// UpdateSplitRequestBuilder assembles an UpdateSplitRequest.
type UpdateSplitRequestBuilder struct {
	req UpdateSplitRequest
}

func NewUpdateSplitRequestBuilder() UpdateSplitRequestBuilder {
	return UpdateSplitRequestBuilder{}
}

func (b UpdateSplitRequestBuilder) Name(name string) UpdateSplitRequestBuilder {
	b.req.Name = name
	return b
}

func (b UpdateSplitRequestBuilder) Active(active bool) UpdateSplitRequestBuilder {
	b.req.Active = active
	return b
}

func (b UpdateSplitRequestBuilder) BearerType(bearer Bearer) UpdateSplitRequestBuilder {
	b.req.BearerType = bearer
	return b
}

func (b UpdateSplitRequestBuilder) BearerSubaccount(code string) UpdateSplitRequestBuilder {
	b.req.BearerSubaccount = code
	return b
}

func (b UpdateSplitRequestBuilder) Build() (*UpdateSplitRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	if b.req.BearerType != "" && !b.req.BearerType.valid() {
		return nil, &ValidationError{Field: "bearer_type", Message: "is not a recognised bearer"}
	}
	req := b.req
	return &req, nil
}

// SplitData is the transaction split object returned by the API.
type SplitData struct {
	ID               int64                  `json:"id"`
	Name             string                 `json:"name"`
	Type             string                 `json:"type"`
	Currency         Currency               `json:"currency"`
	Integration      *int64                 `json:"integration"`
	Domain           *string                `json:"domain"`
	SplitCode        string                 `json:"split_code"`
	Active           *bool                  `json:"active"`
	BearerType       *string                `json:"bearer_type"`
	BearerSubaccount *string                `json:"bearer_subaccount"`
	CreatedAt        *string                `json:"createdAt"`
	UpdatedAt        *string                `json:"updatedAt"`
	Subaccounts      []SplitSubaccountData  `json:"subaccounts"`
	TotalSubaccounts *int                   `json:"total_subaccounts"`
}

// SplitSubaccountData is a participant entry in a split response.
type SplitSubaccountData struct {
	Subaccount SubaccountData `json:"subaccount"`
	Share      int            `json:"share"`
}

// ListSplitsOptions are the query filters accepted by List.
type ListSplitsOptions struct {
	Name    string
	Active  *bool
	SortBy  string
	PerPage int
	Page    int
	From    string
	To      string
}

func (o *ListSplitsOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Name != "" {
		q.Set("name", o.Name)
	}
	if o.Active != nil {
		q.Set("active", strconv.FormatBool(*o.Active))
	}
	if o.SortBy != "" {
		q.Set("sort_by", o.SortBy)
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

// Create creates a split on the integration.
func (s *TransactionSplitService) Create(ctx context.Context, req *CreateSplitRequest) (*Response[SplitData], error) {
	return post[SplitData](ctx, s.transport, "/split", req)
}

// List returns the splits on the integration.
func (s *TransactionSplitService) List(ctx context.Context, opts *ListSplitsOptions) (*Response[[]SplitData], error) {
	return get[[]SplitData](ctx, s.transport, "/split", opts.query())
}

// Fetch returns the details of a split by its id.
func (s *TransactionSplitService) Fetch(ctx context.Context, id string) (*Response[SplitData], error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "is required"}
	}
	return get[SplitData](ctx, s.transport, "/split/"+url.PathEscape(id), nil)
}

// Update changes a split's name, active flag or bearer settings.
func (s *TransactionSplitService) Update(ctx context.Context, id string, req *UpdateSplitRequest) (*Response[SplitData], error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "is required"}
	}
	return put[SplitData](ctx, s.transport, "/split/"+url.PathEscape(id), req)
}

// UpsertSubaccount adds a subaccount to a split, or updates its share if it
// is already a participant.
func (s *TransactionSplitService) UpsertSubaccount(ctx context.Context, id string, sub SplitSubaccount) (*Response[SplitData], error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "is required"}
	}
	if err := checkRequest(sub); err != nil {
		return nil, err
	}
	return post[SplitData](ctx, s.transport, "/split/"+url.PathEscape(id)+"/subaccount/add", sub)
}

// RemoveSubaccount removes a subaccount from a split.
func (s *TransactionSplitService) RemoveSubaccount(ctx context.Context, id, subaccountCode string) (*Response[struct{}], error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "is required"}
	}
	if subaccountCode == "" {
		return nil, &ValidationError{Field: "subaccount", Message: "is required"}
	}
	payload := map[string]string{"subaccount": subaccountCode}
	return post[struct{}](ctx, s.transport, "/split/"+url.PathEscape(id)+"/subaccount/remove", payload)
}
