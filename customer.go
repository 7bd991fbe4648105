package paystack

import (
	"context"
	"net/url"
	"strconv"
)

// CustomerService groups the Customers API.
type CustomerService struct {
	transport Transport
}

// CreateCustomerRequest is the finalized payload for creating a customer.
// Construct it with NewCreateCustomerRequestBuilder.
type CreateCustomerRequest struct {
	Email     string            `json:"email" validate:"required,email"`
	FirstName string            `json:"first_name,omitempty"`
	LastName  string            `json:"last_name,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// CreateCustomerRequestBuilder assembles a CreateCustomerRequest.
type CreateCustomerRequestBuilder struct {
	req CreateCustomerRequest
}

func NewCreateCustomerRequestBuilder() CreateCustomerRequestBuilder {
	return CreateCustomerRequestBuilder{}
}

func (b CreateCustomerRequestBuilder) Email(email string) CreateCustomerRequestBuilder {
	b.req.Email = email
	return b
}

func (b CreateCustomerRequestBuilder) FirstName(name string) CreateCustomerRequestBuilder {
	b.req.FirstName = name
	return b
}

func (b CreateCustomerRequestBuilder) LastName(name string) CreateCustomerRequestBuilder {
	b.req.LastName = name
	return b
}

func (b CreateCustomerRequestBuilder) Phone(phone string) CreateCustomerRequestBuilder {
	b.req.Phone = phone
	return b
}

// Metadata attaches key/value pairs to the customer. Repeated calls replace
// the whole map.
func (b CreateCustomerRequestBuilder) Metadata(meta map[string]string) CreateCustomerRequestBuilder {
	b.req.Metadata = meta
	return b
}

func (b CreateCustomerRequestBuilder) Build() (*CreateCustomerRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	req := b.req
	return &req, nil
}

// CustomerData is the customer object returned by the Customers API.
type CustomerData struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Integration  *int64  `json:"integration"`
	Domain       *string `json:"domain"`
	CustomerCode string  `json:"customer_code"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Phone        *string `json:"phone"`
	Identified   *bool   `json:"identified"`
	RiskAction   *string `json:"risk_action"`
	CreatedAt    *string `json:"createdAt"`
	UpdatedAt    *string `json:"updatedAt"`
}

// ListCustomersOptions are the query filters accepted by List.
type ListCustomersOptions struct {
	PerPage int
	Page    int
	From    string
	To      string
}

func (o *ListCustomersOptions) query() url.Values {
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

// Create registers a customer on the integration.
func (s *CustomerService) Create(ctx context.Context, req *CreateCustomerRequest) (*Response[CustomerData], error) {
	return post[CustomerData](ctx, s.transport, "/customer", req)
}

// List returns the customers on the integration.
func (s *CustomerService) List(ctx context.Context, opts *ListCustomersOptions) (*Response[[]CustomerData], error) {
	return get[[]CustomerData](ctx, s.transport, "/customer", opts.query())
}

// Fetch returns a customer by email address or customer code.
func (s *CustomerService) Fetch(ctx context.Context, emailOrCode string) (*Response[CustomerData], error) {
	if emailOrCode == "" {
		return nil, &ValidationError{Field: "email_or_code", Message: "is required"}
	}
	return get[CustomerData](ctx, s.transport, "/customer/"+url.PathEscape(emailOrCode), nil)
}
