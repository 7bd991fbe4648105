package paystack

import (
	"context"
	"encoding/json"
)

// DedicatedVirtualAccountService groups the Dedicated Virtual Accounts API,
// which assigns permanent NUBAN accounts to customers.
type DedicatedVirtualAccountService struct {
	transport Transport
}

// CreateDedicatedVirtualAccountRequest assigns a dedicated account to an
// existing customer. Construct it with
// NewCreateDedicatedVirtualAccountRequestBuilder.
type CreateDedicatedVirtualAccountRequest struct {
	Customer      string `json:"customer" validate:"required"`
	PreferredBank string `json:"preferred_bank,omitempty"`
	Subaccount    string `json:"subaccount,omitempty"`
	SplitCode     string `json:"split_code,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// CreateDedicatedVirtualAccountRequestBuilder assembles a
// CreateDedicatedVirtualAccountRequest.
type CreateDedicatedVirtualAccountRequestBuilder struct {
	req CreateDedicatedVirtualAccountRequest
}

func NewCreateDedicatedVirtualAccountRequestBuilder() CreateDedicatedVirtualAccountRequestBuilder {
	return CreateDedicatedVirtualAccountRequestBuilder{}
}

// Customer is the customer id or code the account is assigned to.
func (b CreateDedicatedVirtualAccountRequestBuilder) Customer(idOrCode string) CreateDedicatedVirtualAccountRequestBuilder {
	b.req.Customer = idOrCode
	return b
}

// PreferredBank is the slug of the providing bank, from the List Providers
// endpoint.
func (b CreateDedicatedVirtualAccountRequestBuilder) PreferredBank(slug string) CreateDedicatedVirtualAccountRequestBuilder {
	b.req.PreferredBank = slug
	return b
}

func (b CreateDedicatedVirtualAccountRequestBuilder) Subaccount(code string) CreateDedicatedVirtualAccountRequestBuilder {
	b.req.Subaccount = code
	return b
}

func (b CreateDedicatedVirtualAccountRequestBuilder) SplitCode(code string) CreateDedicatedVirtualAccountRequestBuilder {
	b.req.SplitCode = code
	return b
}

func (b CreateDedicatedVirtualAccountRequestBuilder) FirstName(name string) CreateDedicatedVirtualAccountRequestBuilder {
	b.req.FirstName = name
	return b
}

func (b CreateDedicatedVirtualAccountRequestBuilder) LastName(name string) CreateDedicatedVirtualAccountRequestBuilder {
	b.req.LastName = name
	return b
}

func (b CreateDedicatedVirtualAccountRequestBuilder) Phone(phone string) CreateDedicatedVirtualAccountRequestBuilder {
	b.req.Phone = phone
	return b
}

func (b CreateDedicatedVirtualAccountRequestBuilder) Build() (*CreateDedicatedVirtualAccountRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	req := b.req
	return &req, nil
}

// DedicatedVirtualAccountData is the dedicated account object returned by
// the API.
type DedicatedVirtualAccountData struct {
	ID            int64           `json:"id"`
	Bank          Bank            `json:"bank"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	Assigned      bool            `json:"assigned"`
	Currency      Currency        `json:"currency"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     *string         `json:"created_at"`
	UpdatedAt     *string         `json:"updated_at"`
	Assignment    *Assignment     `json:"assignment"`
	Customer      *CustomerData   `json:"customer"`
}

// Bank identifies the bank providing a dedicated account.
type Bank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Assignment records who a dedicated account was assigned to and when.
type Assignment struct {
	Integration  int64   `json:"integration"`
	AssigneeID   int64   `json:"assignee_id"`
	AssigneeType string  `json:"assignee_type"`
	Expired      bool    `json:"expired"`
	AccountType  string  `json:"account_type"`
	AssignedAt   *string `json:"assigned_at"`
}

// Create assigns a dedicated virtual account to a customer.
func (s *DedicatedVirtualAccountService) Create(ctx context.Context, req *CreateDedicatedVirtualAccountRequest) (*Response[DedicatedVirtualAccountData], error) {
	return post[DedicatedVirtualAccountData](ctx, s.transport, "/dedicated_account", req)
}
