package paystack

import (
	"context"
	"encoding/json"
)

// VirtualTerminalService groups the Virtual Terminal API, which creates
// web-based terminals merchants share with customers for in-person payments.
type VirtualTerminalService struct {
	transport Transport
}

// VirtualTerminalDestination is a WhatsApp number that gets payment
// notifications for a virtual terminal.
type VirtualTerminalDestination struct {
	Target string `json:"target" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

// VirtualTerminalCustomField is an extra field shown on the terminal's
// payment page.
type VirtualTerminalCustomField struct {
	DisplayName  string `json:"display_name" validate:"required"`
	VariableName string `json:"variable_name" validate:"required"`
}

// CreateVirtualTerminalRequest is the finalized payload for creating a
// virtual terminal. Construct it with NewCreateVirtualTerminalRequestBuilder.
type CreateVirtualTerminalRequest struct {
	Name         string                       `json:"name" validate:"required"`
	Destinations []VirtualTerminalDestination `json:"destinations" validate:"required,min=1,dive"`
	Metadata     string                       `json:"metadata,omitempty"`
	Currency     []Currency                   `json:"currency,omitempty"`
	CustomFields []VirtualTerminalCustomField `json:"custom_fields,omitempty" validate:"omitempty,dive"`
}

// CreateVirtualTerminalRequestBuilder assembles a
// CreateVirtualTerminalRequest.
type CreateVirtualTerminalRequestBuilder struct {
	req CreateVirtualTerminalRequest
}

func NewCreateVirtualTerminalRequestBuilder() CreateVirtualTerminalRequestBuilder {
	return CreateVirtualTerminalRequestBuilder{}
}

func (b CreateVirtualTerminalRequestBuilder) Name(name string) CreateVirtualTerminalRequestBuilder {
	b.req.Name = name
	return b
}

func (b CreateVirtualTerminalRequestBuilder) Destinations(dests ...VirtualTerminalDestination) CreateVirtualTerminalRequestBuilder {
	b.req.Destinations = dests
	return b
}

func (b CreateVirtualTerminalRequestBuilder) Metadata(meta string) CreateVirtualTerminalRequestBuilder {
	b.req.Metadata = meta
	return b
}

func (b CreateVirtualTerminalRequestBuilder) Currency(currencies ...Currency) CreateVirtualTerminalRequestBuilder {
	b.req.Currency = currencies
	return b
}

func (b CreateVirtualTerminalRequestBuilder) CustomFields(fields ...VirtualTerminalCustomField) CreateVirtualTerminalRequestBuilder {
	b.req.CustomFields = fields
	return b
}

func (b CreateVirtualTerminalRequestBuilder) Build() (*CreateVirtualTerminalRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	for _, c := range b.req.Currency {
		if !c.valid() {
			return nil, &ValidationError{Field: "currency", Message: "contains an unsupported currency"}
		}
	}
	req := b.req
	return &req, nil
}

// VirtualTerminalData is the virtual terminal object returned by the API.
type VirtualTerminalData struct {
	ID             int64                        `json:"id"`
	Name           string                       `json:"name"`
	Integration    *int64                       `json:"integration"`
	Domain         *string                      `json:"domain"`
	Code           string                       `json:"code"`
	PaymentMethods []string                     `json:"paymentMethods"`
	Active         bool                         `json:"active"`
	Metadata       json.RawMessage              `json:"metadata,omitempty"`
	Destinations   []VirtualTerminalDestination `json:"destinations"`
	Currency       *string                      `json:"currency"`
	CreatedAt      *string                      `json:"created_at"`
}

// Create registers a virtual terminal on the integration.
func (s *VirtualTerminalService) Create(ctx context.Context, req *CreateVirtualTerminalRequest) (*Response[VirtualTerminalData], error) {
	return post[VirtualTerminalData](ctx, s.transport, "/virtual_terminal", req)
}
