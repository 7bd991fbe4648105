package paystack

import (
	"context"
	"net/url"
)

// TerminalService groups the Terminal API, which pushes events to physical
// Paystack terminals and reads their status.
type TerminalService struct {
	transport Transport
}

// TerminalEventType selects what kind of event is pushed to a terminal.
type TerminalEventType string

const (
	EventInvoice     TerminalEventType = "invoice"
	EventTransaction TerminalEventType = "transaction"
)

// TerminalAction is what the terminal should do with the pushed event.
type TerminalAction string

const (
	ActionProcess TerminalAction = "process"
	ActionView    TerminalAction = "view"
	ActionPrint   TerminalAction = "print"
)

// SendEventRequest pushes an invoice or transaction to a terminal. Construct
// it with NewSendEventRequestBuilder.
type SendEventRequest struct {
	Type   TerminalEventType `json:"type" validate:"required"`
	Action TerminalAction    `json:"action" validate:"required"`
	Data   TerminalEventData `json:"data"`
}

// TerminalEventData identifies the object the event refers to. Reference is
// only required for transaction events.
type TerminalEventData struct {
	ID        string `json:"id" validate:"required"`
	Reference string `json:"reference,omitempty"`
}

// SendEventRequestBuilder assembles a SendEventRequest.
type SendEventRequestBuilder struct {
	req SendEventRequest
}

func NewSendEventRequestBuilder() SendEventRequestBuilder {
	return SendEventRequestBuilder{}
}

func (b SendEventRequestBuilder) Type(t TerminalEventType) SendEventRequestBuilder {
	b.req.Type = t
	return b
}

func (b SendEventRequestBuilder) Action(a TerminalAction) SendEventRequestBuilder {
	b.req.Action = a
	return b
}

func (b SendEventRequestBuilder) Data(data TerminalEventData) SendEventRequestBuilder {
	b.req.Data = data
	return b
}

func (b SendEventRequestBuilder) Build() (*SendEventRequest, error) {
	if err := checkRequest(b.req); err != nil {
		return nil, err
	}
	switch b.req.Type {
	case EventInvoice:
		if b.req.Action != ActionProcess && b.req.Action != ActionView {
			return nil, &ValidationError{Field: "action", Message: "must be process or view for invoice events"}
		}
	case EventTransaction:
		if b.req.Action != ActionProcess && b.req.Action != ActionPrint {
			return nil, &ValidationError{Field: "action", Message: "must be process or print for transaction events"}
		}
	default:
		return nil, &ValidationError{Field: "type", Message: "must be invoice or transaction"}
	}
	req := b.req
	return &req, nil
}

// SendEventData acknowledges a pushed event.
type SendEventData struct {
	ID string `json:"id"`
}

// EventStatusData reports whether the terminal received an event.
type EventStatusData struct {
	Delivered bool `json:"delivered"`
}

// TerminalStatusData reports a terminal's connectivity.
type TerminalStatusData struct {
	Online    bool `json:"online"`
	Available bool `json:"available"`
}

// SendEvent pushes an event to the terminal identified by terminalID.
func (s *TerminalService) SendEvent(ctx context.Context, terminalID string, req *SendEventRequest) (*Response[SendEventData], error) {
	if terminalID == "" {
		return nil, &ValidationError{Field: "terminal_id", Message: "is required"}
	}
	return post[SendEventData](ctx, s.transport, "/terminal/"+url.PathEscape(terminalID)+"/event", req)
}

// FetchEventStatus checks whether an event pushed earlier was delivered.
func (s *TerminalService) FetchEventStatus(ctx context.Context, terminalID, eventID string) (*Response[EventStatusData], error) {
	if terminalID == "" {
		return nil, &ValidationError{Field: "terminal_id", Message: "is required"}
	}
	if eventID == "" {
		return nil, &ValidationError{Field: "event_id", Message: "is required"}
	}
	return get[EventStatusData](ctx, s.transport, "/terminal/"+url.PathEscape(terminalID)+"/event/"+url.PathEscape(eventID), nil)
}

// FetchStatus checks a terminal's availability.
func (s *TerminalService) FetchStatus(ctx context.Context, terminalID string) (*Response[TerminalStatusData], error) {
	if terminalID == "" {
		return nil, &ValidationError{Field: "terminal_id", Message: "is required"}
	}
	return get[TerminalStatusData](ctx, s.transport, "/terminal/"+url.PathEscape(terminalID)+"/presence", nil)
}
