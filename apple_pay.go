package paystack

import "context"

// ApplePayService groups the Apple Pay API, which manages the top-level
// domains registered for Apple Pay on an integration.
type ApplePayService struct {
	transport Transport
}

type applePayDomain struct {
	DomainName string `json:"domainName"`
}

// ApplePayDomains lists the registered domain names.
type ApplePayDomains struct {
	DomainNames []string `json:"domainNames"`
}

// RegisterDomain registers a top-level domain or subdomain for Apple Pay.
func (s *ApplePayService) RegisterDomain(ctx context.Context, domainName string) (*Response[struct{}], error) {
	if domainName == "" {
		return nil, &ValidationError{Field: "domainName", Message: "is required"}
	}
	return post[struct{}](ctx, s.transport, "/apple-pay/domain", applePayDomain{DomainName: domainName})
}

// ListDomains returns the domains registered for Apple Pay.
func (s *ApplePayService) ListDomains(ctx context.Context) (*Response[ApplePayDomains], error) {
	return get[ApplePayDomains](ctx, s.transport, "/apple-pay/domain", nil)
}

// UnregisterDomain removes a domain from the Apple Pay registration.
func (s *ApplePayService) UnregisterDomain(ctx context.Context, domainName string) (*Response[struct{}], error) {
	if domainName == "" {
		return nil, &ValidationError{Field: "domainName", Message: "is required"}
	}
	return del[struct{}](ctx, s.transport, "/apple-pay/domain", applePayDomain{DomainName: domainName})
}
