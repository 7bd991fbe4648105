// Package paystack provides typed Go bindings for the Paystack payment API.
//
// Construct a Client with your secret key, build a request with the matching
// builder, and call the endpoint:
//
//	client, err := paystack.New(os.Getenv("PAYSTACK_API_KEY"))
//	if err != nil {
//		log.Fatal().Err(err).Msg("paystack client")
//	}
//
//	req, err := paystack.NewTransactionRequestBuilder().
//		Amount("10000").
//		Email("email@example.com").
//		Currency(paystack.NGN).
//		Channels(paystack.ChannelCard, paystack.ChannelBankTransfer).
//		Build()
//	if err != nil {
//		log.Fatal().Err(err).Msg("build transaction")
//	}
//
//	resp, err := client.Transactions.Initialize(ctx, req)
//
// The client holds no mutable state after construction and is safe for
// concurrent use. The library never retries, caches, or batches calls;
// cancellation and deadlines come from the caller's context and the
// underlying http.Client timeout.
package paystack

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production Paystack API origin.
const DefaultBaseURL = "https://api.paystack.co"

// ErrMissingAPIKey is returned by New when the credential is empty.
var ErrMissingAPIKey = errors.New("paystack: API key is required")

// Client is the entry point to the Paystack API. Each field groups the
// operations of one API resource; all of them share the client's credential
// and transport.
type Client struct {
	Transactions             *TransactionService
	TransactionSplits        *TransactionSplitService
	Subaccounts              *SubaccountService
	Customers                *CustomerService
	Plans                    *PlanService
	Charges                  *ChargeService
	Terminals                *TerminalService
	ApplePay                 *ApplePayService
	DedicatedVirtualAccounts *DedicatedVirtualAccountService
	VirtualTerminals         *VirtualTerminalService

	transport Transport
}

// Option configures a Client during construction.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	transport  Transport
	logger     zerolog.Logger
	timeout    time.Duration
}

// WithBaseURL points the client at a different API origin, e.g. a test
// server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient supplies the http.Client used for all calls. Timeout and
// connection pooling are whatever the supplied client is configured with.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTransport replaces the transport entirely. BaseURL and HTTP options are
// ignored when a custom transport is set.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithLogger enables debug logging of requests through the given zerolog
// logger. Without it the client is silent.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTimeout sets the per-call timeout on the default http.Client. Ignored
// when WithHTTPClient or WithTransport is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// New creates a Paystack client from a secret API key. The only local
// validation is that the key is non-empty; the key is not verified against
// the API until the first call.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	o := options{
		baseURL: DefaultBaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			timeout := o.timeout
			if timeout == 0 {
				timeout = 30 * time.Second
			}
			httpClient = &http.Client{Timeout: timeout}
		}
		transport = newHTTPTransport(o.baseURL, apiKey, httpClient, o.logger)
	}

	c := &Client{transport: transport}
	c.Transactions = &TransactionService{transport: transport}
	c.TransactionSplits = &TransactionSplitService{transport: transport}
	c.Subaccounts = &SubaccountService{transport: transport}
	c.Customers = &CustomerService{transport: transport}
	c.Plans = &PlanService{transport: transport}
	c.Charges = &ChargeService{transport: transport}
	c.Terminals = &TerminalService{transport: transport}
	c.ApplePay = &ApplePayService{transport: transport}
	c.DedicatedVirtualAccounts = &DedicatedVirtualAccountService{transport: transport}
	c.VirtualTerminals = &VirtualTerminalService{transport: transport}
	return c, nil
}
