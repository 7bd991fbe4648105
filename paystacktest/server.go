// Package paystacktest provides an in-process fake of the Paystack API for
// exercising the client without network access or a live secret key. It
// implements the routes the client covers with canned but well-formed
// envelopes, so round-trip tests can assert on decoded values.
package paystacktest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server is a fake Paystack API bound to a single secret key. Requests
// carrying any other key get the same 401 envelope the real API sends.
type Server struct {
	APIKey string

	engine *gin.Engine
	http   *httptest.Server

	mu      sync.Mutex
	domains []string
}

// New builds a fake server that accepts the given secret key. Call Start to
// bind it to a local listener.
func New(apiKey string) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{APIKey: apiKey}
	r := gin.New()
	r.Use(s.auth())

	r.POST("/transaction/initialize", s.initializeTransaction)
	r.GET("/transaction/verify/:reference", s.verifyTransaction)
	r.GET("/transaction", s.listTransactions)
	r.GET("/transaction/totals", s.transactionTotals)
	r.GET("/transaction/export", s.exportTransactions)
	r.GET("/transaction/timeline/:id", s.transactionTimeline)
	r.GET("/transaction/:id", s.fetchTransaction)
	r.POST("/transaction/charge_authorization", s.chargeAuthorization)
	r.POST("/transaction/partial_debit", s.chargeAuthorization)

	r.POST("/split", s.createSplit)
	r.GET("/split", s.listSplits)
	r.GET("/split/:id", s.fetchSplit)
	r.PUT("/split/:id", s.updateSplit)
	r.POST("/split/:id/subaccount/add", s.fetchSplit)
	r.POST("/split/:id/subaccount/remove", s.removeSplitSubaccount)

	r.POST("/subaccount", s.createSubaccount)
	r.GET("/subaccount", s.listSubaccounts)
	r.GET("/subaccount/:id", s.fetchSubaccount)
	r.PUT("/subaccount/:id", s.fetchSubaccount)

	r.POST("/customer", s.createCustomer)
	r.GET("/customer", s.listCustomers)
	r.GET("/customer/:code", s.fetchCustomer)

	r.POST("/plan", s.createPlan)
	r.GET("/plan", s.listPlans)
	r.GET("/plan/:id", s.fetchPlan)
	r.PUT("/plan/:id", s.updatePlan)

	r.POST("/charge", s.createCharge)
	r.GET("/charge/:reference", s.checkCharge)

	r.POST("/terminal/:id/event", s.sendTerminalEvent)
	r.GET("/terminal/:id/event/:event", s.terminalEventStatus)
	r.GET("/terminal/:id/presence", s.terminalPresence)

	r.POST("/apple-pay/domain", s.registerApplePayDomain)
	r.GET("/apple-pay/domain", s.listApplePayDomains)
	r.DELETE("/apple-pay/domain", s.unregisterApplePayDomain)

	r.POST("/dedicated_account", s.createDedicatedAccount)
	r.POST("/virtual_terminal", s.createVirtualTerminal)

	s.engine = r
	return s
}

// Start binds the fake API to a local listener and returns its base URL.
func (s *Server) Start() string {
	s.http = httptest.NewServer(s.engine)
	return s.http.URL
}

// Close shuts the listener down.
func (s *Server) Close() {
	if s.http != nil {
		s.http.Close()
	}
}

// ServeHTTP lets the server be mounted directly as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header != "Bearer "+s.APIKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Invalid key",
			})
			return
		}
		c.Next()
	}
}

func ok(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"status": true, "message": message, "data": data})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": message})
}

// reference mints transaction references the way test fixtures in the wild
// do: short, unique, url-safe.
func reference() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
