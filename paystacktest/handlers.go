package paystacktest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func transactionFixture(ref string) gin.H {
	return gin.H{
		"id":               1234567890,
		"status":           "success",
		"reference":        ref,
		"amount":           10000,
		"gateway_response": "Successful",
		"paid_at":          "2024-05-01T10:21:34.000Z",
		"created_at":       "2024-05-01T10:20:00.000Z",
		"channel":          "card",
		"currency":         "NGN",
		"ip_address":       "127.0.0.1",
		"fees":             150,
		"customer": gin.H{
			"id":            84312,
			"email":         "email@example.com",
			"customer_code": "CUS_xnxdt6s1zg1f4nx",
		},
		"authorization": gin.H{
			"authorization_code": "AUTH_72btv547",
			"bin":                "408408",
			"last4":              "4081",
			"exp_month":          "12",
			"exp_year":           "2030",
			"channel":            "card",
			"card_type":          "visa",
			"bank":               "TEST BANK",
			"country_code":       "NG",
			"brand":              "visa",
			"reusable":           true,
		},
		// Attributes the client does not model; decoding must ignore them.
		"plan_object": gin.H{},
		"log":         gin.H{"attempts": 1},
	}
}

func (s *Server) initializeTransaction(c *gin.Context) {
	var body struct {
		Amount    string `json:"amount"`
		Email     string `json:"email"`
		Reference string `json:"reference"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Amount == "" || body.Email == "" {
		badRequest(c, "amount and email are required")
		return
	}
	ref := body.Reference
	if ref == "" {
		ref = reference()
	}
	ok(c, "Authorization URL created", gin.H{
		"authorization_url": "https://checkout.paystack.com/" + ref,
		"access_code":       reference(),
		"reference":         ref,
	})
}

func (s *Server) verifyTransaction(c *gin.Context) {
	ref := c.Param("reference")
	if strings.HasPrefix(ref, "missing") {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  false,
			"message": "Transaction reference not found",
		})
		return
	}
	ok(c, "Verification successful", transactionFixture(ref))
}

func (s *Server) listTransactions(c *gin.Context) {
	perPage, err := strconv.Atoi(c.DefaultQuery("perPage", "50"))
	if err != nil {
		badRequest(c, "perPage must be a number")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Transactions retrieved",
		"data":    []gin.H{transactionFixture(reference()), transactionFixture(reference())},
		"meta": gin.H{
			"total":     2,
			"skipped":   0,
			"perPage":   perPage,
			"page":      1,
			"pageCount": 1,
		},
	})
}

func (s *Server) fetchTransaction(c *gin.Context) {
	ok(c, "Transaction retrieved", transactionFixture(reference()))
}

func (s *Server) chargeAuthorization(c *gin.Context) {
	var body struct {
		Amount            string `json:"amount"`
		Email             string `json:"email"`
		AuthorizationCode string `json:"authorization_code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.AuthorizationCode == "" {
		badRequest(c, "authorization_code is required")
		return
	}
	ok(c, "Charge attempted", transactionFixture(reference()))
}

func (s *Server) transactionTimeline(c *gin.Context) {
	ok(c, "Timeline retrieved", gin.H{
		"time_spent":     22,
		"attempts":       1,
		"authentication": nil,
		"errors":         0,
		"success":        true,
		"mobile":         false,
		"channel":        "card",
		"history": []gin.H{
			{"type": "open", "message": "Opened payment page", "time": 1},
			{"type": "success", "message": "Successfully paid", "time": 22},
		},
	})
}

func (s *Server) transactionTotals(c *gin.Context) {
	ok(c, "Transaction totals", gin.H{
		"total_transactions": 42,
		"unique_customers":   7,
		"total_volume":       420000,
		"total_volume_by_currency": []gin.H{
			{"currency": "NGN", "amount": 420000},
		},
		"pending_transfers": 0,
	})
}

func (s *Server) exportTransactions(c *gin.Context) {
	ok(c, "Export successful", gin.H{
		"path":      "https://files.paystack.co/exports/" + reference() + ".csv",
		"expiresAt": "2024-05-02 10:20:00",
	})
}

func splitFixture(id, name string) gin.H {
	return gin.H{
		"id":                108,
		"name":              name,
		"type":              "percentage",
		"currency":          "NGN",
		"integration":       100973,
		"domain":            "test",
		"split_code":        "SPL_" + id,
		"active":            true,
		"bearer_type":       "subaccount",
		"bearer_subaccount": "ACCT_hdl8abxl8drhrl3",
		"createdAt":         "2024-05-01T10:20:00.000Z",
		"updatedAt":         "2024-05-01T10:20:00.000Z",
		"subaccounts": []gin.H{
			{
				"subaccount": subaccountFixture("ACCT_hdl8abxl8drhrl3"),
				"share":      55,
			},
		},
		"total_subaccounts": 1,
	}
}

func (s *Server) createSplit(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		badRequest(c, "name is required")
		return
	}
	ok(c, "Split created", splitFixture(reference(), body.Name))
}

func (s *Server) listSplits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Split retrieved",
		"data":    []gin.H{splitFixture(reference(), "Test Split")},
		"meta":    gin.H{"total": 1, "skipped": 0, "perPage": 50, "page": 1, "pageCount": 1},
	})
}

func (s *Server) fetchSplit(c *gin.Context) {
	ok(c, "Split retrieved", splitFixture(c.Param("id"), "Test Split"))
}

func (s *Server) updateSplit(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		badRequest(c, "name is required")
		return
	}
	ok(c, "Split group updated", splitFixture(c.Param("id"), body.Name))
}

func (s *Server) removeSplitSubaccount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Subaccount removed"})
}

func subaccountFixture(code string) gin.H {
	return gin.H{
		"id":                55,
		"subaccount_code":   code,
		"business_name":     "Sunshine Studios",
		"description":       "Sunshine Studios",
		"percentage_charge": 18.2,
		"settlement_bank":   "044",
		"account_number":    "0193274682",
		"currency":          "NGN",
		"active":            true,
		"integration":       100973,
		"domain":            "test",
		"createdAt":         "2024-05-01T10:20:00.000Z",
		"updatedAt":         "2024-05-01T10:20:00.000Z",
	}
}

func (s *Server) createSubaccount(c *gin.Context) {
	var body struct {
		BusinessName  string `json:"business_name"`
		AccountNumber string `json:"account_number"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.BusinessName == "" {
		badRequest(c, "business_name is required")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Subaccount created",
		"data":    subaccountFixture("ACCT_" + reference()),
	})
}

func (s *Server) listSubaccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Subaccounts retrieved",
		"data":    []gin.H{subaccountFixture("ACCT_" + reference())},
		"meta":    gin.H{"total": 1, "skipped": 0, "perPage": 50, "page": 1, "pageCount": 1},
	})
}

func (s *Server) fetchSubaccount(c *gin.Context) {
	ok(c, "Subaccount retrieved", subaccountFixture(c.Param("id")))
}

func customerFixture(email string) gin.H {
	return gin.H{
		"id":            84312,
		"email":         email,
		"integration":   100973,
		"domain":        "test",
		"customer_code": "CUS_" + reference(),
		"identified":    false,
		"createdAt":     "2024-05-01T10:20:00.000Z",
		"updatedAt":     "2024-05-01T10:20:00.000Z",
	}
}

func (s *Server) createCustomer(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		badRequest(c, "email is required")
		return
	}
	ok(c, "Customer created", customerFixture(body.Email))
}

func (s *Server) listCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Customers retrieved",
		"data":    []gin.H{customerFixture("email@example.com")},
		"meta":    gin.H{"total": 1, "skipped": 0, "perPage": 50, "page": 1, "pageCount": 1},
	})
}

func (s *Server) fetchCustomer(c *gin.Context) {
	ok(c, "Customer retrieved", customerFixture("email@example.com"))
}

func planFixture(name string) gin.H {
	return gin.H{
		"id":            28,
		"name":          name,
		"plan_code":     "PLN_" + reference(),
		"description":   nil,
		"amount":        50000,
		"interval":      "monthly",
		"currency":      "NGN",
		"send_invoices": true,
		"send_sms":      true,
		"integration":   100973,
		"domain":        "test",
		"createdAt":     "2024-05-01T10:20:00.000Z",
		"updatedAt":     "2024-05-01T10:20:00.000Z",
	}
}

func (s *Server) createPlan(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		badRequest(c, "name is required")
		return
	}
	ok(c, "Plan created", planFixture(body.Name))
}

func (s *Server) listPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Plans retrieved",
		"data":    []gin.H{planFixture("Monthly Retainer")},
		"meta":    gin.H{"total": 1, "skipped": 0, "perPage": 50, "page": 1, "pageCount": 1},
	})
}

func (s *Server) fetchPlan(c *gin.Context) {
	ok(c, "Plan retrieved", planFixture("Monthly Retainer"))
}

func (s *Server) updatePlan(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Plan updated. 1 subscription(s) affected"})
}

func (s *Server) createCharge(c *gin.Context) {
	var body struct {
		Email  string `json:"email"`
		Amount string `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		badRequest(c, "email is required")
		return
	}
	ok(c, "Charge attempted", gin.H{
		"id":               1234567891,
		"amount":           10000,
		"currency":         "NGN",
		"transaction_date": "2024-05-01T10:20:00.000Z",
		"status":           "success",
		"reference":        reference(),
		"gateway_response": "Successful",
		"channel":          "card",
		"fees":             150,
		"customer":         customerFixture(body.Email),
	})
}

func (s *Server) checkCharge(c *gin.Context) {
	ok(c, "Reference check successful", gin.H{
		"status":    "pending",
		"reference": c.Param("reference"),
		"amount":    10000,
	})
}

func (s *Server) sendTerminalEvent(c *gin.Context) {
	ok(c, "Event sent to Terminal", gin.H{"id": reference()})
}

func (s *Server) terminalEventStatus(c *gin.Context) {
	ok(c, "Message Status Retrieved", gin.H{"delivered": true})
}

func (s *Server) terminalPresence(c *gin.Context) {
	ok(c, "Terminal status retrieved", gin.H{"online": true, "available": true})
}

func (s *Server) registerApplePayDomain(c *gin.Context) {
	var body struct {
		DomainName string `json:"domainName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.DomainName == "" {
		badRequest(c, "domainName is required")
		return
	}
	s.mu.Lock()
	s.domains = append(s.domains, body.DomainName)
	s.mu.Unlock()
	ok(c, "Domain successfully registered on Apple Pay", nil)
}

func (s *Server) listApplePayDomains(c *gin.Context) {
	s.mu.Lock()
	domains := append([]string(nil), s.domains...)
	s.mu.Unlock()
	ok(c, "Apple Pay registered domains retrieved", gin.H{"domainNames": domains})
}

func (s *Server) unregisterApplePayDomain(c *gin.Context) {
	var body struct {
		DomainName string `json:"domainName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.DomainName == "" {
		badRequest(c, "domainName is required")
		return
	}
	s.mu.Lock()
	kept := s.domains[:0]
	for _, d := range s.domains {
		if d != body.DomainName {
			kept = append(kept, d)
		}
	}
	s.domains = kept
	s.mu.Unlock()
	ok(c, "Domain successfully unregistered on Apple Pay", nil)
}

func (s *Server) createDedicatedAccount(c *gin.Context) {
	var body struct {
		Customer string `json:"customer"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Customer == "" {
		badRequest(c, "customer is required")
		return
	}
	ok(c, "NUBAN successfully created", gin.H{
		"id":             253,
		"bank":           gin.H{"name": "Wema Bank", "id": 20, "slug": "wema-bank"},
		"account_name":   "KAROKART / RHODA CHURCH",
		"account_number": "9930000737",
		"assigned":       true,
		"currency":       "NGN",
		"active":         true,
		"created_at":     "2024-05-01T10:20:00.000Z",
		"updated_at":     "2024-05-01T10:20:00.000Z",
		"assignment": gin.H{
			"integration":   100973,
			"assignee_id":   7454289,
			"assignee_type": "Customer",
			"expired":       false,
			"account_type":  "PAY-WITH-TRANSFER-RECURRING",
			"assigned_at":   "2024-05-01T10:20:00.000Z",
		},
		"customer": customerFixture("email@example.com"),
	})
}

func (s *Server) createVirtualTerminal(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		badRequest(c, "name is required")
		return
	}
	ok(c, "Virtual Terminal created", gin.H{
		"id":             27,
		"name":           body.Name,
		"integration":    100973,
		"domain":         "test",
		"code":           "VT_" + reference(),
		"paymentMethods": []string{"bank_transfer"},
		"active":         true,
		"destinations": []gin.H{
			{"target": "+2348012345678", "name": "Till Alerts"},
		},
		"currency":   "NGN",
		"created_at": "2024-05-01T10:20:00.000Z",
	})
}
