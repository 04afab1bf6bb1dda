package model

import "strings"

// Payment event types that unlock the dashboard.
const (
	PaymentEventSucceeded = "payment.succeeded"
	PaymentEventCompleted = "checkout.completed"
)

// PaymentEvent is the subset of the payment provider's webhook payload the
// server reads.
type PaymentEvent struct {
	Type string `json:"type"`
	Data struct {
		Customer struct {
			Email string `json:"email"`
		} `json:"customer"`
		BillingDetails struct {
			Email string `json:"email"`
		} `json:"billing_details"`
		Metadata struct {
			Email string `json:"email"`
		} `json:"metadata"`
	} `json:"data"`
}

// Unlocks reports whether the event confirms a payment.
func (e PaymentEvent) Unlocks() bool {
	return e.Type == PaymentEventSucceeded || e.Type == PaymentEventCompleted
}

// PayerEmail returns the first email found on the customer, the billing
// details or the metadata.
func (e PaymentEvent) PayerEmail() string {
	for _, email := range []string{e.Data.Customer.Email, e.Data.BillingDetails.Email, e.Data.Metadata.Email} {
		if email = strings.TrimSpace(email); email != "" {
			return email
		}
	}
	return ""
}

// PaymentOutcome is what processing a webhook event did.
type PaymentOutcome int

const (
	// PaymentIgnored means the event type does not unlock anything.
	PaymentIgnored PaymentOutcome = iota
	// PaymentApplied means a profile was marked paid.
	PaymentApplied
	// PaymentUnmatched means no profile has the payer's email yet.
	PaymentUnmatched
)
