package domain

import "github.com/shopspring/decimal"

type BillingID string

// BillingStatusOverdue is the only status value this client reacts to;
// everything else is free text from the server.
const BillingStatusOverdue = "OVERDUE"

// Billing is one charge owed by a client, read-only from this client's
// perspective. The server embeds a snapshot of the client (and that
// client's plan) as they were at query time.
type Billing struct {
	ID           BillingID
	ClientID     ClientID
	DueDate      string
	Amount       decimal.Decimal
	Status       string
	ReminderSent bool
	Client       BillingClient
}

func (b Billing) Overdue() bool {
	return b.Status == BillingStatusOverdue
}

type BillingClient struct {
	ID               ClientID
	Name             string
	Email            string
	PaymentStatus    string
	BillingStartDate string
	PlanID           PlanID
	Plan             BillingPlan
}

type BillingPlan struct {
	ID         PlanID
	Name       string
	Price      decimal.Decimal
	Recurrence Recurrence
}
