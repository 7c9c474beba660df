package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/ports"
)

// Wire shapes mirror the API's JSON. Monetary amounts travel as JSON
// numbers and convert to decimals at this boundary; enrollment dates
// travel as epoch milliseconds.

type clientPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	StartDate int64  `json:"startDate"`
	PlanID    string `json:"planId,omitempty"`
}

func (p clientPayload) toDomain() domain.Client {
	return domain.Client{
		ID:        domain.ClientID(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		StartDate: time.UnixMilli(p.StartDate).UTC(),
		PlanID:    domain.PlanID(p.PlanID),
	}
}

func clientsFromPayload(payload []clientPayload) []domain.Client {
	if payload == nil {
		return nil
	}
	clients := make([]domain.Client, 0, len(payload))
	for _, entry := range payload {
		clients = append(clients, entry.toDomain())
	}
	return clients
}

type createClientPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	StartDate int64  `json:"startDate"`
	PlanID    string `json:"planId,omitempty"`
}

func createClientPayloadFrom(req ports.CreateClientRequest) createClientPayload {
	return createClientPayload{
		Name:      req.Name,
		Email:     req.Email,
		StartDate: req.StartDate.UnixMilli(),
		PlanID:    string(req.PlanID),
	}
}

// updateClientPayload encodes a partial patch: nil fields marshal to
// nothing at all, so the server treats them as "leave unchanged", while
// a pointer to "" is sent as an explicit empty value.
type updateClientPayload struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	PlanID *string `json:"planId,omitempty"`
}

func updateClientPayloadFrom(req ports.UpdateClientRequest) updateClientPayload {
	payload := updateClientPayload{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.PlanID != nil {
		planID := string(*req.PlanID)
		payload.PlanID = &planID
	}
	return payload
}

type planPayload struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description,omitempty"`
	Price               float64 `json:"price"`
	Recurrence          string  `json:"recurrence,omitempty"`
	DurationDays        int     `json:"duration_days,omitempty"`
	DurationDescription string  `json:"durationDescription,omitempty"`
	IsActive            bool    `json:"is_active"`
}

func (p planPayload) toDomain() domain.Plan {
	return domain.Plan{
		ID:                  domain.PlanID(p.ID),
		Name:                p.Name,
		Description:         p.Description,
		Price:               decimal.NewFromFloat(p.Price),
		Recurrence:          domain.Recurrence(p.Recurrence),
		DurationDays:        p.DurationDays,
		DurationDescription: p.DurationDescription,
		Active:              p.IsActive,
	}
}

func plansFromPayload(payload []planPayload) []domain.Plan {
	if payload == nil {
		return nil
	}
	plans := make([]domain.Plan, 0, len(payload))
	for _, entry := range payload {
		plans = append(plans, entry.toDomain())
	}
	return plans
}

type createPlanPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Recurrence  string  `json:"recurrence"`
}

func createPlanPayloadFrom(req ports.CreatePlanRequest) createPlanPayload {
	return createPlanPayload{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.InexactFloat64(),
		Recurrence:  string(req.Recurrence),
	}
}

type updatePlanPayload struct {
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Recurrence *string  `json:"recurrence,omitempty"`
}

func updatePlanPayloadFrom(req ports.UpdatePlanRequest) updatePlanPayload {
	payload := updatePlanPayload{Name: req.Name}
	if req.Price != nil {
		price := req.Price.InexactFloat64()
		payload.Price = &price
	}
	if req.Recurrence != nil {
		recurrence := string(*req.Recurrence)
		payload.Recurrence = &recurrence
	}
	return payload
}

type billingPayload struct {
	ID           string               `json:"id"`
	ClientID     string               `json:"clientId"`
	DueDate      string               `json:"dueDate"`
	Amount       float64              `json:"amount"`
	Status       string               `json:"status"`
	ReminderSent bool                 `json:"reminderSent"`
	Client       billingClientPayload `json:"client"`
}

type billingClientPayload struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email,omitempty"`
	PaymentStatus    string             `json:"paymentStatus"`
	BillingStartDate string             `json:"billingStartDate"`
	PlanID           string             `json:"planId"`
	Plan             billingPlanPayload `json:"plan"`
}

type billingPlanPayload struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Recurrence string  `json:"recurrence"`
}

func (p billingPayload) toDomain() domain.Billing {
	return domain.Billing{
		ID:           domain.BillingID(p.ID),
		ClientID:     domain.ClientID(p.ClientID),
		DueDate:      p.DueDate,
		Amount:       decimal.NewFromFloat(p.Amount),
		Status:       p.Status,
		ReminderSent: p.ReminderSent,
		Client: domain.BillingClient{
			ID:               domain.ClientID(p.Client.ID),
			Name:             p.Client.Name,
			Email:            p.Client.Email,
			PaymentStatus:    p.Client.PaymentStatus,
			BillingStartDate: p.Client.BillingStartDate,
			PlanID:           domain.PlanID(p.Client.PlanID),
			Plan: domain.BillingPlan{
				ID:         domain.PlanID(p.Client.Plan.ID),
				Name:       p.Client.Plan.Name,
				Price:      decimal.NewFromFloat(p.Client.Plan.Price),
				Recurrence: domain.Recurrence(p.Client.Plan.Recurrence),
			},
		},
	}
}

func billingsFromPayload(payload []billingPayload) []domain.Billing {
	if payload == nil {
		return nil
	}
	billings := make([]domain.Billing, 0, len(payload))
	for _, entry := range payload {
		billings = append(billings, entry.toDomain())
	}
	return billings
}

type pixKeyPayload struct {
	PixKey string `json:"pixKey"`
}
