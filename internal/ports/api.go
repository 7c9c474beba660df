package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ThisCore/treinopago/internal/domain"
)

// API is the remote TreinoPago REST interface this client talks to.
// Implementations return a nil error on any 2xx response (with or without
// a body), a *StatusError when the server answered with a non-2xx status,
// and a *TransportError when no response arrived at all.
type API interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id domain.ClientID) (domain.Client, error)
	CreateClient(ctx context.Context, req CreateClientRequest) (domain.Client, error)
	UpdateClient(ctx context.Context, id domain.ClientID, req UpdateClientRequest) (domain.Client, error)
	DeleteClient(ctx context.Context, id domain.ClientID) error

	ListPlans(ctx context.Context) ([]domain.Plan, error)
	GetPlan(ctx context.Context, id domain.PlanID) (domain.Plan, error)
	CreatePlan(ctx context.Context, req CreatePlanRequest) (domain.Plan, error)
	UpdatePlan(ctx context.Context, id domain.PlanID, req UpdatePlanRequest) (domain.Plan, error)
	DeletePlan(ctx context.Context, id domain.PlanID) error

	ListBillings(ctx context.Context) ([]domain.Billing, error)
	GetBilling(ctx context.Context, id domain.BillingID) (domain.Billing, error)

	GetPixKey(ctx context.Context) (string, error)
	SetPixKey(ctx context.Context, key string) error
}

type CreateClientRequest struct {
	Name      string `validate:"required"`
	Email     string `validate:"omitempty,email"`
	StartDate time.Time
	PlanID    domain.PlanID
}

// UpdateClientRequest is a partial patch. A nil field is left unchanged
// on the server; a pointer to the zero value clears it explicitly.
type UpdateClientRequest struct {
	Name   *string
	Email  *string
	PlanID *domain.PlanID
}

type CreatePlanRequest struct {
	Name        string `validate:"required"`
	Description string
	Price       decimal.Decimal
	Recurrence  domain.Recurrence
}

// UpdatePlanRequest is a partial patch with the same nil-means-unchanged
// contract as UpdateClientRequest.
type UpdatePlanRequest struct {
	Name       *string
	Price      *decimal.Decimal
	Recurrence *domain.Recurrence
}
