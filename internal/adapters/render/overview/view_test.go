package overview

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThisCore/treinopago/internal/domain"
)

func TestRenderClientList(t *testing.T) {
	output, err := Render(ClientListView{Clients: []domain.Client{
		{
			ID:        "c1",
			Name:      "Ana",
			Email:     "ana@gym.com",
			StartDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			PlanID:    "p1",
		},
		{ID: "c2", Name: "Bruno"},
	}}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Clients")
	assert.Contains(t, output, "clients: 2")
	assert.Contains(t, output, "Ana (c1)")
	assert.Contains(t, output, "email: ana@gym.com")
	assert.Contains(t, output, "enrolled: 2026-01-10")
	assert.Contains(t, output, "plan: p1")
	assert.Contains(t, output, "plan: none")
}

func TestRenderClientListEmpty(t *testing.T) {
	output, err := Render(ClientListView{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "clients: 0")
	assert.Contains(t, output, "No clients enrolled.")
}

func TestRenderClientDetailZeroStartDate(t *testing.T) {
	output, err := Render(ClientDetailView{Client: domain.Client{ID: "c1", Name: "Ana"}}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "enrolled: unknown")
}

func TestRenderPlanList(t *testing.T) {
	output, err := Render(PlanListView{Plans: []domain.Plan{
		{
			ID:           "p1",
			Name:         "Gold",
			Description:  "Full access",
			Price:        decimal.NewFromFloat(99.9),
			Recurrence:   domain.RecurrenceMonthly,
			DurationDays: 30,
			Active:       true,
		},
		{ID: "p2", Name: "Trial", Price: decimal.NewFromInt(10), Recurrence: domain.RecurrenceWeekly},
	}}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "plans: 2")
	assert.Contains(t, output, "Gold (p1)")
	assert.Contains(t, output, "R$ 99.90 / Monthly")
	assert.Contains(t, output, "Full access")
	assert.Contains(t, output, "duration: 30 days")
	assert.Contains(t, output, "active")
	assert.Contains(t, output, "inactive")
}

func TestRenderBillingListMarksOverdue(t *testing.T) {
	output, err := Render(BillingListView{Billings: []domain.Billing{
		{
			ID:           "b1",
			DueDate:      "2026-02-01",
			Amount:       decimal.NewFromFloat(99.9),
			Status:       domain.BillingStatusOverdue,
			ReminderSent: true,
			Client: domain.BillingClient{
				Name: "Ana",
				Plan: domain.BillingPlan{
					Name:       "Gold",
					Price:      decimal.NewFromFloat(99.9),
					Recurrence: domain.RecurrenceMonthly,
				},
			},
		},
	}}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "charges: 1")
	assert.Contains(t, output, "Ana (b1)")
	assert.Contains(t, output, "R$ 99.90 due 2026-02-01")
	assert.Contains(t, output, "OVERDUE")
	assert.Contains(t, output, "plan: Gold (R$ 99.90 / Monthly)")
	assert.Contains(t, output, "reminder sent")
}

func TestRenderSettings(t *testing.T) {
	output, err := Render(SettingsView{PixKey: "12345678901", DarkTheme: true}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Settings")
	assert.Contains(t, output, "pix key: ")
	assert.Contains(t, output, "12345678901")
	assert.Contains(t, output, "(cpf)")
	assert.Contains(t, output, "theme: ")
	assert.Contains(t, output, "dark")
}

func TestRenderSettingsNoPixKey(t *testing.T) {
	output, err := Render(SettingsView{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "pix key: not configured")
	assert.Contains(t, output, "light")
}
