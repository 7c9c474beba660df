package overview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ThisCore/treinopago/internal/domain"
)

type ClientListView struct {
	Clients []domain.Client
}

func (v ClientListView) render(_ RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Clients"),
		s.header.Render(fmt.Sprintf("clients: %d", len(v.Clients))),
	}

	if len(v.Clients) == 0 {
		lines = append(lines, s.empty.Render("No clients enrolled."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, client := range v.Clients {
		lines = append(lines, s.section.Render(renderClient(client, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type ClientDetailView struct {
	Client domain.Client
}

func (v ClientDetailView) render(_ RenderOptions, s styles) string {
	return renderClient(v.Client, s)
}

func renderClient(client domain.Client, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", client.Name, client.ID)),
	}
	if client.Email != "" {
		parts = append(parts, s.detail.Render("email: "+client.Email))
	}
	parts = append(parts, s.detail.Render("enrolled: "+formatDate(client.StartDate)))
	if client.PlanID != "" {
		parts = append(parts, s.detail.Render("plan: "+string(client.PlanID)))
	} else {
		parts = append(parts, s.faint.Render("plan: none"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type PlanListView struct {
	Plans []domain.Plan
}

func (v PlanListView) render(_ RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Plans"),
		s.header.Render(fmt.Sprintf("plans: %d", len(v.Plans))),
	}

	if len(v.Plans) == 0 {
		lines = append(lines, s.empty.Render("No plans configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, plan := range v.Plans {
		lines = append(lines, s.section.Render(renderPlan(plan, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type PlanDetailView struct {
	Plan domain.Plan
}

func (v PlanDetailView) render(_ RenderOptions, s styles) string {
	return renderPlan(v.Plan, s)
}

func renderPlan(plan domain.Plan, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", plan.Name, plan.ID)),
		s.detail.Render(fmt.Sprintf("R$ %s / %s", plan.Price.StringFixed(2), plan.Recurrence.DisplayName())),
	}
	if plan.Description != "" {
		parts = append(parts, s.detail.Render(plan.Description))
	}
	if plan.DurationDescription != "" {
		parts = append(parts, s.faint.Render("duration: "+plan.DurationDescription))
	} else if plan.DurationDays > 0 {
		parts = append(parts, s.faint.Render(fmt.Sprintf("duration: %d days", plan.DurationDays)))
	}
	if plan.Active {
		parts = append(parts, s.ok.Render("active"))
	} else {
		parts = append(parts, s.faint.Render("inactive"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type BillingListView struct {
	Billings []domain.Billing
}

func (v BillingListView) render(opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Billings"),
		s.header.Render(fmt.Sprintf("charges: %d", len(v.Billings))),
	}

	if len(v.Billings) == 0 {
		lines = append(lines, s.empty.Render("No charges found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, billing := range v.Billings {
		lines = append(lines, s.section.Render(renderBilling(billing, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type BillingDetailView struct {
	Billing domain.Billing
}

func (v BillingDetailView) render(_ RenderOptions, s styles) string {
	return renderBilling(v.Billing, s)
}

func renderBilling(billing domain.Billing, s styles) string {
	statusStyle := s.detail
	if billing.Overdue() {
		statusStyle = s.warning
	}

	parts := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", billing.Client.Name, billing.ID)),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.detail.Render(fmt.Sprintf("R$ %s due %s ", billing.Amount.StringFixed(2), billing.DueDate)),
			statusStyle.Render(billing.Status),
		),
		s.detail.Render(fmt.Sprintf("plan: %s (R$ %s / %s)",
			billing.Client.Plan.Name,
			billing.Client.Plan.Price.StringFixed(2),
			billing.Client.Plan.Recurrence.DisplayName(),
		)),
	}
	if billing.ReminderSent {
		parts = append(parts, s.faint.Render("reminder sent"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type SettingsView struct {
	PixKey    string
	DarkTheme bool
}

func (v SettingsView) render(_ RenderOptions, s styles) string {
	parts := []string{s.title.Render("Settings")}

	if v.PixKey == "" {
		parts = append(parts, s.empty.Render("pix key: not configured"))
	} else {
		kind := domain.ClassifyPixKey(v.PixKey)
		parts = append(parts,
			lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.key.Render("pix key: "),
				s.detail.Render(v.PixKey),
				s.faint.Render(fmt.Sprintf(" (%s)", kind)),
			),
		)
	}

	theme := "light"
	if v.DarkTheme {
		theme = "dark"
	}
	parts = append(parts, s.key.Render("theme: ")+s.detail.Render(theme))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02")
}
