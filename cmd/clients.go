package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ThisCore/treinopago/internal/adapters/render/overview"
	"github.com/ThisCore/treinopago/internal/application"
	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/ports"
)

const dateLayout = "2006-01-02"

func newClientsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client"},
		Short:   "Manage enrolled clients",
	}

	cmd.AddCommand(
		newClientsListCmd(app),
		newClientsGetCmd(app),
		newClientsCreateCmd(app),
		newClientsUpdateCmd(app),
		newClientsDeleteCmd(app),
	)

	return cmd
}

func newClientsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List enrolled clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := application.NewClientState(app.api, app.logger)
			defer state.Close()

			fetch := func(context.Context) error {
				state.FetchAll()
				return awaitCommand(state)
			}
			if err := fetchWithSpinner(cmd, asJSON, "Fetching clients...", fetch); err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, state.Clients().Get())
			}

			out, err := app.renderView(overview.ClientListView{Clients: state.Clients().Get()}, renderOpts(app))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newClientsGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := application.NewClientState(app.api, app.logger)
			defer state.Close()

			state.FetchByID(domain.ClientID(args[0]))
			if err := awaitCommand(state); err != nil {
				return err
			}

			selected := state.Selected().Get()
			if selected == nil {
				return fmt.Errorf("client %s not found", args[0])
			}

			if asJSON {
				return printJSON(cmd, selected)
			}

			out, err := app.renderView(overview.ClientDetailView{Client: *selected}, renderOpts(app))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newClientsCreateCmd(app *app) *cobra.Command {
	var name, email, start, plan string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Enroll a new client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate := app.clock.Now()
			if start != "" {
				parsed, err := time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("parse --start date: %w", err)
				}
				startDate = parsed
			}

			planID, err := resolvePlanID(app, plan)
			if err != nil {
				return err
			}

			state := application.NewClientState(app.api, app.logger)
			defer state.Close()

			state.Create(ports.CreateClientRequest{
				Name:      name,
				Email:     email,
				StartDate: startDate,
				PlanID:    planID,
			})
			if err := awaitCommand(state); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Client created.")
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&email, "email", "", "Client email")
	cmd.Flags().StringVar(&start, "start", "", "Billing start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&plan, "plan", "", "Plan to enroll the client in, by ID or name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// resolvePlanID accepts a plan ID or a plan name. Names are matched
// against the fetched plan list case-insensitively; IDs pass through
// without a lookup when they match exactly.
func resolvePlanID(app *app, plan string) (domain.PlanID, error) {
	if plan == "" {
		return "", nil
	}

	state := application.NewPlanState(app.api, app.logger)
	defer state.Close()

	state.FetchAll()
	if err := awaitCommand(state); err != nil {
		return "", fmt.Errorf("resolve plan %q: %w", plan, err)
	}

	var byName *domain.Plan
	for _, candidate := range state.Plans().Get() {
		if candidate.ID == domain.PlanID(plan) {
			return candidate.ID, nil
		}
		if strings.EqualFold(candidate.Name, plan) {
			match := candidate
			byName = &match
		}
	}
	if byName != nil {
		return byName.ID, nil
	}

	return "", fmt.Errorf("no plan with ID or name %q", plan)
}

func newClientsUpdateCmd(app *app) *cobra.Command {
	var name, email, plan string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a client (only the provided flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req ports.UpdateClientRequest
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("email") {
				req.Email = &email
			}
			if flags.Changed("plan") {
				planID := domain.PlanID(plan)
				req.PlanID = &planID
			}

			state := application.NewClientState(app.api, app.logger)
			defer state.Close()

			state.Update(domain.ClientID(args[0]), req)
			if err := awaitCommand(state); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Client updated.")
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New client name")
	cmd.Flags().StringVar(&email, "email", "", "New client email")
	cmd.Flags().StringVar(&plan, "plan", "", "New plan ID")

	return cmd
}

func newClientsDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := application.NewClientState(app.api, app.logger)
			defer state.Close()

			state.Delete(domain.ClientID(args[0]))
			if err := awaitCommand(state); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Client deleted.")
			return err
		},
	}
}
