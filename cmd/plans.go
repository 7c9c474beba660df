package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ThisCore/treinopago/internal/adapters/render/overview"
	"github.com/ThisCore/treinopago/internal/application"
	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/ports"
)

func newPlansCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "Manage subscription plans",
	}

	cmd.AddCommand(
		newPlansListCmd(app),
		newPlansGetCmd(app),
		newPlansCreateCmd(app),
		newPlansUpdateCmd(app),
		newPlansDeleteCmd(app),
	)

	return cmd
}

func newPlansListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscription plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := application.NewPlanState(app.api, app.logger)
			defer state.Close()

			fetch := func(context.Context) error {
				state.FetchAll()
				return awaitCommand(state)
			}
			if err := fetchWithSpinner(cmd, asJSON, "Fetching plans...", fetch); err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, state.Plans().Get())
			}

			out, err := app.renderView(overview.PlanListView{Plans: state.Plans().Get()}, renderOpts(app))
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

func newPlansGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := application.NewPlanState(app.api, app.logger)
			defer state.Close()

			state.FetchByID(domain.PlanID(args[0]))
			if err := awaitCommand(state); err != nil {
				return err
			}

			selected := state.Selected().Get()
			if selected == nil {
				return fmt.Errorf("plan %s not found", args[0])
			}

			if asJSON {
				return printJSON(cmd, selected)
			}

			out, err := app.renderView(overview.PlanDetailView{Plan: *selected}, renderOpts(app))
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

func newPlansCreateCmd(app *app) *cobra.Command {
	var name, description, price, recurrence string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedPrice, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("parse --price: %w", err)
			}
			parsedRecurrence, err := domain.ParseRecurrence(recurrence)
			if err != nil {
				return err
			}

			state := application.NewPlanState(app.api, app.logger)
			defer state.Close()

			state.Create(ports.CreatePlanRequest{
				Name:        name,
				Description: description,
				Price:       parsedPrice,
				Recurrence:  parsedRecurrence,
			})
			if err := awaitCommand(state); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Plan created.")
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&description, "description", "", "Plan description")
	cmd.Flags().StringVar(&price, "price", "", "Plan price, e.g. 99.90")
	cmd.Flags().StringVar(&recurrence, "recurrence", "monthly", "Billing recurrence: weekly, monthly, quarterly, semi-annually, annually")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newPlansUpdateCmd(app *app) *cobra.Command {
	var name, price, recurrence string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a plan (only the provided flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req ports.UpdatePlanRequest
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("price") {
				parsedPrice, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("parse --price: %w", err)
				}
				req.Price = &parsedPrice
			}
			if flags.Changed("recurrence") {
				parsedRecurrence, err := domain.ParseRecurrence(recurrence)
				if err != nil {
					return err
				}
				req.Recurrence = &parsedRecurrence
			}

			state := application.NewPlanState(app.api, app.logger)
			defer state.Close()

			state.Update(domain.PlanID(args[0]), req)
			if err := awaitCommand(state); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Plan updated.")
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New plan name")
	cmd.Flags().StringVar(&price, "price", "", "New plan price")
	cmd.Flags().StringVar(&recurrence, "recurrence", "", "New billing recurrence")

	return cmd
}

func newPlansDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := application.NewPlanState(app.api, app.logger)
			defer state.Close()

			state.Delete(domain.PlanID(args[0]))
			if err := awaitCommand(state); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Plan deleted.")
			return err
		},
	}
}
