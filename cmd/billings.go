package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThisCore/treinopago/internal/adapters/render/overview"
	"github.com/ThisCore/treinopago/internal/application"
	"github.com/ThisCore/treinopago/internal/domain"
)

func newBillingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "billings",
		Aliases: []string{"billing", "charges"},
		Short:   "Inspect charges (read-only)",
	}

	cmd.AddCommand(
		newBillingsListCmd(app),
		newBillingsGetCmd(app),
	)

	return cmd
}

func newBillingsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all charges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := application.NewBillingState(app.api, app.logger)
			defer state.Close()

			fetch := func(context.Context) error {
				state.FetchAll()
				return awaitCommand(state)
			}
			if err := fetchWithSpinner(cmd, asJSON, "Fetching charges...", fetch); err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, state.Billings().Get())
			}

			out, err := app.renderView(overview.BillingListView{Billings: state.Billings().Get()}, renderOpts(app))
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

func newBillingsGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := application.NewBillingState(app.api, app.logger)
			defer state.Close()

			state.FetchByID(domain.BillingID(args[0]))
			if err := awaitCommand(state); err != nil {
				return err
			}

			selected := state.Selected().Get()
			if selected == nil {
				return fmt.Errorf("charge %s not found", args[0])
			}

			if asJSON {
				return printJSON(cmd, selected)
			}

			out, err := app.renderView(overview.BillingDetailView{Billing: *selected}, renderOpts(app))
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
