package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ThisCore/treinopago/internal/adapters/render/overview"
	"github.com/ThisCore/treinopago/internal/application"
	"github.com/ThisCore/treinopago/internal/domain"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Account settings: PIX key and theme",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newPixCmd(app),
		newThemeCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := application.NewSettingsState(app.api, app.logger)
			defer state.Close()

			state.FetchPixKey()
			if err := awaitCommand(state); err != nil {
				return err
			}

			theme := application.NewThemeState(app.prefs, app.logger)
			out, err := app.renderView(overview.SettingsView{
				PixKey:    state.PixKey().Get(),
				DarkTheme: theme.DarkTheme().Get(),
			}, renderOpts(app))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newPixCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pix",
		Short: "Manage the account's PIX payment key",
	}

	cmd.AddCommand(
		newPixGetCmd(app),
		newPixSetCmd(app),
		newPixValidateCmd(),
		newPixGenerateCmd(app),
	)

	return cmd
}

func newPixGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Fetch the configured PIX key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := application.NewSettingsState(app.api, app.logger)
			defer state.Close()

			state.FetchPixKey()
			if err := awaitCommand(state); err != nil {
				return err
			}

			key := state.PixKey().Get()
			if key == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No PIX key configured.")
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", key, domain.ClassifyPixKey(key))
			return err
		},
	}
}

func newPixSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key>",
		Short: "Set the PIX key (CPF, CNPJ, email, +55 phone, or UUID)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			if !domain.ValidatePixKey(key) {
				return fmt.Errorf("invalid pix key %q: expected CPF, CNPJ, email, +55 phone number, or UUID", args[0])
			}

			state := application.NewSettingsState(app.api, app.logger)
			defer state.Close()

			state.UpdatePixKey(key)
			if err := awaitCommand(state); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "PIX key updated.")
			return err
		},
	}
}

func newPixValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <key>",
		Short: "Check whether a PIX key is acceptable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.ClassifyPixKey(args[0])
			if kind == domain.PixKeyInvalid {
				return fmt.Errorf("invalid pix key %q", args[0])
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "valid (%s)\n", kind)
			return err
		},
	}
}

func newPixGenerateCmd(app *app) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random (UUID) PIX key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := uuid.NewString()

			if apply {
				state := application.NewSettingsState(app.api, app.logger)
				defer state.Close()

				state.UpdatePixKey(key)
				if err := awaitCommand(state); err != nil {
					return err
				}
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Set the generated key as the account's PIX key")

	return cmd
}

func newThemeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the persisted dark-mode preference",
	}

	cmd.AddCommand(
		newThemeShowCmd(app),
		newThemeToggleCmd(app),
		newThemeSetCmd(app),
	)

	return cmd
}

func themeLabel(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func newThemeShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme := application.NewThemeState(app.prefs, app.logger)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), themeLabel(theme.DarkTheme().Get()))
			return err
		},
	}
}

func newThemeToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme := application.NewThemeState(app.prefs, app.logger)
			dark := theme.Toggle()
			_, err := fmt.Fprintln(cmd.OutOrStdout(), themeLabel(dark))
			return err
		},
	}
}

func newThemeSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <dark|light>",
		Short: "Set the theme explicitly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dark bool
			switch strings.ToLower(args[0]) {
			case "dark":
				dark = true
			case "light":
				dark = false
			default:
				return fmt.Errorf("unknown theme %q: expected dark or light", args[0])
			}

			theme := application.NewThemeState(app.prefs, app.logger)
			theme.Set(dark)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), themeLabel(dark))
			return err
		},
	}
}
