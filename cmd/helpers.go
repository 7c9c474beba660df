package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThisCore/treinopago/internal/adapters/render/overview"
	"github.com/ThisCore/treinopago/internal/observe"
)

// awaitCommand blocks until the state machine's in-flight command has
// completed and converts a surfaced error message into a CLI error.
func awaitCommand(st interface {
	Wait()
	Err() *observe.Value[string]
}) error {
	st.Wait()
	if msg := st.Err().Get(); msg != "" {
		return errors.New(msg)
	}
	return nil
}

func fetchWithSpinner(cmd *cobra.Command, plain bool, label string, fetch func(context.Context) error) error {
	if plain {
		return fetch(cmd.Context())
	}
	return runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), label, fetch)
}

func printJSON(cmd *cobra.Command, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}

func renderOpts(app *app) overview.RenderOptions {
	return overview.RenderOptions{Now: app.clock.Now()}
}
