package application

import (
	"errors"
	"fmt"

	"github.com/ThisCore/treinopago/internal/ports"
)

// composeError converts a port-level failure into the human-readable
// message stored in the observable error field. Server error bodies are
// used verbatim when present; blank bodies fall back to the status
// reason phrase.
func composeError(action string, err error) string {
	var statusErr *ports.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("%s: %d: %s", action, statusErr.Code, statusErr.Message())
	}

	var transportErr *ports.TransportError
	if errors.As(err, &transportErr) {
		return fmt.Sprintf("connection failure: %s: %v", action, transportErr.Err)
	}

	return fmt.Sprintf("%s: %v", action, err)
}

var errPlanPriceNotPositive = errors.New("plan price must be greater than zero")
