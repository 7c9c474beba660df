package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/observe"
	"github.com/ThisCore/treinopago/internal/ports"
)

// BillingState is read-only: charges are created server-side, this
// client only lists them and inspects one at a time.
type BillingState struct {
	*machine
	api ports.API

	billings *observe.Value[[]domain.Billing]
	selected *observe.Value[*domain.Billing]
}

func NewBillingState(api ports.API, log *zap.Logger) *BillingState {
	return &BillingState{
		machine:  newMachine(log),
		api:      api,
		billings: observe.NewValue([]domain.Billing{}),
		selected: observe.NewValue[*domain.Billing](nil),
	}
}

func (s *BillingState) Billings() *observe.Value[[]domain.Billing] { return s.billings }
func (s *BillingState) Selected() *observe.Value[*domain.Billing] { return s.selected }

// FetchAll resets the held collection to empty on failure rather than
// keeping a stale list next to an error message.
func (s *BillingState) FetchAll() {
	s.launch(func(ctx context.Context) {
		billings, err := s.api.ListBillings(ctx)
		if err != nil {
			s.fail("fetch billings", err)
			s.billings.Set([]domain.Billing{})
			return
		}
		if billings == nil {
			billings = []domain.Billing{}
		}
		s.billings.Set(billings)
	})
}

func (s *BillingState) FetchByID(id domain.BillingID) {
	s.selected.Set(nil)
	s.launch(func(ctx context.Context) {
		billing, err := s.api.GetBilling(ctx, id)
		if err != nil {
			s.fail("fetch billing", err)
			return
		}
		s.selected.Set(&billing)
	})
}

func (s *BillingState) ClearSelected() { s.selected.Set(nil) }
