package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/observe"
	"github.com/ThisCore/treinopago/internal/ports"
)

// PlanState mirrors ClientState for subscription plans. Create and
// update additionally refresh the full list on success, as a separate
// command sharing the loading flag.
type PlanState struct {
	*machine
	api ports.API

	plans    *observe.Value[[]domain.Plan]
	selected *observe.Value[*domain.Plan]
	created  *observe.Value[bool]
	updated  *observe.Value[bool]
	deleted  *observe.Value[bool]
}

func NewPlanState(api ports.API, log *zap.Logger) *PlanState {
	return &PlanState{
		machine:  newMachine(log),
		api:      api,
		plans:    observe.NewValue([]domain.Plan{}),
		selected: observe.NewValue[*domain.Plan](nil),
		created:  observe.NewValue(false),
		updated:  observe.NewValue(false),
		deleted:  observe.NewValue(false),
	}
}

func (s *PlanState) Plans() *observe.Value[[]domain.Plan] { return s.plans }
func (s *PlanState) Selected() *observe.Value[*domain.Plan] { return s.selected }
func (s *PlanState) CreationSuccess() *observe.Value[bool] { return s.created }
func (s *PlanState) UpdateSuccess() *observe.Value[bool] { return s.updated }
func (s *PlanState) DeletionSuccess() *observe.Value[bool] { return s.deleted }

func (s *PlanState) FetchAll() {
	s.launch(func(ctx context.Context) {
		plans, err := s.api.ListPlans(ctx)
		if err != nil {
			s.fail("fetch plans", err)
			return
		}
		if plans == nil {
			plans = []domain.Plan{}
		}
		s.plans.Set(plans)
	})
}

func (s *PlanState) FetchByID(id domain.PlanID) {
	s.selected.Set(nil)
	s.launch(func(ctx context.Context) {
		plan, err := s.api.GetPlan(ctx, id)
		if err != nil {
			s.fail("fetch plan", err)
			return
		}
		s.selected.Set(&plan)
	})
}

func (s *PlanState) Create(req ports.CreatePlanRequest) {
	s.created.Set(false)
	if err := s.validateCreate(req); err != nil {
		s.errMsg.Set(err.Error())
		return
	}

	s.launch(func(ctx context.Context) {
		if _, err := s.api.CreatePlan(ctx, req); err != nil {
			s.fail("create plan", err)
			return
		}
		s.created.Set(true)
		s.FetchAll()
	})
}

func (s *PlanState) validateCreate(req ports.CreatePlanRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	if !req.Price.IsPositive() {
		return errPlanPriceNotPositive
	}
	if !req.Recurrence.Valid() {
		return domain.ErrInvalidRecurrence
	}
	return nil
}

func (s *PlanState) Update(id domain.PlanID, req ports.UpdatePlanRequest) {
	s.updated.Set(false)
	s.launch(func(ctx context.Context) {
		plan, err := s.api.UpdatePlan(ctx, id, req)
		if err != nil {
			s.fail("update plan", err)
			return
		}
		s.updated.Set(true)
		s.selected.Set(&plan)
		s.FetchAll()
	})
}

func (s *PlanState) Delete(id domain.PlanID) {
	s.deleted.Set(false)
	s.launch(func(ctx context.Context) {
		if err := s.api.DeletePlan(ctx, id); err != nil {
			s.fail("delete plan", err)
			return
		}
		s.deleted.Set(true)
		if selected := s.selected.Get(); selected != nil && selected.ID == id {
			s.selected.Set(nil)
		}
	})
}

func (s *PlanState) ResetCreationStatus() { s.created.Set(false) }
func (s *PlanState) ResetUpdateStatus()   { s.updated.Set(false) }
func (s *PlanState) ResetDeletionStatus() { s.deleted.Set(false) }
func (s *PlanState) ClearSelected()       { s.selected.Set(nil) }
