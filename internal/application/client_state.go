package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/observe"
	"github.com/ThisCore/treinopago/internal/ports"
)

// ClientState orchestrates client fetch/create/update/delete calls and
// holds the observable state screens render from.
type ClientState struct {
	*machine
	api ports.API

	clients  *observe.Value[[]domain.Client]
	selected *observe.Value[*domain.Client]
	created  *observe.Value[bool]
	updated  *observe.Value[bool]
	deleted  *observe.Value[bool]
}

func NewClientState(api ports.API, log *zap.Logger) *ClientState {
	return &ClientState{
		machine:  newMachine(log),
		api:      api,
		clients:  observe.NewValue([]domain.Client{}),
		selected: observe.NewValue[*domain.Client](nil),
		created:  observe.NewValue(false),
		updated:  observe.NewValue(false),
		deleted:  observe.NewValue(false),
	}
}

func (s *ClientState) Clients() *observe.Value[[]domain.Client] { return s.clients }
func (s *ClientState) Selected() *observe.Value[*domain.Client] { return s.selected }
func (s *ClientState) CreationSuccess() *observe.Value[bool] { return s.created }
func (s *ClientState) UpdateSuccess() *observe.Value[bool] { return s.updated }
func (s *ClientState) DeletionSuccess() *observe.Value[bool] { return s.deleted }

func (s *ClientState) FetchAll() {
	s.launch(func(ctx context.Context) {
		clients, err := s.api.ListClients(ctx)
		if err != nil {
			s.fail("fetch clients", err)
			return
		}
		if clients == nil {
			clients = []domain.Client{}
		}
		s.clients.Set(clients)
	})
}

func (s *ClientState) FetchByID(id domain.ClientID) {
	s.selected.Set(nil)
	s.launch(func(ctx context.Context) {
		client, err := s.api.GetClient(ctx, id)
		if err != nil {
			s.fail("fetch client", err)
			return
		}
		s.selected.Set(&client)
	})
}

// Create validates locally first; an invalid request surfaces an error
// synchronously and never reaches the network.
func (s *ClientState) Create(req ports.CreateClientRequest) {
	s.created.Set(false)
	if err := validateRequest(req); err != nil {
		s.errMsg.Set(err.Error())
		return
	}

	s.launch(func(ctx context.Context) {
		if _, err := s.api.CreateClient(ctx, req); err != nil {
			s.fail("create client", err)
			return
		}
		s.created.Set(true)
	})
}

func (s *ClientState) Update(id domain.ClientID, req ports.UpdateClientRequest) {
	s.updated.Set(false)
	s.launch(func(ctx context.Context) {
		client, err := s.api.UpdateClient(ctx, id, req)
		if err != nil {
			s.fail("update client", err)
			return
		}
		s.updated.Set(true)
		s.selected.Set(&client)
	})
}

// Delete clears the selection when it points at the deleted client;
// any other selection is left untouched.
func (s *ClientState) Delete(id domain.ClientID) {
	s.deleted.Set(false)
	s.launch(func(ctx context.Context) {
		if err := s.api.DeleteClient(ctx, id); err != nil {
			s.fail("delete client", err)
			return
		}
		s.deleted.Set(true)
		if selected := s.selected.Get(); selected != nil && selected.ID == id {
			s.selected.Set(nil)
		}
	})
}

func (s *ClientState) ResetCreationStatus() { s.created.Set(false) }
func (s *ClientState) ResetUpdateStatus()   { s.updated.Set(false) }
func (s *ClientState) ResetDeletionStatus() { s.deleted.Set(false) }
func (s *ClientState) ClearSelected()       { s.selected.Set(nil) }
