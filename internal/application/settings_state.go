package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/observe"
	"github.com/ThisCore/treinopago/internal/ports"
)

// SettingsState manages the account's single PIX payment key.
type SettingsState struct {
	*machine
	api ports.API

	pixKey  *observe.Value[string]
	updated *observe.Value[bool]
}

func NewSettingsState(api ports.API, log *zap.Logger) *SettingsState {
	return &SettingsState{
		machine: newMachine(log),
		api:     api,
		pixKey:  observe.NewValue(""),
		updated: observe.NewValue(false),
	}
}

func (s *SettingsState) PixKey() *observe.Value[string] { return s.pixKey }
func (s *SettingsState) UpdateSuccess() *observe.Value[bool] { return s.updated }

func (s *SettingsState) FetchPixKey() {
	s.launch(func(ctx context.Context) {
		key, err := s.api.GetPixKey(ctx)
		if err != nil {
			s.fail("fetch pix key", err)
			return
		}
		s.pixKey.Set(key)
	})
}

// UpdatePixKey rejects blank input synchronously, before any network
// call. On success the held key is set to the trimmed input rather than
// re-read from the server.
func (s *SettingsState) UpdatePixKey(key string) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		s.errMsg.Set(domain.ErrBlankPixKey.Error())
		return
	}

	s.updated.Set(false)
	s.launch(func(ctx context.Context) {
		if err := s.api.SetPixKey(ctx, trimmed); err != nil {
			s.fail("update pix key", err)
			return
		}
		s.pixKey.Set(trimmed)
		s.updated.Set(true)
	})
}

func (s *SettingsState) ResetUpdateStatus() { s.updated.Set(false) }
