package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/ports"
)

func TestSettingsStateFetchPixKey(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pixKey: "12345678901"}
	state := NewSettingsState(api, nil)
	defer state.Close()

	state.FetchPixKey()
	state.Wait()

	assert.Equal(t, "12345678901", state.PixKey().Get())
	assert.Empty(t, state.Err().Get())
}

func TestSettingsStateUpdatePixKeyOptimisticallyStoresTrimmedKey(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	state := NewSettingsState(api, nil)
	defer state.Close()

	state.UpdatePixKey("  coach@gym.com  ")
	state.Wait()

	assert.True(t, state.UpdateSuccess().Get())
	assert.Equal(t, "coach@gym.com", state.PixKey().Get(), "held key is the trimmed input, not a re-read")
	assert.Equal(t, "coach@gym.com", api.lastPixKey)
	assert.Equal(t, 1, api.setPixKeyCalls)

	state.ResetUpdateStatus()
	assert.False(t, state.UpdateSuccess().Get())
}

func TestSettingsStateUpdatePixKeyBlankRejectedBeforeNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "whitespace only", key: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			state := NewSettingsState(api, nil)
			defer state.Close()

			state.UpdatePixKey(tt.key)
			state.Wait()

			assert.Equal(t, domain.ErrBlankPixKey.Error(), state.Err().Get())
			assert.False(t, state.Loading().Get(), "blank input never starts a command")
			assert.False(t, state.UpdateSuccess().Get())
			assert.Zero(t, api.setPixKeyCalls)
		})
	}
}

func TestSettingsStateUpdatePixKeyFailureKeepsHeldKey(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pixKey: "old@gym.com"}
	state := NewSettingsState(api, nil)
	defer state.Close()

	state.FetchPixKey()
	state.Wait()
	require.Equal(t, "old@gym.com", state.PixKey().Get())

	api.err = &ports.StatusError{Code: 400, Status: "Bad Request", Body: "pix key rejected"}
	state.UpdatePixKey("new@gym.com")
	state.Wait()

	assert.Equal(t, "update pix key: 400: pix key rejected", state.Err().Get())
	assert.False(t, state.UpdateSuccess().Get())
	assert.Equal(t, "old@gym.com", state.PixKey().Get())
}
