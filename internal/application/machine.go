package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ThisCore/treinopago/internal/observe"
)

// machine is the shared core of every resource state machine: a loading
// flag, an error message, and a lifetime that owns the async commands.
// Commands run one goroutine each; nothing serializes concurrent commands
// on the same machine, so the last one to finish owns the final loading
// and error state.
type machine struct {
	log     *zap.Logger
	loading *observe.Value[bool]
	errMsg  *observe.Value[string]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newMachine(log *zap.Logger) *machine {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &machine{
		log:     log,
		loading: observe.NewValue(false),
		errMsg:  observe.NewValue(""),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Loading is true while a command is in flight. It is cleared on every
// exit path, success or failure.
func (m *machine) Loading() *observe.Value[bool] {
	return m.loading
}

// Err holds the last command's human-readable failure message, or ""
// when there is none. Screens show it once and call ClearError.
func (m *machine) Err() *observe.Value[string] {
	return m.errMsg
}

func (m *machine) ClearError() {
	m.errMsg.Set("")
}

// Wait blocks until all in-flight commands have completed.
func (m *machine) Wait() {
	m.wg.Wait()
}

// Close cancels in-flight commands and waits for them to finish.
func (m *machine) Close() {
	m.cancel()
	m.wg.Wait()
}

// launch runs one command asynchronously. The loading flag and error
// reset happen synchronously on the caller's goroutine, so a read right
// after a command is issued already observes loading=true.
func (m *machine) launch(fn func(ctx context.Context)) {
	m.loading.Set(true)
	m.errMsg.Set("")

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.loading.Set(false)
		fn(m.ctx)
	}()
}

func (m *machine) fail(action string, err error) {
	msg := composeError(action, err)
	m.errMsg.Set(msg)
	m.log.Warn("command failed", zap.String("action", action), zap.Error(err))
}
