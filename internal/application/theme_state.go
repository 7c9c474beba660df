package application

import (
	"go.uber.org/zap"

	"github.com/ThisCore/treinopago/internal/observe"
	"github.com/ThisCore/treinopago/internal/ports"
)

const darkThemePrefKey = "dark_theme"

// ThemeState holds the persisted dark-mode flag. Persistence is
// best-effort: a write failure is logged and the in-memory state still
// flips, so the UI never blocks on disk.
type ThemeState struct {
	prefs ports.PreferenceStore
	log   *zap.Logger
	dark  *observe.Value[bool]
}

func NewThemeState(prefs ports.PreferenceStore, log *zap.Logger) *ThemeState {
	if log == nil {
		log = zap.NewNop()
	}
	return &ThemeState{
		prefs: prefs,
		log:   log,
		dark:  observe.NewValue(prefs.GetBool(darkThemePrefKey)),
	}
}

func (s *ThemeState) DarkTheme() *observe.Value[bool] { return s.dark }

func (s *ThemeState) Toggle() bool {
	next := !s.dark.Get()
	s.apply(next)
	return next
}

func (s *ThemeState) Set(dark bool) {
	s.apply(dark)
}

func (s *ThemeState) apply(dark bool) {
	s.dark.Set(dark)
	if err := s.prefs.SetBool(darkThemePrefKey, dark); err != nil {
		s.log.Warn("persist theme preference", zap.Bool("dark", dark), zap.Error(err))
	}
}
