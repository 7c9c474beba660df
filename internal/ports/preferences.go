package ports

// PreferenceStore persists named boolean preferences locally.
type PreferenceStore interface {
	GetBool(key string) bool
	SetBool(key string, value bool) error
}
