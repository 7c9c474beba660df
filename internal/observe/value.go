// Package observe provides a minimal observable value: a current value
// plus change notification. Reads after a Set on the same goroutine always
// see the new value; observers are invoked on the mutating goroutine, in
// subscription order, after the value is stored.
package observe

import "sync"

type Value[T any] struct {
	mu      sync.RWMutex
	current T
	nextID  int
	subs    []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set stores the value and notifies subscribers. Notification happens
// outside the lock, so observers may call Get or Set without deadlock.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.current = value
	notify := make([]subscriber[T], len(v.subs))
	copy(notify, v.subs)
	v.mu.Unlock()

	for _, sub := range notify {
		sub.fn(value)
	}
}

// Subscribe registers fn for future changes and returns a cancel func.
// fn is not called with the current value; call Get for that.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, sub := range v.subs {
			if sub.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}
