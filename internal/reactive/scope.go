// Package reactive provides a minimal single-threaded reactive scope:
// signals hold values, effects re-run automatically when a signal they read
// changes. Everything here belongs to the GUI main loop; nothing is safe for
// concurrent use.
package reactive

// Scope is the lifetime within which effects are registered. Disposing the
// scope stops all of them.
type Scope struct {
	active   *effect
	effects  []*effect
	disposed bool
}

func NewScope() *Scope {
	return &Scope{}
}

// Effect runs fn immediately and re-runs it whenever a signal read during its
// most recent run changes.
func (s *Scope) Effect(fn func()) {
	if s.disposed {
		return
	}
	e := &effect{scope: s, fn: fn}
	s.effects = append(s.effects, e)
	e.run()
}

// Dispose unregisters every effect. Signals keep their current values but no
// longer trigger anything.
func (s *Scope) Dispose() {
	s.disposed = true
	for _, e := range s.effects {
		e.dispose()
	}
	s.effects = nil
}

type effect struct {
	scope    *Scope
	fn       func()
	deps     []*source
	disposed bool
}

func (e *effect) run() {
	if e.disposed {
		return
	}
	// Dependencies are re-tracked on every run, so an effect only ever
	// subscribes to the signals its last execution actually read.
	e.clearDeps()
	prev := e.scope.active
	e.scope.active = e
	e.fn()
	e.scope.active = prev
}

func (e *effect) clearDeps() {
	for _, src := range e.deps {
		delete(src.subs, e)
	}
	e.deps = nil
}

func (e *effect) dispose() {
	e.disposed = true
	e.clearDeps()
}

// source is the non-generic subscription list shared by all Signal types.
type source struct {
	subs map[*effect]struct{}
}

func (src *source) track(s *Scope) {
	e := s.active
	if e == nil || e.disposed {
		return
	}
	if src.subs == nil {
		src.subs = make(map[*effect]struct{})
	}
	if _, ok := src.subs[e]; !ok {
		src.subs[e] = struct{}{}
		e.deps = append(e.deps, src)
	}
}

func (src *source) notify() {
	// Snapshot first: re-running an effect rewrites its subscriptions.
	subs := make([]*effect, 0, len(src.subs))
	for e := range src.subs {
		subs = append(subs, e)
	}
	for _, e := range subs {
		e.run()
	}
}

// Signal is a reactive value bound to a scope. Get inside a running effect
// records a dependency; Set synchronously re-runs every dependent effect.
type Signal[T any] struct {
	scope *Scope
	src   source
	value T
}

func NewSignal[T any](scope *Scope, initial T) *Signal[T] {
	return &Signal[T]{scope: scope, value: initial}
}

func (s *Signal[T]) Get() T {
	s.src.track(s.scope)
	return s.value
}

func (s *Signal[T]) Set(value T) {
	s.value = value
	if s.scope.disposed {
		return
	}
	s.src.notify()
}
