package reactive

import "testing"

func TestEffectRunsImmediately(t *testing.T) {
	scope := NewScope()
	runs := 0
	scope.Effect(func() { runs++ })
	if runs != 1 {
		t.Fatalf("effect ran %d times, want 1", runs)
	}
}

func TestEffectRerunsPerChange(t *testing.T) {
	scope := NewScope()
	signal := NewSignal(scope, 0)

	runs := 0
	scope.Effect(func() {
		signal.Get()
		runs++
	})

	signal.Set(1)
	signal.Set(2)
	if runs != 3 {
		t.Fatalf("effect ran %d times, want 3 (initial + 2 changes)", runs)
	}
}

func TestEffectNoRerunWithoutChange(t *testing.T) {
	scope := NewScope()
	signal := NewSignal(scope, 0)

	runs := 0
	scope.Effect(func() {
		signal.Get()
		runs++
	})

	if runs != 1 {
		t.Fatalf("effect ran %d times before any change, want 1", runs)
	}
}

func TestEffectIgnoresUnreadSignals(t *testing.T) {
	scope := NewScope()
	read := NewSignal(scope, 0)
	unread := NewSignal(scope, 0)

	runs := 0
	scope.Effect(func() {
		read.Get()
		runs++
	})

	unread.Set(1)
	if runs != 1 {
		t.Fatalf("effect ran %d times after unread signal changed, want 1", runs)
	}
}

func TestEffectRetracksDependencies(t *testing.T) {
	scope := NewScope()
	useFirst := NewSignal(scope, true)
	first := NewSignal(scope, "a")
	second := NewSignal(scope, "b")

	runs := 0
	var seen string
	scope.Effect(func() {
		runs++
		if useFirst.Get() {
			seen = first.Get()
		} else {
			seen = second.Get()
		}
	})

	useFirst.Set(false)
	if seen != "b" {
		t.Fatalf("seen = %q after switching branch, want %q", seen, "b")
	}

	// first is no longer a dependency; changing it must not re-run.
	runsBefore := runs
	first.Set("changed")
	if runs != runsBefore {
		t.Errorf("effect re-ran for a signal its last run did not read")
	}

	second.Set("c")
	if seen != "c" {
		t.Errorf("seen = %q after tracked change, want %q", seen, "c")
	}
}

func TestMultipleEffectsOneSignal(t *testing.T) {
	scope := NewScope()
	signal := NewSignal(scope, 0)

	firstRuns, secondRuns := 0, 0
	scope.Effect(func() { signal.Get(); firstRuns++ })
	scope.Effect(func() { signal.Get(); secondRuns++ })

	signal.Set(1)
	if firstRuns != 2 || secondRuns != 2 {
		t.Fatalf("effects ran %d and %d times, want 2 and 2", firstRuns, secondRuns)
	}
}

func TestDisposeStopsEffects(t *testing.T) {
	scope := NewScope()
	signal := NewSignal(scope, 0)

	runs := 0
	scope.Effect(func() {
		signal.Get()
		runs++
	})

	scope.Dispose()
	signal.Set(1)
	if runs != 1 {
		t.Fatalf("effect ran %d times after dispose, want 1", runs)
	}

	// Registrations after dispose are dropped entirely.
	scope.Effect(func() { runs += 10 })
	if runs != 1 {
		t.Fatalf("disposed scope ran a new effect")
	}
}

func TestSignalGetOutsideEffect(t *testing.T) {
	scope := NewScope()
	signal := NewSignal(scope, 41)

	if got := signal.Get(); got != 41 {
		t.Fatalf("Get() = %d, want 41", got)
	}
	signal.Set(42)
	if got := signal.Get(); got != 42 {
		t.Fatalf("Get() after Set = %d, want 42", got)
	}
}
