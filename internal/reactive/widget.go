package reactive

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Widget pairs a toolkit widget with the scope that owns its modifiers. It
// decouples constructing a default widget from mutating it. The supported
// widget kinds are exactly the constructors below; an unsupported kind is a
// compile-time error, never a runtime one.
type Widget[W any] struct {
	inner W
	scope *Scope
}

func inScope[W any](scope *Scope, inner W) *Widget[W] {
	return &Widget[W]{inner: inner, scope: scope}
}

// Button wraps a default-initialized button.
func Button(scope *Scope) *Widget[*widget.Button] {
	b := &widget.Button{}
	b.ExtendBaseWidget(b)
	return inScope(scope, b)
}

// Label wraps a default-initialized label.
func Label(scope *Scope) *Widget[*widget.Label] {
	l := &widget.Label{}
	l.ExtendBaseWidget(l)
	return inScope(scope, l)
}

// Box wraps an empty vertical container.
func Box(scope *Scope) *Widget[*fyne.Container] {
	return inScope(scope, container.NewVBox())
}

// Window wraps a new window. Window-kind widgets additionally require the
// application handle; Fyne also wants the title up front.
func Window(scope *Scope, app fyne.App, title string) *Widget[fyne.Window] {
	return inScope(scope, app.NewWindow(title))
}

// Constant applies modify to the widget exactly once, immediately, and
// returns the wrapper for chaining.
func (w *Widget[W]) Constant(modify func(W)) *Widget[W] {
	modify(w.inner)
	return w
}

// Reactive registers modify as a scope-lifetime effect: it runs once now and
// re-runs whenever a signal it read changes. Fyne widgets are handles, so the
// effect closure captures a cheap copy.
func (w *Widget[W]) Reactive(modify func(W)) *Widget[W] {
	inner := w.inner
	w.scope.Effect(func() {
		modify(inner)
	})
	return w
}

// Ref exposes the wrapped widget without transferring ownership.
func (w *Widget[W]) Ref() W {
	return w.inner
}
