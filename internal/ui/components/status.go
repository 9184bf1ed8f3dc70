package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"pipeweld/internal/reactive"
)

// StatusBar displays the last mixer action and the current sink volume. Both
// labels follow their signals for the lifetime of the scope.
type StatusBar struct {
	scope      *reactive.Scope
	lastAction *reactive.Signal[string]
	volume     *reactive.Signal[int]

	container   *fyne.Container
	actionLabel *widget.Label
	volumeLabel *widget.Label
}

// NewStatusBar creates a status bar bound to the given signals. A negative
// volume means the current level is unknown.
func NewStatusBar(scope *reactive.Scope, lastAction *reactive.Signal[string], volume *reactive.Signal[int]) *StatusBar {
	sb := &StatusBar{
		scope:      scope,
		lastAction: lastAction,
		volume:     volume,
	}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.actionLabel = reactive.Label(sb.scope).Reactive(func(l *widget.Label) {
		l.SetText(sb.lastAction.Get())
	}).Ref()

	sb.volumeLabel = reactive.Label(sb.scope).Reactive(func(l *widget.Label) {
		if percent := sb.volume.Get(); percent >= 0 {
			l.SetText(fmt.Sprintf("Volume: %d%%", percent))
		} else {
			l.SetText("Volume: --")
		}
	}).Ref()
}

func (sb *StatusBar) buildLayout() {
	sb.container = reactive.Box(sb.scope).Constant(func(box *fyne.Container) {
		box.Add(sb.actionLabel)
		box.Add(sb.volumeLabel)
	}).Ref()
}

// Action returns the currently displayed action text.
func (sb *StatusBar) Action() string {
	return sb.actionLabel.Text
}

// VolumeText returns the currently displayed volume text.
func (sb *StatusBar) VolumeText() string {
	return sb.volumeLabel.Text
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
