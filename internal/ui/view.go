package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"pipeweld/internal/audio"
	"pipeweld/internal/config"
	"pipeweld/internal/logger"
	"pipeweld/internal/reactive"
	"pipeweld/internal/ui/components"
)

// MainView assembles the application window: two volume nudge buttons, a mute
// toggle and a status bar, all constructed through the reactive wrapper.
type MainView struct {
	window fyne.Window
	scope  *reactive.Scope
	mixer  *audio.Mixer
	logger logger.Logger

	volumeDown *widget.Button
	volumeUp   *widget.Button
	muteButton *widget.Button
	statusBar  *components.StatusBar

	lastAction *reactive.Signal[string]
	volume     *reactive.Signal[int]
}

// NewMainView builds the widget tree. Nothing is shown until Show is called.
func NewMainView(app fyne.App, scope *reactive.Scope, mixer *audio.Mixer, settings config.Settings, log logger.Logger) *MainView {
	mv := &MainView{
		scope:  scope,
		mixer:  mixer,
		logger: log,
	}

	mv.lastAction = reactive.NewSignal(scope, "Ready")
	mv.volume = reactive.NewSignal(scope, -1)
	mv.statusBar = components.NewStatusBar(scope, mv.lastAction, mv.volume)

	mv.buildLayout(app, settings)
	return mv
}

func (mv *MainView) buildLayout(app fyne.App, settings config.Settings) {
	step := audio.DiffValue(settings.StepPercent)

	mv.volumeDown = mv.diffVolumeButton(-step)
	mv.volumeUp = mv.diffVolumeButton(step)

	mv.muteButton = reactive.Button(mv.scope).Constant(func(b *widget.Button) {
		b.SetText("Mute")
		b.OnTapped = mv.toggleMute
	}).Ref()

	mv.window = reactive.Window(mv.scope, app, settings.WindowTitle).Constant(func(w fyne.Window) {
		w.SetContent(reactive.Box(mv.scope).Constant(func(box *fyne.Container) {
			box.Add(mv.volumeDown)
			box.Add(mv.volumeUp)
			box.Add(mv.muteButton)
			box.Add(mv.statusBar.GetContainer())
		}).Ref())
	}).Ref()
}

// diffVolumeButton builds one nudge button. A click synchronously invokes the
// mixer; failures are logged by the mixer and discarded here.
func (mv *MainView) diffVolumeButton(diff audio.DiffValue) *widget.Button {
	return reactive.Button(mv.scope).Constant(func(b *widget.Button) {
		b.SetText(diff.String())
		b.OnTapped = func() {
			_ = mv.mixer.ChangeVolume(diff)
			mv.lastAction.Set("Volume " + diff.String())
			mv.refreshVolume()
		}
	}).Ref()
}

func (mv *MainView) toggleMute() {
	_ = mv.mixer.ToggleMute()
	mv.lastAction.Set("Mute toggled")
	mv.refreshVolume()
}

// refreshVolume re-queries the sink and pushes the result through the volume
// signal; the status bar re-renders via its registered effect.
func (mv *MainView) refreshVolume() {
	percent, err := mv.mixer.Volume()
	if err != nil {
		mv.volume.Set(-1)
		return
	}
	mv.volume.Set(percent)
}

// Show presents the window after assembly completes.
func (mv *MainView) Show() {
	mv.refreshVolume()
	mv.window.Show()
}
