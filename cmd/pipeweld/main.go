package main

import (
	"os"
	"os/signal"
	"syscall"

	"pipeweld/internal/audio"
	"pipeweld/internal/config"
	"pipeweld/internal/logger"
	"pipeweld/internal/reactive"
	"pipeweld/internal/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Pipeweld"
	AppID      = "it.niedzwiedz.pipeweld"
	AppVersion = "1.0.0"

	// logEnvVar controls log verbosity; absent or unparsable values fall
	// back to info.
	logEnvVar = "PIPEWELD_LOG"
)

func main() {
	log := logger.NewConsoleLogger(logger.LevelFromEnv(logEnvVar))

	settings, err := config.Load()
	if err != nil {
		log.Warning("Startup", "config unreadable, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	scope := reactive.NewScope()
	defer scope.Dispose()

	mixer := audio.NewMixer(settings.MixerBinary, settings.Sink, nil, log)
	view := ui.NewMainView(fyneApp, scope, mixer, settings, log)

	log.Info("Startup", "application initialized", map[string]interface{}{
		"version": AppVersion,
		"mixer":   settings.MixerBinary,
		"sink":    settings.Sink,
		"step":    settings.StepPercent,
	})

	setupGracefulShutdown(fyneApp, log)

	view.Show()
	fyneApp.Run()

	log.Info("Startup", "application terminated", nil)
}

// setupGracefulShutdown quits the Fyne app when the process receives an
// interrupt or termination signal.
func setupGracefulShutdown(fyneApp fyne.App, log logger.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		log.Info("Shutdown", "signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		fyne.Do(fyneApp.Quit)
	}()
}
