package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds the user-tunable knobs. Every field has a working default;
// the config file only overrides.
type Settings struct {
	MixerBinary string `toml:"mixer_binary"`
	Sink        string `toml:"sink"`
	StepPercent int    `toml:"step_percent"` // magnitude of one button press
	WindowTitle string `toml:"window_title"`
}

func Default() Settings {
	return Settings{
		MixerBinary: "pactl",
		Sink:        "@DEFAULT_SINK@",
		StepPercent: 5,
		WindowTitle: "Pipeweld",
	}
}

// parse decodes TOML on top of the defaults, so absent keys keep their
// default values. A decode failure returns the defaults alongside the error.
func parse(data []byte) (Settings, error) {
	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Default(), err
	}
	if settings.StepPercent <= 0 {
		settings.StepPercent = Default().StepPercent
	}
	if settings.MixerBinary == "" {
		settings.MixerBinary = Default().MixerBinary
	}
	if settings.Sink == "" {
		settings.Sink = Default().Sink
	}
	return settings, nil
}

// Load reads $XDG_CONFIG_HOME/pipeweld/config.toml. A missing file is not an
// error; the defaults apply.
func Load() (Settings, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(filepath.Join(dir, "pipeweld", "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	return parse(data)
}
