package audio

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"

	"pipeweld/internal/logger"
)

// DiffValue is a signed volume change in percent. Positive values render with
// an explicit sign, which is the syntax pactl expects for a relative change.
type DiffValue int

func (d DiffValue) String() string {
	if d > 0 {
		return fmt.Sprintf("+%d%%", int(d))
	}
	return fmt.Sprintf("%d%%", int(d))
}

// SpawnError reports that the mixer binary could not be started.
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("running %s: %v", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// StatusError reports a mixer invocation that started but exited nonzero.
type StatusError struct {
	Binary string
	Code   int
	Stderr string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Binary, e.Code)
}

// Runner executes one external command and returns its standard output.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, &StatusError{
				Binary: name,
				Code:   exitErr.ExitCode(),
				Stderr: string(exitErr.Stderr),
			}
		}
		return out, &SpawnError{Binary: name, Err: err}
	}
	return out, nil
}

// Mixer drives an external command-line mixer tool against a single sink.
// Calls block until the subprocess exits; there is no timeout and no retry.
type Mixer struct {
	binary string
	sink   string
	runner Runner
	logger logger.Logger
}

// NewMixer creates a mixer for the given binary and sink. A nil runner uses
// os/exec.
func NewMixer(binary, sink string, runner Runner, log logger.Logger) *Mixer {
	if runner == nil {
		runner = execRunner{}
	}
	return &Mixer{
		binary: binary,
		sink:   sink,
		runner: runner,
		logger: log,
	}
}

// ChangeVolume nudges the sink volume by diff. Failures are logged here;
// callers may discard the result.
func (m *Mixer) ChangeVolume(diff DiffValue) error {
	_, err := m.runner.Run(m.binary, "set-sink-volume", m.sink, diff.String())
	if err != nil {
		err = fmt.Errorf("changing volume by %s: %w", diff, err)
		m.logger.Error("AudioMixer", err, map[string]interface{}{
			"diff": diff.String(),
			"sink": m.sink,
		})
		return err
	}

	m.logger.Debug("AudioMixer", "volume changed", map[string]interface{}{
		"diff": diff.String(),
		"sink": m.sink,
	})
	return nil
}

// ToggleMute flips the sink mute state. Same failure semantics as
// ChangeVolume.
func (m *Mixer) ToggleMute() error {
	_, err := m.runner.Run(m.binary, "set-sink-mute", m.sink, "toggle")
	if err != nil {
		err = fmt.Errorf("toggling mute: %w", err)
		m.logger.Error("AudioMixer", err, map[string]interface{}{
			"sink": m.sink,
		})
		return err
	}

	m.logger.Debug("AudioMixer", "mute toggled", map[string]interface{}{
		"sink": m.sink,
	})
	return nil
}

// volumePattern matches the percentage in get-sink-volume output, e.g.
// "Volume: front-left: 39321 /  60% / -13.31 dB".
var volumePattern = regexp.MustCompile(`/\s*(\d+)%`)

// Volume reports the current sink volume in percent.
func (m *Mixer) Volume() (int, error) {
	out, err := m.runner.Run(m.binary, "get-sink-volume", m.sink)
	if err != nil {
		err = fmt.Errorf("querying volume: %w", err)
		m.logger.Error("AudioMixer", err, map[string]interface{}{
			"sink": m.sink,
		})
		return 0, err
	}

	match := volumePattern.FindSubmatch(out)
	if match == nil {
		err = fmt.Errorf("no volume percentage in %s output", m.binary)
		m.logger.Error("AudioMixer", err, map[string]interface{}{
			"sink": m.sink,
		})
		return 0, err
	}

	percent, err := strconv.Atoi(string(match[1]))
	if err != nil {
		return 0, fmt.Errorf("parsing volume percentage: %w", err)
	}
	return percent, nil
}
