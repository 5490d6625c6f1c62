package weathergen

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/brinevale/voyager-go/internal/domain/weather"
)

// CommandAdapter runs an external program each day and parses its stdout as
// a JSON weather record. Configured through simulation.weather_command.
type CommandAdapter struct {
	command  string
	fallback *Generator
}

// NewCommandAdapter wires an external command with the built-in generator as
// fallback for command failures.
func NewCommandAdapter(command string, fallback *Generator) *CommandAdapter {
	return &CommandAdapter{command: command, fallback: fallback}
}

// GenerateDayWeather invokes the command. Command failure or malformed
// output falls back to the generator rather than stalling the voyage.
func (a *CommandAdapter) GenerateDayWeather(ctx context.Context) (weather.Record, error) {
	rec, err := a.runCommand(ctx)
	if err != nil {
		if a.fallback != nil {
			return a.fallback.GenerateDayWeather(ctx)
		}
		return weather.Record{}, err
	}
	return rec, nil
}

func (a *CommandAdapter) runCommand(ctx context.Context) (weather.Record, error) {
	parts := strings.Fields(a.command)
	if len(parts) == 0 {
		return weather.Record{}, fmt.Errorf("weather command is empty")
	}

	out, err := exec.CommandContext(ctx, parts[0], parts[1:]...).Output()
	if err != nil {
		return weather.Record{}, fmt.Errorf("running weather command: %w", err)
	}

	var rec weather.Record
	if err := json.Unmarshal(out, &rec); err != nil {
		return weather.Record{}, fmt.Errorf("parsing weather command output: %w", err)
	}
	return rec, nil
}
