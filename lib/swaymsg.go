package backgroundlib

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// swayOutput is the subset of a get_outputs record that is consumed.
type swayOutput struct {
	Name string `json:"name"`
}

func decodeSwayOutputs(data []byte) ([]string, error) {
	var records []swayOutput
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for i, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("Output record %d has no name", i)
		}
		names = append(names, r.Name)
	}
	return names, nil
}

// Swaymsg talks to sway by running the swaymsg command.
type Swaymsg struct {
	// Defaults to "swaymsg" on $PATH
	Command string
	Run     Runner
}

func NewSwaymsg() *Swaymsg {
	return &Swaymsg{Command: "swaymsg", Run: runCommand}
}

func (s *Swaymsg) command() string {
	if s.Command == "" {
		return "swaymsg"
	}
	return s.Command
}

func (s *Swaymsg) runner() Runner {
	if s.Run == nil {
		return runCommand
	}
	return s.Run
}

func (s *Swaymsg) Outputs(ctx context.Context) ([]string, error) {
	stdout, stderr, err := s.runner()(ctx, s.command(), "-t", "get_outputs")
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, &CompositorUnavailableError{Backend: BackendSwaymsg, Err: err}
	}

	names, err := decodeSwayOutputs(stdout)
	if err != nil {
		return nil, &CompositorUnavailableError{Backend: BackendSwaymsg, Err: err}
	}
	return names, nil
}

// sway splits commands on whitespace so paths are always quoted
func quoteSwayArg(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func swayBackgroundCommand(output, path string, mode ScaleMode) []string {
	return []string{"output", output, "background", quoteSwayArg(path), string(mode)}
}

func (s *Swaymsg) SetBackground(
	ctx context.Context, output, path string, mode ScaleMode) error {
	args := swayBackgroundCommand(output, path, mode)

	_, stderr, err := s.runner()(ctx, s.command(), args...)
	if err != nil {
		return &CommandError{
			Output: output,
			Path:   path,
			Args:   append([]string{s.command()}, args...),
			Stderr: string(stderr),
			Err:    err,
		}
	}
	return nil
}
