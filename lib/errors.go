package backgroundlib

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCandidatePool    = errors.New("no candidate wallpapers left")
	ErrCompositorUnavailable = errors.New("compositor unavailable")
	ErrCommandFailed         = errors.New("set background command failed")
)

// Returned when a directory has no entries left after exclusions.
// Err holds the read error when the directory itself could not be listed.
type EmptyCandidatePoolError struct {
	Dir      string
	Excluded int
	Err      error
}

func (e *EmptyCandidatePoolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no candidates in [%s]: %s", e.Dir, e.Err)
	}
	return fmt.Sprintf("no candidates in [%s] (%d excluded)", e.Dir, e.Excluded)
}

func (e *EmptyCandidatePoolError) Unwrap() error { return e.Err }

func (e *EmptyCandidatePoolError) Is(target error) bool {
	return target == ErrEmptyCandidatePool
}

type CompositorUnavailableError struct {
	Backend string
	Err     error
}

func (e *CompositorUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrCompositorUnavailable, e.Backend, e.Err)
}

func (e *CompositorUnavailableError) Unwrap() error { return e.Err }

func (e *CompositorUnavailableError) Is(target error) bool {
	return target == ErrCompositorUnavailable
}

// A background could not be set on one output.
type CommandError struct {
	Output string
	Path   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("setting [%s] on output %s", e.Path, e.Output)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" (%s)", strings.Join(e.Args, " "))
	}
	msg += ": " + e.Err.Error()
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}
