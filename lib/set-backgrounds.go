package backgroundlib

import (
	"context"
	"errors"
	"fmt"
	"log"
)

type ScaleMode string

const (
	Fill    ScaleMode = "fill"
	Fit     ScaleMode = "fit"
	Stretch ScaleMode = "stretch"
	Center  ScaleMode = "center"
	Tile    ScaleMode = "tile"
)

var scaleModes = []ScaleMode{Fill, Fit, Stretch, Center, Tile}

func ParseScaleMode(s string) (ScaleMode, error) {
	for _, m := range scaleModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("Unknown scaling mode [%s]", s)
}

// Compositor is the boundary to whatever owns the display outputs.
type Compositor interface {
	// Names of the active outputs, in the order the compositor reports them
	Outputs(ctx context.Context) ([]string, error)
	SetBackground(ctx context.Context, output, path string, mode ScaleMode) error
}

// Committer is implemented by compositors that can only apply every
// background at once. Commit is called after SetBackground has succeeded
// for every output, otherwise Discard drops whatever was queued.
type Committer interface {
	Commit(ctx context.Context) error
	Discard()
}

// ApplyBackgrounds sets selection[i] as the background of outputs[i].
// Every output is attempted; failures are joined together.
func ApplyBackgrounds(
	ctx context.Context,
	c Compositor,
	outputs, selection []string,
	mode ScaleMode) error {
	if len(outputs) != len(selection) {
		return fmt.Errorf(
			"%d outputs but %d wallpapers", len(outputs), len(selection))
	}

	var errs []error
	for i, o := range outputs {
		err := c.SetBackground(ctx, o, selection[i], mode)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Printf("Set %s to [%s]", o, selection[i])
	}

	if cm, ok := c.(Committer); ok {
		if len(errs) > 0 {
			cm.Discard()
		} else if err := cm.Commit(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
