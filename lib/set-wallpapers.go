package backgroundlib

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Options struct {
	BasePath string
	// Optional, relative to BasePath. When set and it exists it is chosen
	// from first.
	DaySubPath string
	Mode       ScaleMode
	Compositor Compositor
	// Defaults to a clock-seeded Chooser
	Chooser *Chooser
	// Choose wallpapers but don't apply them
	DryRun bool
}

type Assignment struct {
	Output string
	Path   string
}

func dayDirectory(now time.Time, layout string) string {
	return strings.ToLower(now.Format(layout))
}

// SetWallpapers gives every output a different random wallpaper.
func SetWallpapers(ctx context.Context, o Options) ([]Assignment, error) {
	if o.Compositor == nil {
		return nil, errors.New("No compositor configured")
	}
	if o.Mode == "" {
		o.Mode = Fill
	}
	if o.Chooser == nil {
		o.Chooser = NewChooser(nil)
	}

	outputs, err := o.Compositor.Outputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing outputs: %w", err)
	}
	if len(outputs) == 0 {
		return nil, nil
	}

	var paths []string
	if o.DaySubPath == "" {
		paths, err = o.Chooser.ChooseMany(o.BasePath, len(outputs))
	} else {
		paths, err = o.Chooser.ChoosePreferring(o.BasePath, o.DaySubPath, len(outputs))
	}
	if err != nil {
		return nil, fmt.Errorf("choosing wallpapers: %w", err)
	}

	assignments := make([]Assignment, len(outputs))
	for i := range outputs {
		assignments[i] = Assignment{Output: outputs[i], Path: paths[i]}
	}

	if o.DryRun {
		return assignments, nil
	}

	err = ApplyBackgrounds(ctx, o.Compositor, outputs, paths, o.Mode)
	if err != nil {
		return assignments, fmt.Errorf("applying backgrounds: %w", err)
	}
	return assignments, nil
}
