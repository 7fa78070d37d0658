package backgroundlib

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// X11 lists outputs with XRandR and sets every background with a single
// xwallpaper invocation, since each invocation replaces the root pixmap.
type X11 struct {
	// Defaults to $DISPLAY
	Display string
	// Defaults to "xwallpaper" on $PATH
	Command string
	Run     Runner

	pending []string
	outputs []string
	paths   []string
}

func NewX11(display string) *X11 {
	if display == "" {
		display = os.Getenv("DISPLAY")
	}
	return &X11{Display: display, Command: "xwallpaper", Run: runCommand}
}

func xwallpaperFlag(mode ScaleMode) (string, error) {
	switch mode {
	case Fill:
		return "--zoom", nil
	case Fit:
		return "--maximize", nil
	case Stretch:
		return "--stretch", nil
	case Center:
		return "--center", nil
	case Tile:
		return "--tile", nil
	}
	return "", fmt.Errorf("Scaling mode [%s] is not supported by xwallpaper", mode)
}

func (x *X11) Outputs(ctx context.Context) ([]string, error) {
	// Stop polluting stdout
	xgb.Logger.SetOutput(ioutil.Discard)
	xgbutil.Logger.SetOutput(ioutil.Discard)

	names, err := x.randrOutputs()
	if err != nil {
		return nil, &CompositorUnavailableError{Backend: BackendX11, Err: err}
	}
	return names, nil
}

func (x *X11) randrOutputs() ([]string, error) {
	X, err := xgbutil.NewConnDisplay(x.Display)
	if err != nil {
		return nil, err
	}
	defer X.Conn().Close()

	if wm, err := ewmh.GetEwmhWM(X); err == nil {
		log.Printf("Window manager: %s", strings.ToLower(wm))
	}

	Xgb := X.Conn()
	if err = randr.Init(Xgb); err != nil {
		return nil, err
	}

	resources, err := randr.GetScreenResources(Xgb, X.RootWin()).Reply()
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, o := range resources.Outputs {
		info, err := randr.GetOutputInfo(Xgb, o, resources.ConfigTimestamp).Reply()
		if err != nil {
			return nil, err
		}

		// Disconnected or disabled
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		names = append(names, string(info.Name))
	}

	return names, nil
}

// SetBackground only queues the output, Commit applies it.
func (x *X11) SetBackground(
	ctx context.Context, output, path string, mode ScaleMode) error {
	flag, err := xwallpaperFlag(mode)
	if err != nil {
		return &CommandError{Output: output, Path: path, Err: err}
	}

	x.pending = append(x.pending, "--output", output, flag, path)
	x.outputs = append(x.outputs, output)
	x.paths = append(x.paths, path)
	return nil
}

func (x *X11) Commit(ctx context.Context) error {
	if len(x.pending) == 0 {
		return nil
	}

	command := x.Command
	if command == "" {
		command = "xwallpaper"
	}
	run := x.Run
	if run == nil {
		run = runCommand
	}

	args := x.pending
	outputs := strings.Join(x.outputs, ",")
	paths := strings.Join(x.paths, ", ")
	x.Discard()

	_, stderr, err := run(ctx, command, args...)
	if err != nil {
		return &CommandError{
			Output: outputs,
			Path:   paths,
			Args:   append([]string{command}, args...),
			Stderr: string(stderr),
			Err:    err,
		}
	}
	return nil
}

func (x *X11) Discard() {
	x.pending, x.outputs, x.paths = nil, nil, nil
}
