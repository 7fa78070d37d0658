package backgroundlib

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXwallpaperFlag(t *testing.T) {
	flags := map[ScaleMode]string{
		Fill:    "--zoom",
		Fit:     "--maximize",
		Stretch: "--stretch",
		Center:  "--center",
		Tile:    "--tile",
	}
	for mode, want := range flags {
		got, err := xwallpaperFlag(mode)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := xwallpaperFlag("solid_color")
	assert.Error(t, err)
}

func TestX11CommitsOnce(t *testing.T) {
	f := &fakeRunner{}
	x := &X11{Run: f.run}

	err := ApplyBackgrounds(context.Background(), x,
		[]string{"DP-1", "HDMI-1"}, []string{"/w/a.jpg", "/w/b.jpg"}, Fill)
	require.NoError(t, err)

	assert.Equal(t, []runCall{{
		"xwallpaper",
		[]string{"--output", "DP-1", "--zoom", "/w/a.jpg", "--output", "HDMI-1", "--zoom", "/w/b.jpg"},
	}}, f.calls)

	// Nothing queued after a commit
	require.NoError(t, x.Commit(context.Background()))
	assert.Len(t, f.calls, 1)
}

func TestX11CommitFailure(t *testing.T) {
	f := &fakeRunner{err: errors.New("exit status 1"), stderr: "can't open image"}
	x := &X11{Command: "/usr/local/bin/xwallpaper", Run: f.run}

	err := ApplyBackgrounds(context.Background(), x,
		[]string{"DP-1", "HDMI-1"}, []string{"/w/a.jpg", "/w/b.jpg"}, Center)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))

	var ce *CommandError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "DP-1,HDMI-1", ce.Output)
	assert.Equal(t, "/usr/local/bin/xwallpaper", ce.Args[0])
	assert.Contains(t, err.Error(), "can't open image")
}

func TestX11FailedApplyDropsQueue(t *testing.T) {
	f := &fakeRunner{}
	x := &X11{Run: f.run}
	ctx := context.Background()

	// Left over from a run that never reached Commit
	require.NoError(t, x.SetBackground(ctx, "DP-1", "/w/stale.jpg", Fill))

	err := ApplyBackgrounds(ctx, x, []string{"DP-1"}, []string{"/w/a.jpg"}, "solid_color")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))
	assert.Empty(t, f.calls)

	err = ApplyBackgrounds(ctx, x, []string{"HDMI-1"}, []string{"/w/b.jpg"}, Fill)
	require.NoError(t, err)
	assert.Equal(t, []runCall{{
		"xwallpaper",
		[]string{"--output", "HDMI-1", "--zoom", "/w/b.jpg"},
	}}, f.calls)
}
