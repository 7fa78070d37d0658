package backgroundlib

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runCall struct {
	name string
	args []string
}

// fakeRunner answers every invocation with the same result
type fakeRunner struct {
	stdout, stderr string
	err            error
	calls          []runCall
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) (
	[]byte, []byte, error) {
	f.calls = append(f.calls, runCall{name, args})
	return []byte(f.stdout), []byte(f.stderr), f.err
}

const getOutputsReply = `[
	{"id": 4, "name": "DP-1", "make": "Dell", "active": true},
	{"id": 5, "name": "HDMI-A-1", "make": "LG", "active": true}
]`

func TestDecodeSwayOutputs(t *testing.T) {
	names, err := decodeSwayOutputs([]byte(getOutputsReply))
	require.NoError(t, err)
	assert.Equal(t, []string{"DP-1", "HDMI-A-1"}, names)

	names, err = decodeSwayOutputs([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = decodeSwayOutputs([]byte(`{"name": "DP-1"}`))
	assert.Error(t, err)

	_, err = decodeSwayOutputs([]byte(`[{"id": 1}]`))
	assert.Error(t, err)
}

func TestSwaymsgOutputs(t *testing.T) {
	f := &fakeRunner{stdout: getOutputsReply}
	s := &Swaymsg{Run: f.run}

	names, err := s.Outputs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"DP-1", "HDMI-A-1"}, names)
	assert.Equal(t, []runCall{{"swaymsg", []string{"-t", "get_outputs"}}}, f.calls)
}

func TestSwaymsgOutputsUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		runner *fakeRunner
	}{
		{"command fails", &fakeRunner{err: errors.New("exit status 1"), stderr: "no socket"}},
		{"garbage output", &fakeRunner{stdout: "not json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Swaymsg{Command: "/opt/swaymsg", Run: tt.runner.run}

			_, err := s.Outputs(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCompositorUnavailable))

			var ce *CompositorUnavailableError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, BackendSwaymsg, ce.Backend)
			assert.Equal(t, "/opt/swaymsg", tt.runner.calls[0].name)
		})
	}
}

func TestSwaymsgSetBackground(t *testing.T) {
	f := &fakeRunner{}
	s := &Swaymsg{Run: f.run}

	err := s.SetBackground(context.Background(), "DP-1", `/w/my "best" a.jpg`, Fill)
	require.NoError(t, err)
	assert.Equal(t, []runCall{{
		"swaymsg",
		[]string{"output", "DP-1", "background", `"/w/my \"best\" a.jpg"`, "fill"},
	}}, f.calls)
}

func TestSwaymsgSetBackgroundFailure(t *testing.T) {
	f := &fakeRunner{err: errors.New("exit status 2"), stderr: "Error: Invalid output\n"}
	s := &Swaymsg{Run: f.run}

	err := s.SetBackground(context.Background(), "DP-9", "/w/a.jpg", Fill)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))

	var ce *CommandError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "DP-9", ce.Output)
	assert.Equal(t, "/w/a.jpg", ce.Path)
	assert.Contains(t, err.Error(), "Invalid output")
}

func TestQuoteSwayArg(t *testing.T) {
	assert.Equal(t, `"/plain.jpg"`, quoteSwayArg("/plain.jpg"))
	assert.Equal(t, `"/a b.jpg"`, quoteSwayArg("/a b.jpg"))
	assert.Equal(t, `"/x\\y\".jpg"`, quoteSwayArg(`/x\y".jpg`))
}
