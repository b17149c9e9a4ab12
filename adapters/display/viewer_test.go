package display

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name string
	args []string
	err  error
}

func (r *recorder) start(_ context.Context, name string, args ...string) error {
	r.name, r.args = name, args
	return r.err
}

func figure(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "distributions.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))
	return path
}

func TestShow_LinuxWithDisplay(t *testing.T) {
	rec := &recorder{}
	v := &Viewer{
		goos:   "linux",
		getenv: func(k string) string { return map[string]string{"DISPLAY": ":0"}[k] },
		start:  rec.start,
	}
	path := figure(t)

	require.NoError(t, v.Show(context.Background(), path))
	assert.Equal(t, "xdg-open", rec.name)
	assert.Equal(t, []string{path}, rec.args)
}

func TestShow_LinuxHeadless(t *testing.T) {
	rec := &recorder{}
	v := &Viewer{goos: "linux", getenv: func(string) string { return "" }, start: rec.start}

	err := v.Show(context.Background(), figure(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display available")
	assert.Empty(t, rec.name)
}

func TestShow_Darwin(t *testing.T) {
	rec := &recorder{}
	v := &Viewer{goos: "darwin", getenv: func(string) string { return "" }, start: rec.start}

	require.NoError(t, v.Show(context.Background(), figure(t)))
	assert.Equal(t, "open", rec.name)
}

func TestShow_LaunchFailure(t *testing.T) {
	rec := &recorder{err: errors.New("executable file not found")}
	v := &Viewer{goos: "windows", getenv: func(string) string { return "" }, start: rec.start}

	err := v.Show(context.Background(), figure(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launching rundll32")
}

func TestShow_MissingFile(t *testing.T) {
	v := &Viewer{goos: "darwin", getenv: func(string) string { return "" }, start: (&recorder{}).start}
	assert.Error(t, v.Show(context.Background(), filepath.Join(t.TempDir(), "nope.png")))
}

func TestShow_UnsupportedPlatform(t *testing.T) {
	v := &Viewer{goos: "plan9", getenv: func(string) string { return "" }, start: (&recorder{}).start}
	assert.Error(t, v.Show(context.Background(), figure(t)))
}
