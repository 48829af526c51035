package execx

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	stdout, stderr string
	err            error
	deadline       bool
	wait           bool
}

func (s *stubRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	_, s.deadline = ctx.Deadline()
	if s.wait {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}
	return []byte(s.stdout), []byte(s.stderr), s.err
}

func TestOutput_TrimsStdout(t *testing.T) {
	r := &stubRunner{stdout: "'prefer-dark'\n"}
	out, err := Output(context.Background(), r, time.Second, "gsettings", "get", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "'prefer-dark'", out)
	assert.True(t, r.deadline)
}

func TestOutput_NoTimeoutKeepsContext(t *testing.T) {
	r := &stubRunner{stdout: "x"}
	_, err := Output(context.Background(), r, 0, "true")
	require.NoError(t, err)
	assert.False(t, r.deadline)
}

func TestOutput_FoldsStderr(t *testing.T) {
	r := &stubRunner{stderr: "No such schema “org.gnome.Terminal.ProfilesList”\n", err: errors.New("exit status 1")}
	_, err := Output(context.Background(), r, time.Second, "gsettings", "get", "org.gnome.Terminal.ProfilesList", "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such schema")
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestOutput_Deadline(t *testing.T) {
	r := &stubRunner{wait: true}
	_, err := Output(context.Background(), r, 5*time.Millisecond, "gsettings")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIsNotFound(t *testing.T) {
	_, _, err := CommandRunner{}.Run(context.Background(), "", "termtheme-command-that-does-not-exist")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(&exec.ExitError{}))
	assert.False(t, IsNotFound(errors.New("other")))
}
