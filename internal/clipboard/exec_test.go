package clipboard

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/deskutils/internal/clipboard/mock_clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xclipLookPath(err error) func(string) (string, error) {
	return func(file string) (string, error) {
		if err != nil {
			return "", err
		}
		return "/usr/bin/" + file, nil
	}
}

func Test_Exec_Read(t *testing.T) {
	t.Parallel()

	errDummy := errors.New("exit status 1: Error: target STRING not available")

	testCases := map[string]struct {
		lookPathErr error
		expectRun   bool
		stdout      []byte
		runErr      error
		text        string
		errWrapped  error
		errMessage  string
	}{
		"helper not found": {
			lookPathErr: exec.ErrNotFound,
			errWrapped:  ErrHelperNotFound,
			errMessage:  "clipboard helper not found: executable file not found in $PATH",
		},
		"helper failed": {
			expectRun:  true,
			runErr:     errDummy,
			errWrapped: ErrHelperFailed,
			errMessage: "clipboard helper failed: running xclip -selection clipboard -o: " +
				"exit status 1: Error: target STRING not available",
		},
		"empty": {
			expectRun:  true,
			stdout:     []byte(" \n\t"),
			errWrapped: ErrEmpty,
			errMessage: "clipboard is empty",
		},
		"success": {
			expectRun: true,
			stdout:    []byte("  https://example.com/?a=b\n"),
			text:      "https://example.com/?a=b",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()

			runner := mock_clipboard.NewMockRunner(ctrl)
			if testCase.expectRun {
				runner.EXPECT().Output(ctx, "/usr/bin/xclip",
					"-selection", "clipboard", "-o").
					Return(testCase.stdout, testCase.runErr)
			}

			helper, err := HelperFor("xclip", "linux")
			require.NoError(t, err)
			clipboard := NewExec(helper)
			clipboard.lookPath = xclipLookPath(testCase.lookPathErr)
			clipboard.runner = runner

			text, err := clipboard.Read(ctx)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.text, text)
		})
	}
}

func Test_Exec_Write(t *testing.T) {
	t.Parallel()

	t.Run("helper not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		helper, err := HelperFor("xclip", "linux")
		require.NoError(t, err)
		clipboard := NewExec(helper)
		clipboard.lookPath = xclipLookPath(exec.ErrNotFound)
		clipboard.runner = mock_clipboard.NewMockRunner(ctrl)

		err = clipboard.Write(context.Background(), "https://example.com")

		assert.ErrorIs(t, err, ErrHelperNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ctx := context.Background()
		runner := mock_clipboard.NewMockRunner(ctrl)
		runner.EXPECT().Input(ctx, gomock.Not(gomock.Nil()), "/usr/bin/xclip",
			"-selection", "clipboard").
			DoAndReturn(func(_ context.Context, stdin io.Reader,
				_ string, _ ...string) error {
				b, err := io.ReadAll(stdin)
				require.NoError(t, err)
				assert.Equal(t, "https://example.com/path#frag", string(b))
				return nil
			})

		helper, err := HelperFor("xclip", "linux")
		require.NoError(t, err)
		clipboard := NewExec(helper)
		clipboard.lookPath = xclipLookPath(nil)
		clipboard.runner = runner

		err = clipboard.Write(ctx, "https://example.com/path#frag")

		assert.NoError(t, err)
	})
}

func shellPath(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("no POSIX shell on windows")
	}
	path, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh is not available")
	}
	return path
}

func Test_commandRunner_Output(t *testing.T) {
	t.Parallel()

	sh := shellPath(t)
	runner := &commandRunner{}
	ctx := context.Background()

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		stdout, err := runner.Output(ctx, sh, "-c", "printf hello")

		require.NoError(t, err)
		assert.Equal(t, "hello", string(stdout))
	})

	t.Run("stderr in error", func(t *testing.T) {
		t.Parallel()

		stdout, err := runner.Output(ctx, sh, "-c", "echo oops >&2; exit 3")

		assert.EqualError(t, err, "exit status 3: oops")
		assert.Nil(t, stdout)
	})
}

func Test_commandRunner_Input(t *testing.T) {
	t.Parallel()

	sh := shellPath(t)
	runner := &commandRunner{}
	ctx := context.Background()

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		output := filepath.Join(t.TempDir(), "clipboard")

		err := runner.Input(ctx, strings.NewReader("hello"), sh,
			"-c", `cat > "$1"`, "sh", output)

		require.NoError(t, err)
		b, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(b))
	})

	t.Run("stderr in error", func(t *testing.T) {
		t.Parallel()

		err := runner.Input(ctx, strings.NewReader("hello"), sh,
			"-c", "cat >/dev/null; echo denied >&2; exit 2")

		assert.EqualError(t, err, "exit status 2: denied")
	})

	t.Run("child left running", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		err := runner.Input(ctx, strings.NewReader("hello"), sh,
			"-c", "cat >/dev/null; (sleep 3) & exit 0")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

func Test_Exec_helperScript(t *testing.T) {
	t.Parallel()

	shellPath(t)

	dir := t.TempDir()
	script := filepath.Join(dir, "helper")
	const scriptContent = `#!/bin/sh
case "$1" in
paste) cat "$2" ;;
copy) cat > "$2"; (sleep 3) & ;;
esac
`
	const perm = 0o755
	err := os.WriteFile(script, []byte(scriptContent), perm)
	require.NoError(t, err)

	data := filepath.Join(dir, "data")
	clipboard := NewExec(Helper{
		Paste: Command{Name: script, Args: []string{"paste", data}},
		Copy:  Command{Name: script, Args: []string{"copy", data}},
	})
	ctx := context.Background()

	start := time.Now()
	err = clipboard.Write(ctx, "https://example.com/path")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	text, err := clipboard.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/path", text)
}
