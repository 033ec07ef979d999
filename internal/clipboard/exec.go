package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Runner

type Runner interface {
	Output(ctx context.Context, path string, args ...string) (stdout []byte, err error)
	Input(ctx context.Context, stdin io.Reader, path string, args ...string) (err error)
}

// Exec uses the helper programs to access the clipboard.
type Exec struct {
	helper   Helper
	lookPath func(file string) (string, error)
	runner   Runner
}

func NewExec(helper Helper) *Exec {
	return &Exec{
		helper:   helper,
		lookPath: exec.LookPath,
		runner:   &commandRunner{},
	}
}

func (e *Exec) Read(ctx context.Context) (text string, err error) {
	command := e.helper.Paste
	path, err := e.find(command)
	if err != nil {
		return "", err
	}

	stdout, err := e.runner.Output(ctx, path, command.Args...)
	if err != nil {
		return "", fmt.Errorf("%w: running %s: %w", ErrHelperFailed, command, err)
	}
	return trimContent(string(stdout))
}

func (e *Exec) Write(ctx context.Context, text string) (err error) {
	command := e.helper.Copy
	path, err := e.find(command)
	if err != nil {
		return err
	}

	err = e.runner.Input(ctx, strings.NewReader(text), path, command.Args...)
	if err != nil {
		return fmt.Errorf("%w: running %s: %w", ErrHelperFailed, command, err)
	}
	return nil
}

func (e *Exec) find(command Command) (path string, err error) {
	path, err = e.lookPath(command.Name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHelperNotFound, err)
	}
	return path, nil
}

type commandRunner struct{}

func (c *commandRunner) Output(ctx context.Context, path string,
	args ...string) (stdout []byte, err error) {
	cmd := exec.CommandContext(ctx, path, args...)
	stderr := bytes.NewBuffer(nil)
	cmd.Stderr = stderr

	stdout, err = cmd.Output()
	if err != nil {
		return nil, withStderr(err, stderr.String())
	}
	return stdout, nil
}

// Input runs the program with stdin and no output pipe, since copy
// helpers such as xclip leave a child running to own the selection,
// and a pipe held by that child would block Wait until it exits.
// Standard error goes to a temporary file instead.
func (c *commandRunner) Input(ctx context.Context, stdin io.Reader,
	path string, args ...string) (err error) {
	stderr, err := os.CreateTemp("", "clipboard-stderr-")
	if err != nil {
		return fmt.Errorf("creating stderr file: %w", err)
	}
	defer func() {
		_ = stderr.Close()
		_ = os.Remove(stderr.Name())
	}()

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin
	cmd.Stderr = stderr

	err = cmd.Run()
	if err != nil {
		stderrBytes, _ := os.ReadFile(stderr.Name())
		return withStderr(err, string(stderrBytes))
	}
	return nil
}

func withStderr(err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, stderr)
}
