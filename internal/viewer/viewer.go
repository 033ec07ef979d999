// Package viewer opens files with the desktop default application.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Starter

type Starter interface {
	Start(name string, args ...string) (err error)
}

type Viewer struct {
	goos    string
	starter Starter
}

func New(goos string) *Viewer {
	return &Viewer{
		goos:    goos,
		starter: &commandStarter{},
	}
}

func (v *Viewer) String() string {
	return "desktop viewer"
}

var ErrPlatformUnsupported = errors.New("platform is not supported")

// Open starts the default application for path without waiting for
// it to exit. The application is not bound to ctx and keeps running
// once the program exits.
func (v *Viewer) Open(_ context.Context, path string) (err error) {
	var name string
	var args []string
	switch v.goos {
	case "darwin":
		name = "open"
		args = []string{path}
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", path}
	case "linux", "freebsd", "openbsd", "netbsd":
		name = "xdg-open"
		args = []string{path}
	default:
		return fmt.Errorf("%w: %s", ErrPlatformUnsupported, v.goos)
	}

	err = v.starter.Start(name, args...)
	if err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return nil
}

type commandStarter struct{}

func (c *commandStarter) Start(name string, args ...string) (err error) {
	cmd := exec.Command(name, args...)
	err = cmd.Start()
	if err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
