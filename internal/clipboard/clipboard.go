// Package clipboard reads and writes the system clipboard text
// through an external helper program.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Clipboard

type Clipboard interface {
	Read(ctx context.Context) (text string, err error)
	Write(ctx context.Context, text string) (err error)
}

var (
	ErrEmpty          = errors.New("clipboard is empty")
	ErrHelperNotFound = errors.New("clipboard helper not found")
	ErrHelperFailed   = errors.New("clipboard helper failed")
	ErrBackendUnknown = errors.New("clipboard backend is unknown")

	// ErrSystemUnsupported is wrapped together with ErrHelperNotFound
	// by the system backend.
	ErrSystemUnsupported = errors.New("no system clipboard utility found")
)

const (
	BackendExec   = "exec"
	BackendSystem = "system"
)

// New returns the clipboard for the backend given. The helper is only
// used by the exec backend, and can be "auto" to pick one for goos.
func New(backend, helper, goos string) (clipboard Clipboard, err error) { //nolint:ireturn
	switch backend {
	case BackendExec:
		helperCommands, err := HelperFor(helper, goos)
		if err != nil {
			return nil, err
		}
		return NewExec(helperCommands), nil
	case BackendSystem:
		return NewSystem(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrBackendUnknown, backend)
	}
}

// trimContent trims surrounding whitespace from the clipboard text,
// and returns ErrEmpty if nothing is left.
func trimContent(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w", ErrEmpty)
	}
	return text, nil
}
