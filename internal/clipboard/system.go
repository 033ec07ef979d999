package clipboard

import (
	"context"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// System uses the first clipboard helper found on the system,
// without any helper choice possible.
type System struct {
	unsupported bool
	readAll     func() (string, error)
	writeAll    func(text string) error
}

func NewSystem() *System {
	return &System{
		unsupported: atotto.Unsupported,
		readAll:     atotto.ReadAll,
		writeAll:    atotto.WriteAll,
	}
}

func (s *System) Read(_ context.Context) (text string, err error) {
	if s.unsupported {
		return "", fmt.Errorf("%w: %w", ErrHelperNotFound, ErrSystemUnsupported)
	}

	text, err = s.readAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHelperFailed, err)
	}
	return trimContent(text)
}

func (s *System) Write(_ context.Context, text string) (err error) {
	if s.unsupported {
		return fmt.Errorf("%w: %w", ErrHelperNotFound, ErrSystemUnsupported)
	}

	err = s.writeAll(text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHelperFailed, err)
	}
	return nil
}
