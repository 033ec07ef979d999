package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_System(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		system := &System{unsupported: true}

		_, err := system.Read(ctx)
		assert.ErrorIs(t, err, ErrHelperNotFound)
		assert.ErrorIs(t, err, ErrSystemUnsupported)
		assert.EqualError(t, err, "clipboard helper not found: no system clipboard utility found")

		err = system.Write(ctx, "x")
		assert.ErrorIs(t, err, ErrHelperNotFound)
		assert.ErrorIs(t, err, ErrSystemUnsupported)
	})

	t.Run("read error", func(t *testing.T) {
		t.Parallel()

		system := &System{
			readAll: func() (string, error) { return "", errors.New("exit status 1") },
		}

		_, err := system.Read(ctx)

		assert.ErrorIs(t, err, ErrHelperFailed)
		assert.EqualError(t, err, "clipboard helper failed: exit status 1")
	})

	t.Run("read empty", func(t *testing.T) {
		t.Parallel()

		system := &System{
			readAll: func() (string, error) { return "\n", nil },
		}

		_, err := system.Read(ctx)

		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("read and write", func(t *testing.T) {
		t.Parallel()

		var written string
		system := &System{
			readAll: func() (string, error) { return "https://example.com?x=1\n", nil },
			writeAll: func(text string) error {
				written = text
				return nil
			},
		}

		text, err := system.Read(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "https://example.com?x=1", text)

		err = system.Write(ctx, "https://example.com")
		assert.NoError(t, err)
		assert.Equal(t, "https://example.com", written)
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()

		system := &System{
			writeAll: func(string) error { return errors.New("exit status 1") },
		}

		err := system.Write(ctx, "x")

		assert.ErrorIs(t, err, ErrHelperFailed)
	})
}
