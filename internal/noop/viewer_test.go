package noop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Viewer(t *testing.T) {
	t.Parallel()

	viewer := New("image viewer")

	assert.Equal(t, "image viewer (no-op)", viewer.String())
	assert.NoError(t, viewer.Open(context.Background(), "ip_qrcode.png"))
}
