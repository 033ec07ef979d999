package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/qdm12/deskutils/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewVersion(t *testing.T) {
	t.Parallel()

	buildInfo := models.BuildInformation{
		Version: "latest",
		Commit:  "abcdef1",
		Date:    "2024-01-01",
	}
	cmd := NewVersion("ipqr", buildInfo)
	stdout := bytes.NewBuffer(nil)
	cmd.SetOut(stdout)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.NoError(t, err)

	output := strings.TrimSpace(stdout.String())
	lines := strings.Split(output, "\n")
	assert.Equal(t, "ipqr latest-abcdef1", lines[len(lines)-1])
	assert.Greater(t, len(lines), 1)
}
