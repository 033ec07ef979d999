package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildInformation_VersionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		buildInfo BuildInformation
		version   string
	}{
		"release": {
			buildInfo: BuildInformation{Version: "v1.2.0", Commit: "abcdef1"},
			version:   "v1.2.0",
		},
		"latest with short commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "abcdef1"},
			version:   "latest-abcdef1",
		},
		"latest with full commit": {
			buildInfo: BuildInformation{
				Version: "latest",
				Commit:  "abcdef1234567890abcdef1234567890abcdef12",
			},
			version: "latest-abcdef1",
		},
		"latest without commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "unknown"},
			version:   "latest",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.version, testCase.buildInfo.VersionString())
		})
	}
}
