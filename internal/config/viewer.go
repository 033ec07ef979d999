package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Viewer struct {
	Enabled *bool
}

func (v *Viewer) setDefaults() {
	v.Enabled = gosettings.DefaultPointer(v.Enabled, true)
}

func (v Viewer) Validate() (err error) {
	return nil
}

func (v Viewer) String() string {
	return v.toLinesNode().String()
}

func (v Viewer) toLinesNode() *gotree.Node {
	return gotree.New("Open image viewer: " + gosettings.BoolToYesNo(v.Enabled))
}

func (v *Viewer) read(reader *reader.Reader) (err error) {
	v.Enabled, err = reader.BoolPtr("VIEWER_ENABLED")
	return err
}
