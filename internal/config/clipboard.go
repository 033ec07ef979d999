package config

import (
	"fmt"

	"github.com/qdm12/deskutils/internal/clipboard"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Clipboard struct {
	Backend string
	Helper  string
}

func (c *Clipboard) setDefaults() {
	c.Backend = gosettings.DefaultComparable(c.Backend, clipboard.BackendExec)
	c.Helper = gosettings.DefaultComparable(c.Helper, clipboard.HelperAuto)
}

func (c Clipboard) Validate() (err error) {
	err = validate.IsOneOf(c.Backend, clipboard.BackendExec, clipboard.BackendSystem)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	err = validate.IsOneOf(c.Helper, clipboard.HelperNames()...)
	if err != nil {
		return fmt.Errorf("helper: %w", err)
	}

	return nil
}

func (c Clipboard) String() string {
	return c.toLinesNode().String()
}

func (c Clipboard) toLinesNode() *gotree.Node {
	node := gotree.New("Clipboard")
	node.Appendf("Backend: %s", c.Backend)
	if c.Backend == clipboard.BackendExec {
		node.Appendf("Helper: %s", c.Helper)
	}
	return node
}

func (c *Clipboard) read(r *reader.Reader) {
	c.Backend = r.String("CLIPBOARD_BACKEND", reader.ForceLowercase(true))
	c.Helper = r.String("CLIPBOARD_HELPER", reader.ForceLowercase(true))
}
