package clipboard

import (
	"errors"
	"fmt"
	"sort"
)

type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	s := c.Name
	for _, arg := range c.Args {
		s += " " + arg
	}
	return s
}

// Helper holds the commands printing the clipboard text on their
// standard output, and setting it from their standard input.
type Helper struct {
	Paste Command
	Copy  Command
}

const HelperAuto = "auto"

//nolint:gochecknoglobals
var helpers = map[string]Helper{
	"xclip": {
		Paste: Command{Name: "xclip", Args: []string{"-selection", "clipboard", "-o"}},
		Copy:  Command{Name: "xclip", Args: []string{"-selection", "clipboard"}},
	},
	"xsel": {
		Paste: Command{Name: "xsel", Args: []string{"--clipboard", "--output"}},
		Copy:  Command{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	},
	"wl-clipboard": {
		Paste: Command{Name: "wl-paste", Args: []string{"--no-newline"}},
		Copy:  Command{Name: "wl-copy"},
	},
	"pbcopy": {
		Paste: Command{Name: "pbpaste"},
		Copy:  Command{Name: "pbcopy"},
	},
	"powershell": {
		Paste: Command{Name: "powershell", Args: []string{"-NoProfile", "-Command", "Get-Clipboard"}},
		Copy:  Command{Name: "clip"},
	},
}

// HelperNames returns the sorted names of the supported helpers,
// including "auto".
func HelperNames() (names []string) {
	names = make([]string, 0, len(helpers)+1)
	names = append(names, HelperAuto)
	for name := range helpers {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

var (
	ErrHelperUnknown     = errors.New("clipboard helper is unknown")
	ErrPlatformNoDefault = errors.New("no default clipboard helper for platform")
)

// HelperFor returns the helper named name, or the default
// helper for the platform goos if name is "auto".
func HelperFor(name, goos string) (helper Helper, err error) {
	if name == HelperAuto {
		switch goos {
		case "darwin":
			name = "pbcopy"
		case "windows":
			name = "powershell"
		case "linux", "freebsd", "openbsd", "netbsd":
			name = "xclip"
		default:
			return helper, fmt.Errorf("%w: %s", ErrPlatformNoDefault, goos)
		}
	}

	helper, ok := helpers[name]
	if !ok {
		return helper, fmt.Errorf("%w: %s", ErrHelperUnknown, name)
	}
	return helper, nil
}
