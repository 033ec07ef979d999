package urlclean

import (
	"errors"
	"fmt"
)

var (
	ErrNotURL        = errors.New("not a valid URL")
	ErrSchemeMissing = errors.New("scheme is missing")
	ErrNetlocMissing = errors.New("network location is missing")
)

// Validate parses s and checks both its scheme and network
// location are set. Nothing else about s is checked.
func Validate(s string) (u URL, err error) {
	u = Parse(s)
	switch {
	case u.Scheme == "" && u.Netloc == "":
		return u, fmt.Errorf("%w: %w and %w", ErrNotURL, ErrSchemeMissing, ErrNetlocMissing)
	case u.Scheme == "":
		return u, fmt.Errorf("%w: %w", ErrNotURL, ErrSchemeMissing)
	case u.Netloc == "":
		return u, fmt.Errorf("%w: %w", ErrNotURL, ErrNetlocMissing)
	}
	return u, nil
}

// StripQuery returns s without its query string.
// StripQuery(StripQuery(s)) == StripQuery(s) for any s.
func StripQuery(s string) string {
	return Parse(s).WithoutQuery().String()
}

type Result struct {
	Original string
	Cleaned  string
}

// Changed returns true if the cleaned URL differs from the original one.
func (r Result) Changed() bool {
	return r.Original != r.Cleaned
}

// Clean validates s and removes its query string.
func Clean(s string) (result Result, err error) {
	u, err := Validate(s)
	if err != nil {
		return result, err
	}

	return Result{
		Original: s,
		Cleaned:  u.WithoutQuery().String(),
	}, nil
}
