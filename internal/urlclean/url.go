// Package urlclean splits URLs into their components and removes
// their query string, leaving every other component untouched.
package urlclean

import "strings"

// URL holds the raw components of a URL, as found in the input.
// No component is unescaped, lowercased or otherwise normalized.
type URL struct {
	Scheme   string
	Netloc   string
	Path     string
	Params   string
	Query    string
	Fragment string
}

// Parse splits s into its components. It never fails: any string
// has a decomposition, possibly with all components but Path empty.
func Parse(s string) (u URL) {
	rest := s

	if i := strings.IndexByte(rest, ':'); i > 0 && isScheme(rest[:i]) {
		u.Scheme = rest[:i]
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end == -1 {
			end = len(rest)
		}
		u.Netloc = rest[:end]
		rest = rest[end:]
	}

	rest, u.Fragment, _ = strings.Cut(rest, "#")
	rest, u.Query, _ = strings.Cut(rest, "?")
	u.Path, u.Params = splitParams(rest)

	return u
}

// String reassembles the components. Empty optional components are
// omitted together with their delimiter.
func (u URL) String() string {
	var b strings.Builder

	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteByte(':')
	}

	if u.Netloc != "" || strings.HasPrefix(u.Path, "//") {
		b.WriteString("//")
		b.WriteString(u.Netloc)
	}

	b.WriteString(u.Path)

	if u.Params != "" {
		b.WriteByte(';')
		b.WriteString(u.Params)
	}

	if u.Query != "" {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}

	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}

	return b.String()
}

// WithoutQuery returns a copy of u with an empty query string.
func (u URL) WithoutQuery() URL {
	u.Query = ""
	return u
}

// splitParams splits the ;parameters off the last segment of the path.
func splitParams(path string) (pathOnly, params string) {
	lastSegment := strings.LastIndexByte(path, '/')
	if lastSegment == -1 {
		lastSegment = 0
	}

	i := strings.IndexByte(path[lastSegment:], ';')
	if i == -1 {
		return path, ""
	}
	i += lastSegment
	return path[:i], path[i+1:]
}

func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return s != ""
}
