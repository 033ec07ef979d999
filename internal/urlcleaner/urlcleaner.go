// Package urlcleaner removes the query string of the URL
// found in the clipboard.
package urlcleaner

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/qdm12/deskutils/internal/clipboard"
	"github.com/qdm12/deskutils/internal/urlclean"
)

type Cleaner struct {
	clipboard clipboard.Clipboard
	stdout    io.Writer
}

func New(clipboard clipboard.Clipboard, stdout io.Writer) *Cleaner {
	return &Cleaner{
		clipboard: clipboard,
		stdout:    stdout,
	}
}

// Run reads the clipboard URL, removes its query string and writes it
// back to the clipboard. The clipboard is left untouched on any error.
func (c *Cleaner) Run(ctx context.Context) (result urlclean.Result, err error) {
	fmt.Fprintln(c.stdout, "URL Cleaner - Removes all query parameters from URLs")

	content, err := c.clipboard.Read(ctx)
	if err != nil {
		return result, fmt.Errorf("reading clipboard: %w", err)
	}
	fmt.Fprintln(c.stdout, "Original content: "+content)

	result, err = urlclean.Clean(content)
	if err != nil {
		return result, fmt.Errorf("clipboard content: %w", err)
	}

	success := color.New(color.FgGreen)
	if result.Changed() {
		success.Fprintln(c.stdout, "✓ Removed all query parameters")
		fmt.Fprintln(c.stdout, "Original: "+result.Original)
		fmt.Fprintln(c.stdout, "Cleaned:  "+result.Cleaned)
	} else {
		color.New(color.FgCyan).Fprintln(c.stdout, "ℹ No query parameters found - URL unchanged")
	}

	err = c.clipboard.Write(ctx, result.Cleaned)
	if err != nil {
		return result, fmt.Errorf("writing clipboard: %w", err)
	}
	success.Fprintln(c.stdout, "✓ Cleaned URL saved to clipboard: "+result.Cleaned)

	return result, nil
}
