// Package qrcode composes the payload carried by the QR code and
// encodes it as a QR symbol.
package qrcode

import (
	"errors"
	"fmt"
	"io"

	"github.com/nogoegst/byteqr"
	"rsc.io/qr"
)

// Level is the error correction level used, recovering about 7% of
// the symbol if damaged.
const Level = qr.L

// QuietZone is the width in modules of the white border around the symbol.
const QuietZone = 4

// Compose returns the payload prefix + address + suffix, without any separator.
func Compose(prefix, address, suffix string) string {
	return prefix + address + suffix
}

var (
	ErrPayloadEmpty = errors.New("payload is empty")
	ErrScaleInvalid = errors.New("scale is not valid")
)

// Encode encodes payload into the smallest QR symbol version fitting it.
// Each module is scale pixels wide when the code is rendered as an image.
func Encode(payload string, scale int) (code *qr.Code, err error) {
	if payload == "" {
		return nil, fmt.Errorf("%w", ErrPayloadEmpty)
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d must be at least 1", ErrScaleInvalid, scale)
	}

	code, err = qr.Encode(payload, Level)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", payload, err)
	}
	code.Scale = scale
	return code, nil
}

// WriteTerminal writes the payload as a QR code made of
// characters to w, to be scanned directly from a terminal.
func WriteTerminal(w io.Writer, payload string) (err error) {
	err = byteqr.Write(w, payload, Level, nil, nil)
	if err != nil {
		return fmt.Errorf("writing QR code to terminal: %w", err)
	}
	return nil
}
