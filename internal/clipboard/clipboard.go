// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboard indicates the system clipboard could not be written, for
// example when no clipboard utility is installed.
var ErrClipboard = errors.New("failed to copy to clipboard")

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// New returns the system clipboard backed by atotto/clipboard.
func New() Writer {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// Copy writes text with w and wraps any failure in [ErrClipboard].
func Copy(w Writer, text string) error {
	if err := w.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}
