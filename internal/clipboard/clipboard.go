// Package clipboard places rendered drafts on the system clipboard.
package clipboard

import (
	"errors"
	"time"

	sysclip "github.com/atotto/clipboard"
)

// CopiedIndicatorTTL is how long a successful copy stays flagged in the UI.
const CopiedIndicatorTTL = 2 * time.Second

var ErrUnsupported = errors.New("clipboard not available on this system")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a plain function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteText(text string) error { return f(text) }

// System writes through the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API).
type System struct{}

func NewSystem() System { return System{} }

func (System) WriteText(text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	return sysclip.WriteAll(text)
}

// Copy writes text and reports only whether it landed; failures carry no message.
func Copy(w Writer, text string) bool {
	if w == nil {
		return false
	}
	return w.WriteText(text) == nil
}
