// Package clipboard copies text to the user's clipboard, natively when the
// platform has a clipboard tool and through the terminal (OSC52) otherwise.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-modal/logging"
)

// Method names the way text reached the clipboard.
type Method string

const (
	Native Method = "native"
	OSC52  Method = "osc52"
)

var writeNative = clipboard.WriteAll

// Copy copies text and reports how. The native clipboard (pbcopy,
// xclip/xsel/wl-copy, the Windows API) is tried first.
func Copy(text string) (Method, error) {
	nativeErr := writeNative(text)
	if nativeErr == nil {
		logging.Infof("Clipboard: copied natively")
		return Native, nil
	}
	logging.Debugf("Clipboard: native copy failed: %v", nativeErr)

	if err := copyOSC52(text); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w (native: %v)", err, nativeErr)
	}
	return OSC52, nil
}
