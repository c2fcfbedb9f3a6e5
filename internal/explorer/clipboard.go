package explorer

import (
	"encoding/base64"
	"fmt"

	"github.com/atotto/clipboard"
)

// EllipsisMinLength is the minimum string length before truncation
// adds an ellipsis, used when shortening a node's preview text to fit
// the table's "preview" column.
const EllipsisMinLength = 3

// TruncateString truncates a node preview string and adds an ellipsis
// if needed.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= EllipsisMinLength {
		return s[:maxLen]
	}

	return s[:maxLen-EllipsisMinLength] + "..."
}

// CopyToClipboard copies a node's rendered JSON (or debug dump) to the
// clipboard using the native clipboard, falling back to OSC 52 for
// SSH sessions where no native clipboard is reachable.
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	fmt.Print("\x1b]52;c;" + encoded + "\x07")

	return nil
}
