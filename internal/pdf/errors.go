package pdf

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrFileNotFound means the requested path does not exist. It is
	// checked before any engine runs.
	ErrFileNotFound = errors.New("file not found")

	// ErrDocumentUnreadable means the file exists but could not be
	// parsed as a PDF. The engine's own error is wrapped alongside it
	// for diagnostics. Encrypted or password-protected documents also
	// surface this way; no finer categorization is attempted.
	ErrDocumentUnreadable = errors.New("document unreadable")
)

// checkExists distinguishes a missing file from an unreadable one
// before handing the path to an extraction engine.
func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}
