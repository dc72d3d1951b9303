// Package trash moves files to the platform recycle bin.
//
// The capability is optional: on platforms without a known trash location,
// MoveToTrash fails with ErrUnsupported and callers are expected to surface
// that per file rather than at startup.
package trash

import "errors"

// ErrUnsupported is returned when the platform has no recycle bin backend.
var ErrUnsupported = errors.New("recycle bin is not supported on this platform")

// MoveToTrash moves the file at path into the recycle bin.
func MoveToTrash(path string) error {
	return moveToTrash(path)
}
