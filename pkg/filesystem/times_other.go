//go:build !linux && !darwin

package filesystem

import (
	"os"
	"time"
)

// extraTimes has no portable source for access or creation times; both
// degrade to the unknown marker and only the write time survives.
func extraTimes(_ os.FileInfo) (atime, ctime time.Time) {
	return time.Time{}, time.Time{}
}
