//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// extraTimes pulls access and birth times out of the raw stat.
func extraTimes(info os.FileInfo) (atime, ctime time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}

	atime = time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec)
	ctime = time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)

	return atime, ctime
}
