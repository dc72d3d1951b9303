//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// extraTimes pulls access and status-change times out of the raw stat.
// The change time stands in for creation time, which Linux does not expose
// through syscall.Stat_t.
func extraTimes(info os.FileInfo) (atime, ctime time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}

	atime = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	ctime = time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)

	return atime, ctime
}
