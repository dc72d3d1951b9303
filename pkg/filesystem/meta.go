package filesystem

import (
	"os"
	"time"
)

// FileMeta holds the metadata read for one candidate file.
// Zero timestamps mean the platform could not supply that value.
type FileMeta struct {
	Size       int64
	AccessTime time.Time
	WriteTime  time.Time
	CreateTime time.Time
}

// Stat reads the metadata for path. Write time always comes from the
// portable stat result; access and creation times are platform-dependent.
func Stat(path string) (FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}, err
	}

	atime, ctime := extraTimes(info)

	return FileMeta{
		Size:       info.Size(),
		AccessTime: atime,
		WriteTime:  info.ModTime(),
		CreateTime: ctime,
	}, nil
}
