// Package catalog owns the collection of scanned model files and derives the
// filtered, sorted, selection-preserving view the interface renders.
package catalog

import (
	"path/filepath"

	"github.com/joe/model-sweep/pkg/filesystem"
	"github.com/joe/model-sweep/pkg/formatters"
)

// Row describes one discovered model file. Rows are immutable once built; a
// changed file is represented by removing and re-adding its path.
//
// The timestamp fields are display strings in the formatters layout; the
// empty string is the "unknown" marker for a timestamp the platform could
// not supply.
type Row struct {
	FullPath       string
	Directory      string
	Name           string
	Length         int64
	LastAccessTime string
	LastWriteTime  string
	CreationTime   string
}

// NewRow builds a Row from a stat result. Directory and name are derived
// from the path once and cached on the row for sorting and filtering.
func NewRow(fullPath string, meta filesystem.FileMeta) Row {
	return Row{
		FullPath:       fullPath,
		Directory:      filepath.Dir(fullPath),
		Name:           filepath.Base(fullPath),
		Length:         meta.Size,
		LastAccessTime: formatters.FormatTimestamp(meta.AccessTime),
		LastWriteTime:  formatters.FormatTimestamp(meta.WriteTime),
		CreationTime:   formatters.FormatTimestamp(meta.CreateTime),
	}
}
