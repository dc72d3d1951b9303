package catalog

// SortKey identifies the column a projection is ordered by. The numeric
// values match the persisted sort_col setting.
type SortKey int

// Sort keys, in column order.
const (
	SortDirectory SortKey = iota
	SortName
	SortLength
	SortLastAccessTime
	SortLastWriteTime
	SortCreationTime
)

// DefaultSortKey is last access time: the least-recently-used models float
// to the top, which is what a cleanup pass cares about.
const DefaultSortKey = SortLastAccessTime

// SortKeyFromColumn maps a persisted column index to a SortKey, degrading
// out-of-range values to the default.
func SortKeyFromColumn(col int) SortKey {
	if col < int(SortDirectory) || col > int(SortCreationTime) {
		return DefaultSortKey
	}

	return SortKey(col)
}

// String returns the column header for the key.
func (k SortKey) String() string {
	switch k {
	case SortDirectory:
		return "Directory"
	case SortName:
		return "Name"
	case SortLength:
		return "Length"
	case SortLastAccessTime:
		return "LastAccessTime"
	case SortLastWriteTime:
		return "LastWriteTime"
	case SortCreationTime:
		return "CreationTime"
	default:
		return "Name"
	}
}
