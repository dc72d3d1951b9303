package catalog

import (
	"sort"
	"strings"

	"github.com/joe/model-sweep/pkg/formatters"
)

// Catalog holds the authoritative result of the last completed scan plus the
// user's filter, sort, and per-row checked state, and derives the visible
// projection on demand.
//
// A Catalog is not safe for concurrent use. It is owned by the interface
// update loop; background tasks hand their results to that loop instead of
// touching the catalog directly.
type Catalog struct {
	fullSet   map[string]Row
	selection map[string]struct{}

	filterText    string
	sortKey       SortKey
	sortAscending bool
}

// New creates an empty catalog with the given initial ordering.
func New(sortKey SortKey, ascending bool) *Catalog {
	return &Catalog{
		fullSet:       make(map[string]Row),
		selection:     make(map[string]struct{}),
		sortKey:       sortKey,
		sortAscending: ascending,
	}
}

// Ingest inserts a row, overwriting any previous row with the same path.
// It does not recompute the projection; callers batch that.
func (c *Catalog) Ingest(row Row) {
	c.fullSet[row.FullPath] = row
}

// Reset clears the full set and the selection. Called at the start of every
// scan.
func (c *Catalog) Reset() {
	c.fullSet = make(map[string]Row)
	c.selection = make(map[string]struct{})
}

// RemovePaths drops the given paths from the full set and, in the same step,
// from the selection. Unknown paths are ignored.
func (c *Catalog) RemovePaths(paths []string) {
	for _, path := range paths {
		delete(c.fullSet, path)
		delete(c.selection, path)
	}
}

// SetFilter updates the filter needle. Selection is untouched.
func (c *Catalog) SetFilter(text string) {
	c.filterText = strings.TrimSpace(text)
}

// Filter returns the current filter needle.
func (c *Catalog) Filter() string {
	return c.filterText
}

// SetSort updates the ordering choice. Selection is untouched.
func (c *Catalog) SetSort(key SortKey, ascending bool) {
	c.sortKey = key
	c.sortAscending = ascending
}

// Sort returns the current ordering choice.
func (c *Catalog) Sort() (SortKey, bool) {
	return c.sortKey, c.sortAscending
}

// Len returns the size of the full set.
func (c *Catalog) Len() int {
	return len(c.fullSet)
}

// Get returns the row for a path, if present.
func (c *Catalog) Get(path string) (Row, bool) {
	row, ok := c.fullSet[path]

	return row, ok
}

// Project derives the visible order: the paths of every row matching the
// filter, sorted by the current key and direction with ties broken by path
// ascending. Two calls with unchanged state yield identical sequences.
func (c *Catalog) Project() []string {
	needle := strings.ToLower(c.filterText)

	visible := make([]string, 0, len(c.fullSet))
	for path, row := range c.fullSet {
		if needle == "" || matchesFilter(row, needle) {
			visible = append(visible, path)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return c.less(c.fullSet[visible[i]], c.fullSet[visible[j]])
	})

	return visible
}

// VisibleRows returns the Row values for the current projection, in order.
// This is the sequence the spreadsheet exporter consumes.
func (c *Catalog) VisibleRows() []Row {
	paths := c.Project()

	rows := make([]Row, 0, len(paths))
	for _, path := range paths {
		rows = append(rows, c.fullSet[path])
	}

	return rows
}

// SetChecked sets the checked state for one path. Paths not in the full set
// are ignored so the selection stays a subset of the set's keys.
func (c *Catalog) SetChecked(path string, checked bool) {
	if _, ok := c.fullSet[path]; !ok {
		return
	}

	if checked {
		c.selection[path] = struct{}{}
	} else {
		delete(c.selection, path)
	}
}

// Checked reports whether a path is currently checked.
func (c *Catalog) Checked(path string) bool {
	_, ok := c.selection[path]

	return ok
}

// ToggleAll sets the checked state of every path the current filter shows.
// Rows hidden by the filter keep whatever state they had.
func (c *Catalog) ToggleAll(checked bool) {
	for _, path := range c.Project() {
		c.SetChecked(path, checked)
	}
}

// CheckedPaths returns the checked paths in projection order, followed by
// any checked paths the current filter hides, in path order. Every returned
// path is a key of the full set.
func (c *Catalog) CheckedPaths() []string {
	seen := make(map[string]struct{}, len(c.selection))
	paths := make([]string, 0, len(c.selection))

	for _, path := range c.Project() {
		if c.Checked(path) {
			paths = append(paths, path)
			seen[path] = struct{}{}
		}
	}

	hidden := make([]string, 0)
	for path := range c.selection {
		if _, ok := seen[path]; !ok {
			hidden = append(hidden, path)
		}
	}
	sort.Strings(hidden)

	return append(paths, hidden...)
}

// SelectionStats returns how many rows are checked and their combined size.
func (c *Catalog) SelectionStats() (count int, totalBytes int64) {
	for path := range c.selection {
		if row, ok := c.fullSet[path]; ok {
			count++
			totalBytes += row.Length
		}
	}

	return count, totalBytes
}

// matchesFilter applies the case-insensitive substring filter over the
// row's directory and name, matching what the grid displays.
func matchesFilter(row Row, needle string) bool {
	haystack := strings.ToLower(row.Directory + " " + row.Name)

	return strings.Contains(haystack, needle)
}

// less orders two rows by the current key and direction. Ties on the
// primary key always fall back to the full path ascending, so the order is
// total regardless of direction.
func (c *Catalog) less(left, right Row) bool {
	cmp := c.comparePrimary(left, right)
	if cmp == 0 {
		return left.FullPath < right.FullPath
	}

	if c.sortAscending {
		return cmp < 0
	}

	return cmp > 0
}

func (c *Catalog) comparePrimary(left, right Row) int {
	switch c.sortKey {
	case SortDirectory:
		return strings.Compare(strings.ToLower(left.Directory), strings.ToLower(right.Directory))
	case SortName:
		return strings.Compare(strings.ToLower(left.Name), strings.ToLower(right.Name))
	case SortLength:
		switch {
		case left.Length < right.Length:
			return -1
		case left.Length > right.Length:
			return 1
		default:
			return 0
		}
	case SortLastAccessTime:
		return compareTimestamps(left.LastAccessTime, right.LastAccessTime)
	case SortLastWriteTime:
		return compareTimestamps(left.LastWriteTime, right.LastWriteTime)
	case SortCreationTime:
		return compareTimestamps(left.CreationTime, right.CreationTime)
	default:
		return strings.Compare(strings.ToLower(left.Name), strings.ToLower(right.Name))
	}
}

// compareTimestamps orders display timestamps by their parsed instant.
// Unparsable values sort as the zero time so the unknown markers collect
// deterministically at one end instead of erroring.
func compareTimestamps(left, right string) int {
	lt, _ := formatters.ParseTimestamp(left)
	rt, _ := formatters.ParseTimestamp(right)

	switch {
	case lt.Before(rt):
		return -1
	case lt.After(rt):
		return 1
	default:
		return 0
	}
}
