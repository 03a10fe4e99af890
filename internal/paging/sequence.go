package paging

import (
	"strconv"
)

// Ellipsis is the text of the marker standing in for omitted page numbers.
const Ellipsis = "..."

// DefaultMaxSize is the number of links shown when no max size is configured.
const DefaultMaxSize = 9

// MinPageRange is the smallest page range the generator works with.
const MinPageRange = 5

// Label is one entry of a page sequence: a page number or the ellipsis marker.
type Label struct {
	Page     int
	Ellipsis bool
}

// PageLabel returns the label for page n.
func PageLabel(n int) Label { return Label{Page: n} }

// EllipsisLabel returns the ellipsis marker.
func EllipsisLabel() Label { return Label{Ellipsis: true} }

func (l Label) String() string {
	if l.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(l.Page)
}

// MarshalJSON encodes page numbers as numbers and the marker as "...".
func (l Label) MarshalJSON() ([]byte, error) {
	if l.Ellipsis {
		return []byte(strconv.Quote(Ellipsis)), nil
	}
	return []byte(strconv.Itoa(l.Page)), nil
}

func (l *Label) UnmarshalJSON(b []byte) error {
	if s, err := strconv.Unquote(string(b)); err == nil {
		if s == Ellipsis {
			*l = EllipsisLabel()
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	*l = PageLabel(n)
	return nil
}

type position int

const (
	positionStart position = iota
	positionMiddle
	positionEnd
)

// EffectiveRange turns a configured max size into the page range used by Pages.
// Zero selects DefaultMaxSize; anything below MinPageRange is raised to it.
func EffectiveRange(maxSize int) int {
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}
	return max(maxSize, MinPageRange)
}

// TotalPages returns ceil(collectionLength / itemsPerPage). A non-positive
// page size counts as unbounded.
func TotalPages(collectionLength, itemsPerPage int) int {
	if collectionLength <= 0 {
		return 0
	}
	if itemsPerPage <= 0 {
		itemsPerPage = UnboundedItemsPerPage
	}
	n := collectionLength / itemsPerPage
	if collectionLength%itemsPerPage != 0 {
		n++
	}
	return n
}

// Pages generates the link sequence for a pagination control. The first and
// last pages are always present; when the pages do not fit in pageRange the
// links next to them turn into ellipsis markers depending on where the current
// page sits.
func Pages(currentPage, collectionLength, itemsPerPage, pageRange int) []Label {
	totalPages := TotalPages(collectionLength, itemsPerPage)
	halfWay := ceilHalf(pageRange)

	var pos position
	switch {
	case currentPage <= halfWay:
		pos = positionStart
	case totalPages-halfWay < currentPage:
		pos = positionEnd
	default:
		pos = positionMiddle
	}

	ellipsesNeeded := pageRange < totalPages
	n := min(totalPages, pageRange)
	pages := make([]Label, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		opening := i == 2 && (pos == positionMiddle || pos == positionEnd)
		closing := i == pageRange-1 && (pos == positionMiddle || pos == positionStart)
		if ellipsesNeeded && (opening || closing) {
			pages = append(pages, EllipsisLabel())
			continue
		}
		pages = append(pages, PageLabel(pageNumberAt(i, currentPage, pageRange, totalPages, pos)))
	}
	return pages
}

// pageNumberAt maps link slot i to the page number it shows.
func pageNumberAt(i, currentPage, pageRange, totalPages int, pos position) int {
	halfWay := ceilHalf(pageRange)
	switch {
	case i == pageRange:
		return totalPages
	case i == 1:
		return 1
	case pageRange < totalPages:
		if pos == positionEnd {
			return totalPages - pageRange + i
		}
		if halfWay < currentPage {
			return currentPage - halfWay + i
		}
		return i
	default:
		return i
	}
}

func ceilHalf(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 1) / 2
}

// Range describes the items shown on a page, e.g. "showing 21 - 40 of 144".
type Range struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
	Total int `json:"total"`
}

// ComputeRange returns the 1-based item range of currentPage.
func ComputeRange(currentPage, itemsPerPage, totalItems int) Range {
	return Range{
		Lower: (currentPage-1)*itemsPerPage + 1,
		Upper: min(currentPage*itemsPerPage, totalItems),
		Total: totalItems,
	}
}

// IsValidPageNumber reports whether s is a decimal page number in [1, lastPage].
func IsValidPageNumber(s string, lastPage int) bool {
	_, ok := ParsePageNumber(s, lastPage)
	return ok
}

// ParsePageNumber parses s and checks it against lastPage.
func ParsePageNumber(s string, lastPage int) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, ValidPage(n, lastPage)
}

// ValidPage reports whether 1 <= n <= lastPage.
func ValidPage(n, lastPage int) bool {
	return 0 < n && n <= lastPage
}
