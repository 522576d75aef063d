package pagekit

const (
	FirstPage       = 0
	MinPageSize     = 1
	MaxPageSize     = 1000
	DefaultPageSize = 20
)

// IsClampedPageSizeMax clamps size to [MinPageSize, maxSize]. The second
// return value reports whether size was already within bounds.
func IsClampedPageSizeMax(size int, maxSize int) (int, bool) {
	if size < MinPageSize {
		return MinPageSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func ClampPageSizeMax(size int, maxSize int) int {
	ret, _ := IsClampedPageSizeMax(size, maxSize)
	return ret
}

func ClampPageSize(size int) int {
	return ClampPageSizeMax(size, MaxPageSize)
}

// ClampPageIndex floors a page index at FirstPage. Negative indices degrade
// gracefully instead of failing.
func ClampPageIndex(index int) int {
	if index < FirstPage {
		return FirstPage
	}

	return index
}
