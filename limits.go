package gopaginate

const (
	FirstPage    = 1
	MaxLimit     = 100
	DefaultLimit = 10
)

func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return DefaultLimit, false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// NormalizePage maps non-positive page numbers to FirstPage.
func NormalizePage(page int) int {
	if page < FirstPage {
		return FirstPage
	}

	return page
}

// Offset returns the number of rows preceding the given page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
