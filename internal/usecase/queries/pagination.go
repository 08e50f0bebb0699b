package queries

const (
	DefaultPerPage = 12
	MaxPerPage     = 200
)

func ValidatePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// Paginate clamps page into [1, totalPages] and returns the bounds of that page.
// totalPages is at least 1 even for an empty list.
func Paginate(total, page, perPage int) (start, end, clampedPage, totalPages int) {
	perPage = ValidatePerPage(perPage)
	totalPages = max(1, (total+perPage-1)/perPage)
	clampedPage = min(max(page, 1), totalPages)
	start = min((clampedPage-1)*perPage, total)
	end = min(start+perPage, total)
	return start, end, clampedPage, totalPages
}
