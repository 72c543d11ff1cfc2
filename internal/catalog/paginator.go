package catalog

// PageSize is the number of products per catalog page.
const PageSize = 12

// TotalPages is ceil(n / PageSize); an empty list has zero pages.
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// Paginate returns the 1-indexed page of items. Pages outside
// [1, TotalPages] are empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return nil
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return nil
	}
	end := min(start+PageSize, len(items))
	return items[start:end:end]
}
