package question

// DefaultPageSize is the number of questions per listing page.
const DefaultPageSize = 10

// Paginate returns the [(page-1)*size, page*size) window of items. Pages past
// the end yield an empty slice rather than an error.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	pages := (len(items) + size - 1) / size
	if page > pages {
		return []T{}
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end]
}
