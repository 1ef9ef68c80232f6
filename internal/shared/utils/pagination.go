package utils

// TotalPages calculates total pages for a given total count.
// A total of zero still reports one page so clients always have a
// valid page range to render.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}

// Offset calculates the zero-based record offset for a page.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}
