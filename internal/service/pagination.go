package service

// HasMorePages estimates whether another page exists: a full page suggests
// more rows behind it, a short or empty page means we drained the result set.
// This is a heuristic — the upstream exposes no reliable total count — so a
// result set whose size is an exact multiple of the page size costs one extra
// empty page.
func HasMorePages(returned, pageSize int) bool {
	return pageSize > 0 && returned == pageSize
}
