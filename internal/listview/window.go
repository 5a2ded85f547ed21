package listview

// Window is the visible slice of page-number buttons: a contiguous block of
// groupSize pages containing the current page.
type Window struct {
	StartPage int
	EndPage   int
	Pages     []int
}

// ComputeWindow derives the page-number window for a paginator.
// Inputs are clamped so the result always contains the (clamped) current page
// and never extends past totalPages. A collection with no pages is treated as
// having a single empty page, matching what the paginator renders.
func ComputeWindow(currentPage, totalPages, groupSize int) Window {
	if totalPages < 1 {
		totalPages = 1
	}
	if groupSize < 1 {
		groupSize = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := (currentPage-1)/groupSize*groupSize + 1
	end := start + groupSize - 1
	if end > totalPages {
		end = totalPages
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return Window{StartPage: start, EndPage: end, Pages: pages}
}

// PrevGroupTarget returns the page to jump to when moving one group back,
// clamped to the first page.
func (w Window) PrevGroupTarget(groupSize int) int {
	target := w.StartPage - groupSize
	if target < 1 {
		target = 1
	}
	return target
}

// NextGroupTarget returns the page to jump to when moving one group forward,
// clamped to the last page.
func (w Window) NextGroupTarget(totalPages, groupSize int) int {
	target := w.StartPage + groupSize
	if target > totalPages {
		target = totalPages
	}
	if target < 1 {
		target = 1
	}
	return target
}
