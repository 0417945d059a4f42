package query

// Page selects a window of results. Pages are 1-based.
type Page struct {
	Number int
	Size   int
}

// Paginated wraps one page of results with the counters the list
// chrome needs.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items into the requested page. Out-of-range pages
// return empty data with the counters intact; a non-positive size
// defaults to 20.
func Paginate[T any](items []T, page Page) Paginated[T] {
	if page.Size <= 0 {
		page.Size = 20
	}
	if page.Number <= 0 {
		page.Number = 1
	}

	total := len(items)
	totalPages := (total + page.Size - 1) / page.Size
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page.Number - 1) * page.Size
	if start > total {
		start = total
	}
	end := start + page.Size
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Paginated[T]{
		Data:       data,
		Total:      total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: totalPages,
	}
}
