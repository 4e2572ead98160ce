package dashboard

import "errors"

var ErrInvalidPageSize = errors.New("page size must be positive")

// Page is one fixed-size slice of an ordered sequence.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns page number (1-based) of items. A page outside
// [1, TotalPages] is empty rather than an error.
func Paginate[T any](items []T, pageSize, number int) (Page[T], error) {
	if pageSize <= 0 {
		return Page[T]{}, ErrInvalidPageSize
	}
	total := (len(items) + pageSize - 1) / pageSize
	page := Page[T]{Items: []T{}, Number: number, TotalPages: total}
	if number < 1 || number > total {
		return page, nil
	}
	start := (number - 1) * pageSize
	end := min(start+pageSize, len(items))
	page.Items = items[start:end]
	return page, nil
}

// PrevPage moves one page back. The result stays within [1, totalPages];
// with no pages at all it is 1.
func PrevPage(current, totalPages int) int {
	return min(max(current-1, 1), max(totalPages, 1))
}

// NextPage moves one page forward. The result stays within [1, totalPages];
// with no pages at all it is 1.
func NextPage(current, totalPages int) int {
	return max(min(current+1, totalPages), 1)
}
