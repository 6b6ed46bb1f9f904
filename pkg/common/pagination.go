package common

import (
	"net/http"
	"strconv"
)

// DefaultPageSize is the listing window used when the client does not
// ask for one.
const DefaultPageSize = 16

// MaxPageSize caps client-supplied page sizes.
const MaxPageSize = 100

// PageResult is a paginated listing window plus its metadata.
type PageResult struct {
	Items       any  `json:"items"`
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// NewPageResult computes the pagination metadata for a window. With a
// zero total, TotalPages is 0 and both cursors are false.
func NewPageResult(items any, page, pageSize, total int) PageResult {
	totalPages := CalculateTotalPages(total, pageSize)
	return PageResult{
		Items:       items,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// CalculateOffset converts a 1-based page number into a skip count.
func CalculateOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// CalculateTotalPages is ceil(total/pageSize).
func CalculateTotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// ExtractPageSize reads the pageSize query parameter, clamped to
// [1, MaxPageSize], defaulting to DefaultPageSize.
func ExtractPageSize(r *http.Request) int {
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if ps, err := strconv.Atoi(raw); err == nil && ps > 0 {
			if ps > MaxPageSize {
				return MaxPageSize
			}
			return ps
		}
	}
	return DefaultPageSize
}
