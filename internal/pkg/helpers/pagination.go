package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/pkg/api"
)

const (
	DefaultPage     = 1 // pages are 1-based
	DefaultPageSize = 10
	MaxPageSize     = 200
)

// PageParams holds normalized list-query parameters.
type PageParams struct {
	Search string
	Sort   string
	Order  string
	Page   int
	Limit  int
}

// ParseListParams extracts search/sort/order/page/limit from the request,
// applying the given defaults. Sort column validation happens later,
// against each entity's allow-list.
func ParseListParams(c *gin.Context, defaultSort string, defaultLimit int) PageParams {
	if defaultLimit <= 0 || defaultLimit > MaxPageSize {
		defaultLimit = DefaultPageSize
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = defaultLimit
	}

	return PageParams{
		Search: c.Query("search"),
		Sort:   c.DefaultQuery("sort", defaultSort),
		Order:  c.DefaultQuery("order", "ASC"),
		Page:   page,
		Limit:  limit,
	}
}

// CalculateOffsetLimit converts a 1-based page number into a SQL offset.
func CalculateOffsetLimit(page, limit int) (offset uint64, normalized int) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * limit), limit
}

// NewPaginationInfo builds the pagination block returned with every list.
func NewPaginationInfo(totalItems int64, page, limit int) api.PaginationInfo {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	} else if page == 1 {
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return api.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    limit,
		TotalItems:  totalItems,
	}
}
