package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, rawQuery, defaultSort string, defaultLimit int) PageParams {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)

	return ParseListParams(c, defaultSort, defaultLimit)
}

func TestParseListParamsDefaults(t *testing.T) {
	p := paramsFor(t, "", "Name", 10)

	assert.Equal(t, "Name", p.Sort)
	assert.Equal(t, "ASC", p.Order)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Empty(t, p.Search)
}

func TestParseListParamsExplicitValues(t *testing.T) {
	p := paramsFor(t, "page=3&limit=50&sort=Credit&order=DESC&search=math", "Name", 10)

	assert.Equal(t, "Credit", p.Sort)
	assert.Equal(t, "DESC", p.Order)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, "math", p.Search)
}

func TestParseListParamsRejectsBadNumbers(t *testing.T) {
	p := paramsFor(t, "page=zero&limit=-5", "Name", 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = paramsFor(t, "limit=10000", "Name", 10)
	assert.Equal(t, 10, p.Limit, "limit above the cap falls back to the default")
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(4, 25)
	assert.Equal(t, uint64(75), offset)
	assert.Equal(t, 25, limit)

	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)
}

func TestNewPaginationInfoEmptyResult(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
}

func TestNewPaginationInfoClampsPastLastPage(t *testing.T) {
	info := NewPaginationInfo(10, 9, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
}
