package repositories

import (
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlms/lms/internal/pkg/apperrors"
)

var testSortColumns = map[string]string{
	"Name":   "name",
	"Credit": "credit",
}

func baseQuery() squirrel.SelectBuilder {
	return squirrel.Select("*").From("courses").PlaceholderFormat(squirrel.Dollar)
}

func TestApplyListParamsSearchAndSort(t *testing.T) {
	builder, err := applyListParams(baseQuery(), ListParams{
		Search: "data",
		Sort:   "Name",
		Order:  "desc",
		Page:   2,
		Limit:  10,
	}, testSortColumns, "course_id", "name")
	require.NoError(t, err)

	sql, args, err := builder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "course_id ILIKE $1 OR name ILIKE $2")
	assert.Contains(t, sql, "ORDER BY name DESC")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Contains(t, sql, "OFFSET 10")
	assert.Equal(t, []interface{}{"%data%", "%data%"}, args)
}

func TestApplyListParamsDefaultAscending(t *testing.T) {
	builder, err := applyListParams(baseQuery(), ListParams{
		Sort:  "Credit",
		Page:  1,
		Limit: 25,
	}, testSortColumns)
	require.NoError(t, err)

	sql, _, err := builder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY credit ASC")
	assert.NotContains(t, sql, "ILIKE")
	assert.Contains(t, sql, "OFFSET 0")
}

func TestApplyListParamsRejectsUnknownSort(t *testing.T) {
	// Raw sort names must never reach the SQL text.
	_, err := applyListParams(baseQuery(), ListParams{
		Sort: "name; DROP TABLE courses",
	}, testSortColumns)

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestApplyListParamsRejectsBadOrder(t *testing.T) {
	_, err := applyListParams(baseQuery(), ListParams{
		Sort:  "Name",
		Order: "SIDEWAYS",
	}, testSortColumns)

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}
