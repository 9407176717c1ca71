package repositories

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/internal/pkg/helpers"
)

// ListParams carries the normalized search/sort/paginate inputs of a
// collection query.
type ListParams struct {
	Search string
	Sort   string
	Order  string
	Page   int
	Limit  int
}

// applyListParams extends a squirrel builder with the search predicate,
// ORDER BY and page window. Sort names come straight from the client,
// so they are resolved against sortColumns (wire name -> real column)
// and rejected with a validation error when unknown; the raw value is
// never interpolated into the query text. The search term is matched
// case-insensitively as a substring, OR'ed across searchColumns.
func applyListParams(builder squirrel.SelectBuilder, p ListParams, sortColumns map[string]string, searchColumns ...string) (squirrel.SelectBuilder, error) {
	if p.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + p.Search + "%"
		or := make(squirrel.Or, 0, len(searchColumns))
		for _, col := range searchColumns {
			or = append(or, squirrel.ILike{col: pattern})
		}
		builder = builder.Where(or)
	}

	column, ok := sortColumns[p.Sort]
	if !ok {
		return builder, fmt.Errorf("%w: unknown sort column %q", apperrors.ErrValidationFailed, p.Sort)
	}

	direction := "ASC"
	switch strings.ToUpper(p.Order) {
	case "", "ASC":
	case "DESC":
		direction = "DESC"
	default:
		return builder, fmt.Errorf("%w: sort order must be ASC or DESC", apperrors.ErrValidationFailed)
	}
	builder = builder.OrderBy(column + " " + direction)

	offset, limit := helpers.CalculateOffsetLimit(p.Page, p.Limit)
	builder = builder.Limit(uint64(limit)).Offset(offset)

	return builder, nil
}
