package gopaginate

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// buildBaseQuery builds the query shared by the data and count queries:
// source table, equality filters, joins and search. The returned *gorm.DB is
// a fresh session, so every chain started from it works on its own copy of
// the statement.
func buildBaseQuery(db *gorm.DB, req Request) *gorm.DB {
	base := db.Table(req.Table)
	base = applyFilters(base, req.Where)
	base = req.Joins.Apply(base)
	base = req.Search.Apply(base)

	return base.Session(&gorm.Session{})
}

// applyFilters applies equality filters in key order.
func applyFilters(db *gorm.DB, where map[string]any) *gorm.DB {
	exp := filtersToDisjunct(where).toGORMExpression()
	if exp == nil {
		return db
	}

	return db.Clauses(exp)
}

func filtersToDisjunct(where map[string]any) tDisjunct {
	columns := lo.Keys(where)
	slices.Sort(columns)

	return lo.Map(columns, func(column string, _ int) tConjunct {
		return tConjunct{Column: column, Operator: OperatorEq, Value: where[column]}
	})
}

// deriveDataQuery shapes the base into the bounded page query.
func deriveDataQuery(base *gorm.DB, req Request) *gorm.DB {
	data := base.Select(req.Columns)
	data = req.OrderBy.Apply(data)

	return data.Limit(req.Limit).Offset(req.offset())
}

// deriveCountQuery shapes the base into the unbounded count query.
func deriveCountQuery(base *gorm.DB, req Request) *gorm.DB {
	return base.Select(fmt.Sprintf("count(%s) as count", req.CountColumn))
}
