package gopaginate

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Search describes a case-insensitive substring match over one or more
// columns.
type Search struct {
	Term    string
	Columns []string
	// Operator defaults to SearchOR.
	Operator SearchOperator
}

func (s *Search) enabled() bool {
	return s != nil && s.Term != "" && len(s.Columns) > 0
}

func (s *Search) withDefaults() *Search {
	if s == nil {
		return nil
	}

	ret := *s
	if ret.Operator == "" {
		ret.Operator = SearchOR
	}

	return &ret
}

func (s *Search) validate() error {
	if s == nil {
		return nil
	}

	if !s.Operator.Valid() {
		return fmt.Errorf("invalid search operator '%s'", s.Operator)
	}

	var err error
	for _, column := range s.Columns {
		err = validateIdentifier("search column", column)
		if err != nil {
			return err
		}
	}

	return nil
}

// pattern returns the LIKE pattern matching Term anywhere in a value.
func (s *Search) pattern() string {
	return "%" + s.Term + "%"
}

// toChain builds the search predicate chain. For every column i:
//
//   - i == 0: the column seeds the group;
//   - Operator == OR: an OR-connected match of the column is appended;
//   - always: an AND-connected match of the column is appended.
//
// For OR over (c0, c1) this yields
//
//	(c0 ILIKE ? OR c0 ILIKE ? AND c0 ILIKE ? OR c1 ILIKE ? AND c1 ILIKE ?)
//
// which, with AND binding tighter than OR, matches rows where any column
// matches. For AND over (c0, c1) it yields
//
//	(c0 ILIKE ? AND c0 ILIKE ? AND c1 ILIKE ?)
//
// which requires every column to match.
//
// caseFold selects "LOWER(c) LIKE LOWER(?)" instead of "c ILIKE ?". The
// search is expected to be defaulted.
func (s *Search) toChain(caseFold bool) tChain {
	if !s.enabled() {
		return nil
	}

	pattern := s.pattern()
	match := func(column string) tConjunct {
		if caseFold {
			return tConjunct{Column: column, Operator: OperatorLike, Value: pattern, CaseFold: true}
		}

		return tConjunct{Column: column, Operator: OperatorILike, Value: pattern}
	}

	chain := make(tChain, 0, len(s.Columns)*2+1)
	for i, column := range s.Columns {
		if i == 0 {
			chain = append(chain, tLink{Connector: connectorAND, Conjunct: match(column)})
		}
		if s.Operator == SearchOR {
			chain = append(chain, tLink{Connector: s.Operator.connector(), Conjunct: match(column)})
		}
		chain = append(chain, tLink{Connector: connectorAND, Conjunct: match(column)})
	}

	return chain
}

// Apply applies the search predicate to a gorm query as one parenthesized
// group. ILIKE is used on postgres, other dialects fall back to comparing
// lowered values with LIKE.
func (s *Search) Apply(db *gorm.DB) *gorm.DB {
	exp := s.expression(supportsILike(db))
	if exp == nil {
		return db
	}

	return db.Clauses(exp)
}

func (s *Search) expression(ilike bool) clause.Expression {
	return s.toChain(!ilike).toGORMExpression()
}

func supportsILike(db *gorm.DB) bool {
	return db != nil && db.Dialector != nil && db.Dialector.Name() == "postgres"
}
