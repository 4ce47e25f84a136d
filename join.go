package gopaginate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// JoinType is the closed set of supported join variants. The zero value is
// an inner join.
type JoinType string

const (
	JoinInner JoinType = "inner"
	JoinLeft  JoinType = "left"
	JoinRight JoinType = "right"
	JoinFull  JoinType = "full"
)

func (t JoinType) Valid() bool {
	switch t {
	case "", JoinInner, JoinLeft, JoinRight, JoinFull:
		return true
	default:
		return false
	}
}

// keyword returns the SQL join keyword for the join type.
func (t JoinType) keyword() string {
	switch t {
	case "", JoinInner:
		return "INNER JOIN"
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	default:
		panic(fmt.Errorf("cannot map join type '%s' to keyword", t))
	}
}

// Join describes a single join clause of the base query.
type Join struct {
	Table string
	// On maps left columns to right columns. Both sides are column
	// references, never literals. Pairs are joined by AND in key order.
	On map[string]string
	// Type defaults to JoinInner.
	Type JoinType
	// Alias renames Table within the query: "<Table> AS <Alias>".
	Alias string
}

func (j Join) target() string {
	if j.Alias != "" {
		return fmt.Sprintf("%s AS %s", j.Table, j.Alias)
	}

	return j.Table
}

// ToSQL renders the join clause.
//
// Example: for {Table: "orders", Alias: "o", Type: JoinLeft, On: {"users.id": "o.user_id"}}
// returns "LEFT JOIN orders AS o ON users.id = o.user_id".
func (j Join) ToSQL() string {
	keys := lo.Keys(j.On)
	slices.Sort(keys)

	conditions := lo.Map(keys, func(left string, _ int) string {
		return fmt.Sprintf("%s %s %s", left, OperatorEq, j.On[left])
	})

	return fmt.Sprintf("%s %s ON %s", j.Type.keyword(), j.target(), strings.Join(conditions, " AND "))
}

// Apply applies the join to a gorm query.
func (j Join) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins(j.ToSQL())
}

func (j Join) validate() error {
	if !j.Type.Valid() {
		return fmt.Errorf("invalid join type '%s'", j.Type)
	}

	err := validateIdentifier("join table", j.Table)
	if err != nil {
		return err
	}

	if j.Alias != "" {
		err = validateIdentifier("join alias", j.Alias)
		if err != nil {
			return err
		}
	}

	if len(j.On) == 0 {
		return fmt.Errorf("join '%s' has no ON conditions", j.Table)
	}

	for left, right := range j.On {
		err = validateIdentifier("join column", left)
		if err != nil {
			return err
		}

		err = validateIdentifier("join column", right)
		if err != nil {
			return err
		}
	}

	return nil
}

type Joins []Join

// Apply applies the joins to a gorm query in the order given.
func (js Joins) Apply(db *gorm.DB) *gorm.DB {
	for _, j := range js {
		db = j.Apply(db)
	}

	return db
}

func (js Joins) validate() error {
	var err error
	for _, j := range js {
		err = j.validate()
		if err != nil {
			return err
		}
	}

	return nil
}
