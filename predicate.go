package gopaginate

import (
	"fmt"
	"strings"

	"gorm.io/gorm/clause"
)

type (
	// tConjunct is a single condition Operator(Column, Value).
	tConjunct struct {
		Column   string
		Value    any
		Operator Operator
		// CaseFold lowers both sides before comparison. Used on dialects
		// without ILIKE.
		CaseFold bool
	}

	// tDisjunct is a list of conjuncts joined by AND.
	tDisjunct []tConjunct

	tLink struct {
		Connector connector
		Conjunct  tConjunct
	}

	// tChain is a flat sequence of conjuncts, each prefixed by the connector
	// that attaches it to everything on its left:
	//
	//	C1 K2 C2 K3 C3 ... Kn Cn
	//
	// The chain is rendered without any grouping beyond one pair of outer
	// parentheses, so the usual SQL precedence applies (AND before OR). The
	// connector of the first link is never rendered.
	tChain []tLink
)

// toSQLClause converts a conjunct of the form Operator(Column, Value) to
// an SQL condition of the form "Column Operator ?" with a corresponding value.
// Returns the SQL string and the values for placeholders.
//
// Examples:
//
//	{Column: "id", Operator: "=", Value: 123}            -> ("id = ?", [123])
//	{Column: "id", Operator: "=", Value: nil}            -> ("id IS NULL", [])
//	{Column: "name", Operator: "LIKE", CaseFold: true}   -> ("LOWER(name) LIKE LOWER(?)", [v])
func (c tConjunct) toSQLClause() (string, []any) {
	if c.Value == nil && (c.Operator == OperatorEq || c.Operator == operatorIsNull) {
		return fmt.Sprintf("%s %s", c.Column, operatorIsNull), nil
	}

	if c.CaseFold {
		return fmt.Sprintf("LOWER(%s) %s LOWER(?)", c.Column, c.Operator), []any{c.Value}
	}

	return fmt.Sprintf("%s %s ?", c.Column, c.Operator), []any{c.Value}
}

// toGORMExpression converts a conjunct into a clause.Expression.
//
// IMPORTANT: The method uses the SQL placeholder "?".
func (c tConjunct) toGORMExpression() clause.Expression {
	sqlClause, args := c.toSQLClause()

	return clause.Expr{
		SQL:  sqlClause,
		Vars: args,
	}
}

// toGORMExpression converts a disjunct (K1, K2, K3) into a gorm expression
// "K1 AND K2 AND K3" where each Ki is expanded via tConjunct.toGORMExpression.
func (d tDisjunct) toGORMExpression() clause.Expression {
	andExpressions := make([]clause.Expression, 0, len(d))
	for _, conjunct := range d {
		andExpressions = append(andExpressions, conjunct.toGORMExpression())
	}

	if len(andExpressions) == 1 {
		return andExpressions[0]
	} else if len(andExpressions) > 1 {
		return clause.And(andExpressions...)
	}

	return nil
}

// toSQLClause renders the chain into "(C1 K2 C2 ... Kn Cn)" with the values for
// placeholders.
//
// Example:
//
//	tChain = {
//		{Connector: "AND", Conjunct: {Column: "name", Operator: "ILIKE", Value: "%a%"}},
//		{Connector: "OR", Conjunct: {Column: "email", Operator: "ILIKE", Value: "%a%"}},
//	}
//
// Result:
//
//	("(name ILIKE ? OR email ILIKE ?)", ["%a%", "%a%"])
func (ch tChain) toSQLClause() (string, []any) {
	if len(ch) == 0 {
		return "", nil
	}

	var sb strings.Builder
	values := make([]any, 0, len(ch))

	sb.WriteByte('(')
	for i, link := range ch {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(string(link.Connector))
			sb.WriteByte(' ')
		}

		linkClause, linkValues := link.Conjunct.toSQLClause()
		sb.WriteString(linkClause)
		values = append(values, linkValues...)
	}
	sb.WriteByte(')')

	return sb.String(), values
}

// toGORMExpression converts the chain into a single clause.Expr, or nil when
// the chain is empty.
func (ch tChain) toGORMExpression() clause.Expression {
	sqlClause, values := ch.toSQLClause()
	if sqlClause == "" {
		return nil
	}

	return clause.Expr{
		SQL:  sqlClause,
		Vars: values,
	}
}
