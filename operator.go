package gopaginate

import "fmt"

// Operator defines a comparison operator used in filtering and search
// predicates.
type Operator string

func (o Operator) Valid() bool {
	return o == OperatorEq || o == OperatorILike || o == OperatorLike
}

const (
	OperatorEq    Operator = "="
	OperatorILike Operator = "ILIKE"
	OperatorLike  Operator = "LIKE"

	// operatorIsNull is private because we use it ONLY for nil filter values.
	operatorIsNull Operator = "IS NULL"
)

// SearchOperator defines how search predicates over several columns are
// chained.
type SearchOperator string

const (
	SearchOR  SearchOperator = "OR"
	SearchAND SearchOperator = "AND"
)

func (o SearchOperator) Valid() bool {
	return o == SearchOR || o == SearchAND
}

func (o SearchOperator) connector() connector {
	switch o {
	case SearchOR:
		return connectorOR
	case SearchAND:
		return connectorAND
	default:
		panic(fmt.Errorf("cannot map search operator '%s' to connector", o))
	}
}

// connector joins a predicate to the ones preceding it in a predicate chain.
type connector string

const (
	connectorAND connector = "AND"
	connectorOR  connector = "OR"
)
