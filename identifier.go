package gopaginate

import (
	"fmt"

	"github.com/samber/lo"
)

var (
	_availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

	// Projections additionally allow "users.*" and "users.name AS user_name".
	_availableProjectionSymbols = append([]rune(" *"), _availableColumnNameSymbols...)
)

// validateIdentifier guards against SQL injection by restricting allowed
// characters in table and column names. Identifiers are embedded into SQL as is.
func validateIdentifier(kind, name string) error {
	return validateSymbols(kind, name, _availableColumnNameSymbols)
}

// validateCountColumn accepts a column reference or "*" for count(*).
func validateCountColumn(name string) error {
	if name == "*" {
		return nil
	}

	return validateIdentifier("count column", name)
}

func validateProjection(name string) error {
	return validateSymbols("column", name, _availableProjectionSymbols)
}

func validateSymbols(kind, name string, allowed []rune) error {
	if name == "" {
		return fmt.Errorf("empty %s name", kind)
	}

	if !lo.Every(allowed, []rune(name)) {
		return fmt.Errorf("%s name contains forbidden symbols '%s'", kind, name)
	}

	return nil
}
