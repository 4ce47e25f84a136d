package gopaginate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var _validate = validator.New(validator.WithRequiredStructEnabled())

// Request describes a single page to fetch.
type Request struct {
	// Page is 1-based.
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1"`
	// Table is the source of the base query.
	Table string `validate:"required"`
	// Columns are projected by the data query only. Entries may carry an alias
	// ("users.name AS user_name") or a star ("users.*"). Identifiers are put into
	// SQL as is, so only letters, digits, "_", ".", quotes, backticks, spaces and
	// "*" are accepted: expressions such as "COUNT(o.id) AS n" or hyphenated
	// names are rejected.
	Columns []string `validate:"min=1,dive,required"`
	// Where holds equality filters joined by AND. A nil value matches NULL.
	Where map[string]any
	// OrderBy is applied to the data query only. No ordering when empty.
	OrderBy Orderings
	// Joins are applied in the order given.
	Joins Joins
	// CountColumn is the argument of the count aggregate. Defaults to "<Table>.id".
	// Either "*" or a column reference made of letters, digits, "_", "." and
	// quotes. "DISTINCT users.id" and other expressions are rejected.
	CountColumn string
	// Search is ignored when the term or the column list is empty.
	Search *Search
}

// withDefaults returns a copy of the request with optional fields defaulted.
// Defaults are applied here only.
func (r Request) withDefaults() Request {
	if r.Where == nil {
		r.Where = map[string]any{}
	}
	if r.Joins == nil {
		r.Joins = Joins{}
	}
	if r.CountColumn == "" && r.Table != "" {
		r.CountColumn = r.Table + ".id"
	}
	r.OrderBy = r.OrderBy.withDefaults()
	r.Search = r.Search.withDefaults()

	return r
}

// offset returns the number of rows to skip for the requested page.
func (r Request) offset() int {
	return Offset(r.Page, r.Limit)
}

// validate expects a defaulted request.
func (r Request) validate() error {
	err := _validate.Struct(r)
	if err != nil {
		return invalidRequest(describeValidationError(err))
	}

	checks := []func() error{
		func() error { return validateIdentifier("table", r.Table) },
		func() error { return validateCountColumn(r.CountColumn) },
		func() error {
			for _, column := range r.Columns {
				if err := validateProjection(column); err != nil {
					return err
				}
			}
			return nil
		},
		func() error {
			for column := range r.Where {
				if err := validateIdentifier("filter column", column); err != nil {
					return err
				}
			}
			return nil
		},
		r.Joins.validate,
		r.OrderBy.validate,
		r.Search.validate,
	}

	for _, check := range checks {
		if err = check(); err != nil {
			return invalidRequest(err)
		}
	}

	return nil
}

func describeValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	return fmt.Errorf("%s", strings.Join(lo.Map(validationErrors, func(fe validator.FieldError, _ int) string {
		return fmt.Sprintf("field '%s' failed on '%s' rule", fe.Field(), fe.Tag())
	}), "; "))
}

// RawPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - 1-based page number. Non-positive values select the first page.
	Page int `json:"page" form:"page"`
	// Limit - maximum number of records to return in the response.
	Limit int `json:"limit" form:"limit"`
	// Sort - list of "<alias> asc|desc" strings, aliases are resolved
	// through a ColumnMapping.
	Sort []string `json:"sort,omitempty" form:"sort"`
	// Search - search term. Only used when the target request configures
	// search columns.
	Search string `json:"search,omitempty" form:"search"`
}

// Decode normalizes the payload and copies it onto req. Limit goes through
// NormalizeLimit, Page through NormalizePage. Sort, when present, substitutes
// req.OrderBy.
func (p RawPager) Decode(req Request, columnMapping ColumnMapping) (Request, error) {
	req.Page = NormalizePage(p.Page)
	req.Limit = NormalizeLimit(p.Limit)

	if len(p.Sort) > 0 {
		orderings, err := ParseSort(p.Sort, columnMapping)
		if err != nil {
			return req, invalidRequest(err)
		}

		req.OrderBy = orderings
	}

	if req.Search != nil {
		search := *req.Search
		search.Term = strings.TrimSpace(p.Search)
		req.Search = &search
	}

	return req, nil
}
