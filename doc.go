// Package gopaginate provides page/limit pagination with a total count for GORM.
//
// Overview
//
// A single call to Paginate builds one base query from the Request (table,
// equality filters, joins, substring search) and derives two queries from it:
//   - data query: projection, ordering, LIMIT and OFFSET = (page-1)*limit.
//   - count query: count(<CountColumn>) AS count over the same base.
//
// Both are executed concurrently and merged with the computed Metadata.
//
// Key concepts
//   - Request: describes the page. Optional fields are defaulted once on
//     entry to Paginate.
//   - Metadata: current/next/previous page, per-page size and total pages.
//   - RawPager: API payload that decodes into a normalized page, limit and sort.
//
// Consistency
//
// The data and count queries are two separate reads. Unless the caller wraps
// the *gorm.DB in a transaction with a suitable isolation level, a concurrent
// write between them can make Total and Data disagree.
//
// Logging
//
// Debug and error events are written to the zerolog.Logger attached to the
// context (see zerolog.Ctx). Without one the package is silent.
package gopaginate
