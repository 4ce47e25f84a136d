package gopaginate

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type countResult struct {
	Count int64
}

// Paginate fetches one page described by req together with its Metadata.
//
// Two read queries are issued concurrently: the data query and the count
// query. ctx is passed to both unchanged. If either fails, the call fails with
// *ExecutionError and no partial result is returned.
//
// Returns ErrConfiguration if db is nil and ErrInvalidRequest if req does not
// pass validation, in both cases before any query is issued.
func Paginate[T any](ctx context.Context, db *gorm.DB, req Request) (*PaginatedResult[T], error) {
	if db == nil {
		return nil, ErrConfiguration
	}

	req = req.withDefaults()
	err := req.validate()
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().
		Str("table", req.Table).
		Int("page", req.Page).
		Int("limit", req.Limit).
		Logger()

	base := buildBaseQuery(db.WithContext(ctx), req)

	logger.Debug().Int("offset", req.offset()).Msg("dispatching page queries")

	items, total, err := execute[T](ctx, req.Table, deriveDataQuery(base, req), deriveCountQuery(base, req))
	if err != nil {
		logger.Error().Err(err).Msg("page queries failed")
		return nil, err
	}

	ret := &PaginatedResult[T]{
		Data:       items,
		Pagination: ComputeMetadata(total, req.Page, req.Limit),
	}

	logger.Debug().
		Int64("total", total).
		Int("rows", len(items)).
		Int("total_pages", ret.Pagination.TotalPages).
		Msg("page fetched")

	return ret, nil
}

// execute runs the data and count queries concurrently and waits for both.
func execute[T any](ctx context.Context, table string, dataQuery, countQuery *gorm.DB) ([]T, int64, error) {
	var (
		items = make([]T, 0)
		count countResult
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := dataQuery.WithContext(gCtx).Find(&items).Error
		if err != nil {
			return &ExecutionError{Query: QueryData, Table: table, Err: err}
		}

		return nil
	})

	g.Go(func() error {
		err := countQuery.WithContext(gCtx).Scan(&count).Error
		if err != nil {
			return &ExecutionError{Query: QueryCount, Table: table, Err: err}
		}

		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, 0, err
	}

	if items == nil {
		items = make([]T, 0)
	}

	return items, count.Count, nil
}
