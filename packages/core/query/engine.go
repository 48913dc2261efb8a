package query

import (
	"context"
	"quarry/packages/core/catalog"
)

// Runs search request against data source and projects fetched rows via selector.
//
// Source is called exactly twice: Count over the filtered rows and Fetch of the page.
// ctx is passed to both calls as is. Errors of the source are returned unchanged.
// If request is strict and contains unknown column, then *InvalidColumnError is returned
// and source isn't called at all.
func Find[E any, R any](
	ctx context.Context,
	src Source[E],
	cat *catalog.Catalog[E],
	req Request,
	selector func(entity *E) R,
) (*PagedResult[R], error) {
	where, err := compose(cat, &req)
	if err != nil {
		return nil, err
	}

	order, err := resolveOrder(cat, &req)
	if err != nil {
		return nil, err
	}

	total, err := src.Count(ctx, &Query{Where: where})
	if err != nil {
		return nil, err
	}

	rows, err := src.Fetch(ctx, &Query{
		Where:  where,
		Order:  order,
		Offset: offset(req.PageNo, req.PageSize),
		Limit:  req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	data := make([]R, 0, len(rows))
	for i := range rows {
		data = append(data, selector(&rows[i]))
	}

	return &PagedResult[R]{
		Data:       data,
		TotalCount: total,
		PageNo:     req.PageNo,
		PageSize:   req.PageSize,
	}, nil
}
