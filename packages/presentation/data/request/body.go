package requestbody

import (
	"fmt"
	"net/http"
	Error "quarry/packages/common/errors"
	"quarry/packages/common/validation"
)

/*
   IMPORTANT
   Validation done in this module is related to transport layer only:
   values are checked to be parsable and in acceptable range.
   Filter and order by expressions are validated by the query engine,
   since only it knows columns of the searched entity.
*/

func invalidParamValue(param string) *Error.Status {
	return Error.NewStatusError(
		fmt.Sprintf("Invalid query parameters: '%s' has invalid value", param),
		http.StatusBadRequest,
	)
}

var ErrorInvalidPageNo = invalidParamValue("pageNo")
var ErrorInvalidPageSize = invalidParamValue("pageSize")

type Validator interface {
	Validate() *Error.Status
}

// swagger:model StockItemSearchRequest
type StockItemSearch struct {
	// Page numbers below 1 are treated as 1
	PageNo   int    `query:"pageNo" example:"1"`
	PageSize int    `query:"pageSize" example:"10"`
	Filter   string `query:"filter" example:"name,contains,bolt,or,name,startsWith,nut,and,price,gt,5"`
	OrderBy  string `query:"orderBy" example:"price desc"`
}

func (b *StockItemSearch) Validate() *Error.Status {
	if validation.PageParam(b.PageNo) != nil {
		return ErrorInvalidPageNo
	}
	if validation.PageParam(b.PageSize) != nil {
		return ErrorInvalidPageSize
	}
	return nil
}

type StockItemID struct {
	ID int64 `param:"id"`
}

func (b *StockItemID) Validate() *Error.Status {
	if err := validation.ID(b.ID); err != nil {
		return err.ToStatus(
			"Invalid path parameters: 'id' has no value",
			"Invalid path parameters: 'id' must be a positive integer",
		)
	}
	return nil
}
