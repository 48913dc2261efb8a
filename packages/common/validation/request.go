package validation

import Error "quarry/packages/common/errors"

// Returns nil if 'id' is valid entity id (positive integer),
// otherwise returns either Error.NoValue (id is zero) or Error.InvalidValue.
func ID(id int64) *Error.Validation {
	if id == 0 {
		return Error.NoValue
	}
	if id < 0 {
		return Error.InvalidValue
	}
	return nil
}

// Paging parameters are optional, so zero is valid value.
func PageParam(v int) *Error.Validation {
	if v < 0 {
		return Error.InvalidValue
	}
	return nil
}
