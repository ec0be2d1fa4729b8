package source

import "errors"

var (
	ErrUpstreamStatus   = errors.New("table data request failed")
	ErrMissingTableData = errors.New("table data response has no TABLE_DATA.data")
)
