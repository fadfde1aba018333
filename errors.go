package magplot

import "errors"

var (
	ErrNoSuchColumn = errors.New("no such column")

	ErrNotNumeric = errors.New("column is not numerical")

	ErrBadCSV = errors.New("malformed csv")

	ErrBadFormat = errors.New("unsupported image format")
)
