package utils

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrCatalogUnavailable  = errors.New("catalog unavailable")
	ErrDatabaseError       = errors.New("database error")
)
