package repository

import "errors"

// ErrNotFound is returned when a lookup by id or natural key matches no row
var ErrNotFound = errors.New("record not found")
