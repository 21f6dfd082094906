package vehiclecache

import "errors"

var ErrNotFound = errors.New("vehicle not cached")
