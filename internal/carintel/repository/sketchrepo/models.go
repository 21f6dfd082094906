package sketchrepo

import "errors"

// ErrNotFound covers both "no such sketch" and "sketch owned by
// someone else": handlers must not be able to tell them apart.
var ErrNotFound = errors.New("sketch not found")
