package savedrepo

import "errors"

var (
	ErrNotFound      = errors.New("saved item not found")
	ErrAlreadyExists = errors.New("saved item already exists")
)
