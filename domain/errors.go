package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the action is not permitted for the caller
	ErrForbidden = errors.New("you are not allowed to do this")
	// ErrUnauthorized will throw if the credential or token check fails
	ErrUnauthorized = errors.New("invalid credential or token")
	// ErrCacheMiss marks a key that is absent from the cache and must be
	// loaded from the database before retrying
	ErrCacheMiss = errors.New("cache miss")
)
