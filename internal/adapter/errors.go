package adapter

import "errors"

// Errors returned by the API client, mapped from HTTP statuses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("service unavailable")
)

var (
	errEmptyAddress  = errors.New("empty address")
	errAddressFormat = errors.New("address must include host and scheme")
	errNoToken       = errors.New("no bearer token set, register or login first")
)
