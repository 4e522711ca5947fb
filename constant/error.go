package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrUnauthorize
	ErrEmailExists
	ErrInvalidCredentials
	ErrBookNotFound
	ErrNotFoundOrUnauthorized
	ErrInvalidStatus
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "internal server error",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "token is missing or invalid",
	ErrEmailExists:            "email already registered",
	ErrInvalidCredentials:     "invalid credentials",
	ErrBookNotFound:           "book not found",
	ErrNotFoundOrUnauthorized: "not found or unauthorized",
	ErrInvalidStatus:          "invalid status",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrEmailExists:            http.StatusBadRequest,
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrBookNotFound:           http.StatusNotFound,
	ErrNotFoundOrUnauthorized: http.StatusNotFound,
	ErrInvalidStatus:          http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrInvalidRequest:         "0002",
	ErrUnauthorize:            "0003",
	ErrEmailExists:            "0004",
	ErrInvalidCredentials:     "0005",
	ErrBookNotFound:           "0006",
	ErrNotFoundOrUnauthorized: "0007",
	ErrInvalidStatus:          "0008",
}
