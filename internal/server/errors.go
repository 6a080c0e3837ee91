package server

import "net/http"

type httpError struct {
	Status  int
	Message string
}

func (e *httpError) Error() string {
	return e.Message
}

var errInvalidPath = &httpError{
	Status:  http.StatusBadRequest,
	Message: "Invalid path",
}

var errPathNotFound = &httpError{
	Status:  http.StatusNotFound,
	Message: "Path not found",
}

var errUnsupportedType = &httpError{
	Status:  http.StatusBadRequest,
	Message: "Path is neither file nor directory",
}
