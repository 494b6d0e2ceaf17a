package handlers

import "net/http"

// apiError maps the domain error taxonomy onto HTTP statuses: validation
// and unavailable-item failures are 400, missing entities 404, duplicate
// UTRs 400, bad admin tokens 401.
type apiError struct {
	Status  int
	Message string
}

func (e apiError) Error() string { return e.Message }

func validationError(message string) apiError {
	return apiError{Status: http.StatusBadRequest, Message: message}
}

func notFoundError(message string) apiError {
	return apiError{Status: http.StatusNotFound, Message: message}
}

func unavailableError(message string) apiError {
	return apiError{Status: http.StatusBadRequest, Message: message}
}

func conflictError(message string) apiError {
	return apiError{Status: http.StatusBadRequest, Message: message}
}
