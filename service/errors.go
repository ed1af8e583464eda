package service

import (
	"errors"
	"strings"
)

// MissingFieldsMessage is the client-facing text for ErrMissingFields.
const MissingFieldsMessage = "All input fields are required."

var (
	ErrMissingFields       = errors.New("all input fields are required")
	ErrCalculationNotFound = errors.New("calculation not found")
)

// InvalidInputError carries every type or range violation found in a request.
type InvalidInputError struct {
	Errors []string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + strings.Join(e.Errors, "; ")
}
