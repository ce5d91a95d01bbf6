package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Distinct from ErrDataAccess: the store was reachable but held no matching row.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDataAccess indicates that the data store could not be reached or a
// stored procedure call failed. Read handlers translate this into a demo-data
// response; write handlers report failure without fabricating a written record.
var ErrDataAccess = errors.New("data access error")

// ErrNotConfigured indicates that an optional external integration (the
// hosted chat model) has no configuration and cannot be called.
var ErrNotConfigured = errors.New("not configured")
