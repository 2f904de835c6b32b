package domain

import "errors"

// ErrProjectNotFound is returned when a project ID cannot be found in a store.
var ErrProjectNotFound = errors.New("project not found")
