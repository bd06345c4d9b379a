// Package store defines the errors shared by the order store backends.
// The OrderStore contract itself is declared by its consumer in the
// service package; the backends here only have to satisfy it.
package store

import "errors"

// ErrNotFound is returned by Lookup when no order exists for the given id.
var ErrNotFound = errors.New("order not found")
