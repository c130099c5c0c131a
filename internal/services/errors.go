package services

import "errors"

// ErrDuplicate signals a duplicate-guarded insert found an existing document
// for the same natural key. The guard is a find-before-insert sequence, not
// an atomic constraint, so two racing requests can both pass the check.
var ErrDuplicate = errors.New("duplicate record")

// ErrInvalidPrice is returned for a price that is nil, non-numeric, zero,
// negative or not finite. The payment provider is never called in that case.
var ErrInvalidPrice = errors.New("invalid price")
