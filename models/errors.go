package models

import "errors"

// ErrValidation wraps every record-level validation failure. Callers match it
// with [errors.Is]; during a pull the offending record is skipped rather than
// aborting the pass.
var ErrValidation = errors.New("validation failed")
