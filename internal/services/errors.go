package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks any request the caller can fix. Handlers translate it
// to 400; everything else that is not a not-found surfaces as 500.
var ErrValidation = errors.New("validation failed")

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}
