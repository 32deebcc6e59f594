package store

import (
	"errors"
	"fmt"
)

// ValidationCode categorizes connection creation failures
type ValidationCode string

const (
	// CodeMissingMemberA indicates member A does not exist
	CodeMissingMemberA ValidationCode = "MISSING_MEMBER_A"

	// CodeMissingMemberB indicates member B does not exist
	CodeMissingMemberB ValidationCode = "MISSING_MEMBER_B"

	// CodeMissingBoltConfiguration indicates the bolt configuration does not exist
	CodeMissingBoltConfiguration ValidationCode = "MISSING_BOLT_CONFIGURATION"

	// CodeMissingGlobalLoads indicates the load case does not exist
	CodeMissingGlobalLoads ValidationCode = "MISSING_GLOBAL_LOADS"
)

// ValidationError reports a connection whose references do not resolve.
// It matches the Err* sentinels of the same code with errors.Is.
type ValidationError struct {
	Code ValidationCode
	// ID is the identifier that failed to resolve
	ID string
}

// Sentinels for errors.Is
var (
	ErrMissingMemberA           = &ValidationError{Code: CodeMissingMemberA}
	ErrMissingMemberB           = &ValidationError{Code: CodeMissingMemberB}
	ErrMissingBoltConfiguration = &ValidationError{Code: CodeMissingBoltConfiguration}
	ErrMissingGlobalLoads       = &ValidationError{Code: CodeMissingGlobalLoads}
)

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: reference is empty", e.Code)
	}
	return fmt.Sprintf("%s: %q not found", e.Code, e.ID)
}

// Is matches any ValidationError with the same code
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// IsValidationError returns true if err is a connection validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
