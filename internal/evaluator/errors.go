package evaluator

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes evaluation failures
type ErrorCode string

const (
	// CodeConnectionNotFound indicates the connection does not exist
	CodeConnectionNotFound ErrorCode = "CONNECTION_NOT_FOUND"

	// CodeUnresolvedBoltConfiguration indicates the bolt configuration was
	// removed after the connection was created
	CodeUnresolvedBoltConfiguration ErrorCode = "UNRESOLVED_BOLT_CONFIGURATION"

	// CodeUnresolvedGlobalLoads indicates the load case was removed after the
	// connection was created
	CodeUnresolvedGlobalLoads ErrorCode = "UNRESOLVED_GLOBAL_LOADS"
)

// EvaluationError reports a connection that cannot be evaluated. It is
// distinct from an UNSAFE verdict: nothing was computed.
type EvaluationError struct {
	Code         ErrorCode
	ConnectionID string
	// Reference is the identifier that failed to resolve, if any
	Reference string
}

// Sentinels for errors.Is
var (
	ErrConnectionNotFound          = &EvaluationError{Code: CodeConnectionNotFound}
	ErrUnresolvedBoltConfiguration = &EvaluationError{Code: CodeUnresolvedBoltConfiguration}
	ErrUnresolvedGlobalLoads       = &EvaluationError{Code: CodeUnresolvedGlobalLoads}
)

func (e *EvaluationError) Error() string {
	switch e.Code {
	case CodeConnectionNotFound:
		return fmt.Sprintf("%s: connection %q does not exist", e.Code, e.ConnectionID)
	case CodeUnresolvedBoltConfiguration:
		return fmt.Sprintf("%s: connection %q references bolt configuration %q, which no longer exists", e.Code, e.ConnectionID, e.Reference)
	case CodeUnresolvedGlobalLoads:
		return fmt.Sprintf("%s: connection %q references load case %q, which no longer exists", e.Code, e.ConnectionID, e.Reference)
	}
	return fmt.Sprintf("%s: connection %q", e.Code, e.ConnectionID)
}

// Is matches any EvaluationError with the same code
func (e *EvaluationError) Is(target error) bool {
	var t *EvaluationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// IsEvaluationError returns true if err is an evaluation error
func IsEvaluationError(err error) bool {
	var ee *EvaluationError
	return errors.As(err, &ee)
}
