// Package errs defines the error taxonomy of the order service.
//
// Every kind of failure has a sentinel and a struct carrying its details:
//
//	ErrValueIsRequired / ValueIsRequiredError          missing input
//	ErrValueIsInvalid / ValueIsInvalidError            input breaking a domain rule
//	ErrValueIsOutOfRange / ValueIsOutOfRangeError      input outside [Min, Max]
//	ErrObjectNotFound / ObjectNotFoundError            absent order or reference
//	ErrAccessDenied / AccessDeniedError                caller may not act on the order
//	ErrInvalidTransition / InvalidTransitionError      status change not in the lifecycle
//	ErrConcurrencyConflict / ConcurrencyConflictError  conditional write lost a race
//
// The structs unwrap to their sentinel, so callers classify with errors.Is
// no matter how deeply an error was wrapped. The HTTP adapter maps the
// sentinels onto response statuses.
package errs
