package booking

import (
	"fmt"
	"strings"

	"hotel-frontdesk/internal/pkg/errs"
)

var (
	ErrValidation  = errs.New("booking validation failed")
	ErrTransition  = errs.New("illegal booking transition")
	ErrInvalidID   = errs.New("invalid reservation id")
	ErrIDGenerator = errs.New("reservation id generation failed")
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every rejected field. It matches ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "booking validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// TransitionError is an action attempted from a state that does not allow it.
// It matches ErrTransition.
type TransitionError struct {
	From   State
	Action Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in state %s", e.Action, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrTransition
}
