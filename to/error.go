package to

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// RejectionError is the error built from a rejection reason which was not an error.
type RejectionError struct {
	payload any
	cause   error
}

func newRejectionError(payload any) *RejectionError {
	msg := "null"
	if !isNil(payload) {
		msg = fmt.Sprint(payload)
	}

	return &RejectionError{
		payload: payload,
		// errors.New records the stack at the normalization point.
		cause: errors.New(msg),
	}
}

func (e *RejectionError) Error() string {
	return e.cause.Error()
}

// Payload returns the raw rejection reason.
func (e *RejectionError) Payload() any {
	return e.payload
}

// Format prints the stack trace with %+v.
func (e *RejectionError) Format(s fmt.State, verb rune) {
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.Error())
}

// StackTrace returns the stack captured when the reason was normalized.
func (e *RejectionError) StackTrace() errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// Normalize returns reason unchanged if it is already an error. Any other
// value is wrapped into a new *RejectionError whose message is the string
// form of the value. Nil, including a typed nil error such as (*MyErr)(nil),
// is wrapped with the message "null".
func Normalize(reason any) error {
	if err, ok := reason.(error); ok && !isNil(err) {
		return err
	}
	return newRejectionError(reason)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
