package ndeps

import (
	"errors"
	"fmt"
	"reflect"
)

type bindError struct {
	err     error
	details string
}

func (be *bindError) Error() string {
	return be.err.Error()
}

func (be *bindError) Unwrap() error {
	return be.err
}

// Cause is for github.com/pkg/errors
func (be *bindError) Cause() error {
	return be.err
}

// DetailedError transforms errors into strings.  If
// the error was returned by BindActions, InjectDeps, or
// something that called them, then it will return a much
// more detailed error than just calling err.Error()
func DetailedError(err error) string {
	var bindError *bindError
	if errors.As(err, &bindError) {
		return err.Error() + "\n\n" + bindError.details
	}
	return err.Error()
}

func bindDetails(path string, fn reflect.Type, context any) string {
	contextType := "nil"
	if context != nil {
		contextType = typeName(reflect.TypeOf(context))
	}
	return fmt.Sprintf("action: %s\nfunction: %s\ncontext: %s\n"+
		"The first parameter of an action receives the context.  Change it to a type\n"+
		"that a %s can be assigned to, such as interface{}.",
		path, typeName(fn), contextType, contextType)
}
