package verify

import "fmt"

// Failure is the error raised when an assertion is violated. It is a single
// concrete type with no hierarchy; the message is optional.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	if f.Message == "" {
		return "assertion failed"
	}
	return f.Message
}

// Fail unconditionally raises a Failure, optionally carrying a message.
func Fail(msgAndArgs ...any) {
	panic(&Failure{Message: messageFromArgs(msgAndArgs)})
}

// Recover runs fn and returns the *Failure it raised, or nil if fn completed
// silently. Panics that are not assertion failures are re-raised as-is. It is
// the bridge for harnesses that want to intercept the failure signal instead
// of letting it propagate.
func Recover(fn func()) (failure *Failure) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r)
			}
			failure = f
		}
	}()
	fn()
	return nil
}

func messageFromArgs(msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		format, ok := msgAndArgs[0].(string)
		if !ok {
			return fmt.Sprintf("%+v", msgAndArgs)
		}
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
}
