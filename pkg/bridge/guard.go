package bridge

import (
	"github.com/arthur-debert/catcher/pkg/exc"
	"github.com/arthur-debert/catcher/pkg/registry"
)

// thrown marks a panic as carrying an exception for Guard.
type thrown struct {
	e *exc.Exception
}

// Throw panics with the exception wrapped so that Guard can intercept it.
func Throw(e *exc.Exception) {
	panic(thrown{e})
}

// Guard runs fn and intercepts an exception thrown inside it, routing the
// exception through the registry and returning the winning handler's result.
// Panics carrying a plain error are converted with exc.FromError; any other
// panic is not stopped.
func Guard(reg *registry.Registry, fn func()) (result interface{}, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var e *exc.Exception
		switch v := r.(type) {
		case thrown:
			e = v.e
		case *exc.Exception:
			e = v
		case error:
			e = exc.FromError(v)
		default:
			panic(r)
		}
		result, err = reg.Handle(e)
	}()

	fn()
	return nil, nil
}
