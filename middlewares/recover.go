package middlewares

import (
	"log/slog"
	"runtime"

	"github.com/dmitrymomot/gdpr/internal/web"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// Recover returns middleware that converts panics into a *PanicError.
// stackSize <= 0 disables stack capture.
func Recover(stackSize int) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				var stack []byte
				if stackSize > 0 {
					stack = make([]byte, stackSize)
					stack = stack[:runtime.Stack(stack, false)]
				}
				c.LogError("panic recovered",
					slog.Any("panic", r),
					slog.String("stack", string(stack)),
				)
				err = &PanicError{Value: r, Stack: stack}
			}()
			return next(c)
		}
	}
}
