package web

// Handler declares routes on a router.
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles a request. A returned error goes to the ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned by handlers.
type ErrorHandler func(c Context, err error) error
