// Package web is the HTTP layer of the admin service: an App built on chi,
// handlers that declare routes on a Router, middleware over HandlerFunc and
// a Context carrying the request, response, logger and cookie manager.
//
// Handlers return errors instead of writing error responses. The App passes
// them to its ErrorHandler unless the handler already wrote a response.
//
//	app := web.New(
//		web.WithLogger(log),
//		web.WithCookieManager(cookies),
//		web.WithMiddleware(middlewares.Recover(), middlewares.RequestID()),
//		web.WithHandlers(handlers.NewRequests(svc, nonces)),
//		web.WithErrorHandler(handlers.ErrorHandler),
//	)
//	err := app.Run(ctx, ":8080")
package web
