// Package httpserver is the server adapter for the midway engine. It owns
// everything the engine deliberately does not: the HTTP transport, the
// response writer, and the error page.
//
// Adapter turns a midway.Dispatcher into an http.Handler: per request it
// calls Dispatch, renders the resulting response, and converts any error the
// chain propagated into an error response. Server wraps http.Server with
// graceful shutdown and environment-driven configuration:
//
//	d := midway.NewDispatcher(renderPage,
//		midway.WithHandlers(middleware.RequestID(), middleware.Logging()))
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv, err := httpserver.NewFromConfig(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(srv.Start(ctx, httpserver.NewAdapter(d)))
package httpserver
