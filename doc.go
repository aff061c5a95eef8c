// Package midway implements a middleware composition and context-propagation
// engine: an ordered chain of handlers runs around a terminal render step,
// each handler able to inspect the per-request Context, delegate to the rest
// of the chain through an explicit continuation, and post-process the
// response on the way back out.
//
// # Execution model
//
// A Handler receives the Context and a Next continuation. Calling next runs
// the remainder of the chain and, past the last handler, the terminal
// Renderer. This yields onion execution: pre-delegation code runs forward
// through the chain, post-delegation code runs backward, symmetric around
// the render.
//
//	greet := func(ctx *midway.Context, next midway.Next) (midway.Response, error) {
//		ctx.Locals["greeting"] = "hello"
//		resp, err := next() // rest of the chain + renderer
//		return resp, err
//	}
//
// A handler may skip next entirely and return its own response, which
// short-circuits everything deeper in the chain. Calling next more than once
// is legal but re-executes the rest of the chain each time.
//
// Sequence composes any number of handlers into one; an empty Sequence is
// the identity handler. Dispatcher is the entry point used by server
// adapters: it creates exactly one Context per request and passes it by
// shared reference through the whole chain.
//
// # Locals
//
// Context.Locals is the mutable shared state of a request. Handlers mutate
// its contents; replacing the map itself is a programming error. The engine
// checks the map identity after every handler invocation: in ModeDiagnostic
// it panics with *LocalsOverwriteError, in ModeRelease it logs a warning and
// restores the original map.
//
// # Errors
//
// The engine is a transparent conduit. Handler and renderer errors propagate
// to the dispatcher's caller unchanged; recovery belongs to a handler that
// wraps its next call, and error pages belong to the server adapter (see the
// httpserver package).
package midway
