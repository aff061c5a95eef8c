package midway

// Handler is a single unit of middleware logic. It receives the per-request
// Context and a continuation; it may short-circuit by returning its own
// response without calling next, or delegate and post-process the result.
type Handler func(ctx *Context, next Next) (Response, error)

// Next resumes the remainder of the chain and returns the response produced
// by the next handler, or by the terminal renderer when the chain is
// exhausted. Not calling it short-circuits the chain; calling it more than
// once re-executes the rest of the chain each time.
type Next func() (Response, error)

// Renderer produces the final response once every handler has delegated.
// It is supplied by the caller and invoked as the implicit tail of the chain.
type Renderer func(ctx *Context) (Response, error)
